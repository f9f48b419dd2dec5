package render

import (
	"bytes"
	"testing"

	"tutorhub/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestWeekImageProducesPNG(t *testing.T) {
	tutor := &model.Tutor{
		ID:   "t1",
		Name: "Alice",
		Availability: []model.AvailabilitySlot{
			{DayOfWeek: 1, StartMinute: 540, EndMinute: 660},
			{DayOfWeek: 3, StartMinute: 840, EndMinute: 900},
		},
	}

	data, err := WeekImage(tutor)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("output is not a PNG")
	}
}

func TestWeekImageEmptyAvailability(t *testing.T) {
	data, err := WeekImage(&model.Tutor{ID: "t1", Name: "Bob"})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("output is not a PNG")
	}
}
