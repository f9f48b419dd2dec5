package service

import (
	"strings"
	"testing"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
)

func TestValidateSlots(t *testing.T) {
	cases := []struct {
		name    string
		slots   []model.AvailabilitySlot
		wantErr string
	}{
		{
			name: "valid list",
			slots: []model.AvailabilitySlot{
				{DayOfWeek: 0, StartMinute: 0, EndMinute: 60},
				{DayOfWeek: 6, StartMinute: 540, EndMinute: 1439},
			},
		},
		{
			name:    "day out of range",
			slots:   []model.AvailabilitySlot{{DayOfWeek: 7, StartMinute: 0, EndMinute: 60}},
			wantErr: "dayOfWeek",
		},
		{
			name:    "negative start",
			slots:   []model.AvailabilitySlot{{DayOfWeek: 1, StartMinute: -1, EndMinute: 60}},
			wantErr: "startMinute",
		},
		{
			name:    "end at day boundary",
			slots:   []model.AvailabilitySlot{{DayOfWeek: 1, StartMinute: 0, EndMinute: 1440}},
			wantErr: "endMinute",
		},
		{
			name:    "start equals end",
			slots:   []model.AvailabilitySlot{{DayOfWeek: 1, StartMinute: 600, EndMinute: 600}},
			wantErr: "start must be before end",
		},
		{
			name: "second entry invalid names its index",
			slots: []model.AvailabilitySlot{
				{DayOfWeek: 1, StartMinute: 0, EndMinute: 60},
				{DayOfWeek: 1, StartMinute: 120, EndMinute: 60},
			},
			wantErr: "slot 1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSlots(tc.slots)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestCheckSlotConflicts(t *testing.T) {
	t.Run("duplicate is a conflict", func(t *testing.T) {
		err := CheckSlotConflicts([]model.AvailabilitySlot{
			{DayOfWeek: 2, StartMinute: 60, EndMinute: 120},
			{DayOfWeek: 2, StartMinute: 60, EndMinute: 120},
		})
		if !apperr.IsKind(err, apperr.KindConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("same-day overlap is rejected", func(t *testing.T) {
		err := CheckSlotConflicts([]model.AvailabilitySlot{
			{DayOfWeek: 2, StartMinute: 60, EndMinute: 120},
			{DayOfWeek: 2, StartMinute: 90, EndMinute: 180},
		})
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Fatalf("expected validation, got %v", err)
		}
	})

	t.Run("same window on another day is fine", func(t *testing.T) {
		err := CheckSlotConflicts([]model.AvailabilitySlot{
			{DayOfWeek: 2, StartMinute: 60, EndMinute: 120},
			{DayOfWeek: 3, StartMinute: 60, EndMinute: 120},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("adjacent slots do not overlap", func(t *testing.T) {
		err := CheckSlotConflicts([]model.AvailabilitySlot{
			{DayOfWeek: 2, StartMinute: 60, EndMinute: 120},
			{DayOfWeek: 2, StartMinute: 120, EndMinute: 180},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9am", 0, false},
		{"", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
	}
	for _, tc := range cases {
		minutes, ok := ParseClock(tc.in)
		if ok != tc.ok || minutes != tc.minutes {
			t.Errorf("ParseClock(%q) = (%d, %v), want (%d, %v)", tc.in, minutes, ok, tc.minutes, tc.ok)
		}
	}
}
