// Package render draws a tutor's weekly availability as a PNG.
// Adapted from a schedule renderer built on fogleman/gg; text uses the
// basicfont face so no font files need to ship with the binary.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"tutorhub/internal/model"
)

const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 60
	leftLabelsWidth = 70
	dayPaddingX     = 6
	totalDaysInWeek = 7
	hoursInDay      = 24
)

var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{200, 200, 200, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{226, 226, 226, 255}
	slotColor      = color.RGBA{133, 193, 85, 220}
	slotTextColor  = color.RGBA{20, 24, 28, 230}
)

var dayNames = [totalDaysInWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekImage renders the tutor's recurring availability grid as PNG bytes
func WeekImage(tutor *model.Tutor) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	gridWidth := float64(imageWidth - leftLabelsWidth)
	gridHeight := float64(imageHeight - headerHeight)
	dayWidth := gridWidth / totalDaysInWeek
	minuteHeight := gridHeight / float64(model.MinutesPerDay)

	// Day columns with alternating shading
	for day := 0; day < totalDaysInWeek; day++ {
		x := float64(leftLabelsWidth) + float64(day)*dayWidth
		if day%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, gridHeight)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(dayNames[day], x+dayWidth/2, headerHeight/2, 0.5, 0.5)
	}

	// Hour lines and labels
	for hour := 0; hour <= hoursInDay; hour++ {
		y := float64(headerHeight) + float64(hour*60)*minuteHeight
		dc.SetColor(hourLineColor)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()

		if hour < hoursInDay {
			dc.SetColor(hourLabelColor)
			dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hour), leftLabelsWidth/2, y+6, 0.5, 0.5)
		}
	}

	// Availability blocks
	for _, slot := range tutor.Availability {
		if slot.DayOfWeek < 0 || slot.DayOfWeek >= totalDaysInWeek {
			continue
		}
		x := float64(leftLabelsWidth) + float64(slot.DayOfWeek)*dayWidth + dayPaddingX
		y := float64(headerHeight) + float64(slot.StartMinute)*minuteHeight
		h := float64(slot.EndMinute-slot.StartMinute) * minuteHeight

		dc.SetColor(slotColor)
		dc.DrawRoundedRectangle(x, y, dayWidth-2*dayPaddingX, h, 5)
		dc.Fill()

		label := fmt.Sprintf("%02d:%02d-%02d:%02d",
			slot.StartMinute/60, slot.StartMinute%60,
			slot.EndMinute/60, slot.EndMinute%60,
		)
		dc.SetColor(slotTextColor)
		dc.DrawStringAnchored(label, x+(dayWidth-2*dayPaddingX)/2, y+h/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
