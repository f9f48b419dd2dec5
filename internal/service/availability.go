package service

import (
	"strconv"
	"strings"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
)

// ValidateSlots checks a proposed availability slot list. The whole list is
// rejected on the first invalid entry, naming the offending index and reason.
// Non-overlap between entries is the edit workflow's concern, not this one.
func ValidateSlots(slots []model.AvailabilitySlot) error {
	for i, slot := range slots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return apperr.Validation("availability slot %d: dayOfWeek must be 0-6, got %d", i, slot.DayOfWeek)
		}
		if slot.StartMinute < 0 || slot.StartMinute >= model.MinutesPerDay {
			return apperr.Validation("availability slot %d: startMinute must be in [0,1440), got %d", i, slot.StartMinute)
		}
		if slot.EndMinute < 0 || slot.EndMinute >= model.MinutesPerDay {
			return apperr.Validation("availability slot %d: endMinute must be in [0,1440), got %d", i, slot.EndMinute)
		}
		if slot.StartMinute >= slot.EndMinute {
			return apperr.Validation("availability slot %d: start must be before end", i)
		}
	}
	return nil
}

// CheckSlotConflicts rejects a list containing an exact duplicate slot or two
// slots that numerically overlap on the same day. Overlap is a user-facing
// error, never silently merged.
func CheckSlotConflicts(slots []model.AvailabilitySlot) error {
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].Equal(slots[j]) {
				return apperr.Conflict("availability slot %d duplicates slot %d", j, i)
			}
			if slots[i].Overlaps(slots[j]) {
				return apperr.Validation("availability slot %d overlaps slot %d on day %d", j, i, slots[i].DayOfWeek)
			}
		}
	}
	return nil
}

// ParseClock parses "HH:MM" (hours 0-23, minutes 0-59) into minutes since
// midnight. ok is false for anything malformed.
func ParseClock(value string) (minutes int, ok bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}
	return hours*60 + mins, true
}
