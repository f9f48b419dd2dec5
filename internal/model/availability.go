package model

// MinutesPerDay is the exclusive upper bound for slot minutes
const MinutesPerDay = 24 * 60

// AvailabilitySlot is a recurring weekly time window on one day of week.
// Minutes are counted from midnight; the interval is half-open [start, end).
type AvailabilitySlot struct {
	DayOfWeek   int `json:"dayOfWeek"` // 0 = Sunday, 6 = Saturday
	StartMinute int `json:"startMinute"`
	EndMinute   int `json:"endMinute"`
}

// Equal checks for an exact (day, start, end) match
func (s AvailabilitySlot) Equal(other AvailabilitySlot) bool {
	return s.DayOfWeek == other.DayOfWeek &&
		s.StartMinute == other.StartMinute &&
		s.EndMinute == other.EndMinute
}

// Overlaps checks whether two slots on the same day share any minutes
func (s AvailabilitySlot) Overlaps(other AvailabilitySlot) bool {
	if s.DayOfWeek != other.DayOfWeek {
		return false
	}
	return s.StartMinute < other.EndMinute && s.EndMinute > other.StartMinute
}

// Contains checks whether the slot fully covers the [start, end) window
func (s AvailabilitySlot) Contains(startMinute, endMinute int) bool {
	return s.StartMinute <= startMinute && s.EndMinute >= endMinute
}
