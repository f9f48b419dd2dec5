package model

// Session type tags a tutor can offer
const (
	SessionTypeOneOnOne = "one-on-one"
	SessionTypeGroup    = "group"
)

// Tutor is a public tutoring profile. ID matches the owning user's ID.
// AverageRating and RatingCount are a cache of the feedback aggregate and
// are only ever recomputed, never edited directly.
type Tutor struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Bio           string             `json:"bio"`
	Expertise     []string           `json:"expertise"`
	SessionTypes  []string           `json:"sessionTypes"`
	Availability  []AvailabilitySlot `json:"availability"`
	AverageRating float64            `json:"averageRating"`
	RatingCount   int                `json:"ratingCount"`
}

// OffersSessionType checks the offered session type tags
func (t *Tutor) OffersSessionType(sessionType string) bool {
	for _, st := range t.SessionTypes {
		if st == sessionType {
			return true
		}
	}
	return false
}

// IsValidSessionType checks a session type tag against the known enum
func IsValidSessionType(sessionType string) bool {
	return sessionType == SessionTypeOneOnOne || sessionType == SessionTypeGroup
}
