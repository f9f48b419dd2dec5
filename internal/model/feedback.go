package model

import "time"

// Rating bounds for feedback
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a post-session rating left by an attendee. Write-once: at
// most one per (sessionId, studentId), never updated afterwards.
type Feedback struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	TutorID     string    `json:"tutorId"`
	StudentID   string    `json:"studentId"`
	Rating      int       `json:"rating"` // 1-5
	Comment     string    `json:"comment,omitempty"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
}
