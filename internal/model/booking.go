package model

import "time"

// Booking enrolls one student into one session. At most one booking may
// exist per (sessionId, studentId) pair; the coordinator enforces that.
type Booking struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	StudentID string    `json:"studentId"`
	CreatedAt time.Time `json:"createdAt"`
}
