package model

import "time"

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
)

// IsValidSessionStatus checks a status value against the known states
func IsValidSessionStatus(status SessionStatus) bool {
	return status == SessionStatusScheduled || status == SessionStatusCompleted
}

// Session is a tutoring session offered by a tutor. Start and End are kept
// as RFC3339 strings: stored data may carry malformed values and the sweep
// must tolerate them row by row instead of failing the whole collection.
type Session struct {
	ID         string        `json:"id"`
	TutorID    string        `json:"tutorId"`
	Title      string        `json:"title"`
	CourseCode string        `json:"courseCode,omitempty"`
	Start      string        `json:"start"`
	End        string        `json:"end"`
	Location   string        `json:"location"`
	Status     SessionStatus `json:"status"`
	Attendees  []string      `json:"attendees"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// HasAttendee checks enrollment; attendees have set semantics
func (s *Session) HasAttendee(studentID string) bool {
	for _, id := range s.Attendees {
		if id == studentID {
			return true
		}
	}
	return false
}

// RemoveAttendee drops a student from the attendee list, no-op if absent
func (s *Session) RemoveAttendee(studentID string) {
	out := s.Attendees[:0]
	for _, id := range s.Attendees {
		if id != studentID {
			out = append(out, id)
		}
	}
	s.Attendees = out
}

// EndTime parses the session end timestamp
func (s *Session) EndTime() (time.Time, error) {
	return time.Parse(time.RFC3339, s.End)
}

// StartTime parses the session start timestamp
func (s *Session) StartTime() (time.Time, error) {
	return time.Parse(time.RFC3339, s.Start)
}
