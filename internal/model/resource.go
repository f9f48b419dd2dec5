package model

import "time"

// Resource is a learning material uploaded by a user. SessionID scopes the
// resource to a session for cascade deletion and attendee notifications;
// empty means the resource is course-wide only.
type Resource struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CourseCode string    `json:"courseCode,omitempty"`
	SessionID  string    `json:"sessionId,omitempty"`
	Type       string    `json:"type,omitempty"`
	URL        string    `json:"url"`
	UploaderID string    `json:"uploaderId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AccessLog records one access to a resource (stream or explicit log call)
type AccessLog struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resourceId"`
	Timestamp  time.Time `json:"timestamp"`
}
