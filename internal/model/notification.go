package model

import "time"

// Notification is an append-only message for one user. The only removal
// path is the bulk clear-by-user operation.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
