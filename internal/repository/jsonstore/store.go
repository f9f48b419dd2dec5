// Package jsonstore persists each entity collection as one JSON file under a
// data directory. Every mutation rewrites the owning file before returning,
// inside that collection's mutex, so in-memory and on-disk state never
// diverge for longer than one operation.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// Collection file names, one per entity
const (
	usersFile         = "users.json"
	tutorsFile        = "tutors.json"
	sessionsFile      = "sessions.json"
	bookingsFile      = "bookings.json"
	feedbackFile      = "feedback.json"
	notificationsFile = "notifications.json"
	resourcesFile     = "resources.json"
	logsFile          = "logs.json"
)

type collection[T any] struct {
	mu    sync.Mutex
	path  string
	items []*T
}

func openCollection[T any](dir, name string) (*collection[T], error) {
	c := &collection[T]{path: filepath.Join(dir, name)}

	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return c, nil
}

// persist rewrites the collection file. Callers must hold c.mu.
func (c *collection[T]) persist() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(c.path), err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(c.path), err)
	}
	return nil
}

// Store owns every collection of the marketplace
type Store struct {
	users         *collection[model.User]
	tutors        *collection[model.Tutor]
	sessions      *collection[model.Session]
	bookings      *collection[model.Booking]
	feedback      *collection[model.Feedback]
	notifications *collection[model.Notification]
	resources     *collection[model.Resource]
	accessLogs    *collection[model.AccessLog]
}

// Open loads all collections from dir, creating the directory if needed
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{}
	var err error
	if s.users, err = openCollection[model.User](dir, usersFile); err != nil {
		return nil, err
	}
	if s.tutors, err = openCollection[model.Tutor](dir, tutorsFile); err != nil {
		return nil, err
	}
	if s.sessions, err = openCollection[model.Session](dir, sessionsFile); err != nil {
		return nil, err
	}
	if s.bookings, err = openCollection[model.Booking](dir, bookingsFile); err != nil {
		return nil, err
	}
	if s.feedback, err = openCollection[model.Feedback](dir, feedbackFile); err != nil {
		return nil, err
	}
	if s.notifications, err = openCollection[model.Notification](dir, notificationsFile); err != nil {
		return nil, err
	}
	if s.resources, err = openCollection[model.Resource](dir, resourcesFile); err != nil {
		return nil, err
	}
	if s.accessLogs, err = openCollection[model.AccessLog](dir, logsFile); err != nil {
		return nil, err
	}
	return s, nil
}

// Repositories exposes the store behind the per-entity contracts
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:         &UserRepo{c: s.users},
		Tutors:        &TutorRepo{c: s.tutors},
		Sessions:      &SessionRepo{c: s.sessions},
		Bookings:      &BookingRepo{c: s.bookings},
		Feedback:      &FeedbackRepo{c: s.feedback},
		Notifications: &NotificationRepo{c: s.notifications},
		Resources:     &ResourceRepo{c: s.resources},
		AccessLogs:    &AccessLogRepo{c: s.accessLogs},
	}
}
