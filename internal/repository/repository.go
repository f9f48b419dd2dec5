// Package repository declares the persistence contracts consumed by the
// services. Lookups return (nil, nil) when the row is absent; callers decide
// whether that is an error. Mutating calls are expected to be durable when
// they return: the store persists inside the call, not on a flush.
package repository

import (
	"context"

	"tutorhub/internal/model"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type TutorRepository interface {
	GetByID(ctx context.Context, id string) (*model.Tutor, error)
	List(ctx context.Context) ([]*model.Tutor, error)
	Create(ctx context.Context, tutor *model.Tutor) error
	Save(ctx context.Context, tutor *model.Tutor) error
}

type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*model.Session, error)
	List(ctx context.Context) ([]*model.Session, error)
	Create(ctx context.Context, session *model.Session) error
	Save(ctx context.Context, session *model.Session) error
	// SaveAll persists a batch of changed sessions in one call; the sweep
	// relies on this being a single write per pass.
	SaveAll(ctx context.Context, sessions []*model.Session) error
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	ListBySession(ctx context.Context, sessionID string) ([]*model.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]*model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id string) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

type FeedbackRepository interface {
	GetBySessionStudent(ctx context.Context, sessionID, studentID string) (*model.Feedback, error)
	ListByTutor(ctx context.Context, tutorID string) ([]*model.Feedback, error)
	Create(ctx context.Context, feedback *model.Feedback) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*model.Notification, error)
	List(ctx context.Context) ([]*model.Notification, error)
	Create(ctx context.Context, notification *model.Notification) error
	ClearByUser(ctx context.Context, userID string) error
}

type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context) ([]*model.Resource, error)
	ListByCourse(ctx context.Context, courseCode string) ([]*model.Resource, error)
	Create(ctx context.Context, resource *model.Resource) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

type AccessLogRepository interface {
	List(ctx context.Context) ([]*model.AccessLog, error)
	ListByResource(ctx context.Context, resourceID string) ([]*model.AccessLog, error)
	Create(ctx context.Context, log *model.AccessLog) error
}

// Repositories bundles one repository per entity collection for wiring
type Repositories struct {
	Users         UserRepository
	Tutors        TutorRepository
	Sessions      SessionRepository
	Bookings      BookingRepository
	Feedback      FeedbackRepository
	Notifications NotificationRepository
	Resources     ResourceRepository
	AccessLogs    AccessLogRepository
}
