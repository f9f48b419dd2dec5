package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"tutorhub/internal/repository"
)

// Pusher delivers a notification over an external channel (Telegram).
// Delivery is best-effort; failures are logged, never surfaced.
type Pusher interface {
	Push(ctx context.Context, chatID int64, text string) error
}

// Services wires every engine component over one repository set. A single
// mutex serializes all mutating operations and the sweep: mutation and its
// persistence happen inside the same critical section, so persisted state
// never trails in-memory state by more than one operation.
type Services struct {
	mu sync.Mutex

	Users         *UserService
	Tutors        *TutorService
	Search        *SearchService
	Sessions      *SessionService
	Bookings      *BookingService
	Feedback      *FeedbackService
	Notifications *NotificationService
	Resources     *ResourceService
}

func New(repos *repository.Repositories, pusher Pusher, logger *zap.Logger) *Services {
	s := &Services{}

	notifications := &NotificationService{
		mu:     &s.mu,
		repo:   repos.Notifications,
		users:  repos.Users,
		pusher: pusher,
		logger: logger,
	}
	ratings := &RatingAggregator{
		feedback: repos.Feedback,
		tutors:   repos.Tutors,
	}

	s.Notifications = notifications
	s.Users = &UserService{
		mu:     &s.mu,
		users:  repos.Users,
		tutors: repos.Tutors,
		logger: logger,
	}
	s.Tutors = &TutorService{
		mu:       &s.mu,
		tutors:   repos.Tutors,
		sessions: repos.Sessions,
		ratings:  ratings,
		logger:   logger,
	}
	s.Search = &SearchService{
		tutors: repos.Tutors,
		logger: logger,
	}
	s.Sessions = &SessionService{
		mu:            &s.mu,
		sessions:      repos.Sessions,
		bookings:      repos.Bookings,
		feedback:      repos.Feedback,
		resources:     repos.Resources,
		ratings:       ratings,
		notifications: notifications,
		logger:        logger,
	}
	s.Bookings = &BookingService{
		mu:            &s.mu,
		sessions:      repos.Sessions,
		bookings:      repos.Bookings,
		notifications: notifications,
		logger:        logger,
	}
	s.Feedback = &FeedbackService{
		mu:            &s.mu,
		sessions:      repos.Sessions,
		feedback:      repos.Feedback,
		ratings:       ratings,
		notifications: notifications,
		logger:        logger,
	}
	s.Resources = &ResourceService{
		mu:            &s.mu,
		resources:     repos.Resources,
		accessLogs:    repos.AccessLogs,
		sessions:      repos.Sessions,
		notifications: notifications,
		logger:        logger,
	}
	return s
}
