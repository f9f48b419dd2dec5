package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// SessionService owns the session state machine: creation, direct status
// changes, cascading deletion and the periodic auto-completion sweep.
type SessionService struct {
	mu            *sync.Mutex
	sessions      repository.SessionRepository
	bookings      repository.BookingRepository
	feedback      repository.FeedbackRepository
	resources     repository.ResourceRepository
	ratings       *RatingAggregator
	notifications *NotificationService
	logger        *zap.Logger
}

type CreateSessionInput struct {
	TutorID    string
	Title      string
	CourseCode string
	Start      string // RFC3339
	End        string // RFC3339
	Location   string
}

// Create validates the time window and stores a SCHEDULED session with no
// attendees
func (s *SessionService) Create(ctx context.Context, in CreateSessionInput) (*model.Session, error) {
	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil {
		return nil, apperr.Validation("start must be a valid RFC3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil {
		return nil, apperr.Validation("end must be a valid RFC3339 timestamp")
	}
	if !start.Before(end) {
		return nil, apperr.Validation("start must be before end")
	}

	session := &model.Session{
		ID:         uuid.NewString(),
		TutorID:    in.TutorID,
		Title:      in.Title,
		CourseCode: in.CourseCode,
		Start:      in.Start,
		End:        in.End,
		Location:   in.Location,
		Status:     model.SessionStatusScheduled,
		Attendees:  []string{},
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, apperr.Storage(err, "failed to save session")
	}

	s.logger.Info("Session created",
		zap.String("session_id", session.ID),
		zap.String("tutor_id", session.TutorID),
	)
	return session, nil
}

func (s *SessionService) List(ctx context.Context) ([]*model.Session, error) {
	return s.sessions.List(ctx)
}

func (s *SessionService) GetByID(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, apperr.NotFound("session %s not found", id)
	}
	return session, nil
}

// ChangeStatus overwrites the session status. Only the two known states are
// accepted. Every attendee is notified of the change.
func (s *SessionService) ChangeStatus(ctx context.Context, id string, status model.SessionStatus) (*model.Session, error) {
	if !model.IsValidSessionStatus(status) {
		return nil, apperr.Validation("status must be %s or %s", model.SessionStatusScheduled, model.SessionStatusCompleted)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err, "failed to load session")
	}
	if session == nil {
		return nil, apperr.NotFound("session %s not found", id)
	}

	session.Status = status
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperr.Storage(err, "failed to save session")
	}

	for _, attendee := range session.Attendees {
		if err := s.notifications.emit(ctx, attendee, fmt.Sprintf("Session %s status changed to %s", session.ID, status)); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Session status changed",
		zap.String("session_id", session.ID),
		zap.String("status", string(status)),
	)
	return session, nil
}

// Delete removes the session and cascades, in order, to its bookings,
// feedback and resources, then refreshes the owning tutor's rating cache
// since its feedback rows are gone.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return apperr.Storage(err, "failed to load session")
	}
	if session == nil {
		return apperr.NotFound("session %s not found", id)
	}

	if err := s.bookings.DeleteBySession(ctx, id); err != nil {
		return apperr.Storage(err, "failed to delete bookings for session %s", id)
	}
	if err := s.feedback.DeleteBySession(ctx, id); err != nil {
		return apperr.Storage(err, "failed to delete feedback for session %s", id)
	}
	if err := s.resources.DeleteBySession(ctx, id); err != nil {
		return apperr.Storage(err, "failed to delete resources for session %s", id)
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return apperr.Storage(err, "failed to delete session %s", id)
	}

	if _, err := s.ratings.Recompute(ctx, session.TutorID); err != nil {
		return err
	}

	s.logger.Info("Session deleted",
		zap.String("session_id", id),
		zap.String("tutor_id", session.TutorID),
	)
	return nil
}

// Sweep flips every SCHEDULED session whose end timestamp is strictly in
// the past to COMPLETED and persists all flips in a single batched save.
// A malformed end value is logged and the row left untouched. Running the
// sweep again immediately changes nothing and persists nothing.
func (s *SessionService) Sweep(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return 0, apperr.Storage(err, "failed to load sessions")
	}

	var changed []*model.Session
	for _, session := range sessions {
		if session.Status != model.SessionStatusScheduled {
			continue
		}
		end, err := session.EndTime()
		if err != nil {
			s.logger.Warn("Sweep skipping session with malformed end",
				zap.String("session_id", session.ID),
				zap.String("end", session.End),
			)
			continue
		}
		if end.Before(now) {
			session.Status = model.SessionStatusCompleted
			changed = append(changed, session)
		}
	}

	if len(changed) == 0 {
		return 0, nil
	}

	if err := s.sessions.SaveAll(ctx, changed); err != nil {
		return 0, apperr.Storage(err, "failed to persist swept sessions")
	}

	for _, session := range changed {
		for _, attendee := range session.Attendees {
			if err := s.notifications.emit(ctx, attendee, fmt.Sprintf("Session %s status changed to %s", session.ID, model.SessionStatusCompleted)); err != nil {
				return len(changed), err
			}
		}
	}

	s.logger.Info("Sweep completed sessions", zap.Int("count", len(changed)))
	return len(changed), nil
}
