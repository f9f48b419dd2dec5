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

// BookingService enrolls students into sessions and withdraws them.
// The attendee list carries the state-defining truth, so the session is
// persisted before the booking record and the booking record before the
// notification: a storage failure mid-chain leaves a consistent prefix.
type BookingService struct {
	mu            *sync.Mutex
	sessions      repository.SessionRepository
	bookings      repository.BookingRepository
	notifications *NotificationService
	logger        *zap.Logger
}

// Book enrolls the student into the session. Booking the same student into
// the same session twice is a conflict, and the attendee list is unchanged.
func (s *BookingService) Book(ctx context.Context, sessionID, studentID string) (*model.Booking, error) {
	if sessionID == "" || studentID == "" {
		return nil, apperr.Validation("sessionId and studentId are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, apperr.Storage(err, "failed to load session")
	}
	if session == nil {
		return nil, apperr.NotFound("session %s not found", sessionID)
	}
	if session.HasAttendee(studentID) {
		return nil, apperr.Conflict("student %s already booked session %s", studentID, sessionID)
	}

	session.Attendees = append(session.Attendees, studentID)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperr.Storage(err, "failed to save session")
	}

	booking := &model.Booking{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		StudentID: studentID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperr.Storage(err, "failed to save booking")
	}

	if err := s.notifications.emit(ctx, session.TutorID, fmt.Sprintf("New booking for session %s", session.ID)); err != nil {
		return nil, err
	}

	s.logger.Info("Session booked",
		zap.String("booking_id", booking.ID),
		zap.String("session_id", sessionID),
		zap.String("student_id", studentID),
	)
	return booking, nil
}

// Cancel withdraws the booking. Removing the student from the attendee list
// is a no-op if they are already absent or the session is gone.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return apperr.Storage(err, "failed to load booking")
	}
	if booking == nil {
		return apperr.NotFound("booking %s not found", bookingID)
	}

	session, err := s.sessions.GetByID(ctx, booking.SessionID)
	if err != nil {
		return apperr.Storage(err, "failed to load session")
	}
	if session != nil && session.HasAttendee(booking.StudentID) {
		session.RemoveAttendee(booking.StudentID)
		if err := s.sessions.Save(ctx, session); err != nil {
			return apperr.Storage(err, "failed to save session")
		}
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return apperr.Storage(err, "failed to delete booking")
	}

	s.logger.Info("Booking canceled",
		zap.String("booking_id", bookingID),
		zap.String("session_id", booking.SessionID),
		zap.String("student_id", booking.StudentID),
	)
	return nil
}

// List returns bookings, optionally filtered by student
func (s *BookingService) List(ctx context.Context, studentID string) ([]*model.Booking, error) {
	if studentID != "" {
		return s.bookings.ListByStudent(ctx, studentID)
	}
	return s.bookings.List(ctx)
}
