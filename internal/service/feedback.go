package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// FeedbackService gates feedback submission behind the attendance and
// completion rules, then keeps the tutor rating cache in sync.
type FeedbackService struct {
	mu            *sync.Mutex
	sessions      repository.SessionRepository
	feedback      repository.FeedbackRepository
	ratings       *RatingAggregator
	notifications *NotificationService
	logger        *zap.Logger
}

type SubmitFeedbackInput struct {
	SessionID   string
	TutorID     string
	StudentID   string
	Rating      int
	Comment     string
	IsAnonymous bool
}

// Submit checks, in order: session exists, session completed, student
// attended, no prior feedback for the pair, rating within 1-5. Out-of-range
// ratings are rejected, never clamped.
func (s *FeedbackService) Submit(ctx context.Context, in SubmitFeedbackInput) (*model.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		return nil, apperr.Storage(err, "failed to load session")
	}
	if session == nil {
		return nil, apperr.NotFound("session %s not found", in.SessionID)
	}
	if session.Status != model.SessionStatusCompleted {
		return nil, apperr.InvalidState("feedback requires a completed session, session %s is %s", session.ID, session.Status)
	}
	if !session.HasAttendee(in.StudentID) {
		return nil, apperr.Forbidden("student %s did not attend session %s", in.StudentID, in.SessionID)
	}

	existing, err := s.feedback.GetBySessionStudent(ctx, in.SessionID, in.StudentID)
	if err != nil {
		return nil, apperr.Storage(err, "failed to check existing feedback")
	}
	if existing != nil {
		return nil, apperr.Conflict("feedback already submitted for session %s by student %s", in.SessionID, in.StudentID)
	}

	if in.Rating < model.MinRating || in.Rating > model.MaxRating {
		return nil, apperr.Validation("rating must be an integer between %d and %d", model.MinRating, model.MaxRating)
	}

	feedback := &model.Feedback{
		ID:          uuid.NewString(),
		SessionID:   in.SessionID,
		TutorID:     in.TutorID,
		StudentID:   in.StudentID,
		Rating:      in.Rating,
		Comment:     in.Comment,
		IsAnonymous: in.IsAnonymous,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, apperr.Storage(err, "failed to save feedback")
	}

	if err := s.notifications.emit(ctx, in.TutorID, fmt.Sprintf("You received new feedback for session %s", in.SessionID)); err != nil {
		return nil, err
	}

	if _, err := s.ratings.Recompute(ctx, in.TutorID); err != nil {
		return nil, err
	}

	s.logger.Info("Feedback submitted",
		zap.String("feedback_id", feedback.ID),
		zap.String("session_id", in.SessionID),
		zap.String("tutor_id", in.TutorID),
		zap.Int("rating", in.Rating),
	)
	return feedback, nil
}

// FeedbackAggregate is the public rating summary for one tutor
type FeedbackAggregate struct {
	TutorID string           `json:"tutorId"`
	Average float64          `json:"average"`
	Count   int              `json:"count"`
	Recent  []RecentFeedback `json:"recent"`
}

type RecentFeedback struct {
	Rating      int    `json:"rating"`
	Comment     string `json:"comment,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// Aggregate summarizes a tutor's feedback with the 10 most recent entries,
// newest first
func (s *FeedbackService) Aggregate(ctx context.Context, tutorID string) (*FeedbackAggregate, error) {
	if tutorID == "" {
		return nil, apperr.Validation("tutorId required")
	}

	average, count, err := s.ratings.Aggregate(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	list, err := s.feedback.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, apperr.Storage(err, "failed to load feedback for tutor %s", tutorID)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if len(list) > 10 {
		list = list[:10]
	}

	recent := make([]RecentFeedback, 0, len(list))
	for _, f := range list {
		recent = append(recent, RecentFeedback{
			Rating:      f.Rating,
			Comment:     f.Comment,
			IsAnonymous: f.IsAnonymous,
		})
	}

	return &FeedbackAggregate{
		TutorID: tutorID,
		Average: average,
		Count:   count,
		Recent:  recent,
	}, nil
}
