package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// TutorService maintains tutor profiles: expertise, bio, offered session
// types and the weekly availability grid.
type TutorService struct {
	mu       *sync.Mutex
	tutors   repository.TutorRepository
	sessions repository.SessionRepository
	ratings  *RatingAggregator
	logger   *zap.Logger
}

// UpdateTutorInput carries the PATCH fields; nil means "leave unchanged"
type UpdateTutorInput struct {
	Bio          *string
	Expertise    []string
	SessionTypes []string
	Availability []model.AvailabilitySlot
}

func (s *TutorService) List(ctx context.Context) ([]*model.Tutor, error) {
	return s.tutors.List(ctx)
}

// TutorProfile is a tutor plus their offered sessions
type TutorProfile struct {
	model.Tutor
	Sessions []*model.Session `json:"sessions"`
}

// GetProfile returns the tutor with a freshly recomputed rating cache and
// their session list
func (s *TutorService) GetProfile(ctx context.Context, id string) (*TutorProfile, error) {
	s.mu.Lock()
	tutor, err := s.ratings.Recompute(ctx, id)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, apperr.NotFound("tutor %s not found", id)
	}

	all, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := []*model.Session{}
	for _, session := range all {
		if session.TutorID == id {
			sessions = append(sessions, session)
		}
	}

	return &TutorProfile{Tutor: *tutor, Sessions: sessions}, nil
}

// Update applies the supplied profile fields. Availability goes through slot
// validation plus the duplicate/overlap checks; session types are checked
// against the known enum. Ratings are recomputed before the profile is
// returned.
func (s *TutorService) Update(ctx context.Context, id string, in UpdateTutorInput) (*model.Tutor, error) {
	if in.Availability != nil {
		if err := ValidateSlots(in.Availability); err != nil {
			return nil, err
		}
		if err := CheckSlotConflicts(in.Availability); err != nil {
			return nil, err
		}
	}
	for _, st := range in.SessionTypes {
		if !model.IsValidSessionType(st) {
			return nil, apperr.Validation("unknown session type %q", st)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tutor, err := s.tutors.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err, "failed to load tutor")
	}
	if tutor == nil {
		return nil, apperr.NotFound("tutor %s not found", id)
	}

	if in.Bio != nil {
		tutor.Bio = *in.Bio
	}
	if in.Expertise != nil {
		tutor.Expertise = in.Expertise
	}
	if in.SessionTypes != nil {
		tutor.SessionTypes = in.SessionTypes
	}
	if in.Availability != nil {
		tutor.Availability = in.Availability
	}

	if err := s.tutors.Save(ctx, tutor); err != nil {
		return nil, apperr.Storage(err, "failed to save tutor")
	}

	tutor, err = s.ratings.Recompute(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tutor profile updated", zap.String("tutor_id", id))
	return tutor, nil
}

// GetByID returns the raw tutor row
func (s *TutorService) GetByID(ctx context.Context, id string) (*model.Tutor, error) {
	tutor, err := s.tutors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tutor: %w", err)
	}
	if tutor == nil {
		return nil, apperr.NotFound("tutor %s not found", id)
	}
	return tutor, nil
}
