package service

import (
	"context"
	"math"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// RatingAggregator recomputes a tutor's cached averageRating/ratingCount
// from the full feedback set. The cache is never incremented in place: a
// full recompute keeps it trivially equal to the aggregate at this scale.
type RatingAggregator struct {
	feedback repository.FeedbackRepository
	tutors   repository.TutorRepository
}

// Recompute refreshes and persists the tutor's rating cache. Callers must
// already hold the engine lock.
func (a *RatingAggregator) Recompute(ctx context.Context, tutorID string) (*model.Tutor, error) {
	tutor, err := a.tutors.GetByID(ctx, tutorID)
	if err != nil {
		return nil, apperr.Storage(err, "failed to load tutor %s", tutorID)
	}
	if tutor == nil {
		// Feedback can reference a tutor profile that was never created
		// (pre-marketplace data); nothing to cache then.
		return nil, nil
	}

	average, count, err := a.Aggregate(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	tutor.AverageRating = average
	tutor.RatingCount = count
	if err := a.tutors.Save(ctx, tutor); err != nil {
		return nil, apperr.Storage(err, "failed to save tutor rating")
	}
	return tutor, nil
}

// Aggregate computes the arithmetic mean (rounded to 2 decimal places) and
// count over all feedback for the tutor. Zero feedback means average 0.
func (a *RatingAggregator) Aggregate(ctx context.Context, tutorID string) (average float64, count int, err error) {
	list, err := a.feedback.ListByTutor(ctx, tutorID)
	if err != nil {
		return 0, 0, apperr.Storage(err, "failed to load feedback for tutor %s", tutorID)
	}
	if len(list) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for _, f := range list {
		sum += f.Rating
	}
	average = float64(sum) / float64(len(list))
	average = math.Round(average*100) / 100
	return average, len(list), nil
}
