package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/model"
)

type FeedbackRepo struct {
	pool *pgxpool.Pool
}

const feedbackColumns = `id, session_id, tutor_id, student_id, rating, comment, is_anonymous, created_at`

func (r *FeedbackRepo) GetBySessionStudent(ctx context.Context, sessionID, studentID string) (*model.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE session_id = $1 AND student_id = $2`

	var feedback model.Feedback
	err := r.pool.QueryRow(ctx, query, sessionID, studentID).Scan(
		&feedback.ID,
		&feedback.SessionID,
		&feedback.TutorID,
		&feedback.StudentID,
		&feedback.Rating,
		&feedback.Comment,
		&feedback.IsAnonymous,
		&feedback.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return &feedback, nil
}

func (r *FeedbackRepo) ListByTutor(ctx context.Context, tutorID string) ([]*model.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE tutor_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, tutorID)
	if err != nil {
		return nil, fmt.Errorf("list feedback by tutor: %w", err)
	}
	defer rows.Close()

	var list []*model.Feedback
	for rows.Next() {
		var feedback model.Feedback
		err := rows.Scan(
			&feedback.ID,
			&feedback.SessionID,
			&feedback.TutorID,
			&feedback.StudentID,
			&feedback.Rating,
			&feedback.Comment,
			&feedback.IsAnonymous,
			&feedback.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, &feedback)
	}
	return list, nil
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	query := `
		INSERT INTO feedback (id, session_id, tutor_id, student_id, rating, comment, is_anonymous, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		feedback.ID,
		feedback.SessionID,
		feedback.TutorID,
		feedback.StudentID,
		feedback.Rating,
		feedback.Comment,
		feedback.IsAnonymous,
		feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete feedback by session: %w", err)
	}
	return nil
}
