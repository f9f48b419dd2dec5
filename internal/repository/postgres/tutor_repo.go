package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/model"
)

type TutorRepo struct {
	pool *pgxpool.Pool
}

// Availability is stored as jsonb; expertise and session types as text[]
func scanTutor(row pgx.Row) (*model.Tutor, error) {
	var tutor model.Tutor
	var availability []byte
	err := row.Scan(
		&tutor.ID,
		&tutor.Name,
		&tutor.Email,
		&tutor.Bio,
		&tutor.Expertise,
		&tutor.SessionTypes,
		&availability,
		&tutor.AverageRating,
		&tutor.RatingCount,
	)
	if err != nil {
		return nil, err
	}
	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &tutor.Availability); err != nil {
			return nil, fmt.Errorf("decode availability: %w", err)
		}
	}
	return &tutor, nil
}

const tutorColumns = `id, name, email, bio, expertise, session_types, availability, average_rating, rating_count`

func (r *TutorRepo) GetByID(ctx context.Context, id string) (*model.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutors WHERE id = $1`

	tutor, err := scanTutor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tutor by id: %w", err)
	}
	return tutor, nil
}

func (r *TutorRepo) List(ctx context.Context) ([]*model.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutors ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*model.Tutor
	for rows.Next() {
		tutor, err := scanTutor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, tutor)
	}
	return tutors, nil
}

func (r *TutorRepo) Create(ctx context.Context, tutor *model.Tutor) error {
	availability, err := json.Marshal(tutor.Availability)
	if err != nil {
		return fmt.Errorf("encode availability: %w", err)
	}

	query := `
		INSERT INTO tutors (id, name, email, bio, expertise, session_types, availability, average_rating, rating_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		tutor.ID,
		tutor.Name,
		tutor.Email,
		tutor.Bio,
		tutor.Expertise,
		tutor.SessionTypes,
		availability,
		tutor.AverageRating,
		tutor.RatingCount,
	)
	if err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}
	return nil
}

func (r *TutorRepo) Save(ctx context.Context, tutor *model.Tutor) error {
	availability, err := json.Marshal(tutor.Availability)
	if err != nil {
		return fmt.Errorf("encode availability: %w", err)
	}

	query := `
		INSERT INTO tutors (id, name, email, bio, expertise, session_types, availability, average_rating, rating_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			bio = EXCLUDED.bio,
			expertise = EXCLUDED.expertise,
			session_types = EXCLUDED.session_types,
			availability = EXCLUDED.availability,
			average_rating = EXCLUDED.average_rating,
			rating_count = EXCLUDED.rating_count
	`
	_, err = r.pool.Exec(ctx, query,
		tutor.ID,
		tutor.Name,
		tutor.Email,
		tutor.Bio,
		tutor.Expertise,
		tutor.SessionTypes,
		availability,
		tutor.AverageRating,
		tutor.RatingCount,
	)
	if err != nil {
		return fmt.Errorf("save tutor: %w", err)
	}
	return nil
}
