package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/model"
)

type SessionRepo struct {
	pool *pgxpool.Pool
}

const sessionColumns = `id, tutor_id, title, course_code, start_at, end_at, location, status, attendees, created_at`

func scanSession(row pgx.Row) (*model.Session, error) {
	var session model.Session
	err := row.Scan(
		&session.ID,
		&session.TutorID,
		&session.Title,
		&session.CourseCode,
		&session.Start,
		&session.End,
		&session.Location,
		&session.Status,
		&session.Attendees,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	session, err := scanSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by id: %w", err)
	}
	return session, nil
}

func (r *SessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *SessionRepo) Create(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO sessions (id, tutor_id, title, course_code, start_at, end_at, location, status, attendees, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.TutorID,
		session.Title,
		session.CourseCode,
		session.Start,
		session.End,
		session.Location,
		session.Status,
		session.Attendees,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Save(ctx context.Context, session *model.Session) error {
	return r.save(ctx, r.pool, session)
}

// execer is satisfied by both the pool and a transaction
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SaveAll upserts the batch inside one transaction so the sweep's persist
// is a single all-or-nothing write
func (r *SessionRepo) SaveAll(ctx context.Context, sessions []*model.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, session := range sessions {
		if err := r.save(ctx, tx, session); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *SessionRepo) save(ctx context.Context, db execer, session *model.Session) error {
	query := `
		INSERT INTO sessions (id, tutor_id, title, course_code, start_at, end_at, location, status, attendees, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			tutor_id = EXCLUDED.tutor_id,
			title = EXCLUDED.title,
			course_code = EXCLUDED.course_code,
			start_at = EXCLUDED.start_at,
			end_at = EXCLUDED.end_at,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			attendees = EXCLUDED.attendees
	`
	_, err := db.Exec(ctx, query,
		session.ID,
		session.TutorID,
		session.Title,
		session.CourseCode,
		session.Start,
		session.End,
		session.Location,
		session.Status,
		session.Attendees,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found")
	}
	return nil
}
