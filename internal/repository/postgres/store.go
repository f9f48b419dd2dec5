// Package postgres implements the repository contracts over a pgx pool.
// Selected at startup when DB_DSN is configured; schema lives in
// migrations/ and is applied by the goose migrator.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/repository"
)

type Store struct {
	pool *pgxpool.Pool
}

func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:         &UserRepo{pool: s.pool},
		Tutors:        &TutorRepo{pool: s.pool},
		Sessions:      &SessionRepo{pool: s.pool},
		Bookings:      &BookingRepo{pool: s.pool},
		Feedback:      &FeedbackRepo{pool: s.pool},
		Notifications: &NotificationRepo{pool: s.pool},
		Resources:     &ResourceRepo{pool: s.pool},
		AccessLogs:    &AccessLogRepo{pool: s.pool},
	}
}
