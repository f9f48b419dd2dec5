package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/model"
)

type BookingRepo struct {
	pool *pgxpool.Pool
}

const bookingColumns = `id, session_id, student_id, created_at`

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking model.Booking
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.SessionID,
		&booking.StudentID,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
}

func (r *BookingRepo) ListBySession(ctx context.Context, sessionID string) ([]*model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE session_id = $1 ORDER BY created_at DESC`, sessionID)
}

func (r *BookingRepo) ListByStudent(ctx context.Context, studentID string) ([]*model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE student_id = $1 ORDER BY created_at DESC`, studentID)
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]*model.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var booking model.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.SessionID,
			&booking.StudentID,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}
	return bookings, nil
}

func (r *BookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (id, session_id, student_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.SessionID,
		booking.StudentID,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking not found")
	}
	return nil
}

func (r *BookingRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete bookings by session: %w", err)
	}
	return nil
}
