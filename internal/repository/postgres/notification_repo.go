package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/model"
)

type NotificationRepo struct {
	pool *pgxpool.Pool
}

const notificationColumns = `id, user_id, message, created_at`

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *NotificationRepo) List(ctx context.Context) ([]*model.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY created_at DESC`)
}

func (r *NotificationRepo) list(ctx context.Context, query string, args ...any) ([]*model.Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*model.Notification
	for rows.Next() {
		var notification model.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Message,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &notification)
	}
	return list, nil
}

func (r *NotificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, message, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		notification.ID,
		notification.UserID,
		notification.Message,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) ClearByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}
