package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/model"
)

type AccessLogRepo struct {
	pool *pgxpool.Pool
}

func (r *AccessLogRepo) List(ctx context.Context) ([]*model.AccessLog, error) {
	return r.list(ctx, `SELECT id, resource_id, ts FROM access_logs ORDER BY ts DESC`)
}

func (r *AccessLogRepo) ListByResource(ctx context.Context, resourceID string) ([]*model.AccessLog, error) {
	return r.list(ctx, `SELECT id, resource_id, ts FROM access_logs WHERE resource_id = $1 ORDER BY ts DESC`, resourceID)
}

func (r *AccessLogRepo) list(ctx context.Context, query string, args ...any) ([]*model.AccessLog, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	defer rows.Close()

	var logs []*model.AccessLog
	for rows.Next() {
		var log model.AccessLog
		if err := rows.Scan(&log.ID, &log.ResourceID, &log.Timestamp); err != nil {
			return nil, fmt.Errorf("scan access log: %w", err)
		}
		logs = append(logs, &log)
	}
	return logs, nil
}

func (r *AccessLogRepo) Create(ctx context.Context, log *model.AccessLog) error {
	query := `INSERT INTO access_logs (id, resource_id, ts) VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, log.ID, log.ResourceID, log.Timestamp)
	if err != nil {
		return fmt.Errorf("create access log: %w", err)
	}
	return nil
}
