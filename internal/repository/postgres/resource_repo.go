package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorhub/internal/model"
)

type ResourceRepo struct {
	pool *pgxpool.Pool
}

const resourceColumns = `id, title, course_code, session_id, type, url, uploader_id, created_at`

func (r *ResourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	var resource model.Resource
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&resource.ID,
		&resource.Title,
		&resource.CourseCode,
		&resource.SessionID,
		&resource.Type,
		&resource.URL,
		&resource.UploaderID,
		&resource.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource by id: %w", err)
	}
	return &resource, nil
}

func (r *ResourceRepo) List(ctx context.Context) ([]*model.Resource, error) {
	return r.list(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY created_at DESC`)
}

func (r *ResourceRepo) ListByCourse(ctx context.Context, courseCode string) ([]*model.Resource, error) {
	return r.list(ctx, `SELECT `+resourceColumns+` FROM resources WHERE course_code = $1 ORDER BY created_at DESC`, courseCode)
}

func (r *ResourceRepo) list(ctx context.Context, query string, args ...any) ([]*model.Resource, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var resources []*model.Resource
	for rows.Next() {
		var resource model.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.Title,
			&resource.CourseCode,
			&resource.SessionID,
			&resource.Type,
			&resource.URL,
			&resource.UploaderID,
			&resource.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		resources = append(resources, &resource)
	}
	return resources, nil
}

func (r *ResourceRepo) Create(ctx context.Context, resource *model.Resource) error {
	query := `
		INSERT INTO resources (id, title, course_code, session_id, type, url, uploader_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		resource.ID,
		resource.Title,
		resource.CourseCode,
		resource.SessionID,
		resource.Type,
		resource.URL,
		resource.UploaderID,
		resource.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

func (r *ResourceRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete resources by session: %w", err)
	}
	return nil
}
