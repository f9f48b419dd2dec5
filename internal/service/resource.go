package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// ResourceService manages learning materials and their access logs.
type ResourceService struct {
	mu            *sync.Mutex
	resources     repository.ResourceRepository
	accessLogs    repository.AccessLogRepository
	sessions      repository.SessionRepository
	notifications *NotificationService
	logger        *zap.Logger
}

type AddResourceInput struct {
	Title      string
	CourseCode string
	SessionID  string
	Type       string
	URL        string
	UploaderID string
}

// Add stores the resource and, when it is scoped to a session, notifies
// every attendee of that session.
func (s *ResourceService) Add(ctx context.Context, in AddResourceInput) (*model.Resource, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var session *model.Session
	if in.SessionID != "" {
		var err error
		session, err = s.sessions.GetByID(ctx, in.SessionID)
		if err != nil {
			return nil, apperr.Storage(err, "failed to load session")
		}
		if session == nil {
			return nil, apperr.NotFound("session %s not found", in.SessionID)
		}
	}

	resource := &model.Resource{
		ID:         uuid.NewString(),
		Title:      in.Title,
		CourseCode: in.CourseCode,
		SessionID:  in.SessionID,
		Type:       in.Type,
		URL:        in.URL,
		UploaderID: in.UploaderID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, apperr.Storage(err, "failed to save resource")
	}

	if session != nil {
		for _, attendee := range session.Attendees {
			if err := s.notifications.emit(ctx, attendee, fmt.Sprintf("New resource %s added for session %s", resource.Title, session.ID)); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Info("Resource added",
		zap.String("resource_id", resource.ID),
		zap.String("session_id", in.SessionID),
		zap.String("uploader_id", in.UploaderID),
	)
	return resource, nil
}

// List returns resources, optionally filtered by course code
func (s *ResourceService) List(ctx context.Context, courseCode string) ([]*model.Resource, error) {
	if courseCode != "" {
		return s.resources.ListByCourse(ctx, courseCode)
	}
	return s.resources.List(ctx)
}

// Stream records an access log entry and returns the resource for the
// transport to serve (or simulate)
func (s *ResourceService) Stream(ctx context.Context, id string) (*model.Resource, error) {
	resource, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err, "failed to load resource")
	}
	if resource == nil {
		return nil, apperr.NotFound("resource %s not found", id)
	}

	if err := s.LogAccess(ctx, id); err != nil {
		return nil, err
	}
	return resource, nil
}

// LogAccess appends one access log row for the resource
func (s *ResourceService) LogAccess(ctx context.Context, resourceID string) error {
	if resourceID == "" {
		return apperr.Validation("resourceId required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := &model.AccessLog{
		ID:         uuid.NewString(),
		ResourceID: resourceID,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.accessLogs.Create(ctx, log); err != nil {
		return apperr.Storage(err, "failed to save access log")
	}
	return nil
}

// Logs returns access logs, optionally filtered by resource
func (s *ResourceService) Logs(ctx context.Context, resourceID string) ([]*model.AccessLog, error) {
	if resourceID != "" {
		return s.accessLogs.ListByResource(ctx, resourceID)
	}
	return s.accessLogs.List(ctx)
}
