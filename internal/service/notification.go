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

// NotificationService appends notifications on state-changing events and
// serves the per-user inbox. When a Pusher is configured and the recipient
// has a Telegram chat id, the message is also pushed there best-effort.
type NotificationService struct {
	mu     *sync.Mutex
	repo   repository.NotificationRepository
	users  repository.UserRepository
	pusher Pusher
	logger *zap.Logger
}

// Emit appends one notification for the recipient
func (s *NotificationService) Emit(ctx context.Context, userID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emit(ctx, userID, message)
}

// emit is the lock-free path for services already inside the engine lock
func (s *NotificationService) emit(ctx context.Context, userID, message string) error {
	notification := &model.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return apperr.Storage(err, "failed to save notification")
	}

	s.push(ctx, userID, message)

	s.logger.Info("Notification emitted",
		zap.String("user_id", userID),
		zap.String("message", message),
	)
	return nil
}

// push forwards the message to Telegram when possible. Failures are logged
// only: the persisted notification is the source of truth.
func (s *NotificationService) push(ctx context.Context, userID, message string) {
	if s.pusher == nil {
		return
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil || user.TelegramChatID == nil {
		return
	}
	if err := s.pusher.Push(ctx, *user.TelegramChatID, message); err != nil {
		s.logger.Warn("Telegram push failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

// ListForUser returns the user's notifications; empty userID returns all
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	if userID == "" {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list notifications: %w", err)
		}
		return list, nil
	}
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications by user: %w", err)
	}
	return list, nil
}

// Clear bulk-deletes every notification for the user
func (s *NotificationService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.Validation("userId required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearByUser(ctx, userID); err != nil {
		return apperr.Storage(err, "failed to clear notifications")
	}

	s.logger.Info("Notifications cleared", zap.String("user_id", userID))
	return nil
}
