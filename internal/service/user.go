package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// UserService handles registration and login. Registering as a tutor also
// creates the empty public tutor profile under the same id.
type UserService struct {
	mu     *sync.Mutex
	users  repository.UserRepository
	tutors repository.TutorRepository
	logger *zap.Logger
}

type RegisterInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name required")
	}
	if in.Email == "" {
		return nil, apperr.Validation("email required")
	}
	if in.Role != model.RoleStudent && in.Role != model.RoleTutor {
		return nil, apperr.Validation("role must be %s or %s", model.RoleStudent, model.RoleTutor)
	}
	if in.Password == "" {
		return nil, apperr.Validation("password required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage(err, "failed to hash password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Storage(err, "failed to check existing user")
	}
	if existing != nil {
		return nil, apperr.Conflict("email %s already registered", in.Email)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Email:          in.Email,
		Role:           in.Role,
		HashedPassword: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Storage(err, "failed to save user")
	}

	if user.IsTutor() {
		tutor := &model.Tutor{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Expertise:    []string{},
			SessionTypes: []string{},
			Availability: []model.AvailabilitySlot{},
		}
		if err := s.tutors.Create(ctx, tutor); err != nil {
			return nil, apperr.Storage(err, "failed to save tutor profile")
		}
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)
	return user, nil
}

// Login verifies credentials and returns the user plus an opaque token.
// Token issuance here is deliberately minimal; a real deployment puts a
// proper identity provider in front.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" {
		return nil, "", apperr.Validation("email required")
	}
	if password == "" {
		return nil, "", apperr.Validation("password required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Storage(err, "failed to load user")
	}
	if user == nil {
		return nil, "", apperr.Forbidden("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, "", apperr.Forbidden("invalid credentials")
	}

	token := uuid.NewString()
	return user, token, nil
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.List(ctx)
}
