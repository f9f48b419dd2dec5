package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=student tutor"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	user, err := s.services.Users.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(user.Public())
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	user, token, err := s.services.Users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "user": user.Public()})
}

func (s *Server) handleListUsers(c *fiber.Ctx) error {
	users, err := s.services.Users.List(c.Context())
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]model.User, 0, len(users))
	for _, user := range users {
		out = append(out, user.Public())
	}
	return c.JSON(out)
}
