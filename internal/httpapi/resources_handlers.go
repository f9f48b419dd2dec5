package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

func (s *Server) handleListResources(c *fiber.Ctx) error {
	resources, err := s.services.Resources.List(c.Context(), c.Query("courseCode"))
	if err != nil {
		return s.fail(c, err)
	}
	if resources == nil {
		resources = []*model.Resource{}
	}
	return c.JSON(resources)
}

type addResourceRequest struct {
	Title      string `json:"title" validate:"required"`
	CourseCode string `json:"courseCode"`
	SessionID  string `json:"sessionId"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	UploaderID string `json:"uploaderId" validate:"required"`
}

func (s *Server) handleAddResource(c *fiber.Ctx) error {
	var req addResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	resource, err := s.services.Resources.Add(c.Context(), service.AddResourceInput{
		Title:      req.Title,
		CourseCode: req.CourseCode,
		SessionID:  req.SessionID,
		Type:       req.Type,
		URL:        req.URL,
		UploaderID: req.UploaderID,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(resource)
}

// File storage is out of scope; streaming records the access and returns
// the simulated-stream payload the original server used
func (s *Server) handleStreamResource(c *fiber.Ctx) error {
	resource, err := s.services.Resources.Stream(c.Context(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Simulated stream for resource %s", resource.ID),
		"url":     resource.URL,
	})
}

func (s *Server) handleListLogs(c *fiber.Ctx) error {
	logs, err := s.services.Resources.Logs(c.Context(), c.Query("resourceId"))
	if err != nil {
		return s.fail(c, err)
	}
	if logs == nil {
		logs = []*model.AccessLog{}
	}
	return c.JSON(logs)
}

type addLogRequest struct {
	ResourceID string `json:"resourceId" validate:"required"`
}

func (s *Server) handleAddLog(c *fiber.Ctx) error {
	var req addLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	if err := s.services.Resources.LogAccess(c.Context(), req.ResourceID); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) handleListNotifications(c *fiber.Ctx) error {
	notifications, err := s.services.Notifications.ListForUser(c.Context(), c.Query("userId"))
	if err != nil {
		return s.fail(c, err)
	}
	if notifications == nil {
		notifications = []*model.Notification{}
	}
	return c.JSON(notifications)
}

type clearNotificationsRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (s *Server) handleClearNotifications(c *fiber.Ctx) error {
	var req clearNotificationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	if err := s.services.Notifications.Clear(c.Context(), req.UserID); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
