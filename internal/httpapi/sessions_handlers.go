package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

func (s *Server) handleListSessions(c *fiber.Ctx) error {
	sessions, err := s.services.Sessions.List(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(sessions)
}

type createSessionRequest struct {
	TutorID    string `json:"tutorId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	CourseCode string `json:"courseCode"`
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
	Location   string `json:"location"`
}

func (s *Server) handleCreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	session, err := s.services.Sessions.Create(c.Context(), service.CreateSessionInput{
		TutorID:    req.TutorID,
		Title:      req.Title,
		CourseCode: req.CourseCode,
		Start:      req.Start,
		End:        req.End,
		Location:   req.Location,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(session)
}

type sessionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleSessionStatus(c *fiber.Ctx) error {
	var req sessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	session, err := s.services.Sessions.ChangeStatus(c.Context(), c.Params("id"), model.SessionStatus(req.Status))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(session)
}

func (s *Server) handleDeleteSession(c *fiber.Ctx) error {
	if err := s.services.Sessions.Delete(c.Context(), c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) handleListBookings(c *fiber.Ctx) error {
	bookings, err := s.services.Bookings.List(c.Context(), c.Query("studentId"))
	if err != nil {
		return s.fail(c, err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return c.JSON(bookings)
}

type createBookingRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
}

func (s *Server) handleCreateBooking(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	booking, err := s.services.Bookings.Book(c.Context(), req.SessionID, req.StudentID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(booking)
}

func (s *Server) handleCancelBooking(c *fiber.Ctx) error {
	if err := s.services.Bookings.Cancel(c.Context(), c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

type submitFeedbackRequest struct {
	SessionID   string `json:"sessionId" validate:"required"`
	TutorID     string `json:"tutorId" validate:"required"`
	StudentID   string `json:"studentId" validate:"required"`
	Rating      int    `json:"rating" validate:"required"`
	Comment     string `json:"comment"`
	IsAnonymous bool   `json:"isAnonymous"`
}

func (s *Server) handleSubmitFeedback(c *fiber.Ctx) error {
	var req submitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.validationFail(c, err)
	}

	feedback, err := s.services.Feedback.Submit(c.Context(), service.SubmitFeedbackInput{
		SessionID:   req.SessionID,
		TutorID:     req.TutorID,
		StudentID:   req.StudentID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(feedback)
}

func (s *Server) handleFeedbackAggregate(c *fiber.Ctx) error {
	aggregate, err := s.services.Feedback.Aggregate(c.Context(), c.Query("tutorId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(aggregate)
}
