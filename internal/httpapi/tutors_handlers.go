package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"tutorhub/internal/apperr"
	"tutorhub/internal/model"
	"tutorhub/internal/render"
	"tutorhub/internal/service"
)

func (s *Server) handleListTutors(c *fiber.Ctx) error {
	tutors, err := s.services.Tutors.List(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(tutors)
}

func (s *Server) handleGetTutor(c *fiber.Ctx) error {
	profile, err := s.services.Tutors.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(profile)
}

func (s *Server) handleSearchTutors(c *fiber.Ctx) error {
	query := service.SearchQuery{
		Q:           c.Query("q"),
		Course:      c.Query("course"),
		SessionType: c.Query("sessionType"),
		DayOfWeek:   c.Query("dayOfWeek"),
		Start:       c.Query("start"),
		End:         c.Query("end"),
		Limit:       c.QueryInt("limit"),
	}

	results, err := s.services.Search.Search(c.Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	if results == nil {
		results = []service.RankedTutor{}
	}
	return c.JSON(results)
}

// slotDTO accepts either clock strings ("09:00") or raw minute values
type slotDTO struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartMinute *int   `json:"startMinute"`
	EndMinute   *int   `json:"endMinute"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

func (d slotDTO) toSlot(index int) (model.AvailabilitySlot, error) {
	slot := model.AvailabilitySlot{DayOfWeek: d.DayOfWeek, StartMinute: -1, EndMinute: -1}

	switch {
	case d.Start != "":
		minutes, ok := service.ParseClock(d.Start)
		if !ok {
			return slot, apperr.Validation("availability slot %d: start %q is not HH:MM", index, d.Start)
		}
		slot.StartMinute = minutes
	case d.StartMinute != nil:
		slot.StartMinute = *d.StartMinute
	}

	switch {
	case d.End != "":
		minutes, ok := service.ParseClock(d.End)
		if !ok {
			return slot, apperr.Validation("availability slot %d: end %q is not HH:MM", index, d.End)
		}
		slot.EndMinute = minutes
	case d.EndMinute != nil:
		slot.EndMinute = *d.EndMinute
	}

	return slot, nil
}

type updateTutorRequest struct {
	Bio          *string   `json:"bio"`
	Expertise    []string  `json:"expertise"`
	SessionTypes []string  `json:"sessionTypes"`
	Availability []slotDTO `json:"availability"`
}

func (s *Server) handleUpdateTutor(c *fiber.Ctx) error {
	var req updateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	in := service.UpdateTutorInput{
		Bio:          req.Bio,
		Expertise:    req.Expertise,
		SessionTypes: req.SessionTypes,
	}
	if req.Availability != nil {
		slots := make([]model.AvailabilitySlot, 0, len(req.Availability))
		for i, dto := range req.Availability {
			slot, err := dto.toSlot(i)
			if err != nil {
				return s.fail(c, err)
			}
			slots = append(slots, slot)
		}
		in.Availability = slots
	}

	tutor, err := s.services.Tutors.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(tutor)
}

func (s *Server) handleTutorAvailabilityImage(c *fiber.Ctx) error {
	tutor, err := s.services.Tutors.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	png, err := render.WeekImage(tutor)
	if err != nil {
		return s.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
