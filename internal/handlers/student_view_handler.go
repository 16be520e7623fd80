package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/services"
)

type studentViewService interface {
	StudentView(ctx context.Context, code string) (*models.StudentView, error)
}

// StudentViewHandler serves the unauthenticated capability-code endpoint.
// Possession of the code is the whole authorization; there is no identity to
// check and an unknown code is always a plain 404.
type StudentViewHandler struct {
	service studentViewService
}

func NewStudentViewHandler(service *services.WorkoutService) *StudentViewHandler {
	return &StudentViewHandler{service: service}
}

func (h *StudentViewHandler) Get(c *fiber.Ctx) error {
	view, err := h.service.StudentView(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown access code"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load student view"})
	}

	return c.JSON(view)
}
