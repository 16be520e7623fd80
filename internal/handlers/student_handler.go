package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/services"
)

type rosterApplicationService interface {
	AddStudent(ctx context.Context, accountID int64, name string) (*models.Student, error)
	ListStudents(ctx context.Context, accountID int64) ([]models.Student, error)
	RemoveStudent(ctx context.Context, accountID, studentID int64) error
}

type StudentHandler struct {
	service rosterApplicationService
}

func NewStudentHandler(service *services.RosterService) *StudentHandler {
	return &StudentHandler{service: service}
}

type createStudentRequest struct {
	Name string `json:"name"`
}

func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	accountID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	student, err := h.service.AddStudent(c.Context(), accountID, req.Name)
	if err != nil {
		return mapStudentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"student": student})
}

func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	accountID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	students, err := h.service.ListStudents(c.Context(), accountID)
	if err != nil {
		return mapStudentError(c, err)
	}

	return c.JSON(fiber.Map{"students": students})
}

func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	accountID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	studentID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	if err := h.service.RemoveStudent(c.Context(), accountID, studentID); err != nil {
		return mapStudentError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": true})
}

func mapStudentError(c *fiber.Ctx, err error) error {
	var quotaErr *services.QuotaExceededError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &quotaErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "Student limit reached for the current plan",
			"current": quotaErr.Current,
			"max":     quotaErr.Max,
		})
	case errors.Is(err, services.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	default:
		// ErrCodeExhausted lands here too: it is a system fault, not an
		// outcome the caller can act on.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process student request"})
	}
}
