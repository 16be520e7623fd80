package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/services"
)

type workoutApplicationService interface {
	CreateWorkout(ctx context.Context, accountID int64, input services.CreateWorkoutInput) (*models.WorkoutDetail, error)
	ListWorkouts(ctx context.Context, accountID int64) ([]models.ResolvedWorkout, error)
	GetWorkout(ctx context.Context, accountID, workoutID int64) (*models.WorkoutDetail, error)
	DeleteWorkout(ctx context.Context, accountID, workoutID int64) error
}

type WorkoutHandler struct {
	service workoutApplicationService
}

func NewWorkoutHandler(service *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

type exercisePayload struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   string  `json:"reps"`
	Weight *string `json:"weight"`
	Rest   *string `json:"rest"`
	Notes  *string `json:"notes"`
}

type createWorkoutRequest struct {
	StudentID   int64             `json:"student_id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Exercises   []exercisePayload `json:"exercises"`
}

func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	accountID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	exercises := make([]services.ExerciseInput, 0, len(req.Exercises))
	for _, item := range req.Exercises {
		exercises = append(exercises, services.ExerciseInput{
			Name:   item.Name,
			Sets:   item.Sets,
			Reps:   item.Reps,
			Weight: item.Weight,
			Rest:   item.Rest,
			Notes:  item.Notes,
		})
	}

	workout, err := h.service.CreateWorkout(c.Context(), accountID, services.CreateWorkoutInput{
		StudentID:   req.StudentID,
		Name:        req.Name,
		Description: req.Description,
		Exercises:   exercises,
	})
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	accountID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workouts, err := h.service.ListWorkouts(c.Context(), accountID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"workouts": workouts})
}

func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	accountID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	workout, err := h.service.GetWorkout(c.Context(), accountID, workoutID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	accountID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	if err := h.service.DeleteWorkout(c.Context(), accountID, workoutID); err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": true})
}

func mapWorkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
	case errors.Is(err, services.ErrCompositionFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save workout"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process workout request"})
	}
}
