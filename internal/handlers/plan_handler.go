package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/repository"
)

type PlanHandler struct {
	accountRepo *repository.AccountRepository
	planRepo    *repository.PlanRepository
}

func NewPlanHandler(accountRepo *repository.AccountRepository, planRepo *repository.PlanRepository) *PlanHandler {
	return &PlanHandler{accountRepo: accountRepo, planRepo: planRepo}
}

func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.planRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load plans"})
	}
	return c.JSON(fiber.Map{"plans": plans})
}

type changePlanRequest struct {
	PlanID int64 `json:"plan_id"`
}

// ChangePlan applies a plan change reported by the billing provider. It never
// removes students: a downgrade below the current roster size only blocks new
// admissions.
func (h *PlanHandler) ChangePlan(c *fiber.Ctx) error {
	actorID, err := parseActorAccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	accountID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid account id"})
	}
	if accountID != actorID {
		// Same response as a missing account, so ids cannot be probed.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}

	var req changePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.PlanID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "plan_id is required"})
	}

	plan, err := h.planRepo.GetByID(c.Context(), req.PlanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load plan"})
	}

	account, err := h.accountRepo.UpdatePlan(c.Context(), accountID, plan.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update plan"})
	}

	return c.JSON(fiber.Map{"account": accountSummary(account, plan)})
}
