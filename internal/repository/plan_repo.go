package repository

import (
	"context"

	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) List(ctx context.Context) ([]models.Plan, error) {
	query := `
		SELECT id, name, max_students, price, created_at
		FROM plans
		ORDER BY price ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.Plan, 0)
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.MaxStudents, &plan.Price, &plan.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	query := `
		SELECT id, name, max_students, price, created_at
		FROM plans
		WHERE id = $1
	`
	var plan models.Plan
	err := r.db.QueryRow(ctx, query, id).
		Scan(&plan.ID, &plan.Name, &plan.MaxStudents, &plan.Price, &plan.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetDefault returns the plan new registrations start on: the cheapest tier.
func (r *PlanRepository) GetDefault(ctx context.Context) (*models.Plan, error) {
	query := `
		SELECT id, name, max_students, price, created_at
		FROM plans
		ORDER BY price ASC, id ASC
		LIMIT 1
	`
	var plan models.Plan
	err := r.db.QueryRow(ctx, query).
		Scan(&plan.ID, &plan.Name, &plan.MaxStudents, &plan.Price, &plan.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
