package repository

import (
	"context"

	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
)

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, password_hash, plan_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, account.Name, account.Email, account.PasswordHash, account.PlanID).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, name, email, password_hash, plan_id, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	var account models.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.PlanID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `
		SELECT id, name, email, password_hash, plan_id, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	var account models.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.PlanID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetPlanLimit returns the account's student limit, nil for unlimited plans.
// pgx.ErrNoRows means the account does not exist.
func (r *AccountRepository) GetPlanLimit(ctx context.Context, accountID int64) (*int64, error) {
	query := `
		SELECT p.max_students
		FROM accounts a
		JOIN plans p ON p.id = a.plan_id
		WHERE a.id = $1
	`
	var maxStudents *int64
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&maxStudents); err != nil {
		return nil, err
	}
	return maxStudents, nil
}

// UpdatePlan moves the account to another plan. Existing students are never
// touched; a lower limit only blocks future admissions.
func (r *AccountRepository) UpdatePlan(ctx context.Context, accountID, planID int64) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET plan_id = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, password_hash, plan_id, created_at, updated_at
	`
	var account models.Account
	err := r.db.QueryRow(ctx, query, accountID, planID).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.PlanID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
