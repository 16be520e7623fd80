package repository

import (
	"context"

	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
)

type StudentRepository struct {
	db DBTX
}

func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (account_id, name, code)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, student.AccountID, student.Name, student.Code).
		Scan(&student.ID, &student.CreatedAt)
}

func (r *StudentRepository) CountByAccountID(ctx context.Context, accountID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM students WHERE account_id = $1`
	var count int64
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListByAccountID returns students in creation order, oldest first, with id
// as the tie-breaker. Round-robin resolution depends on this ordering.
func (r *StudentRepository) ListByAccountID(ctx context.Context, accountID int64) ([]models.Student, error) {
	query := `
		SELECT id, account_id, name, code, created_at
		FROM students
		WHERE account_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.AccountID,
			&student.Name,
			&student.Code,
			&student.CreatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *StudentRepository) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	query := `
		SELECT id, account_id, name, code, created_at
		FROM students
		WHERE code = $1
	`
	var student models.Student
	err := r.db.QueryRow(ctx, query, code).Scan(
		&student.ID,
		&student.AccountID,
		&student.Name,
		&student.Code,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetOwned fetches a student only when it belongs to the given account, so a
// miss and a foreign row are indistinguishable to the caller.
func (r *StudentRepository) GetOwned(ctx context.Context, id, accountID int64) (*models.Student, error) {
	query := `
		SELECT id, account_id, name, code, created_at
		FROM students
		WHERE id = $1 AND account_id = $2
	`
	var student models.Student
	err := r.db.QueryRow(ctx, query, id, accountID).Scan(
		&student.ID,
		&student.AccountID,
		&student.Name,
		&student.Code,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) DeleteOwned(ctx context.Context, id, accountID int64) (bool, error) {
	query := `DELETE FROM students WHERE id = $1 AND account_id = $2`
	tag, err := r.db.Exec(ctx, query, id, accountID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
