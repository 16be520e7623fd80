package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/repository"
	"github.com/viniciusfeitosaa/gymconnect-sub000/pkg/utils"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrAccountNotFound = errors.New("account not found")
	ErrCodeExhausted   = errors.New("could not allocate a unique access code")
)

const codeIssueAttempts = 5

// Swappable so tests can force a code collision against a real database.
var generateAccessCode = utils.GenerateAccessCode

// QuotaExceededError reports a denied admission. It is an expected outcome,
// carried back to the caller with the roster numbers for display.
type QuotaExceededError struct {
	Current int64 `json:"current"`
	Max     int64 `json:"max"`
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("student quota exceeded: %d of %d slots used", e.Current, e.Max)
}

type studentReader interface {
	ListByAccountID(ctx context.Context, accountID int64) ([]models.Student, error)
	GetByCode(ctx context.Context, code string) (*models.Student, error)
	DeleteOwned(ctx context.Context, id, accountID int64) (bool, error)
}

type RosterService struct {
	db          *pgxpool.Pool
	studentRepo studentReader
}

func NewRosterService(db *pgxpool.Pool, studentRepo *repository.StudentRepository) *RosterService {
	return &RosterService{db: db, studentRepo: studentRepo}
}

// AddStudent admits a new student if the account's plan still has a free
// slot and assigns a fresh access code. Admission check, insert and code
// issue run in one transaction serialized per account, so two concurrent
// adds can never both take the last slot.
func (s *RosterService) AddStudent(ctx context.Context, accountID int64, name string) (*models.Student, error) {
	name = strings.TrimSpace(name)
	if accountID <= 0 || name == "" {
		return nil, ErrInvalidInput
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	student, err := admitStudent(ctx, tx, accountID, name)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return student, nil
}

func admitStudent(ctx context.Context, tx pgx.Tx, accountID int64, name string) (*models.Student, error) {
	accountRepo := repository.NewAccountRepository(tx)
	studentRepo := repository.NewStudentRepository(tx)

	// Serializes admissions per account for the rest of the transaction.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", accountID); err != nil {
		return nil, err
	}

	maxStudents, err := accountRepo.GetPlanLimit(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	count, err := studentRepo.CountByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if maxStudents != nil && count >= *maxStudents {
		return nil, &QuotaExceededError{Current: count, Max: *maxStudents}
	}

	for attempt := 0; attempt < codeIssueAttempts; attempt++ {
		code, err := generateAccessCode()
		if err != nil {
			return nil, err
		}

		student := &models.Student{
			AccountID: accountID,
			Name:      name,
			Code:      code,
		}
		// Each insert attempt runs in a savepoint. A unique-violation
		// aborts only the savepoint, keeping the transaction usable for
		// the retry insert.
		sp, err := tx.Begin(ctx)
		if err != nil {
			return nil, err
		}
		err = repository.NewStudentRepository(sp).Create(ctx, student)
		if err == nil {
			if err := sp.Commit(ctx); err != nil {
				return nil, err
			}
			return student, nil
		}
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return nil, rbErr
		}
		if !isCodeCollision(err) {
			return nil, err
		}
	}

	return nil, ErrCodeExhausted
}

func isCodeCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "code")
}

func (s *RosterService) ListStudents(ctx context.Context, accountID int64) ([]models.Student, error) {
	return s.studentRepo.ListByAccountID(ctx, accountID)
}

// RemoveStudent deletes an owned student. Linked workouts survive with their
// student link cleared; a foreign or unknown id reports pgx.ErrNoRows either
// way.
func (s *RosterService) RemoveStudent(ctx context.Context, accountID, studentID int64) error {
	deleted, err := s.studentRepo.DeleteOwned(ctx, studentID, accountID)
	if err != nil {
		return err
	}
	if !deleted {
		return pgx.ErrNoRows
	}
	return nil
}

// ResolveCode maps an access code to its student. The code itself is the
// authorization; no further identity check happens here. Codes are generated
// uppercase, so lookups normalize case first.
func (s *RosterService) ResolveCode(ctx context.Context, code string) (*models.Student, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, pgx.ErrNoRows
	}
	return s.studentRepo.GetByCode(ctx, code)
}
