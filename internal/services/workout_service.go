package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/repository"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	// ErrCompositionFailed marks a workout write that could not complete as a
	// unit. The transaction is rolled back; no partial workout is ever visible.
	ErrCompositionFailed = errors.New("workout composition failed")
)

type workoutStore interface {
	ListByAccountID(ctx context.Context, accountID int64) ([]models.Workout, error)
	GetOwned(ctx context.Context, id, accountID int64) (*models.Workout, error)
	ListExercises(ctx context.Context, workoutID int64) ([]models.Exercise, error)
	ListExercisesByWorkoutIDs(ctx context.Context, workoutIDs []int64) (map[int64][]models.Exercise, error)
	DeleteOwned(ctx context.Context, id, accountID int64) (bool, error)
}

type rosterReader interface {
	ListByAccountID(ctx context.Context, accountID int64) ([]models.Student, error)
	GetByCode(ctx context.Context, code string) (*models.Student, error)
}

type WorkoutService struct {
	db          *pgxpool.Pool
	workoutRepo workoutStore
	studentRepo rosterReader
}

func NewWorkoutService(
	db *pgxpool.Pool,
	workoutRepo *repository.WorkoutRepository,
	studentRepo *repository.StudentRepository,
) *WorkoutService {
	return &WorkoutService{
		db:          db,
		workoutRepo: workoutRepo,
		studentRepo: studentRepo,
	}
}

type ExerciseInput struct {
	Name   string
	Sets   int
	Reps   string
	Weight *string
	Rest   *string
	Notes  *string
}

type CreateWorkoutInput struct {
	StudentID   int64
	Name        string
	Description *string
	Exercises   []ExerciseInput
}

// CreateWorkout writes the workout and all its exercises as one unit. Any
// failure rolls the whole thing back; readers never observe a workout with
// only part of its exercise list.
func (s *WorkoutService) CreateWorkout(
	ctx context.Context,
	accountID int64,
	input CreateWorkoutInput,
) (*models.WorkoutDetail, error) {
	input.Name = strings.TrimSpace(input.Name)
	if accountID <= 0 || input.StudentID <= 0 || input.Name == "" || len(input.Exercises) == 0 {
		return nil, ErrInvalidInput
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			input.Description = nil
		} else {
			input.Description = &trimmed
		}
	}
	for i := range input.Exercises {
		input.Exercises[i].Name = strings.TrimSpace(input.Exercises[i].Name)
		input.Exercises[i].Reps = strings.TrimSpace(input.Exercises[i].Reps)
		if input.Exercises[i].Name == "" || input.Exercises[i].Sets <= 0 || input.Exercises[i].Reps == "" {
			return nil, ErrInvalidInput
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	detail, err := composeWorkout(ctx, tx, accountID, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Join(ErrCompositionFailed, err)
	}

	return detail, nil
}

func composeWorkout(
	ctx context.Context,
	tx repository.DBTX,
	accountID int64,
	input CreateWorkoutInput,
) (*models.WorkoutDetail, error) {
	studentRepo := repository.NewStudentRepository(tx)
	workoutRepo := repository.NewWorkoutRepository(tx)

	student, err := studentRepo.GetOwned(ctx, input.StudentID, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	workout := &models.Workout{
		AccountID:   accountID,
		StudentID:   &student.ID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := workoutRepo.Create(ctx, workout); err != nil {
		return nil, errors.Join(ErrCompositionFailed, err)
	}

	exercises := make([]models.Exercise, 0, len(input.Exercises))
	for i, item := range input.Exercises {
		exercise := models.Exercise{
			WorkoutID: workout.ID,
			Position:  i + 1,
			Name:      item.Name,
			Sets:      item.Sets,
			Reps:      item.Reps,
			Weight:    item.Weight,
			Rest:      item.Rest,
			Notes:     item.Notes,
		}
		if err := workoutRepo.InsertExercise(ctx, &exercise); err != nil {
			return nil, errors.Join(ErrCompositionFailed, err)
		}
		exercises = append(exercises, exercise)
	}

	return &models.WorkoutDetail{Workout: *workout, Exercises: exercises}, nil
}

// ListWorkouts returns the account's workouts with exercises and ownership
// resolution. Linked workouts resolve directly; legacy rows without a stored
// link fall back to the round-robin display assignment.
func (s *WorkoutService) ListWorkouts(ctx context.Context, accountID int64) ([]models.ResolvedWorkout, error) {
	workouts, err := s.workoutRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	details, err := s.attachExercises(ctx, workouts)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return ResolveOwnership(students, details), nil
}

func (s *WorkoutService) GetWorkout(ctx context.Context, accountID, workoutID int64) (*models.WorkoutDetail, error) {
	workout, err := s.workoutRepo.GetOwned(ctx, workoutID, accountID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.workoutRepo.ListExercises(ctx, workout.ID)
	if err != nil {
		return nil, err
	}

	return &models.WorkoutDetail{Workout: *workout, Exercises: exercises}, nil
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, accountID, workoutID int64) error {
	deleted, err := s.workoutRepo.DeleteOwned(ctx, workoutID, accountID)
	if err != nil {
		return err
	}
	if !deleted {
		return pgx.ErrNoRows
	}
	return nil
}

// StudentView serves the unauthenticated capability-code read: the student
// plus every workout resolved to them, linked or round-robin. An unknown
// code is indistinguishable from a deleted student.
func (s *WorkoutService) StudentView(ctx context.Context, code string) (*models.StudentView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, pgx.ErrNoRows
	}

	student, err := s.studentRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.ListByAccountID(ctx, student.AccountID)
	if err != nil {
		return nil, err
	}

	details, err := s.attachExercises(ctx, workouts)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.ListByAccountID(ctx, student.AccountID)
	if err != nil {
		return nil, err
	}

	resolved := ResolveOwnership(students, details)
	view := &models.StudentView{Student: *student, Workouts: make([]models.ResolvedWorkout, 0)}
	for _, workout := range resolved {
		if workout.Student != nil && workout.Student.ID == student.ID {
			view.Workouts = append(view.Workouts, workout)
		}
	}

	return view, nil
}

func (s *WorkoutService) attachExercises(ctx context.Context, workouts []models.Workout) ([]models.WorkoutDetail, error) {
	workoutIDs := make([]int64, 0, len(workouts))
	for _, workout := range workouts {
		workoutIDs = append(workoutIDs, workout.ID)
	}

	exercisesByWorkout, err := s.workoutRepo.ListExercisesByWorkoutIDs(ctx, workoutIDs)
	if err != nil {
		return nil, err
	}

	details := make([]models.WorkoutDetail, 0, len(workouts))
	for _, workout := range workouts {
		exercises := exercisesByWorkout[workout.ID]
		if exercises == nil {
			exercises = make([]models.Exercise, 0)
		}
		details = append(details, models.WorkoutDetail{Workout: workout, Exercises: exercises})
	}

	return details, nil
}
