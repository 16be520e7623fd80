package repository

import (
	"context"

	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	query := `
		INSERT INTO workouts (account_id, student_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, workout.AccountID, workout.StudentID, workout.Name, workout.Description).
		Scan(&workout.ID, &workout.CreatedAt)
}

func (r *WorkoutRepository) InsertExercise(ctx context.Context, exercise *models.Exercise) error {
	query := `
		INSERT INTO exercises (workout_id, position, name, sets, reps, weight, rest, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.db.QueryRow(
		ctx,
		query,
		exercise.WorkoutID,
		exercise.Position,
		exercise.Name,
		exercise.Sets,
		exercise.Reps,
		exercise.Weight,
		exercise.Rest,
		exercise.Notes,
	).Scan(&exercise.ID)
}

// ListByAccountID returns workouts in creation order, oldest first. The
// round-robin display assignment relies on this ordering.
func (r *WorkoutRepository) ListByAccountID(ctx context.Context, accountID int64) ([]models.Workout, error) {
	query := `
		SELECT id, account_id, student_id, name, description, created_at
		FROM workouts
		WHERE account_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.AccountID,
			&workout.StudentID,
			&workout.Name,
			&workout.Description,
			&workout.CreatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *WorkoutRepository) GetOwned(ctx context.Context, id, accountID int64) (*models.Workout, error) {
	query := `
		SELECT id, account_id, student_id, name, description, created_at
		FROM workouts
		WHERE id = $1 AND account_id = $2
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, id, accountID).Scan(
		&workout.ID,
		&workout.AccountID,
		&workout.StudentID,
		&workout.Name,
		&workout.Description,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) ListExercises(ctx context.Context, workoutID int64) ([]models.Exercise, error) {
	query := `
		SELECT id, workout_id, position, name, sets, reps, weight, rest, notes
		FROM exercises
		WHERE workout_id = $1
		ORDER BY position ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ListExercisesByWorkoutIDs batch-loads exercises for a set of workouts,
// keyed by workout id, each list in position order.
func (r *WorkoutRepository) ListExercisesByWorkoutIDs(ctx context.Context, workoutIDs []int64) (map[int64][]models.Exercise, error) {
	result := make(map[int64][]models.Exercise)
	if len(workoutIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, workout_id, position, name, sets, reps, weight, rest, notes
		FROM exercises
		WHERE workout_id = ANY($1)
		ORDER BY workout_id ASC, position ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, workoutIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	for _, exercise := range exercises {
		result[exercise.WorkoutID] = append(result[exercise.WorkoutID], exercise)
	}

	return result, nil
}

func (r *WorkoutRepository) DeleteOwned(ctx context.Context, id, accountID int64) (bool, error) {
	query := `DELETE FROM workouts WHERE id = $1 AND account_id = $2`
	tag, err := r.db.Exec(ctx, query, id, accountID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type exerciseRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanExercises(rows exerciseRows) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.WorkoutID,
			&exercise.Position,
			&exercise.Name,
			&exercise.Sets,
			&exercise.Reps,
			&exercise.Weight,
			&exercise.Rest,
			&exercise.Notes,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
