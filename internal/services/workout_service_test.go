package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

func validWorkoutInput() CreateWorkoutInput {
	return CreateWorkoutInput{
		StudentID: 3,
		Name:      "Upper body A",
		Exercises: []ExerciseInput{
			{Name: "Bench press", Sets: 4, Reps: "8"},
			{Name: "Plank", Sets: 3, Reps: "45s"},
		},
	}
}

func TestCreateWorkoutValidation(t *testing.T) {
	service := &WorkoutService{}

	cases := []struct {
		name   string
		mutate func(*CreateWorkoutInput)
	}{
		{"blank name", func(in *CreateWorkoutInput) { in.Name = "  " }},
		{"no exercises", func(in *CreateWorkoutInput) { in.Exercises = nil }},
		{"blank exercise name", func(in *CreateWorkoutInput) { in.Exercises[1].Name = "" }},
		{"non-positive sets", func(in *CreateWorkoutInput) { in.Exercises[0].Sets = 0 }},
		{"blank reps", func(in *CreateWorkoutInput) { in.Exercises[0].Reps = " " }},
		{"missing student", func(in *CreateWorkoutInput) { in.StudentID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validWorkoutInput()
			tc.mutate(&input)

			_, err := service.CreateWorkout(context.Background(), 7, input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func workoutStubDBTX(t *testing.T, failOnPosition int) (*stubDBTX, *[]int) {
	t.Helper()

	positions := make([]int, 0)
	tx := &stubDBTX{
		queryRowFn: func(_ context.Context, query string, args ...any) stubRow {
			switch {
			case strings.Contains(query, "FROM students"):
				return stubRow{values: []any{int64(3), int64(7), "Ana", "AN4X7Q", testCreatedAt}}
			case strings.Contains(query, "INSERT INTO workouts"):
				return stubRow{values: []any{int64(41), testCreatedAt}}
			case strings.Contains(query, "INSERT INTO exercises"):
				position := args[1].(int)
				positions = append(positions, position)
				if failOnPosition > 0 && position == failOnPosition {
					return stubRow{err: errors.New("insert failed")}
				}
				return stubRow{values: []any{int64(100 + position)}}
			default:
				return stubRow{err: pgx.ErrNoRows}
			}
		},
	}
	return tx, &positions
}

func TestComposeWorkoutInsertsExercisesInOrder(t *testing.T) {
	tx, positions := workoutStubDBTX(t, 0)

	detail, err := composeWorkout(context.Background(), tx, 7, validWorkoutInput())
	if err != nil {
		t.Fatalf("composeWorkout: %v", err)
	}

	if detail.ID != 41 {
		t.Fatalf("expected workout id 41, got %d", detail.ID)
	}
	if detail.StudentID == nil || *detail.StudentID != 3 {
		t.Fatalf("expected stored student link 3, got %+v", detail.StudentID)
	}
	if len(detail.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(detail.Exercises))
	}
	for i, exercise := range detail.Exercises {
		if exercise.Position != i+1 {
			t.Fatalf("expected position %d, got %d", i+1, exercise.Position)
		}
		if exercise.WorkoutID != 41 {
			t.Fatalf("expected workout id 41 on exercise, got %d", exercise.WorkoutID)
		}
	}
	if len(*positions) != 2 || (*positions)[0] != 1 || (*positions)[1] != 2 {
		t.Fatalf("unexpected insert order: %v", *positions)
	}
}

func TestComposeWorkoutReportsUnownedStudentAsNotFound(t *testing.T) {
	tx := &stubDBTX{
		queryRowFn: func(_ context.Context, query string, _ ...any) stubRow {
			return stubRow{err: pgx.ErrNoRows}
		},
	}

	_, err := composeWorkout(context.Background(), tx, 7, validWorkoutInput())
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestComposeWorkoutWrapsMidListFailure(t *testing.T) {
	tx, positions := workoutStubDBTX(t, 2)

	_, err := composeWorkout(context.Background(), tx, 7, validWorkoutInput())
	if !errors.Is(err, ErrCompositionFailed) {
		t.Fatalf("expected ErrCompositionFailed, got %v", err)
	}
	if len(*positions) != 2 {
		t.Fatalf("expected the failing insert to stop the loop, got %v", *positions)
	}
}
