package models

import "time"

// Workout ownership resolution modes. Linked means the workout carries a
// stored student id; round-robin is the display-only fallback for legacy
// rows without one.
const (
	ResolutionLinked     = "linked"
	ResolutionRoundRobin = "round_robin"
)

type Workout struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	StudentID   *int64    `json:"student_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Exercise struct {
	ID        int64   `json:"id"`
	WorkoutID int64   `json:"workout_id"`
	Position  int     `json:"position"`
	Name      string  `json:"name"`
	Sets      int     `json:"sets"`
	Reps      string  `json:"reps"`
	Weight    *string `json:"weight"`
	Rest      *string `json:"rest"`
	Notes     *string `json:"notes"`
}

type WorkoutDetail struct {
	Workout
	Exercises []Exercise `json:"exercises"`
}

// ResolvedWorkout annotates a workout with the student it belongs to and how
// that ownership was determined. Student is nil when a degraded record cannot
// be assigned (account with no students).
type ResolvedWorkout struct {
	WorkoutDetail
	Resolution string   `json:"resolution"`
	Student    *Student `json:"student,omitempty"`
}

// StudentView is the payload served to an access-code holder.
type StudentView struct {
	Student  Student           `json:"student"`
	Workouts []ResolvedWorkout `json:"workouts"`
}
