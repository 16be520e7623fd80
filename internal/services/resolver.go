package services

import (
	"sort"

	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/models"
)

// ResolveOwnership maps each workout to its owning student. Workouts with a
// stored student id resolve directly. Legacy workouts without one are dealt
// out round-robin over the account's students, both sides ordered by
// creation time with id as the tie-breaker: the i-th unlinked workout goes
// to student i mod n.
//
// This fallback is a read-time display heuristic only. It must never feed
// quota counting or write authorization, which is why the resolution mode is
// carried on every result.
func ResolveOwnership(students []models.Student, workouts []models.WorkoutDetail) []models.ResolvedWorkout {
	ordered := make([]models.Student, len(students))
	copy(ordered, students)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	studentsByID := make(map[int64]*models.Student, len(ordered))
	for i := range ordered {
		studentsByID[ordered[i].ID] = &ordered[i]
	}

	orderedWorkouts := make([]models.WorkoutDetail, len(workouts))
	copy(orderedWorkouts, workouts)
	sort.SliceStable(orderedWorkouts, func(i, j int) bool {
		if !orderedWorkouts[i].CreatedAt.Equal(orderedWorkouts[j].CreatedAt) {
			return orderedWorkouts[i].CreatedAt.Before(orderedWorkouts[j].CreatedAt)
		}
		return orderedWorkouts[i].ID < orderedWorkouts[j].ID
	})

	resolved := make([]models.ResolvedWorkout, 0, len(orderedWorkouts))
	unlinked := 0
	for _, workout := range orderedWorkouts {
		item := models.ResolvedWorkout{WorkoutDetail: workout}
		if workout.StudentID != nil {
			item.Resolution = models.ResolutionLinked
			item.Student = studentsByID[*workout.StudentID]
		} else {
			item.Resolution = models.ResolutionRoundRobin
			if len(ordered) > 0 {
				item.Student = &ordered[unlinked%len(ordered)]
			}
			unlinked++
		}
		resolved = append(resolved, item)
	}

	return resolved
}
