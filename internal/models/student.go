package models

import "time"

// Student is a roster entry. Code is the bearer capability that grants
// read-only access to the student's workouts.
type Student struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
