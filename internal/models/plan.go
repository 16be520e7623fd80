package models

import "time"

// Plan is an immutable catalog entry. MaxStudents is nil for unlimited tiers.
type Plan struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	MaxStudents *int64    `json:"max_students"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}
