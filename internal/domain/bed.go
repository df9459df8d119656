package domain

import "time"

// Bed is a fixed-size raised bed in the garden. Physical dimensions are
// constant (see the layout package); only descriptive attributes live here.
// Beds are deactivated rather than deleted so culture history survives.
type Bed struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Location    *string   `json:"location,omitempty" db:"location"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
