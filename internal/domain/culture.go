package domain

import "time"

// Culture start types
const (
	StartTypeSeed       = "seed"
	StartTypeSeedling   = "seedling"
	StartTypeTransplant = "transplant"
)

// IsValidStartType checks a culture start type.
func IsValidStartType(s string) bool {
	return s == StartTypeSeed || s == StartTypeSeedling || s == StartTypeTransplant
}

// StandardSpacings are the spacing options offered by the planting form,
// in centimeters. The layout engine itself accepts any positive spacing.
var StandardSpacings = []int{15, 20, 30, 40, 50, 100}

// IsStandardSpacing reports whether a spacing is one of the form options.
func IsStandardSpacing(cm int) bool {
	for _, s := range StandardSpacings {
		if s == cm {
			return true
		}
	}
	return false
}

// Culture is an active or historical planting in a raised bed. One culture
// can grow several plant types at once (polyculture).
type Culture struct {
	ID        int64      `json:"id" db:"id"`
	BedID     int64      `json:"bed_id" db:"bed_id"`
	StartDate time.Time  `json:"start_date" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`
	StartType string     `json:"start_type" db:"start_type"`
	Notes     *string    `json:"notes,omitempty" db:"notes"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// CulturePlant is one plant type within a culture, carrying the quantities
// and the visual layout fields the bed diagram is built from.
type CulturePlant struct {
	ID              int64   `json:"id" db:"id"`
	CultureID       int64   `json:"culture_id" db:"culture_id"`
	PlantID         int64   `json:"plant_id" db:"plant_id"`
	QuantityPlanted int     `json:"quantity_planted" db:"quantity_planted"`
	QuantityGrown   int     `json:"quantity_grown" db:"quantity_grown"`
	RowPosition     string  `json:"row_position" db:"row_position"`
	SpacingCm       int     `json:"spacing_cm" db:"spacing_cm"`
	Alignment       string  `json:"alignment" db:"alignment"`
	Notes           *string `json:"notes,omitempty" db:"notes"`
}

// GrowthProgress returns the culture's progress toward harvest as a
// percentage in [0,100], based on the slowest plant's growth days.
// Returns 0 when no plant declares growth days.
func (c *Culture) GrowthProgress(growthDays int, today time.Time) float64 {
	if growthDays <= 0 {
		return 0
	}
	elapsed := today.Sub(c.StartDate).Hours() / 24
	if elapsed <= 0 {
		return 0
	}
	progress := elapsed / float64(growthDays) * 100
	if progress > 100 {
		return 100
	}
	return progress
}
