package domain

import "time"

// Plant is a catalog entry for one species, with growth and harvest timing.
type Plant struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	ScientificName    *string   `json:"scientific_name,omitempty" db:"scientific_name"`
	Description       *string   `json:"description,omitempty" db:"description"`
	Icon              string    `json:"icon" db:"icon"`
	GrowthDays        *int      `json:"growth_days,omitempty" db:"growth_days"`
	HarvestPeriodDays *int      `json:"harvest_period_days,omitempty" db:"harvest_period_days"`
	Notes             *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// Pest severity levels for plant-pest links
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// IsValidSeverity checks a plant-pest severity value.
func IsValidSeverity(s string) bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// PlantPest links a plant to a pest it is susceptible to.
type PlantPest struct {
	ID       int64   `json:"id" db:"id"`
	PlantID  int64   `json:"plant_id" db:"plant_id"`
	PestID   int64   `json:"pest_id" db:"pest_id"`
	Severity *string `json:"severity,omitempty" db:"severity"`
	Notes    *string `json:"notes,omitempty" db:"notes"`
}

// PlantCare links a plant to a recommended care action with timing
// relative to the planting date. These rows drive calendar generation.
type PlantCare struct {
	ID                int64   `json:"id" db:"id"`
	PlantID           int64   `json:"plant_id" db:"plant_id"`
	CareActionID      int64   `json:"care_action_id" db:"care_action_id"`
	DaysAfterPlanting *int    `json:"days_after_planting,omitempty" db:"days_after_planting"`
	FrequencyDays     *int    `json:"frequency_days,omitempty" db:"frequency_days"`
	Notes             *string `json:"notes,omitempty" db:"notes"`
}
