package domain

import "time"

// Pest is a catalog entry for a pest that can affect plants.
type Pest struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	ScientificName *string   `json:"scientific_name,omitempty" db:"scientific_name"`
	Description    *string   `json:"description,omitempty" db:"description"`
	Symptoms       *string   `json:"symptoms,omitempty" db:"symptoms"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Treatment effectiveness levels for pest-treatment links
const (
	EffectivenessLow    = "low"
	EffectivenessMedium = "medium"
	EffectivenessHigh   = "high"
)

// IsValidEffectiveness checks a pest-treatment effectiveness value.
func IsValidEffectiveness(s string) bool {
	return s == EffectivenessLow || s == EffectivenessMedium || s == EffectivenessHigh
}

// PestTreatment links a pest to a treatment effective against it.
// Many-to-many: one treatment can cover several pests and vice versa.
type PestTreatment struct {
	ID            int64     `json:"id" db:"id"`
	PestID        int64     `json:"pest_id" db:"pest_id"`
	TreatmentID   int64     `json:"treatment_id" db:"treatment_id"`
	Effectiveness *string   `json:"effectiveness,omitempty" db:"effectiveness"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
