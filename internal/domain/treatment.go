package domain

import "time"

// Treatment is an ecological treatment applied to combat pests.
type Treatment struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Description       *string   `json:"description,omitempty" db:"description"`
	ApplicationMethod *string   `json:"application_method,omitempty" db:"application_method"`
	FrequencyDays     *int      `json:"frequency_days,omitempty" db:"frequency_days"`
	IsEcological      bool      `json:"is_ecological" db:"is_ecological"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// CultureTreatment schedules a treatment for a specific culture, optionally
// overriding the treatment's default frequency.
type CultureTreatment struct {
	ID            int64     `json:"id" db:"id"`
	CultureID     int64     `json:"culture_id" db:"culture_id"`
	TreatmentID   int64     `json:"treatment_id" db:"treatment_id"`
	StartDate     time.Time `json:"start_date" db:"start_date"`
	FrequencyDays *int      `json:"frequency_days,omitempty" db:"frequency_days"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
