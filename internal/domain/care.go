package domain

import "time"

// Care action types
const (
	ActionPruning     = "pruning"
	ActionPinching    = "pinching"
	ActionTutoring    = "tutoring"
	ActionFertilizing = "fertilizing"
	ActionWatering    = "watering"
	ActionOther       = "other"
)

// ValidActionTypes returns the list of recognized care action types.
func ValidActionTypes() []string {
	return []string{
		ActionPruning,
		ActionPinching,
		ActionTutoring,
		ActionFertilizing,
		ActionWatering,
		ActionOther,
	}
}

// IsValidActionType checks a care action type.
func IsValidActionType(s string) bool {
	for _, t := range ValidActionTypes() {
		if t == s {
			return true
		}
	}
	return false
}

// CareAction is a catalog entry for a plant maintenance action.
type CareAction struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	ActionType  string    `json:"action_type" db:"action_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CultureCare schedules a care action for a specific culture on a date.
type CultureCare struct {
	ID            int64     `json:"id" db:"id"`
	CultureID     int64     `json:"culture_id" db:"culture_id"`
	CareActionID  int64     `json:"care_action_id" db:"care_action_id"`
	ScheduledDate time.Time `json:"scheduled_date" db:"scheduled_date"`
	FrequencyDays *int      `json:"frequency_days,omitempty" db:"frequency_days"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
