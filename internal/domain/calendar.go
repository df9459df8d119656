package domain

import (
	"errors"
	"time"
)

// Calendar event kinds
const (
	EventKindTreatment = "treatment"
	EventKindCare      = "care"
)

var ErrEventReference = errors.New("calendar event must reference exactly one of treatment or care action")

// CalendarEvent is an auto-generated garden activity. An event references
// either a treatment or a care action, never both and never neither.
type CalendarEvent struct {
	ID            int64      `json:"id" db:"id"`
	CultureID     int64      `json:"culture_id" db:"culture_id"`
	TreatmentID   *int64     `json:"treatment_id,omitempty" db:"treatment_id"`
	CareActionID  *int64     `json:"care_action_id,omitempty" db:"care_action_id"`
	ScheduledDate time.Time  `json:"scheduled_date" db:"scheduled_date"`
	Completed     bool       `json:"completed" db:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty" db:"completed_date"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// Validate enforces the treatment-xor-care reference constraint.
func (e *CalendarEvent) Validate() error {
	hasTreatment := e.TreatmentID != nil
	hasCare := e.CareActionID != nil
	if hasTreatment == hasCare {
		return ErrEventReference
	}
	return nil
}

// Kind returns which reference the event carries.
func (e *CalendarEvent) Kind() string {
	if e.TreatmentID != nil {
		return EventKindTreatment
	}
	return EventKindCare
}
