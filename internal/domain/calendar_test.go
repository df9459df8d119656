package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCalendarEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		event   CalendarEvent
		wantErr bool
	}{
		{
			name:    "treatment reference only",
			event:   CalendarEvent{CultureID: 1, TreatmentID: int64Ptr(10)},
			wantErr: false,
		},
		{
			name:    "care reference only",
			event:   CalendarEvent{CultureID: 1, CareActionID: int64Ptr(20)},
			wantErr: false,
		},
		{
			name:    "both references",
			event:   CalendarEvent{CultureID: 1, TreatmentID: int64Ptr(10), CareActionID: int64Ptr(20)},
			wantErr: true,
		},
		{
			name:    "no reference",
			event:   CalendarEvent{CultureID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEventReference)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalendarEvent_Kind(t *testing.T) {
	treatment := CalendarEvent{TreatmentID: int64Ptr(1)}
	care := CalendarEvent{CareActionID: int64Ptr(2)}

	assert.Equal(t, EventKindTreatment, treatment.Kind())
	assert.Equal(t, EventKindCare, care.Kind())
}

func TestCulture_GrowthProgress(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	c := Culture{StartDate: start}

	assert.Equal(t, 0.0, c.GrowthProgress(0, start.AddDate(0, 0, 30)))
	assert.Equal(t, 0.0, c.GrowthProgress(60, start.AddDate(0, 0, -1)))
	assert.InDelta(t, 50.0, c.GrowthProgress(60, start.AddDate(0, 0, 30)), 0.01)
	assert.Equal(t, 100.0, c.GrowthProgress(60, start.AddDate(0, 0, 90)))
}
