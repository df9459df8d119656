package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamCultureCreated = "stream:garden:culture:created"
	StreamCultureFailed  = "stream:garden:culture:failed"
)

// CultureCreatedEvent is published when a culture is planted. The calendar
// worker consumes it and generates the culture's event schedule.
type CultureCreatedEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	CultureID int64     `json:"culture_id"`
	BedID     int64     `json:"bed_id"`
	StartDate time.Time `json:"start_date"`
}

// StreamMessage is one raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
