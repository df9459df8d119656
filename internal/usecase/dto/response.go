package dto

import "github.com/garden-planner/internal/domain"

// BedDetailResponse - a bed with its active cultures
type BedDetailResponse struct {
	Bed      *domain.Bed              `json:"bed"`
	Cultures []*CultureDetailResponse `json:"cultures"`
}

// CultureDetailResponse - a culture with its plants and progress. The
// scheduled treatments and cares are filled on the single-culture view only.
type CultureDetailResponse struct {
	Culture    *domain.Culture            `json:"culture"`
	Plants     []CulturePlantView         `json:"plants"`
	Treatments []*domain.CultureTreatment `json:"treatments,omitempty"`
	Cares      []*domain.CultureCare      `json:"cares,omitempty"`
}

// CulturePlantView - one plant of a culture as shown to the client
type CulturePlantView struct {
	ID              int64        `json:"id"`
	Plant           domain.Plant `json:"plant"`
	QuantityPlanted int          `json:"quantity_planted"`
	QuantityGrown   int          `json:"quantity_grown"`
	RowPosition     string       `json:"row_position"`
	SpacingCm       int          `json:"spacing_cm"`
	Alignment       string       `json:"alignment"`
	Notes           *string      `json:"notes,omitempty"`
	GrowthProgress  float64      `json:"growth_progress"`
}

// PlantDetailResponse - a catalog plant with its pest and care links
type PlantDetailResponse struct {
	Plant *domain.Plant           `json:"plant"`
	Pests []*domain.PlantPestInfo `json:"pests"`
	Cares []*domain.PlantCareInfo `json:"cares"`
}

// PestDetailResponse - a pest with the treatments effective against it
type PestDetailResponse struct {
	Pest       *domain.Pest                `json:"pest"`
	Treatments []*domain.PestTreatmentInfo `json:"treatments"`
}

// CalendarEventView - a calendar event with its resolved activity name
type CalendarEventView struct {
	Event        *domain.CalendarEvent `json:"event"`
	Kind         string                `json:"kind"`
	ActivityName string                `json:"activity_name,omitempty"`
}

// CalendarResponse - events within the requested range
type CalendarResponse struct {
	Events []CalendarEventView `json:"events"`
	Total  int                 `json:"total"`
}
