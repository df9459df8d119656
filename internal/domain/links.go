package domain

// PlantPestInfo is a pest seen from a plant's perspective.
type PlantPestInfo struct {
	Pest     Pest    `json:"pest"`
	Severity *string `json:"severity,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// PlantCareInfo is a care recommendation seen from a plant's perspective.
type PlantCareInfo struct {
	CareAction        CareAction `json:"care_action"`
	DaysAfterPlanting *int       `json:"days_after_planting,omitempty"`
	FrequencyDays     *int       `json:"frequency_days,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// PestTreatmentInfo is a treatment seen from a pest's perspective.
type PestTreatmentInfo struct {
	Treatment     Treatment `json:"treatment"`
	Effectiveness *string   `json:"effectiveness,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// CulturePlantDetail joins a culture plant row with its catalog entry.
// The bed diagram and the calendar generator both work from this.
type CulturePlantDetail struct {
	CulturePlant
	Plant Plant `json:"plant"`
}

// GardenSummary is the aggregate count view for the dashboard.
type GardenSummary struct {
	ActiveBeds     int `json:"active_beds" db:"active_beds"`
	Plants         int `json:"plants" db:"plants"`
	ActiveCultures int `json:"active_cultures" db:"active_cultures"`
	Pests          int `json:"pests" db:"pests"`
	Treatments     int `json:"treatments" db:"treatments"`
	UpcomingEvents int `json:"upcoming_events" db:"upcoming_events"`
}
