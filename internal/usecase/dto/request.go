package dto

// CreateBedRequest - request to create a raised bed
type CreateBedRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
}

// UpdateBedRequest - request to update a raised bed
type UpdateBedRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
}

// CreatePlantRequest - request to add a plant to the catalog
type CreatePlantRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	ScientificName    *string `json:"scientific_name,omitempty" validate:"omitempty,max=150"`
	Description       *string `json:"description,omitempty"`
	Icon              string  `json:"icon,omitempty" validate:"omitempty,max=10"`
	GrowthDays        *int    `json:"growth_days,omitempty" validate:"omitempty,min=1"`
	HarvestPeriodDays *int    `json:"harvest_period_days,omitempty" validate:"omitempty,min=1"`
	Notes             *string `json:"notes,omitempty"`
}

// UpdatePlantRequest - request to update a catalog plant
type UpdatePlantRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	ScientificName    *string `json:"scientific_name,omitempty" validate:"omitempty,max=150"`
	Description       *string `json:"description,omitempty"`
	Icon              string  `json:"icon,omitempty" validate:"omitempty,max=10"`
	GrowthDays        *int    `json:"growth_days,omitempty" validate:"omitempty,min=1"`
	HarvestPeriodDays *int    `json:"harvest_period_days,omitempty" validate:"omitempty,min=1"`
	Notes             *string `json:"notes,omitempty"`
}

// LinkPlantPestRequest - request to mark a plant as susceptible to a pest
type LinkPlantPestRequest struct {
	PestID   int64   `json:"pest_id" validate:"required"`
	Severity *string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
	Notes    *string `json:"notes,omitempty"`
}

// LinkPlantCareRequest - request to attach a care recommendation to a plant
type LinkPlantCareRequest struct {
	CareActionID      int64   `json:"care_action_id" validate:"required"`
	DaysAfterPlanting *int    `json:"days_after_planting,omitempty" validate:"omitempty,min=0"`
	FrequencyDays     *int    `json:"frequency_days,omitempty" validate:"omitempty,min=1"`
	Notes             *string `json:"notes,omitempty"`
}

// CulturePlantRequest - one plant row within a new culture
type CulturePlantRequest struct {
	PlantID     int64   `json:"plant_id" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	RowPosition string  `json:"row_position,omitempty" validate:"omitempty,oneof=top middle bottom superior central inferior"`
	SpacingCm   int     `json:"spacing_cm" validate:"required,min=1"`
	Alignment   string  `json:"alignment,omitempty" validate:"omitempty,oneof=left center right"`
	Notes       *string `json:"notes,omitempty"`
}

// CreateCultureRequest - request to start a planting in a bed
type CreateCultureRequest struct {
	BedID     int64                 `json:"bed_id" validate:"required"`
	StartDate string                `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartType string                `json:"start_type,omitempty" validate:"omitempty,oneof=seed seedling transplant"`
	Notes     *string               `json:"notes,omitempty"`
	Plants    []CulturePlantRequest `json:"plants" validate:"required,min=1,dive"`
}

// CloseCultureRequest - request to end a planting
type CloseCultureRequest struct {
	EndDate string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePlantLayoutRequest - request to adjust one culture plant's layout
type UpdatePlantLayoutRequest struct {
	QuantityPlanted int     `json:"quantity_planted" validate:"required,min=1"`
	QuantityGrown   int     `json:"quantity_grown" validate:"min=0"`
	RowPosition     string  `json:"row_position,omitempty" validate:"omitempty,oneof=top middle bottom superior central inferior"`
	SpacingCm       int     `json:"spacing_cm" validate:"required,min=1"`
	Alignment       string  `json:"alignment,omitempty" validate:"omitempty,oneof=left center right"`
	Notes           *string `json:"notes,omitempty"`
}

// ScheduleTreatmentRequest - request to schedule a treatment for a culture
type ScheduleTreatmentRequest struct {
	TreatmentID   int64   `json:"treatment_id" validate:"required"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	FrequencyDays *int    `json:"frequency_days,omitempty" validate:"omitempty,min=1"`
	Notes         *string `json:"notes,omitempty"`
}

// ScheduleCareRequest - request to schedule a care action for a culture
type ScheduleCareRequest struct {
	CareActionID  int64   `json:"care_action_id" validate:"required"`
	ScheduledDate string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	FrequencyDays *int    `json:"frequency_days,omitempty" validate:"omitempty,min=1"`
	Notes         *string `json:"notes,omitempty"`
}

// CreatePestRequest - request to add a pest to the catalog
type CreatePestRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=100"`
	ScientificName *string `json:"scientific_name,omitempty" validate:"omitempty,max=150"`
	Description    *string `json:"description,omitempty"`
	Symptoms       *string `json:"symptoms,omitempty"`
}

// UpdatePestRequest - request to update a catalog pest
type UpdatePestRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=100"`
	ScientificName *string `json:"scientific_name,omitempty" validate:"omitempty,max=150"`
	Description    *string `json:"description,omitempty"`
	Symptoms       *string `json:"symptoms,omitempty"`
}

// LinkPestTreatmentRequest - request to mark a treatment effective against a pest
type LinkPestTreatmentRequest struct {
	TreatmentID   int64   `json:"treatment_id" validate:"required"`
	Effectiveness *string `json:"effectiveness,omitempty" validate:"omitempty,oneof=low medium high"`
	Notes         *string `json:"notes,omitempty"`
}

// CreateTreatmentRequest - request to add a treatment to the catalog
type CreateTreatmentRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	Description       *string `json:"description,omitempty"`
	ApplicationMethod *string `json:"application_method,omitempty"`
	FrequencyDays     *int    `json:"frequency_days,omitempty" validate:"omitempty,min=1"`
	IsEcological      *bool   `json:"is_ecological,omitempty"`
}

// UpdateTreatmentRequest - request to update a catalog treatment
type UpdateTreatmentRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	Description       *string `json:"description,omitempty"`
	ApplicationMethod *string `json:"application_method,omitempty"`
	FrequencyDays     *int    `json:"frequency_days,omitempty" validate:"omitempty,min=1"`
	IsEcological      *bool   `json:"is_ecological,omitempty"`
}

// CreateCareActionRequest - request to add a care action to the catalog
type CreateCareActionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	ActionType  string  `json:"action_type" validate:"required,oneof=pruning pinching tutoring fertilizing watering other"`
}

// UpdateCareActionRequest - request to update a care action
type UpdateCareActionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	ActionType  string  `json:"action_type" validate:"required,oneof=pruning pinching tutoring fertilizing watering other"`
}

// CalendarRangeRequest - query for calendar events within a date range
type CalendarRangeRequest struct {
	From             string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To               string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	IncludeCompleted bool   `json:"include_completed"`
}

// CompleteEventRequest - request to mark a calendar event done
type CompleteEventRequest struct {
	CompletedDate string `json:"completed_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
