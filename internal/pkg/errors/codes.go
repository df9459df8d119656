package errors

import "net/http"

var (
	ErrBedNotFound = New(
		"BED_NOT_FOUND",
		"Raised bed not found",
		http.StatusNotFound,
	)

	ErrPlantNotFound = New(
		"PLANT_NOT_FOUND",
		"Plant not found",
		http.StatusNotFound,
	)

	ErrCultureNotFound = New(
		"CULTURE_NOT_FOUND",
		"Culture not found",
		http.StatusNotFound,
	)

	ErrPestNotFound = New(
		"PEST_NOT_FOUND",
		"Pest not found",
		http.StatusNotFound,
	)

	ErrTreatmentNotFound = New(
		"TREATMENT_NOT_FOUND",
		"Treatment not found",
		http.StatusNotFound,
	)

	ErrCareActionNotFound = New(
		"CARE_ACTION_NOT_FOUND",
		"Care action not found",
		http.StatusNotFound,
	)

	ErrEventNotFound = New(
		"EVENT_NOT_FOUND",
		"Calendar event not found",
		http.StatusNotFound,
	)

	ErrDuplicateName = New(
		"DUPLICATE_NAME",
		"An entry with this name already exists",
		http.StatusConflict,
	)

	ErrDuplicateLink = New(
		"DUPLICATE_LINK",
		"This link already exists",
		http.StatusConflict,
	)

	ErrLinkNotFound = New(
		"LINK_NOT_FOUND",
		"No such link exists",
		http.StatusNotFound,
	)

	ErrInvalidQuantity = New(
		"INVALID_QUANTITY",
		"Quantity must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidSpacing = New(
		"INVALID_SPACING",
		"Spacing must be one of the standard options",
		http.StatusBadRequest,
	)

	ErrInvalidStartType = New(
		"INVALID_START_TYPE",
		"Start type must be seed, seedling or transplant",
		http.StatusBadRequest,
	)

	ErrInvalidActionType = New(
		"INVALID_ACTION_TYPE",
		"Unknown care action type",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = New(
		"INVALID_DATE_RANGE",
		"Invalid calendar date range",
		http.StatusBadRequest,
	)

	ErrCultureClosed = New(
		"CULTURE_CLOSED",
		"Culture is already closed",
		http.StatusConflict,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
