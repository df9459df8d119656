package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/pkg/errors"
	"github.com/garden-planner/internal/usecase/dto"
)

// backfillWindow is how far into the past generated events are kept.
// Anything older is noise by the time the culture is registered.
const backfillWindow = 7 * 24 * time.Hour

// CalendarUseCase handles the garden activity calendar
type CalendarUseCase struct {
	calendarRepo  repository.CalendarRepository
	cultureRepo   repository.CultureRepository
	plantRepo     repository.PlantRepository
	treatmentRepo repository.TreatmentRepository
	careRepo      repository.CareRepository
	logger        *zap.Logger
}

// NewCalendarUseCase creates a new CalendarUseCase instance
func NewCalendarUseCase(
	calendarRepo repository.CalendarRepository,
	cultureRepo repository.CultureRepository,
	plantRepo repository.PlantRepository,
	treatmentRepo repository.TreatmentRepository,
	careRepo repository.CareRepository,
	logger *zap.Logger,
) *CalendarUseCase {
	return &CalendarUseCase{
		calendarRepo:  calendarRepo,
		cultureRepo:   cultureRepo,
		plantRepo:     plantRepo,
		treatmentRepo: treatmentRepo,
		careRepo:      careRepo,
		logger:        logger,
	}
}

// ListRange returns events in a date range, defaulting to the next 30 days
func (uc *CalendarUseCase) ListRange(ctx context.Context, req *dto.CalendarRangeRequest) (*dto.CalendarResponse, error) {
	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 30)

	if req.From != "" {
		parsed, err := time.Parse(dateLayout, req.From)
		if err != nil {
			return nil, errors.ErrInvalidDateRange
		}
		from = parsed
	}
	if req.To != "" {
		parsed, err := time.Parse(dateLayout, req.To)
		if err != nil {
			return nil, errors.ErrInvalidDateRange
		}
		to = parsed
	}
	if to.Before(from) {
		return nil, errors.ErrInvalidDateRange
	}

	events, err := uc.calendarRepo.ListRange(ctx, from, to, req.IncludeCompleted)
	if err != nil {
		return nil, err
	}

	return uc.toResponse(ctx, events)
}

// ListForCulture returns every event of one culture
func (uc *CalendarUseCase) ListForCulture(ctx context.Context, cultureID int64) (*dto.CalendarResponse, error) {
	if _, err := uc.cultureRepo.GetByID(ctx, cultureID); err != nil {
		return nil, err
	}

	events, err := uc.calendarRepo.ListForCulture(ctx, cultureID)
	if err != nil {
		return nil, err
	}

	return uc.toResponse(ctx, events)
}

// Complete marks an event done, today unless a date is given
func (uc *CalendarUseCase) Complete(ctx context.Context, id int64, req *dto.CompleteEventRequest) (*domain.CalendarEvent, error) {
	completedDate := time.Now()
	if req != nil && req.CompletedDate != "" {
		parsed, err := time.Parse(dateLayout, req.CompletedDate)
		if err != nil {
			return nil, errors.ErrInvalidDateRange
		}
		completedDate = parsed
	}

	return uc.calendarRepo.MarkCompleted(ctx, id, completedDate)
}

// GenerateForCulture derives care events for a new culture from the care
// recommendations of its plants. An event lands on start date plus the
// recommendation's offset; events older than the backfill window are
// dropped. Returns the number of events created.
func (uc *CalendarUseCase) GenerateForCulture(ctx context.Context, cultureID int64) (int, error) {
	culture, err := uc.cultureRepo.GetByID(ctx, cultureID)
	if err != nil {
		return 0, err
	}

	plants, err := uc.cultureRepo.PlantsForCulture(ctx, cultureID)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-backfillWindow)

	var events []*domain.CalendarEvent
	seen := make(map[int64]bool)
	for _, p := range plants {
		// A polyculture may repeat a plant type; generate once per plant
		if seen[p.PlantID] {
			continue
		}
		seen[p.PlantID] = true

		links, err := uc.plantRepo.CareLinks(ctx, p.PlantID)
		if err != nil {
			return 0, err
		}

		for _, link := range links {
			if link.DaysAfterPlanting == nil {
				continue
			}

			date := culture.StartDate.AddDate(0, 0, *link.DaysAfterPlanting)
			if date.Before(cutoff) {
				continue
			}

			actionID := link.CareActionID
			events = append(events, &domain.CalendarEvent{
				CultureID:     cultureID,
				CareActionID:  &actionID,
				ScheduledDate: date,
				Notes:         link.Notes,
			})
		}
	}

	if err := uc.calendarRepo.InsertBatch(ctx, events); err != nil {
		return 0, err
	}

	uc.logger.Info("Calendar generated",
		zap.Int64("culture_id", cultureID),
		zap.Int("events", len(events)))
	return len(events), nil
}

func (uc *CalendarUseCase) toResponse(ctx context.Context, events []*domain.CalendarEvent) (*dto.CalendarResponse, error) {
	resp := &dto.CalendarResponse{Events: []dto.CalendarEventView{}}

	treatmentNames := make(map[int64]string)
	careNames := make(map[int64]string)

	for _, ev := range events {
		view := dto.CalendarEventView{Event: ev, Kind: ev.Kind()}

		switch {
		case ev.TreatmentID != nil:
			name, ok := treatmentNames[*ev.TreatmentID]
			if !ok {
				t, err := uc.treatmentRepo.GetByID(ctx, *ev.TreatmentID)
				if err == nil {
					name = t.Name
				}
				treatmentNames[*ev.TreatmentID] = name
			}
			view.ActivityName = name
		case ev.CareActionID != nil:
			name, ok := careNames[*ev.CareActionID]
			if !ok {
				a, err := uc.careRepo.GetByID(ctx, *ev.CareActionID)
				if err == nil {
					name = a.Name
				}
				careNames[*ev.CareActionID] = name
			}
			view.ActivityName = name
		}

		resp.Events = append(resp.Events, view)
	}

	resp.Total = len(resp.Events)
	return resp, nil
}
