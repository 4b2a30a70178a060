package usecase

import (
	"context"
	"errors"
	"time"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRange        = errors.New("start date must not be after end date")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrEmptyDailyWindow    = errors.New("daily start time must be before end time")
	ErrInvalidSlotDuration = errors.New("slot duration must be greater than zero")
	ErrNoWeekdaysSelected  = errors.New("weekly rules need at least one weekday")
	ErrUnsupportedMonthly  = errors.New("monthly recurrence is not supported")
	ErrUnknownFrequency    = errors.New("unknown recurrence frequency")
)

type AvailabilityUsecase interface {
	// GenerateSlots expands the doctor's recurrence declaration into concrete
	// slots. Zero created slots is a valid outcome, not an error.
	GenerateSlots(ctx context.Context, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error)
	// ClearUnbookedSlots deletes free slots in the range; booked and locked
	// slots always survive.
	ClearUnbookedSlots(ctx context.Context, req *dto.ClearSlotsRequest) (*dto.ClearSlotsResponse, error)
	// ListSlots returns every slot (booked and free) for the doctor/date,
	// ordered by start time.
	ListSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*dto.SlotListResponse, error)
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.AvailabilitySlotRepository
	slotCache    *service.SlotCacheService
	auditService service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.AvailabilitySlotRepository,
	slotCache *service.SlotCacheService,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		slotCache:    slotCache,
		auditService: auditService,
	}
}

func (u *availabilityUsecase) GenerateSlots(ctx context.Context, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	rule, err := buildRecurrenceRule(doctorID, req)
	if err != nil {
		return nil, err
	}

	windows := rule.Expand()

	slots := make([]entity.AvailabilitySlot, len(windows))
	for i, w := range windows {
		slots[i] = entity.AvailabilitySlot{
			DoctorID:  doctorID,
			SlotDate:  w.Date,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		}
	}

	// Single transaction: either the whole batch lands or none of it does.
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.slotRepo.CreateBatch(tx, slots); err != nil {
		u.log.Warnf("Failed to insert slot batch for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	u.auditService.Record(tx, &doctorID, entity.AuditActionSlotsGenerate, entity.JSON{
		"frequency":     req.Frequency,
		"start_date":    rule.StartDate.Format("2006-01-02"),
		"end_date":      rule.EndDate.Format("2006-01-02"),
		"slots_created": len(slots),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.InvalidateRange(ctx, doctorID, rule.StartDate, rule.EndDate)

	u.log.Infof("Generated %d slots for doctor %s (%s to %s)",
		len(slots), doctorID, rule.StartDate.Format("2006-01-02"), rule.EndDate.Format("2006-01-02"))
	return &dto.GenerateSlotsResponse{SlotsCreated: len(slots)}, nil
}

func (u *availabilityUsecase) ClearUnbookedSlots(ctx context.Context, req *dto.ClearSlotsRequest) (*dto.ClearSlotsResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	from, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	to, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	removed, err := u.slotRepo.DeleteUnbooked(tx, doctorID, from, to)
	if err != nil {
		u.log.Warnf("Failed to clear slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	u.auditService.Record(tx, &doctorID, entity.AuditActionSlotsClear, entity.JSON{
		"start_date":    req.StartDate,
		"end_date":      req.EndDate,
		"slots_removed": removed,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.InvalidateRange(ctx, doctorID, from, to)

	return &dto.ClearSlotsResponse{SlotsRemoved: int(removed)}, nil
}

func (u *availabilityUsecase) ListSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*dto.SlotListResponse, error) {
	if cached := u.slotCache.Get(ctx, doctorID, date); cached != nil {
		return cached, nil
	}

	slots, err := u.slotRepo.FindByDoctorAndDate(u.db.WithContext(ctx), doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to list slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	view := &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}
	u.slotCache.Set(ctx, doctorID, date, view)

	return view, nil
}

// buildRecurrenceRule validates the request and normalizes it into a
// RecurrenceRule. FIXED rules collapse the range to the single target date.
func buildRecurrenceRule(doctorID uuid.UUID, req *dto.GenerateSlotsRequest) (*entity.RecurrenceRule, error) {
	if req.Frequency == "MONTHLY" {
		return nil, ErrUnsupportedMonthly
	}
	if req.SlotDurationMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !start.Before(end) {
		return nil, ErrEmptyDailyWindow
	}

	rule := &entity.RecurrenceRule{
		DoctorID:    doctorID,
		Frequency:   entity.Frequency(req.Frequency),
		WindowStart: req.StartTime,
		WindowEnd:   req.EndTime,
		SlotMinutes: req.SlotDurationMinutes,
	}

	switch rule.Frequency {
	case entity.FrequencyFixed:
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		rule.StartDate = date
		rule.EndDate = date

	case entity.FrequencyDaily, entity.FrequencyWeekly:
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		if startDate.After(endDate) {
			return nil, ErrInvalidRange
		}
		rule.StartDate = startDate
		rule.EndDate = endDate

		if rule.Frequency == entity.FrequencyWeekly {
			if len(req.DaysOfWeek) == 0 {
				return nil, ErrNoWeekdaysSelected
			}
			for _, d := range req.DaysOfWeek {
				rule.Weekdays = append(rule.Weekdays, time.Weekday(d))
			}
		}

	default:
		return nil, ErrUnknownFrequency
	}

	return rule, nil
}
