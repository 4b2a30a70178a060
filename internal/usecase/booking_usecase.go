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

// Name of the partial unique index over active appointments; losing a booking
// race surfaces as a 23505 on this constraint.
const activeAppointmentConstraint = "uq_active_appointment"

var (
	ErrSlotConflict        = errors.New("this time is no longer available, please choose another slot")
	ErrInvalidSlot         = errors.New("no availability declared for this doctor at the requested time")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrInvalidTransition   = errors.New("appointment is in a terminal state and cannot change")
)

type BookingUsecase interface {
	// BookAppointment turns a patient's slot selection into a confirmed
	// appointment. Safe under concurrent requests for the same slot: the
	// partial unique index on active appointments is the guarantee, the
	// precheck only gives friendlier errors on the common path.
	BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetDoctorDay(ctx context.Context, date time.Time) (*dto.AppointmentListResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	slotRepo        repository.AvailabilitySlotRepository
	slotCache       *service.SlotCacheService
	auditService    service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotRepo repository.AvailabilitySlotRepository,
	slotCache *service.SlotCacheService,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		slotCache:       slotCache,
		auditService:    auditService,
	}
}

// BookAppointment flow:
// 1. Resolve the slot from declared availability (InvalidSlot if absent)
// 2. Precheck for an active appointment at the triple (SlotConflict)
// 3. Insert the appointment; a unique violation on uq_active_appointment
//    means another request won the race between check and insert
// 4. Flip the backing slot to booked inside the same transaction
func (u *bookingUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Step 1: the requested time must exist in declared availability
	slot, err := u.slotRepo.FindByDoctorDateTime(tx, req.DoctorID, date, req.AppointmentTime)
	if err != nil {
		u.log.Warnf("Failed to find slot for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrInvalidSlot
	}

	// Step 2: advisory precheck; the index below is the real guard
	existing, err := u.appointmentRepo.FindActiveByDoctorDateTime(tx, req.DoctorID, date, req.AppointmentTime)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotConflict
	}

	// Step 3: insert; translate a lost race into SlotConflict
	appointment := &entity.Appointment{
		PatientID:          patientID,
		DoctorID:           req.DoctorID,
		AvailabilitySlotID: &slot.ID,
		AppointmentDate:    date,
		AppointmentTime:    req.AppointmentTime,
		Reason:             req.Reason,
		Status:             entity.AppointmentStatusBooked,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, activeAppointmentConstraint) {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Step 4: mark the slot taken
	if _, err := u.slotRepo.SetBooked(tx, slot.ID, true); err != nil {
		u.log.Warnf("Failed to mark slot %d booked: %+v", slot.ID, err)
		return nil, err
	}

	u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      req.DoctorID.String(),
		"date":           req.AppointmentDate,
		"time":           req.AppointmentTime,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.Invalidate(ctx, req.DoctorID, date)

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s %s",
		appointment.ID, req.DoctorID, req.AppointmentDate, req.AppointmentTime)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusCompleted, entity.AuditActionAppointmentComplete)
}

func (u *bookingUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusCancelled, entity.AuditActionAppointmentCancel)
}

// transition applies COMPLETE or CANCEL. Only the owning doctor may drive
// these; cancelling frees the backing slot for rebooking.
func (u *bookingUsecase) transition(ctx context.Context, appointmentID uuid.UUID, next entity.AppointmentStatus, auditAction string) (*dto.AppointmentResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != actorID {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	appointment.Status = next
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	// A cancelled appointment releases its slot; completion keeps it.
	if next == entity.AppointmentStatusCancelled && appointment.AvailabilitySlotID != nil {
		if _, err := u.slotRepo.SetBooked(tx, *appointment.AvailabilitySlotID, false); err != nil {
			u.log.Warnf("Failed to release slot %d: %+v", *appointment.AvailabilitySlotID, err)
			return nil, err
		}
	}

	u.auditService.Record(tx, &actorID, auditAction, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"status":         string(next),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if next == entity.AppointmentStatusCancelled {
		u.slotCache.Invalidate(ctx, appointment.DoctorID, appointment.AppointmentDate)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// RescheduleAppointment moves an active appointment to a new date/time with
// the same conflict validation as a fresh booking: the old slot is released,
// the new one claimed, and the unique index arbitrates races.
func (u *bookingUsecase) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	newDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.CanTransitionTo(entity.AppointmentStatusRescheduled) {
		return nil, ErrInvalidTransition
	}

	newSlot, err := u.slotRepo.FindByDoctorDateTime(tx, appointment.DoctorID, newDate, req.AppointmentTime)
	if err != nil {
		u.log.Warnf("Failed to find slot for doctor %s: %+v", appointment.DoctorID, err)
		return nil, err
	}
	if newSlot == nil {
		return nil, ErrInvalidSlot
	}

	existing, err := u.appointmentRepo.FindActiveByDoctorDateTime(tx, appointment.DoctorID, newDate, req.AppointmentTime)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if existing != nil && existing.ID != appointment.ID {
		return nil, ErrSlotConflict
	}

	oldDate := appointment.AppointmentDate
	oldSlotID := appointment.AvailabilitySlotID

	appointment.AppointmentDate = newDate
	appointment.AppointmentTime = req.AppointmentTime
	appointment.AvailabilitySlotID = &newSlot.ID
	appointment.Status = entity.AppointmentStatusRescheduled

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, activeAppointmentConstraint) {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if oldSlotID != nil && *oldSlotID != newSlot.ID {
		if _, err := u.slotRepo.SetBooked(tx, *oldSlotID, false); err != nil {
			u.log.Warnf("Failed to release slot %d: %+v", *oldSlotID, err)
			return nil, err
		}
	}
	if _, err := u.slotRepo.SetBooked(tx, newSlot.ID, true); err != nil {
		u.log.Warnf("Failed to mark slot %d booked: %+v", newSlot.ID, err)
		return nil, err
	}

	u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentReschedule, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"new_date":       req.AppointmentDate,
		"new_time":       req.AppointmentTime,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.Invalidate(ctx, appointment.DoctorID, oldDate)
	u.slotCache.Invalidate(ctx, appointment.DoctorID, newDate)

	u.log.Infof("Appointment rescheduled: id=%s, date=%s %s", appointment.ID, req.AppointmentDate, req.AppointmentTime)
	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns all appointments for the logged-in patient
func (u *bookingUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetDoctorDay returns the logged-in doctor's appointments for one date
func (u *bookingUsecase) GetDoctorDay(ctx context.Context, date time.Time) (*dto.AppointmentListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDate(u.db.WithContext(ctx), doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
