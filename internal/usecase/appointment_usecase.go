package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"sillah/internal/converter"
	"sillah/internal/delivery/dto"
	"sillah/internal/delivery/http/middleware"
	"sillah/internal/domain/entity"
	"sillah/internal/domain/repository"
	"sillah/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAlreadyBooked               = errors.New("you have already booked this schedule")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentNotOwned         = errors.New("appointment does not belong to you")
	ErrAppointmentNotPending       = errors.New("only pending appointments can be confirmed")
	ErrSchedulePast                = errors.New("cannot book a past schedule")
	ErrScheduleNotOwned            = errors.New("schedule does not belong to you")
)

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.DoctorScheduleRepository
	scheduleSync    *service.ScheduleSyncService
	auditService    AuditLogger
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	scheduleSync *service.ScheduleSyncService,
	auditService AuditLogger,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		scheduleSync:    scheduleSync,
		auditService:    auditService,
	}
}

// GetMyAppointments returns all appointments for the logged-in patient
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// BookAppointment books a slot on a doctor schedule with the Redis-first
// reservation approach.
//
// Flow:
// 1. Validate schedule exists and is not in the past
// 2. Check patient hasn't already booked this schedule
// 3. Redis DecrQuotaAndIncrQueue (atomic slot reservation)
// 4. Generate appointment code
// 5. Insert appointment to DB
// 6. If DB fails -> compensate: RestoreQuota in Redis
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	// Step 1: Validate schedule exists
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, req.ScheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", req.ScheduleID, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	// Validate schedule is not in the past
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if schedule.ScheduleDate.Before(today) {
		return nil, ErrSchedulePast
	}

	// Step 2: Check patient hasn't already booked this schedule
	existing, err := u.appointmentRepo.FindByPatientAndSchedule(ctx, u.db, userID, req.ScheduleID)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyBooked
	}

	// Step 3: Redis atomic slot reservation. Booking bursts hit Redis
	// instead of row locks in the database.
	queueNumber, err := u.scheduleSync.DecrQuotaAndIncrQueue(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, service.ErrQuotaFull) {
			return nil, service.ErrQuotaFull
		}
		u.log.Warnf("Failed Redis slot reservation for schedule %d: %+v", req.ScheduleID, err)
		return nil, err
	}

	// Step 4: Generate appointment code
	appointmentCode := generateAppointmentCode(schedule.ScheduleDate)

	// Step 5: Insert appointment to DB
	appointment := &entity.Appointment{
		PatientID:       userID,
		ScheduleID:      req.ScheduleID,
		AppointmentCode: appointmentCode,
		QueueNumber:     queueNumber,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Errorf("Failed to insert appointment to DB, compensating Redis: %+v", err)

		// Step 6: COMPENSATE - restore Redis quota since DB insert failed
		syncCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if restoreErr := u.scheduleSync.RestoreQuota(syncCtx, req.ScheduleID); restoreErr != nil {
			u.log.Errorf("CRITICAL: Failed to restore Redis quota after DB failure for schedule %d: %+v", req.ScheduleID, restoreErr)
		}

		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment); err != nil {
		u.log.Warnf("Failed to audit appointment creation: %+v", err)
	}

	// Reload appointment with schedule+doctor info for the response
	fullAppointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointment.ID)
	if err != nil || fullAppointment == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment booked: id=%s, schedule=%d, queue=%d, code=%s", appointment.ID, req.ScheduleID, queueNumber, appointmentCode)
	return converter.AppointmentToResponse(fullAppointment), nil
}

// CancelAppointment cancels an appointment and restores the schedule slot.
// Queue numbers are never reused.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != userID {
		return ErrAppointmentNotOwned
	}
	if appointment.IsCancelled() {
		return ErrAppointmentAlreadyCancelled
	}

	if err := u.appointmentRepo.UpdateStatus(ctx, u.db, appointmentID, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}

	// Restore quota in Redis; non-fatal, the startup sync repairs drift
	syncCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.scheduleSync.RestoreQuota(syncCtx, appointment.ScheduleID); err != nil {
		u.log.Warnf("Failed to restore Redis quota for schedule %d (non-fatal): %+v", appointment.ScheduleID, err)
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), appointment.Status, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to audit appointment cancellation: %+v", err)
	}

	u.log.Infof("Appointment cancelled: id=%s, schedule=%d", appointmentID, appointment.ScheduleID)
	return nil
}

// ConfirmAppointment lets the doctor who owns the schedule confirm a
// pending appointment
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.Schedule.DoctorID != doctorID {
		return nil, ErrScheduleNotOwned
	}
	if !appointment.IsPending() {
		return nil, ErrAppointmentNotPending
	}

	if err := u.appointmentRepo.UpdateStatus(ctx, u.db, appointmentID, entity.AppointmentStatusConfirmed); err != nil {
		u.log.Warnf("Failed to confirm appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionAppointmentConfirm, "appointment", appointmentID.String(), appointment.Status, entity.AppointmentStatusConfirmed); err != nil {
		u.log.Warnf("Failed to audit appointment confirmation: %+v", err)
	}

	appointment.Confirm()
	u.log.Infof("Appointment confirmed: id=%s by doctor=%s", appointmentID, doctorID)
	return converter.AppointmentToResponse(appointment), nil
}

// generateAppointmentCode generates a unique appointment code: AP-YYYYMMDD-XXXXXX
func generateAppointmentCode(scheduleDate time.Time) string {
	dateStr := scheduleDate.Format("20060102")
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	randomStr := fmt.Sprintf("%06X", randomBytes)
	return fmt.Sprintf("AP-%s-%s", dateStr, randomStr)
}
