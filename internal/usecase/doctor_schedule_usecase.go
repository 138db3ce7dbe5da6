package usecase

import (
	"context"
	"errors"
	"strconv"
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
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInvalidScheduleDate = errors.New("invalid schedule date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
)

type DoctorScheduleUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error)
	GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	GetAllSchedules(ctx context.Context) (*dto.ScheduleListResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, scheduleID int) error
}

type doctorScheduleUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	scheduleRepo      repository.DoctorScheduleRepository
	doctorProfileRepo repository.DoctorProfileRepository
	scheduleSync      *service.ScheduleSyncService
	auditService      AuditLogger
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	scheduleSync *service.ScheduleSyncService,
	auditService AuditLogger,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:                db,
		log:               log,
		scheduleRepo:      scheduleRepo,
		doctorProfileRepo: doctorProfileRepo,
		scheduleSync:      scheduleSync,
		auditService:      auditService,
	}
}

func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	// Validate doctor exists
	doctor, err := u.doctorProfileRepo.FindByUserID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Parse schedule date
	scheduleDate, err := time.Parse("2006-01-02", req.ScheduleDate)
	if err != nil {
		return nil, ErrInvalidScheduleDate
	}

	// Validate time format
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", req.EndTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	schedule := &entity.DoctorSchedule{
		DoctorID:     req.DoctorID,
		ScheduleDate: scheduleDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		TotalQuota:   req.TotalQuota,
	}

	if err := u.scheduleRepo.Create(ctx, u.db, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	// Seed the Redis quota counters for the new schedule
	if err := u.scheduleSync.SyncScheduleQuota(ctx, schedule.ID, schedule.TotalQuota, schedule.ScheduleDate); err != nil {
		u.log.Warnf("Failed to sync Redis for new schedule %d (non-fatal): %+v", schedule.ID, err)
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionScheduleCreate, "schedule", strconv.Itoa(schedule.ID), schedule); err != nil {
			u.log.Warnf("Failed to audit schedule creation: %+v", err)
		}
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *doctorScheduleUsecase) GetAllSchedules(ctx context.Context) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *doctorScheduleUsecase) UpdateSchedule(ctx context.Context, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	old := *schedule
	quotaDelta := 0

	// Update fields
	if req.ScheduleDate != "" {
		scheduleDate, err := time.Parse("2006-01-02", req.ScheduleDate)
		if err != nil {
			return nil, ErrInvalidScheduleDate
		}
		schedule.ScheduleDate = scheduleDate
	}
	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		if _, err := time.Parse("15:04", req.EndTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		schedule.EndTime = req.EndTime
	}
	if req.TotalQuota != nil {
		quotaDelta = *req.TotalQuota - schedule.TotalQuota
		schedule.TotalQuota = *req.TotalQuota
	}

	if err := u.scheduleRepo.Update(ctx, u.db, schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	// Propagate the quota change to the Redis counter
	if quotaDelta != 0 {
		if err := u.scheduleSync.UpdateScheduleQuotaDelta(ctx, scheduleID, quotaDelta, schedule.ScheduleDate); err != nil {
			u.log.Warnf("Failed to update Redis quota for schedule %d (non-fatal): %+v", scheduleID, err)
		}
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionScheduleUpdate, "schedule", strconv.Itoa(scheduleID), old, schedule); err != nil {
			u.log.Warnf("Failed to audit schedule update: %+v", err)
		}
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID int) error {
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	if err := u.scheduleRepo.Delete(ctx, u.db, scheduleID); err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}

	// Drop the Redis counters so the schedule can't take bookings anymore
	if err := u.scheduleSync.DeleteScheduleKeys(ctx, scheduleID); err != nil {
		u.log.Warnf("Failed to delete Redis keys for schedule %d (non-fatal): %+v", scheduleID, err)
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionScheduleDelete, "schedule", strconv.Itoa(scheduleID), schedule); err != nil {
			u.log.Warnf("Failed to audit schedule deletion: %+v", err)
		}
	}

	return nil
}
