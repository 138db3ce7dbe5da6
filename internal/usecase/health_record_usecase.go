package usecase

import (
	"context"
	"errors"
	"time"

	"sillah/internal/converter"
	"sillah/internal/delivery/dto"
	"sillah/internal/delivery/http/middleware"
	"sillah/internal/domain/entity"
	"sillah/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHealthRecordNotFound = errors.New("health record not found")
	ErrHealthRecordNotOwned = errors.New("health record does not belong to you")
)

type HealthRecordUsecase interface {
	GetMyHealthRecords(ctx context.Context) (*dto.HealthRecordListResponse, error)
	GetHealthRecord(ctx context.Context, recordID uuid.UUID) (*dto.HealthRecordResponse, error)
	CreateHealthRecord(ctx context.Context, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	UpdateHealthRecord(ctx context.Context, recordID uuid.UUID, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	DeleteHealthRecord(ctx context.Context, recordID uuid.UUID) error
}

type healthRecordUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	healthRecordRepo repository.HealthRecordRepository
	auditService     AuditLogger
	alertRefresher   AlertRefresher
}

func NewHealthRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	healthRecordRepo repository.HealthRecordRepository,
	auditService AuditLogger,
	alertRefresher AlertRefresher,
) HealthRecordUsecase {
	return &healthRecordUsecase{
		db:               db,
		log:              log,
		healthRecordRepo: healthRecordRepo,
		auditService:     auditService,
		alertRefresher:   alertRefresher,
	}
}

// GetMyHealthRecords returns all personal health records for the logged-in patient
func (u *healthRecordUsecase) GetMyHealthRecords(ctx context.Context) (*dto.HealthRecordListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	records, err := u.healthRecordRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find health records for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.HealthRecordListResponse{
		Records: converter.HealthRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// GetHealthRecord returns a single record owned by the logged-in patient
func (u *healthRecordUsecase) GetHealthRecord(ctx context.Context, recordID uuid.UUID) (*dto.HealthRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	record, err := u.healthRecordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find health record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrHealthRecordNotFound
	}
	if record.UserID != userID {
		return nil, ErrHealthRecordNotOwned
	}

	return converter.HealthRecordToResponse(record), nil
}

// CreateHealthRecord adds a personal health record for the logged-in patient
func (u *healthRecordUsecase) CreateHealthRecord(ctx context.Context, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	riskLevel := entity.RiskLevel(req.RiskLevel)
	if riskLevel == "" {
		riskLevel = entity.RiskLevelNone
	}

	record := &entity.PersonalHealthRecord{
		UserID:         userID,
		RecordType:     entity.RecordType(req.RecordType),
		RiskLevel:      riskLevel,
		Notes:          req.Notes,
		IsChronic:      req.IsChronic,
		StructuredData: req.StructuredData,
	}

	if err := u.healthRecordRepo.Create(ctx, u.db, record); err != nil {
		u.log.Warnf("Failed to create health record for user %s: %+v", userID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionHealthRecordCreate, "health_record", record.ID.String(), record); err != nil {
		u.log.Warnf("Failed to audit health record creation: %+v", err)
	}

	u.refreshAlerts(userID)

	return converter.HealthRecordToResponse(record), nil
}

// UpdateHealthRecord updates a record owned by the logged-in patient
func (u *healthRecordUsecase) UpdateHealthRecord(ctx context.Context, recordID uuid.UUID, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	record, err := u.healthRecordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find health record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrHealthRecordNotFound
	}
	if record.UserID != userID {
		return nil, ErrHealthRecordNotOwned
	}

	old := *record

	if req.RecordType != "" {
		record.RecordType = entity.RecordType(req.RecordType)
	}
	if req.RiskLevel != "" {
		record.RiskLevel = entity.RiskLevel(req.RiskLevel)
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}
	if req.IsChronic != nil {
		record.IsChronic = *req.IsChronic
	}
	if req.StructuredData != nil {
		record.StructuredData = req.StructuredData
	}

	if err := u.healthRecordRepo.Update(ctx, u.db, record); err != nil {
		u.log.Warnf("Failed to update health record %s: %+v", recordID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionHealthRecordUpdate, "health_record", recordID.String(), old, record); err != nil {
		u.log.Warnf("Failed to audit health record update: %+v", err)
	}

	u.refreshAlerts(userID)

	return converter.HealthRecordToResponse(record), nil
}

// DeleteHealthRecord removes a record owned by the logged-in patient
func (u *healthRecordUsecase) DeleteHealthRecord(ctx context.Context, recordID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	record, err := u.healthRecordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find health record %s: %+v", recordID, err)
		return err
	}
	if record == nil {
		return ErrHealthRecordNotFound
	}
	if record.UserID != userID {
		return ErrHealthRecordNotOwned
	}

	if err := u.healthRecordRepo.Delete(ctx, u.db, recordID); err != nil {
		u.log.Warnf("Failed to delete health record %s: %+v", recordID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionHealthRecordDelete, "health_record", recordID.String(), record); err != nil {
		u.log.Warnf("Failed to audit health record deletion: %+v", err)
	}

	u.refreshAlerts(userID)

	return nil
}

func (u *healthRecordUsecase) refreshAlerts(userID uuid.UUID) {
	if u.alertRefresher == nil {
		return
	}
	go func() {
		genCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := u.alertRefresher.GenerateForUser(genCtx, userID); err != nil {
			u.log.Warnf("Failed to refresh alerts for user %s: %+v", userID, err)
		}
	}()
}
