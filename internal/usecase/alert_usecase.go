package usecase

import (
	"context"
	"errors"
	"time"

	"sillah/internal/converter"
	"sillah/internal/delivery/dto"
	"sillah/internal/delivery/http/middleware"
	"sillah/internal/domain/alertgen"
	"sillah/internal/domain/entity"
	"sillah/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlertNotFound = errors.New("alert not found")
	ErrAlertNotOwned = errors.New("alert does not belong to you")
)

// AlertRefresher regenerates a user's alerts from their current family tree
// and health records. Implemented by AlertUsecase; consumed by the usecases
// that mutate the underlying data (login, family tree edits, health records)
// so the alert list keeps up without the user pressing the button.
type AlertRefresher interface {
	GenerateForUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type AlertUsecase interface {
	AlertRefresher
	GetMyAlerts(ctx context.Context) (*dto.AlertListResponse, error)
	GenerateMyAlerts(ctx context.Context) (*dto.GenerateAlertsResponse, error)
	MarkAlertRead(ctx context.Context, alertID uuid.UUID) (*dto.AlertResponse, error)
	DeleteAlert(ctx context.Context, alertID uuid.UUID) error
}

type alertUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	alertRepo        repository.AlertRepository
	familyMemberRepo repository.FamilyMemberRepository
	healthRecordRepo repository.HealthRecordRepository
	auditService     AuditLogger
}

func NewAlertUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	alertRepo repository.AlertRepository,
	familyMemberRepo repository.FamilyMemberRepository,
	healthRecordRepo repository.HealthRecordRepository,
	auditService AuditLogger,
) AlertUsecase {
	return &alertUsecase{
		db:               db,
		log:              log,
		alertRepo:        alertRepo,
		familyMemberRepo: familyMemberRepo,
		healthRecordRepo: healthRecordRepo,
		auditService:     auditService,
	}
}

// GetMyAlerts returns all alerts for the logged-in user, newest first
func (u *alertUsecase) GetMyAlerts(ctx context.Context) (*dto.AlertListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	alerts, err := u.alertRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find alerts for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.AlertsToListResponse(alerts), nil
}

// GenerateMyAlerts runs the alert generator for the logged-in user
func (u *alertUsecase) GenerateMyAlerts(ctx context.Context) (*dto.GenerateAlertsResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	generated, err := u.GenerateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateAlertsResponse{Generated: generated}, nil
}

// GenerateForUser evaluates all alert rules against the user's current data
// and persists the alerts whose category does not exist yet. Returns how many
// alerts were actually inserted.
//
// Concurrent runs are safe: the rule evaluation skips categories loaded
// before the run, and the unique index on (user_id, alert_type) catches the
// race where two runs evaluate the same missing category.
func (u *alertUsecase) GenerateForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	members, err := u.familyMemberRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to load family members for user %s: %+v", userID, err)
		return 0, err
	}

	records, err := u.healthRecordRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to load health records for user %s: %+v", userID, err)
		return 0, err
	}

	existingTypes, err := u.alertRepo.FindTypesByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to load existing alert types for user %s: %+v", userID, err)
		return 0, err
	}

	existing := make(map[string]struct{}, len(existingTypes))
	for _, t := range existingTypes {
		existing[t] = struct{}{}
	}

	alerts := alertgen.Generate(userID, members, records, existing)

	inserted := 0
	for i := range alerts {
		ok, err := u.alertRepo.Insert(ctx, u.db, &alerts[i])
		if err != nil {
			u.log.Warnf("Failed to insert alert %s for user %s: %+v", alerts[i].AlertType, userID, err)
			return inserted, err
		}
		if ok {
			inserted++
		}
	}

	if inserted > 0 {
		if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAlertsGenerate, "alert", "", map[string]interface{}{
			"generated": inserted,
		}); err != nil {
			u.log.Warnf("Failed to audit alert generation for user %s: %+v", userID, err)
		}
		u.log.Infof("Generated %d alert(s) for user %s", inserted, userID)
	}

	return inserted, nil
}

// MarkAlertRead marks one of the user's alerts as read
func (u *alertUsecase) MarkAlertRead(ctx context.Context, alertID uuid.UUID) (*dto.AlertResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	alert, err := u.alertRepo.FindByID(ctx, u.db, alertID)
	if err != nil {
		u.log.Warnf("Failed to find alert %s: %+v", alertID, err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	if alert.UserID != userID {
		return nil, ErrAlertNotOwned
	}

	if !alert.IsRead {
		alert.MarkRead(time.Now().UTC())
		if err := u.alertRepo.Update(ctx, u.db, alert); err != nil {
			u.log.Warnf("Failed to mark alert %s as read: %+v", alertID, err)
			return nil, err
		}
	}

	return converter.AlertToResponse(alert), nil
}

// DeleteAlert removes one of the user's alerts. The category becomes
// eligible for regeneration on the next generator run.
func (u *alertUsecase) DeleteAlert(ctx context.Context, alertID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	alert, err := u.alertRepo.FindByID(ctx, u.db, alertID)
	if err != nil {
		u.log.Warnf("Failed to find alert %s: %+v", alertID, err)
		return err
	}
	if alert == nil {
		return ErrAlertNotFound
	}
	if alert.UserID != userID {
		return ErrAlertNotOwned
	}

	if err := u.alertRepo.Delete(ctx, u.db, alertID); err != nil {
		u.log.Warnf("Failed to delete alert %s: %+v", alertID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionAlertDelete, "alert", alertID.String(), map[string]interface{}{
		"alert_type": alert.AlertType,
	}); err != nil {
		u.log.Warnf("Failed to audit alert deletion %s: %+v", alertID, err)
	}

	return nil
}
