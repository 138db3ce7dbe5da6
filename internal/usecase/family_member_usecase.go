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
	ErrFamilyMemberNotFound = errors.New("family member not found")
	ErrFamilyMemberNotOwned = errors.New("family member does not belong to you")
)

type FamilyMemberUsecase interface {
	GetMyFamilyMembers(ctx context.Context) (*dto.FamilyMemberListResponse, error)
	GetFamilyMember(ctx context.Context, memberID uuid.UUID) (*dto.FamilyMemberResponse, error)
	CreateFamilyMember(ctx context.Context, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	UpdateFamilyMember(ctx context.Context, memberID uuid.UUID, req *dto.UpdateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	DeleteFamilyMember(ctx context.Context, memberID uuid.UUID) error
}

type familyMemberUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	familyMemberRepo repository.FamilyMemberRepository
	auditService     AuditLogger
	alertRefresher   AlertRefresher
}

func NewFamilyMemberUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	familyMemberRepo repository.FamilyMemberRepository,
	auditService AuditLogger,
	alertRefresher AlertRefresher,
) FamilyMemberUsecase {
	return &familyMemberUsecase{
		db:               db,
		log:              log,
		familyMemberRepo: familyMemberRepo,
		auditService:     auditService,
		alertRefresher:   alertRefresher,
	}
}

// GetMyFamilyMembers returns the complete family tree of the logged-in patient
func (u *familyMemberUsecase) GetMyFamilyMembers(ctx context.Context) (*dto.FamilyMemberListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	members, err := u.familyMemberRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find family members for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.FamilyMemberListResponse{
		Members: converter.FamilyMembersToResponses(members),
		Total:   len(members),
	}, nil
}

// GetFamilyMember returns a single relative owned by the logged-in patient
func (u *familyMemberUsecase) GetFamilyMember(ctx context.Context, memberID uuid.UUID) (*dto.FamilyMemberResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	member, err := u.familyMemberRepo.FindByID(ctx, u.db, memberID)
	if err != nil {
		u.log.Warnf("Failed to find family member %s: %+v", memberID, err)
		return nil, err
	}
	if member == nil {
		return nil, ErrFamilyMemberNotFound
	}
	if member.UserID != userID {
		return nil, ErrFamilyMemberNotOwned
	}

	return converter.FamilyMemberToResponse(member), nil
}

// CreateFamilyMember adds a relative to the patient's family tree. The
// health status is stored as submitted; bucketing happens at assessment time.
func (u *familyMemberUsecase) CreateFamilyMember(ctx context.Context, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	member := &entity.FamilyMember{
		UserID:       userID,
		FullName:     req.FullName,
		Relationship: req.Relationship,
		Age:          req.Age,
		HealthStatus: req.HealthStatus,
		Conditions:   req.Conditions,
		DiagnosisAge: req.DiagnosisAge,
		MedicalNotes: req.MedicalNotes,
	}

	if err := u.familyMemberRepo.Create(ctx, u.db, member); err != nil {
		u.log.Warnf("Failed to create family member for user %s: %+v", userID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionFamilyMemberCreate, "family_member", member.ID.String(), member); err != nil {
		u.log.Warnf("Failed to audit family member creation: %+v", err)
	}

	u.refreshAlerts(userID)

	return converter.FamilyMemberToResponse(member), nil
}

// UpdateFamilyMember updates a relative owned by the logged-in patient.
// Only submitted fields change; zero values mean "leave as is" except for
// pointer fields which overwrite when present.
func (u *familyMemberUsecase) UpdateFamilyMember(ctx context.Context, memberID uuid.UUID, req *dto.UpdateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	member, err := u.familyMemberRepo.FindByID(ctx, u.db, memberID)
	if err != nil {
		u.log.Warnf("Failed to find family member %s: %+v", memberID, err)
		return nil, err
	}
	if member == nil {
		return nil, ErrFamilyMemberNotFound
	}
	if member.UserID != userID {
		return nil, ErrFamilyMemberNotOwned
	}

	old := *member

	if req.FullName != "" {
		member.FullName = req.FullName
	}
	if req.Relationship != "" {
		member.Relationship = req.Relationship
	}
	if req.Age != nil {
		member.Age = req.Age
	}
	if req.HealthStatus != "" {
		member.HealthStatus = req.HealthStatus
	}
	if req.Conditions != nil {
		member.Conditions = req.Conditions
	}
	if req.DiagnosisAge != nil {
		member.DiagnosisAge = req.DiagnosisAge
	}
	if req.MedicalNotes != "" {
		member.MedicalNotes = req.MedicalNotes
	}

	if err := u.familyMemberRepo.Update(ctx, u.db, member); err != nil {
		u.log.Warnf("Failed to update family member %s: %+v", memberID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionFamilyMemberUpdate, "family_member", memberID.String(), old, member); err != nil {
		u.log.Warnf("Failed to audit family member update: %+v", err)
	}

	u.refreshAlerts(userID)

	return converter.FamilyMemberToResponse(member), nil
}

// DeleteFamilyMember removes a relative owned by the logged-in patient
func (u *familyMemberUsecase) DeleteFamilyMember(ctx context.Context, memberID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	member, err := u.familyMemberRepo.FindByID(ctx, u.db, memberID)
	if err != nil {
		u.log.Warnf("Failed to find family member %s: %+v", memberID, err)
		return err
	}
	if member == nil {
		return ErrFamilyMemberNotFound
	}
	if member.UserID != userID {
		return ErrFamilyMemberNotOwned
	}

	if err := u.familyMemberRepo.Delete(ctx, u.db, memberID); err != nil {
		u.log.Warnf("Failed to delete family member %s: %+v", memberID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionFamilyMemberDelete, "family_member", memberID.String(), member); err != nil {
		u.log.Warnf("Failed to audit family member deletion: %+v", err)
	}

	u.refreshAlerts(userID)

	return nil
}

// refreshAlerts regenerates the user's alerts after a family tree change.
// Best effort in the background so the mutation response is not delayed.
func (u *familyMemberUsecase) refreshAlerts(userID uuid.UUID) {
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
