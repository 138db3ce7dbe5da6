package usecase

import (
	"context"
	"errors"

	"sillah/internal/converter"
	"sillah/internal/delivery/dto"
	"sillah/internal/delivery/http/middleware"
	"sillah/internal/domain/repository"
	"sillah/internal/domain/risk"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientFamilyData means the user has no family members yet, so
	// no assessment can be made. Distinct from Low Risk.
	ErrInsufficientFamilyData = errors.New("no family history data available for assessment")

	ErrPatientNotAssigned = errors.New("patient is not assigned to you")
)

type RiskAssessmentUsecase interface {
	GetMyRiskAssessment(ctx context.Context) (*dto.RiskAssessmentResponse, error)
	GetPatientRiskAssessment(ctx context.Context, patientID uuid.UUID) (*dto.RiskAssessmentResponse, error)
	GetPatientFamilyMembers(ctx context.Context, patientID uuid.UUID) (*dto.FamilyMemberListResponse, error)
}

type riskAssessmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	familyMemberRepo  repository.FamilyMemberRepository
	doctorPatientRepo repository.DoctorPatientRepository
}

func NewRiskAssessmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	familyMemberRepo repository.FamilyMemberRepository,
	doctorPatientRepo repository.DoctorPatientRepository,
) RiskAssessmentUsecase {
	return &riskAssessmentUsecase{
		db:                db,
		log:               log,
		familyMemberRepo:  familyMemberRepo,
		doctorPatientRepo: doctorPatientRepo,
	}
}

// GetMyRiskAssessment computes the hereditary risk assessment for the
// logged-in patient. The assessment is derived on every call, never stored.
func (u *riskAssessmentUsecase) GetMyRiskAssessment(ctx context.Context) (*dto.RiskAssessmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	return u.assess(ctx, userID)
}

// GetPatientRiskAssessment computes the assessment for a patient under the
// logged-in doctor's care. Doctors can only see assigned patients.
func (u *riskAssessmentUsecase) GetPatientRiskAssessment(ctx context.Context, patientID uuid.UUID) (*dto.RiskAssessmentResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	assigned, err := u.doctorPatientRepo.Exists(ctx, u.db, doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to check assignment doctor=%s patient=%s: %+v", doctorID, patientID, err)
		return nil, err
	}
	if !assigned {
		return nil, ErrPatientNotAssigned
	}

	return u.assess(ctx, patientID)
}

// GetPatientFamilyMembers returns the family tree of an assigned patient,
// read-only, for the doctor's review screen
func (u *riskAssessmentUsecase) GetPatientFamilyMembers(ctx context.Context, patientID uuid.UUID) (*dto.FamilyMemberListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	assigned, err := u.doctorPatientRepo.Exists(ctx, u.db, doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to check assignment doctor=%s patient=%s: %+v", doctorID, patientID, err)
		return nil, err
	}
	if !assigned {
		return nil, ErrPatientNotAssigned
	}

	members, err := u.familyMemberRepo.FindByUserID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find family members for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.FamilyMemberListResponse{
		Members: converter.FamilyMembersToResponses(members),
		Total:   len(members),
	}, nil
}

func (u *riskAssessmentUsecase) assess(ctx context.Context, userID uuid.UUID) (*dto.RiskAssessmentResponse, error) {
	members, err := u.familyMemberRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find family members for user %s: %+v", userID, err)
		return nil, err
	}

	assessment, err := risk.Assess(members)
	if err != nil {
		if errors.Is(err, risk.ErrNoFamilyData) {
			return nil, ErrInsufficientFamilyData
		}
		return nil, err
	}

	return converter.RiskAssessmentToResponse(assessment), nil
}
