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
	ErrMedicationNotFound = errors.New("medication not found")
	ErrMedicationNotOwned = errors.New("medication does not belong to you")
)

type MedicationUsecase interface {
	GetMyMedications(ctx context.Context) (*dto.MedicationListResponse, error)
	CreateMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error)
	UpdateMedication(ctx context.Context, medicationID uuid.UUID, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error)
	DeleteMedication(ctx context.Context, medicationID uuid.UUID) error
	PrescribeMedication(ctx context.Context, req *dto.PrescribeMedicationRequest) (*dto.MedicationResponse, error)
	GetPatientMedications(ctx context.Context, patientID uuid.UUID) (*dto.MedicationListResponse, error)
}

type medicationUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	medicationRepo    repository.MedicationRepository
	doctorPatientRepo repository.DoctorPatientRepository
	auditService      AuditLogger
}

func NewMedicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicationRepo repository.MedicationRepository,
	doctorPatientRepo repository.DoctorPatientRepository,
	auditService AuditLogger,
) MedicationUsecase {
	return &medicationUsecase{
		db:                db,
		log:               log,
		medicationRepo:    medicationRepo,
		doctorPatientRepo: doctorPatientRepo,
		auditService:      auditService,
	}
}

// GetMyMedications returns all medications tracked by the logged-in patient
func (u *medicationUsecase) GetMyMedications(ctx context.Context) (*dto.MedicationListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	medications, err := u.medicationRepo.FindByPatientID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find medications for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(medications),
		Total:       len(medications),
	}, nil
}

// CreateMedication adds a self-tracked medication for the logged-in patient
func (u *medicationUsecase) CreateMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	startDate, endDate, err := parseMedicationDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	medication := &entity.Medication{
		PatientID:      userID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Notes:          req.Notes,
		StartDate:      startDate,
		EndDate:        endDate,
		IsActive:       true,
	}

	if err := u.medicationRepo.Create(ctx, u.db, medication); err != nil {
		u.log.Warnf("Failed to create medication for patient %s: %+v", userID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionMedicationCreate, "medication", medication.ID.String(), medication); err != nil {
		u.log.Warnf("Failed to audit medication creation: %+v", err)
	}

	return converter.MedicationToResponse(medication), nil
}

// UpdateMedication updates a medication owned by the logged-in patient
func (u *medicationUsecase) UpdateMedication(ctx context.Context, medicationID uuid.UUID, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	medication, err := u.medicationRepo.FindByID(ctx, u.db, medicationID)
	if err != nil {
		u.log.Warnf("Failed to find medication %s: %+v", medicationID, err)
		return nil, err
	}
	if medication == nil {
		return nil, ErrMedicationNotFound
	}
	if medication.PatientID != userID {
		return nil, ErrMedicationNotOwned
	}

	old := *medication

	if req.MedicationName != "" {
		medication.MedicationName = req.MedicationName
	}
	if req.Dosage != "" {
		medication.Dosage = req.Dosage
	}
	if req.Frequency != "" {
		medication.Frequency = req.Frequency
	}
	if req.Notes != "" {
		medication.Notes = req.Notes
	}
	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		medication.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		medication.EndDate = &endDate
	}
	if req.IsActive != nil {
		medication.IsActive = *req.IsActive
	}

	if err := u.medicationRepo.Update(ctx, u.db, medication); err != nil {
		u.log.Warnf("Failed to update medication %s: %+v", medicationID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionMedicationUpdate, "medication", medicationID.String(), old, medication); err != nil {
		u.log.Warnf("Failed to audit medication update: %+v", err)
	}

	return converter.MedicationToResponse(medication), nil
}

// DeleteMedication removes a medication owned by the logged-in patient
func (u *medicationUsecase) DeleteMedication(ctx context.Context, medicationID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	medication, err := u.medicationRepo.FindByID(ctx, u.db, medicationID)
	if err != nil {
		u.log.Warnf("Failed to find medication %s: %+v", medicationID, err)
		return err
	}
	if medication == nil {
		return ErrMedicationNotFound
	}
	if medication.PatientID != userID {
		return ErrMedicationNotOwned
	}

	if err := u.medicationRepo.Delete(ctx, u.db, medicationID); err != nil {
		u.log.Warnf("Failed to delete medication %s: %+v", medicationID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionMedicationDelete, "medication", medicationID.String(), medication); err != nil {
		u.log.Warnf("Failed to audit medication deletion: %+v", err)
	}

	return nil
}

// PrescribeMedication lets a doctor add a medication for an assigned patient.
// The prescribing doctor is recorded on the medication.
func (u *medicationUsecase) PrescribeMedication(ctx context.Context, req *dto.PrescribeMedicationRequest) (*dto.MedicationResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	assigned, err := u.doctorPatientRepo.Exists(ctx, u.db, doctorID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to check assignment doctor=%s patient=%s: %+v", doctorID, req.PatientID, err)
		return nil, err
	}
	if !assigned {
		return nil, ErrPatientNotAssigned
	}

	startDate, endDate, err := parseMedicationDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	medication := &entity.Medication{
		PatientID:      req.PatientID,
		DoctorID:       &doctorID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Notes:          req.Notes,
		StartDate:      startDate,
		EndDate:        endDate,
		IsActive:       true,
	}

	if err := u.medicationRepo.Create(ctx, u.db, medication); err != nil {
		u.log.Warnf("Failed to prescribe medication for patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionMedicationCreate, "medication", medication.ID.String(), medication); err != nil {
		u.log.Warnf("Failed to audit prescription: %+v", err)
	}

	u.log.Infof("Medication prescribed: doctor=%s patient=%s medication=%s", doctorID, req.PatientID, medication.ID)
	return converter.MedicationToResponse(medication), nil
}

// GetPatientMedications lists the medications of an assigned patient for the
// logged-in doctor
func (u *medicationUsecase) GetPatientMedications(ctx context.Context, patientID uuid.UUID) (*dto.MedicationListResponse, error) {
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

	medications, err := u.medicationRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find medications for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(medications),
		Total:       len(medications),
	}, nil
}

func parseMedicationDates(start, end string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, nil, ErrInvalidDateFormat
	}

	var endDate *time.Time
	if end != "" {
		parsed, err := time.Parse("2006-01-02", end)
		if err != nil {
			return time.Time{}, nil, ErrInvalidDateFormat
		}
		endDate = &parsed
	}

	return startDate, endDate, nil
}
