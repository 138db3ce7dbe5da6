package usecase

import (
	"context"
	"errors"

	"sillah/internal/converter"
	"sillah/internal/delivery/dto"
	"sillah/internal/delivery/http/middleware"
	"sillah/internal/domain/entity"
	"sillah/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrAssignmentNotFound = errors.New("patient is not assigned to this doctor")
)

type DoctorPatientUsecase interface {
	GetMyPatients(ctx context.Context) (*dto.PatientListResponse, error)
	AssignPatient(ctx context.Context, req *dto.AssignPatientRequest) error
	UnassignPatient(ctx context.Context, req *dto.AssignPatientRequest) error
}

type doctorPatientUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorPatientRepo  repository.DoctorPatientRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       AuditLogger
}

func NewDoctorPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorPatientRepo repository.DoctorPatientRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService AuditLogger,
) DoctorPatientUsecase {
	return &doctorPatientUsecase{
		db:                 db,
		log:                log,
		doctorPatientRepo:  doctorPatientRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

// GetMyPatients returns all patients assigned to the logged-in doctor
func (u *doctorPatientUsecase) GetMyPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	patients, err := u.doctorPatientRepo.FindPatientsByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find patients for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(patients),
		Total:    len(patients),
	}, nil
}

// AssignPatient puts a patient under a doctor's care. Idempotent: assigning
// an already assigned pair is a no-op.
func (u *doctorPatientUsecase) AssignPatient(ctx context.Context, req *dto.AssignPatientRequest) error {
	doctor, err := u.doctorProfileRepo.FindByUserID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	patient, err := u.patientProfileRepo.FindByUserID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	assignment := &entity.DoctorPatient{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
	}

	if err := u.doctorPatientRepo.Assign(ctx, u.db, assignment); err != nil {
		u.log.Warnf("Failed to assign patient %s to doctor %s: %+v", req.PatientID, req.DoctorID, err)
		return err
	}

	if adminID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &adminID, entity.AuditActionPatientAssign, "doctor_patient", "", assignment); err != nil {
			u.log.Warnf("Failed to audit patient assignment: %+v", err)
		}
	}

	u.log.Infof("Patient %s assigned to doctor %s", req.PatientID, req.DoctorID)
	return nil
}

// UnassignPatient removes a patient from a doctor's care
func (u *doctorPatientUsecase) UnassignPatient(ctx context.Context, req *dto.AssignPatientRequest) error {
	assigned, err := u.doctorPatientRepo.Exists(ctx, u.db, req.DoctorID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to check assignment doctor=%s patient=%s: %+v", req.DoctorID, req.PatientID, err)
		return err
	}
	if !assigned {
		return ErrAssignmentNotFound
	}

	if err := u.doctorPatientRepo.Remove(ctx, u.db, req.DoctorID, req.PatientID); err != nil {
		u.log.Warnf("Failed to unassign patient %s from doctor %s: %+v", req.PatientID, req.DoctorID, err)
		return err
	}

	if adminID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &adminID, entity.AuditActionPatientUnassign, "doctor_patient", "", req); err != nil {
			u.log.Warnf("Failed to audit patient unassignment: %+v", err)
		}
	}

	u.log.Infof("Patient %s unassigned from doctor %s", req.PatientID, req.DoctorID)
	return nil
}
