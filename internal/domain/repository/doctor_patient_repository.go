package repository

import (
	"context"

	"sillah/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorPatientRepository interface {
	Assign(ctx context.Context, db *gorm.DB, assignment *entity.DoctorPatient) error
	Exists(ctx context.Context, db *gorm.DB, doctorID, patientID uuid.UUID) (bool, error)
	FindPatientsByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientProfile, error)
	Remove(ctx context.Context, db *gorm.DB, doctorID, patientID uuid.UUID) error
}
