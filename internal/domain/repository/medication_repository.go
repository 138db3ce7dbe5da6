package repository

import (
	"context"

	"sillah/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicationRepository interface {
	Create(ctx context.Context, db *gorm.DB, medication *entity.Medication) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Medication, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Medication, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Medication, error)
	Update(ctx context.Context, db *gorm.DB, medication *entity.Medication) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
