package repository

import (
	"context"
	"errors"

	"sillah/internal/domain/entity"
	domainRepo "sillah/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicationRepository struct{}

func NewMedicationRepository() domainRepo.MedicationRepository {
	return &medicationRepository{}
}

func (r *medicationRepository) Create(ctx context.Context, db *gorm.DB, medication *entity.Medication) error {
	return db.WithContext(ctx).Create(medication).Error
}

func (r *medicationRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Medication, error) {
	var medication entity.Medication
	err := db.WithContext(ctx).Where("id = ?", id).First(&medication).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medication, nil
}

func (r *medicationRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("start_date DESC").Find(&medications).Error
	if err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("start_date DESC").Find(&medications).Error
	if err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) Update(ctx context.Context, db *gorm.DB, medication *entity.Medication) error {
	return db.WithContext(ctx).Save(medication).Error
}

func (r *medicationRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Medication{}).Error
}
