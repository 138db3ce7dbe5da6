package repository

import (
	"context"

	"sillah/internal/domain/entity"
	domainRepo "sillah/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorPatientRepository struct{}

func NewDoctorPatientRepository() domainRepo.DoctorPatientRepository {
	return &doctorPatientRepository{}
}

func (r *doctorPatientRepository) Assign(ctx context.Context, db *gorm.DB, assignment *entity.DoctorPatient) error {
	// Re-assigning an existing pair is a no-op
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(assignment).Error
}

func (r *doctorPatientRepository) Exists(ctx context.Context, db *gorm.DB, doctorID, patientID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.DoctorPatient{}).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorPatientRepository) FindPatientsByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientProfile, error) {
	var patients []entity.PatientProfile
	err := db.WithContext(ctx).
		Joins("JOIN doctor_patients ON doctor_patients.patient_id = patient_profiles.user_id").
		Where("doctor_patients.doctor_id = ?", doctorID).
		Preload("User").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *doctorPatientRepository) Remove(ctx context.Context, db *gorm.DB, doctorID, patientID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Delete(&entity.DoctorPatient{}).Error
}
