package repository

import (
	"context"
	"errors"

	"sillah/internal/domain/entity"
	domainRepo "sillah/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthRecordRepository struct{}

func NewHealthRecordRepository() domainRepo.HealthRecordRepository {
	return &healthRecordRepository{}
}

func (r *healthRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.PersonalHealthRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *healthRecordRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PersonalHealthRecord, error) {
	var record entity.PersonalHealthRecord
	err := db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *healthRecordRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.PersonalHealthRecord, error) {
	var records []entity.PersonalHealthRecord
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) Update(ctx context.Context, db *gorm.DB, record *entity.PersonalHealthRecord) error {
	return db.WithContext(ctx).Save(record).Error
}

func (r *healthRecordRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PersonalHealthRecord{}).Error
}
