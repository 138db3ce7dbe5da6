package repository

import (
	"context"
	"errors"

	"sillah/internal/domain/entity"
	domainRepo "sillah/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type alertRepository struct{}

func NewAlertRepository() domainRepo.AlertRepository {
	return &alertRepository{}
}

// Insert creates the alert unless one of the same type already exists for the
// user. The ON CONFLICT DO NOTHING against the (user_id, alert_type) unique
// index makes concurrent generation runs safe without serializing them.
func (r *alertRepository) Insert(ctx context.Context, db *gorm.DB, alert *entity.Alert) (bool, error) {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "alert_type"}},
		DoNothing: true,
	}).Create(alert)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *alertRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Alert, error) {
	var alert entity.Alert
	err := db.WithContext(ctx).Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) FindTypesByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var types []string
	err := db.WithContext(ctx).Model(&entity.Alert{}).
		Where("user_id = ?", userID).
		Pluck("alert_type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *alertRepository) Update(ctx context.Context, db *gorm.DB, alert *entity.Alert) error {
	return db.WithContext(ctx).Save(alert).Error
}

func (r *alertRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Alert{}).Error
}
