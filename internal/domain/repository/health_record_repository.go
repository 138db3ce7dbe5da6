package repository

import (
	"context"

	"sillah/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.PersonalHealthRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PersonalHealthRecord, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.PersonalHealthRecord, error)
	Update(ctx context.Context, db *gorm.DB, record *entity.PersonalHealthRecord) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
