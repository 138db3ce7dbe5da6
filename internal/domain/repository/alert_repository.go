package repository

import (
	"context"

	"sillah/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertRepository interface {
	// Insert persists a generated alert. Returns false when an alert of the
	// same type already exists for the user (the insert is skipped, not an
	// error), which keeps the at-most-one-per-category invariant under
	// concurrent generation runs.
	Insert(ctx context.Context, db *gorm.DB, alert *entity.Alert) (bool, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Alert, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Alert, error)
	FindTypesByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error)
	Update(ctx context.Context, db *gorm.DB, alert *entity.Alert) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
