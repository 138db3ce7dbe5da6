package repository

import (
	"context"

	"sillah/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyMemberRepository interface {
	Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.FamilyMember, error)
	Update(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
