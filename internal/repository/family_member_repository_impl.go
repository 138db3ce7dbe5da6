package repository

import (
	"context"
	"errors"

	"sillah/internal/domain/entity"
	domainRepo "sillah/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type familyMemberRepository struct{}

func NewFamilyMemberRepository() domainRepo.FamilyMemberRepository {
	return &familyMemberRepository{}
}

func (r *familyMemberRepository) Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *familyMemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
	var member entity.FamilyMember
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *familyMemberRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.FamilyMember, error) {
	var members []entity.FamilyMember
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *familyMemberRepository) Update(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error {
	return db.WithContext(ctx).Save(member).Error
}

func (r *familyMemberRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.FamilyMember{}).Error
}
