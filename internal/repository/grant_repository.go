package repository

import (
	"context"

	"lello/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GrantRepository stores per-instance capability grants.
type GrantRepository struct {
	db *gorm.DB
}

func NewGrantRepository(db *gorm.DB) *GrantRepository {
	return &GrantRepository{db: db}
}

// Grant gives userID the capability over instanceID. Granting twice is a no-op.
func (r *GrantRepository) Grant(ctx context.Context, capability model.Capability, userID, instanceID uuid.UUID) error {
	grant := model.CapabilityGrant{
		Capability: capability,
		UserID:     userID,
		InstanceID: instanceID,
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&grant).Error
}

// Check reports whether userID holds the capability over instanceID.
func (r *GrantRepository) Check(ctx context.Context, capability model.Capability, userID, instanceID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CapabilityGrant{}).
		Where("capability = ? AND user_id = ? AND instance_id = ?", string(capability), userID, instanceID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Revoke removes every capability userID holds over instanceID.
func (r *GrantRepository) Revoke(ctx context.Context, userID, instanceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND instance_id = ?", userID, instanceID).
		Delete(&model.CapabilityGrant{}).Error
}

// RevokeInstance drops all grants scoped to instanceID.
func (r *GrantRepository) RevokeInstance(ctx context.Context, instanceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("instance_id = ?", instanceID).
		Delete(&model.CapabilityGrant{}).Error
}

// ForInstance lists the grants scoped to instanceID with their users.
func (r *GrantRepository) ForInstance(ctx context.Context, instanceID uuid.UUID) ([]model.CapabilityGrant, error) {
	var grants []model.CapabilityGrant
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("instance_id = ?", instanceID).
		Order("created_at").
		Find(&grants).Error
	return grants, err
}
