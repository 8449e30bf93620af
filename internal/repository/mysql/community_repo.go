package mysql

import (
	"context"

	"communityhub/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// CreateWithOwner writes the community, its owner's admin membership and the
// creation event in one transaction, so a community can never exist without
// an admin member.
func (r *CommunityRepository) CreateWithOwner(ctx context.Context, c *model.Community, m *model.Member, ob *model.MembershipOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Create(ob).Error
	})
}

func (r *CommunityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	var community model.Community
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *CommunityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Community{}).Count(&count).Error
	return count, err
}

// ListWithOwner pages through all communities with the owner's safe fields
// joined in.
func (r *CommunityRepository) ListWithOwner(ctx context.Context, offset, limit int) ([]model.CommunityOwner, error) {
	var rows []model.CommunityOwner
	err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Select("communities.*, users.name AS owner_name").
		Joins("LEFT JOIN users ON users.id = communities.owner_id").
		Order("communities.created_at ASC, communities.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *CommunityRepository) CountOwned(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *CommunityRepository) ListOwned(ctx context.Context, ownerID string, offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *CommunityRepository) CountJoined(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Joins("JOIN members ON members.community_id = communities.id").
		Where("members.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListJoinedWithOwner pages through the communities the user holds a
// membership in, owner expanded.
func (r *CommunityRepository) ListJoinedWithOwner(ctx context.Context, userID string, offset, limit int) ([]model.CommunityOwner, error) {
	var rows []model.CommunityOwner
	err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Select("communities.*, users.name AS owner_name").
		Joins("JOIN members ON members.community_id = communities.id").
		Joins("LEFT JOIN users ON users.id = communities.owner_id").
		Where("members.user_id = ?", userID).
		Order("communities.created_at ASC, communities.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
