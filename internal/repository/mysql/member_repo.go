package mysql

import (
	"context"
	"database/sql"
	"errors"

	"communityhub/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

// CreateWithEvent inserts the membership and its outbox event together.
func (r *MemberRepository) CreateWithEvent(ctx context.Context, m *model.Member, ob *model.MembershipOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Create(ob).Error
	})
}

// DeleteWithEvent removes the membership and records the event in one
// transaction. Returns the number of deleted rows; 0 means the membership
// was already gone and nothing is written.
func (r *MemberRepository) DeleteWithEvent(ctx context.Context, id string, ob *model.MembershipOutbox) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Member{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Create(ob).Error
	})
	return affected, err
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&member).Error
	return &member, err
}

func (r *MemberRepository) Exists(ctx context.Context, communityID, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

// FindRoleName resolves the role name held by a user within a community via
// a members-roles join. found is false when no membership row exists; a
// dangling role reference yields found=true with an empty name.
func (r *MemberRepository) FindRoleName(ctx context.Context, communityID, userID string) (string, bool, error) {
	var row struct {
		RoleName sql.NullString
	}
	err := r.DB.WithContext(ctx).Table("members").
		Select("roles.name AS role_name").
		Joins("LEFT JOIN roles ON roles.id = members.role_id").
		Where("members.community_id = ? AND members.user_id = ?", communityID, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.RoleName.String, true, nil
}

func (r *MemberRepository) CountByCommunity(ctx context.Context, communityID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}

// ListDetails pages through a community's memberships with user and role
// safe fields joined in.
func (r *MemberRepository) ListDetails(ctx context.Context, communityID string, offset, limit int) ([]model.MemberDetail, error) {
	var rows []model.MemberDetail
	err := r.DB.WithContext(ctx).Model(&model.Member{}).
		Select("members.*, users.name AS user_name, roles.name AS role_name").
		Joins("LEFT JOIN users ON users.id = members.user_id").
		Joins("LEFT JOIN roles ON roles.id = members.role_id").
		Where("members.community_id = ?", communityID).
		Order("members.created_at ASC, members.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
