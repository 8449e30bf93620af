package model

import "time"

type Member struct {
	ID          string `gorm:"primaryKey;size:36"`
	CommunityID string `gorm:"not null;index;size:36;uniqueIndex:uk_community_user"`
	UserID      string `gorm:"not null;index;size:36;uniqueIndex:uk_community_user"`
	RoleID      string `gorm:"not null;size:36"`
	CreatedAt   time.Time
}

func (Member) TableName() string {
	return "members"
}

// MemberDetail is a membership row joined with the safe subset of its user
// and role records.
type MemberDetail struct {
	ID          string
	CommunityID string
	UserID      string
	UserName    string
	RoleID      string
	RoleName    string
	CreatedAt   time.Time
}
