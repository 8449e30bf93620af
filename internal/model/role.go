package model

import "time"

// Seeded role names the membership checks are keyed on.
const (
	RoleCommunityAdmin     = "Community Admin"
	RoleCommunityModerator = "Community Moderator"
)

type Role struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"uniqueIndex;size:64;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
