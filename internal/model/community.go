package model

import "time"

type Community struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:128;not null"`
	Slug      string `gorm:"uniqueIndex;size:255;not null"`
	OwnerID   string `gorm:"not null;index;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommunityOwner is a community row joined with the safe subset of its
// owner's user record. Email and password never appear here.
type CommunityOwner struct {
	ID        string
	Name      string
	Slug      string
	OwnerID   string
	OwnerName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
