package model

import "time"

// Membership event types written to the outbox.
const (
	EventCommunityCreated = "community_created"
	EventMemberAdded      = "member_added"
	EventMemberRemoved    = "member_removed"
)

// MembershipOutbox records membership events in the same transaction as the
// mutation that produced them; a relayer delivers them asynchronously.
type MembershipOutbox struct {
	ID          string `gorm:"primaryKey;size:36"`
	EventType   string `gorm:"size:32;not null"`
	CommunityID string `gorm:"not null;index;size:36"`
	UserID      string `gorm:"not null;size:36"`
	Payload     string `gorm:"type:json;not null"`
	Status      int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry       int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MembershipOutbox) TableName() string { return "membership_outbox" }
