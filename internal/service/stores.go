package service

import (
	"context"

	"communityhub/internal/model"
)

// Store interfaces consumed by the services. The mysql repositories satisfy
// them in production; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type RoleStore interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id string) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.Role, error)
}

type CommunityStore interface {
	CreateWithOwner(ctx context.Context, c *model.Community, m *model.Member, ob *model.MembershipOutbox) error
	FindByID(ctx context.Context, id string) (*model.Community, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int64, error)
	ListWithOwner(ctx context.Context, offset, limit int) ([]model.CommunityOwner, error)
	CountOwned(ctx context.Context, ownerID string) (int64, error)
	ListOwned(ctx context.Context, ownerID string, offset, limit int) ([]model.Community, error)
	CountJoined(ctx context.Context, userID string) (int64, error)
	ListJoinedWithOwner(ctx context.Context, userID string, offset, limit int) ([]model.CommunityOwner, error)
}

type MemberStore interface {
	CreateWithEvent(ctx context.Context, m *model.Member, ob *model.MembershipOutbox) error
	DeleteWithEvent(ctx context.Context, id string, ob *model.MembershipOutbox) (int64, error)
	FindByID(ctx context.Context, id string) (*model.Member, error)
	Exists(ctx context.Context, communityID, userID string) (bool, error)
	FindRoleName(ctx context.Context, communityID, userID string) (string, bool, error)
	CountByCommunity(ctx context.Context, communityID string) (int64, error)
	ListDetails(ctx context.Context, communityID string, offset, limit int) ([]model.MemberDetail, error)
}

type OutboxStore interface {
	List(ctx context.Context, batchSize int) ([]model.MembershipOutbox, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

type SessionStore interface {
	AddUserToken(ctx context.Context, userID, token string) error
	DeleteUserToken(ctx context.Context, userID string) error
}

// Mailer sends transactional mail; a nil Mailer disables it.
type Mailer interface {
	SendWelcome(to, name string) error
}
