package service

import (
	"context"
	"testing"

	"communityhub/internal/model"
	"communityhub/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberFixture struct {
	db          *fakeDB
	svc         *MemberService
	adminRoleID string
	modRoleID   string
	community   string
	admin       string
	moderator   string
	plain       string
	outsider    string
}

func newMemberFixture(t *testing.T) *memberFixture {
	t.Helper()
	db := newFakeDB()
	adminRoleID, modRoleID := seedCatalog(db)

	fx := &memberFixture{
		db:          db,
		svc:         NewMemberService(fakeMembers{db: db}, fakeCommunities{db: db}, db, fakeRoles{db: db}),
		adminRoleID: adminRoleID,
		modRoleID:   modRoleID,
		admin:       db.addUser("admin", "admin@example.com"),
		moderator:   db.addUser("mod", "mod@example.com"),
		plain:       db.addUser("plain", "plain@example.com"),
		outsider:    db.addUser("outsider", "outsider@example.com"),
	}
	fx.community = db.addCommunity("Book Club", "book-club", fx.admin)
	db.addMember(fx.community, fx.admin, adminRoleID)
	db.addMember(fx.community, fx.moderator, modRoleID)
	db.addMember(fx.community, fx.plain, modRoleID)
	return fx
}

func TestAddMemberAsAdmin(t *testing.T) {
	fx := newMemberFixture(t)

	member, err := fx.svc.AddMember(context.Background(), fx.admin, fx.community, fx.outsider, fx.modRoleID)
	require.NoError(t, err)
	assert.Equal(t, fx.community, member.CommunityID)
	assert.Equal(t, fx.outsider, member.UserID)
	assert.Equal(t, fx.modRoleID, member.RoleID)

	last := fx.db.outbox[len(fx.db.outbox)-1]
	assert.Equal(t, model.EventMemberAdded, last.EventType)
	assert.Equal(t, fx.outsider, last.UserID)
}

func TestAddMemberDeniedForNonAdmin(t *testing.T) {
	fx := newMemberFixture(t)

	// Moderators may remove members but not add them.
	_, err := fx.svc.AddMember(context.Background(), fx.moderator, fx.community, fx.outsider, fx.modRoleID)
	assert.ErrorIs(t, err, pkg.ErrNotAllowedAccess)

	_, err = fx.svc.AddMember(context.Background(), fx.outsider, fx.community, fx.outsider, fx.modRoleID)
	assert.ErrorIs(t, err, pkg.ErrNotAllowedAccess)
}

func TestAddMemberInvalidRole(t *testing.T) {
	fx := newMemberFixture(t)

	_, err := fx.svc.AddMember(context.Background(), fx.admin, fx.community, fx.outsider, "no-such-role")
	assert.ErrorIs(t, err, pkg.ErrInvalidRole)
}

func TestAddMemberUnknownCommunityOrUser(t *testing.T) {
	fx := newMemberFixture(t)

	_, err := fx.svc.AddMember(context.Background(), fx.admin, "no-such-community", fx.outsider, fx.modRoleID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = fx.svc.AddMember(context.Background(), fx.admin, fx.community, "no-such-user", fx.modRoleID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestAddMemberDuplicate(t *testing.T) {
	fx := newMemberFixture(t)

	_, err := fx.svc.AddMember(context.Background(), fx.admin, fx.community, fx.plain, fx.modRoleID)
	assert.ErrorIs(t, err, pkg.ErrResourceExists)
}

func TestRemoveMemberByAdminAndModerator(t *testing.T) {
	fx := newMemberFixture(t)
	target := fx.db.addMember(fx.community, fx.outsider, fx.modRoleID)

	require.NoError(t, fx.svc.RemoveMember(context.Background(), fx.moderator, target))

	exists, err := fx.svc.repo.Exists(context.Background(), fx.community, fx.outsider)
	require.NoError(t, err)
	assert.False(t, exists)

	last := fx.db.outbox[len(fx.db.outbox)-1]
	assert.Equal(t, model.EventMemberRemoved, last.EventType)

	// Removing the same id again is a defined failure, not a silent success.
	err = fx.svc.RemoveMember(context.Background(), fx.admin, target)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestRemoveMemberDeniedForPlainMember(t *testing.T) {
	fx := newMemberFixture(t)
	db := fx.db

	// Rebuild "plain" with a role outside the allowed set.
	memberRoleID := db.addRole("Community Member")
	target := db.addMember(fx.community, fx.outsider, memberRoleID)

	// outsider holds a role in the community now, but not one that removes.
	err := fx.svc.RemoveMember(context.Background(), fx.outsider, target)
	assert.ErrorIs(t, err, pkg.ErrNotAllowedAccess)
}

func TestRemoveMemberAuthorizedAgainstTargetCommunity(t *testing.T) {
	fx := newMemberFixture(t)
	db := fx.db

	// fx.admin administers Book Club but holds no role in Chess Club.
	other := db.addCommunity("Chess Club", "chess-club", fx.outsider)
	db.addMember(other, fx.outsider, fx.adminRoleID)
	target := db.addMember(other, fx.plain, fx.modRoleID)

	err := fx.svc.RemoveMember(context.Background(), fx.admin, target)
	assert.ErrorIs(t, err, pkg.ErrNotAllowedAccess)

	// The community's own admin can.
	require.NoError(t, fx.svc.RemoveMember(context.Background(), fx.outsider, target))
}

func TestRemoveMemberUnknownID(t *testing.T) {
	fx := newMemberFixture(t)

	err := fx.svc.RemoveMember(context.Background(), fx.admin, "no-such-member")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestAuthorizeDanglingRoleIsDenied(t *testing.T) {
	fx := newMemberFixture(t)
	db := fx.db

	community := db.addCommunity("Ghost Club", "ghost-club", fx.outsider)
	db.addMember(community, fx.outsider, "deleted-role-id")

	err := fx.svc.Authorize(context.Background(), community, fx.outsider, model.RoleCommunityAdmin)
	assert.ErrorIs(t, err, pkg.ErrNotAllowedAccess)
}

func TestListMembersExpandsUserAndRole(t *testing.T) {
	fx := newMemberFixture(t)

	rows, meta, err := fx.svc.ListMembers(context.Background(), fx.community, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, 1, meta.Pages)

	assert.Equal(t, "admin", rows[0].UserName)
	assert.Equal(t, model.RoleCommunityAdmin, rows[0].RoleName)
	assert.Equal(t, "mod", rows[1].UserName)
	assert.Equal(t, model.RoleCommunityModerator, rows[1].RoleName)

	_, _, err = fx.svc.ListMembers(context.Background(), "no-such-community", 1)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
