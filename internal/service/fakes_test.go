package service

import (
	"context"
	"fmt"
	"time"

	"communityhub/internal/model"

	"gorm.io/gorm"
)

// fakeDB backs every store interface with in-memory slices kept in insertion
// order, mirroring the created_at ASC ordering of the mysql repositories.
type fakeDB struct {
	seq         int
	users       []model.User
	roles       []model.Role
	communities []model.Community
	members     []model.Member
	outbox      []model.MembershipOutbox
	sessions    map[string]string
}

func newFakeDB() *fakeDB {
	return &fakeDB{sessions: map[string]string{}}
}

func (f *fakeDB) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%03d", prefix, f.seq)
}

// --- seed helpers ---

func (f *fakeDB) addUser(name, email string) string {
	id := f.nextID("user")
	f.users = append(f.users, model.User{ID: id, Name: name, Email: email, CreatedAt: time.Now()})
	return id
}

func (f *fakeDB) addRole(name string) string {
	id := f.nextID("role")
	f.roles = append(f.roles, model.Role{ID: id, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()})
	return id
}

func (f *fakeDB) addCommunity(name, slug, ownerID string) string {
	id := f.nextID("community")
	f.communities = append(f.communities, model.Community{
		ID: id, Name: name, Slug: slug, OwnerID: ownerID,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	return id
}

func (f *fakeDB) addMember(communityID, userID, roleID string) string {
	id := f.nextID("member")
	f.members = append(f.members, model.Member{
		ID: id, CommunityID: communityID, UserID: userID, RoleID: roleID, CreatedAt: time.Now(),
	})
	return id
}

func (f *fakeDB) roleName(roleID string) string {
	for _, r := range f.roles {
		if r.ID == roleID {
			return r.Name
		}
	}
	return ""
}

func (f *fakeDB) userName(userID string) string {
	for _, u := range f.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return ""
}

func pageSlice[T any](in []T, offset, limit int) []T {
	if offset >= len(in) {
		return nil
	}
	end := offset + limit
	if end > len(in) {
		end = len(in)
	}
	return in[offset:end]
}

// --- UserStore ---

func (f *fakeDB) Create(_ context.Context, user *model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeDB) FindByID(_ context.Context, id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDB) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// --- SessionStore ---

func (f *fakeDB) AddUserToken(_ context.Context, userID, token string) error {
	f.sessions[userID] = token
	return nil
}

func (f *fakeDB) DeleteUserToken(_ context.Context, userID string) error {
	delete(f.sessions, userID)
	return nil
}

// fakeRoles wraps fakeDB as a RoleStore; the method set clashes with
// UserStore otherwise.
type fakeRoles struct {
	db *fakeDB
}

func (f fakeRoles) Create(_ context.Context, role *model.Role) error {
	now := time.Now()
	if role.CreatedAt.IsZero() {
		role.CreatedAt = now
		role.UpdatedAt = now
	}
	f.db.roles = append(f.db.roles, *role)
	return nil
}

func (f fakeRoles) FindByID(_ context.Context, id string) (*model.Role, error) {
	for i := range f.db.roles {
		if f.db.roles[i].ID == id {
			return &f.db.roles[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeRoles) FindByName(_ context.Context, name string) (*model.Role, error) {
	for i := range f.db.roles {
		if f.db.roles[i].Name == name {
			return &f.db.roles[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeRoles) Count(_ context.Context) (int64, error) {
	return int64(len(f.db.roles)), nil
}

func (f fakeRoles) List(_ context.Context, offset, limit int) ([]model.Role, error) {
	return pageSlice(f.db.roles, offset, limit), nil
}

// fakeCommunities wraps fakeDB as a CommunityStore.
type fakeCommunities struct {
	db *fakeDB
}

func (f fakeCommunities) CreateWithOwner(_ context.Context, c *model.Community, m *model.Member, ob *model.MembershipOutbox) error {
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	m.CreatedAt = now
	f.db.communities = append(f.db.communities, *c)
	f.db.members = append(f.db.members, *m)
	f.db.outbox = append(f.db.outbox, *ob)
	return nil
}

func (f fakeCommunities) FindByID(_ context.Context, id string) (*model.Community, error) {
	for i := range f.db.communities {
		if f.db.communities[i].ID == id {
			return &f.db.communities[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeCommunities) SlugTaken(_ context.Context, slug string) (bool, error) {
	for _, c := range f.db.communities {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeCommunities) Count(_ context.Context) (int64, error) {
	return int64(len(f.db.communities)), nil
}

func (f fakeCommunities) expand(c model.Community) model.CommunityOwner {
	return model.CommunityOwner{
		ID: c.ID, Name: c.Name, Slug: c.Slug,
		OwnerID: c.OwnerID, OwnerName: f.db.userName(c.OwnerID),
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

func (f fakeCommunities) ListWithOwner(_ context.Context, offset, limit int) ([]model.CommunityOwner, error) {
	var rows []model.CommunityOwner
	for _, c := range f.db.communities {
		rows = append(rows, f.expand(c))
	}
	return pageSlice(rows, offset, limit), nil
}

func (f fakeCommunities) CountOwned(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for _, c := range f.db.communities {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f fakeCommunities) ListOwned(_ context.Context, ownerID string, offset, limit int) ([]model.Community, error) {
	var rows []model.Community
	for _, c := range f.db.communities {
		if c.OwnerID == ownerID {
			rows = append(rows, c)
		}
	}
	return pageSlice(rows, offset, limit), nil
}

func (f fakeCommunities) isMember(communityID, userID string) bool {
	for _, m := range f.db.members {
		if m.CommunityID == communityID && m.UserID == userID {
			return true
		}
	}
	return false
}

func (f fakeCommunities) CountJoined(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, c := range f.db.communities {
		if f.isMember(c.ID, userID) {
			n++
		}
	}
	return n, nil
}

func (f fakeCommunities) ListJoinedWithOwner(_ context.Context, userID string, offset, limit int) ([]model.CommunityOwner, error) {
	var rows []model.CommunityOwner
	for _, c := range f.db.communities {
		if f.isMember(c.ID, userID) {
			rows = append(rows, f.expand(c))
		}
	}
	return pageSlice(rows, offset, limit), nil
}

// fakeMembers wraps fakeDB as a MemberStore.
type fakeMembers struct {
	db *fakeDB
}

func (f fakeMembers) CreateWithEvent(_ context.Context, m *model.Member, ob *model.MembershipOutbox) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	f.db.members = append(f.db.members, *m)
	f.db.outbox = append(f.db.outbox, *ob)
	return nil
}

func (f fakeMembers) DeleteWithEvent(_ context.Context, id string, ob *model.MembershipOutbox) (int64, error) {
	for i := range f.db.members {
		if f.db.members[i].ID == id {
			f.db.members = append(f.db.members[:i], f.db.members[i+1:]...)
			f.db.outbox = append(f.db.outbox, *ob)
			return 1, nil
		}
	}
	return 0, nil
}

func (f fakeMembers) FindByID(_ context.Context, id string) (*model.Member, error) {
	for i := range f.db.members {
		if f.db.members[i].ID == id {
			return &f.db.members[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeMembers) Exists(_ context.Context, communityID, userID string) (bool, error) {
	for _, m := range f.db.members {
		if m.CommunityID == communityID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeMembers) FindRoleName(_ context.Context, communityID, userID string) (string, bool, error) {
	for _, m := range f.db.members {
		if m.CommunityID == communityID && m.UserID == userID {
			return f.db.roleName(m.RoleID), true, nil
		}
	}
	return "", false, nil
}

func (f fakeMembers) CountByCommunity(_ context.Context, communityID string) (int64, error) {
	var n int64
	for _, m := range f.db.members {
		if m.CommunityID == communityID {
			n++
		}
	}
	return n, nil
}

func (f fakeMembers) ListDetails(_ context.Context, communityID string, offset, limit int) ([]model.MemberDetail, error) {
	var rows []model.MemberDetail
	for _, m := range f.db.members {
		if m.CommunityID != communityID {
			continue
		}
		rows = append(rows, model.MemberDetail{
			ID: m.ID, CommunityID: m.CommunityID,
			UserID: m.UserID, UserName: f.db.userName(m.UserID),
			RoleID: m.RoleID, RoleName: f.db.roleName(m.RoleID),
			CreatedAt: m.CreatedAt,
		})
	}
	return pageSlice(rows, offset, limit), nil
}

// fakeOutbox wraps fakeDB as an OutboxStore.
type fakeOutbox struct {
	db *fakeDB
}

func (f fakeOutbox) List(_ context.Context, batchSize int) ([]model.MembershipOutbox, error) {
	var rows []model.MembershipOutbox
	for _, ob := range f.db.outbox {
		if ob.Status == 0 {
			rows = append(rows, ob)
		}
		if len(rows) == batchSize {
			break
		}
	}
	return rows, nil
}

func (f fakeOutbox) MarkSent(_ context.Context, id string) error {
	for i := range f.db.outbox {
		if f.db.outbox[i].ID == id {
			f.db.outbox[i].Status = 1
		}
	}
	return nil
}

func (f fakeOutbox) MarkFailed(_ context.Context, id string) error {
	for i := range f.db.outbox {
		if f.db.outbox[i].ID == id {
			f.db.outbox[i].Status = 2
			f.db.outbox[i].Retry++
		}
	}
	return nil
}
