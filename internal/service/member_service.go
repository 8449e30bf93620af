package service

import (
	"context"
	"errors"

	"communityhub/internal/model"
	"communityhub/internal/pkg"

	"gorm.io/gorm"
)

type MemberService struct {
	repo        MemberStore
	communities CommunityStore
	users       UserStore
	roles       RoleStore
}

func NewMemberService(repo MemberStore, communities CommunityStore, users UserStore, roles RoleStore) *MemberService {
	return &MemberService{
		repo:        repo,
		communities: communities,
		users:       users,
		roles:       roles,
	}
}

// Authorize resolves the caller's role inside the community and checks it
// against the allowed role names. No membership, a dangling role reference
// and a role outside the allowed set are all denials.
func (s *MemberService) Authorize(ctx context.Context, communityID, callerID string, allowed ...string) error {
	roleName, found, err := s.repo.FindRoleName(ctx, communityID, callerID)
	if err != nil {
		return err
	}
	if !found || roleName == "" {
		return pkg.ErrNotAllowedAccess
	}
	for _, name := range allowed {
		if roleName == name {
			return nil
		}
	}
	return pkg.ErrNotAllowedAccess
}

// AddMember adds a user to a community with the given role. Only a
// "Community Admin" of that community may add members.
func (s *MemberService) AddMember(ctx context.Context, callerID, communityID, userID, roleID string) (*model.Member, error) {
	if communityID == "" || userID == "" || roleID == "" {
		return nil, pkg.ErrValidation.WithMessage("community, user and role are required")
	}

	if _, err := s.communities.FindByID(ctx, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound.WithMessage("community not found")
		}
		return nil, err
	}

	if err := s.Authorize(ctx, communityID, callerID, model.RoleCommunityAdmin); err != nil {
		return nil, err
	}

	role, err := s.roles.FindByID(ctx, roleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrInvalidRole
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound.WithMessage("user not found")
		}
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkg.ErrResourceExists.WithMessage("user is already a member of this community")
	}

	id, err := pkg.NewID()
	if err != nil {
		return nil, err
	}
	event, err := newOutboxEvent(model.EventMemberAdded, communityID, userID)
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		ID:          id,
		CommunityID: communityID,
		UserID:      userID,
		RoleID:      role.ID,
	}
	if err := s.repo.CreateWithEvent(ctx, member, event); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember deletes a membership. The caller is authorized against the
// community of the membership being removed and must hold the admin or
// moderator role there. Removing an unknown id is NOT_FOUND, not a silent
// success.
func (s *MemberService) RemoveMember(ctx context.Context, callerID, membershipID string) error {
	target, err := s.repo.FindByID(ctx, membershipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkg.ErrNotFound.WithMessage("member not found")
	}
	if err != nil {
		return err
	}

	if err := s.Authorize(ctx, target.CommunityID, callerID,
		model.RoleCommunityAdmin, model.RoleCommunityModerator); err != nil {
		return err
	}

	event, err := newOutboxEvent(model.EventMemberRemoved, target.CommunityID, target.UserID)
	if err != nil {
		return err
	}
	affected, err := s.repo.DeleteWithEvent(ctx, membershipID, event)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.ErrNotFound.WithMessage("member not found")
	}
	return nil
}

func (s *MemberService) ListMembers(ctx context.Context, communityID string, page int) ([]model.MemberDetail, pkg.PageMeta, error) {
	if _, err := s.communities.FindByID(ctx, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.PageMeta{}, pkg.ErrNotFound.WithMessage("community not found")
		}
		return nil, pkg.PageMeta{}, err
	}

	total, err := s.repo.CountByCommunity(ctx, communityID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	rows, err := s.repo.ListDetails(ctx, communityID, pkg.Offset(page), pkg.PageSize)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return rows, pkg.NewPageMeta(total, page), nil
}
