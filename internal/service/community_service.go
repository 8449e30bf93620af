package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"communityhub/internal/model"
	"communityhub/internal/pkg"

	"gorm.io/gorm"
)

type CommunityService struct {
	repo  CommunityStore
	roles RoleStore
}

func NewCommunityService(repo CommunityStore, roles RoleStore) *CommunityService {
	return &CommunityService{
		repo:  repo,
		roles: roles,
	}
}

// CreateCommunity creates the community together with the owner's
// "Community Admin" membership; both are written in one transaction so the
// community can never be left without an admin.
func (s *CommunityService) CreateCommunity(ctx context.Context, ownerID, name string) (*model.Community, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, pkg.ErrValidation.WithMessage("community name must be at least 2 characters")
	}
	if len(name) > 128 {
		return nil, pkg.ErrValidation.WithMessage("community name must be at most 128 characters")
	}

	slug, err := s.uniqueSlug(ctx, pkg.Slugify(name))
	if err != nil {
		return nil, err
	}

	adminRole, err := s.roles.FindByName(ctx, model.RoleCommunityAdmin)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The seeded catalog is broken; surface it, never create an
		// admin-less community.
		return nil, pkg.ErrInternal.WithMessage("admin role missing from role catalog")
	}
	if err != nil {
		return nil, err
	}

	communityID, err := pkg.NewID()
	if err != nil {
		return nil, err
	}
	memberID, err := pkg.NewID()
	if err != nil {
		return nil, err
	}
	event, err := newOutboxEvent(model.EventCommunityCreated, communityID, ownerID)
	if err != nil {
		return nil, err
	}

	community := &model.Community{
		ID:      communityID,
		Name:    name,
		Slug:    slug,
		OwnerID: ownerID,
	}
	owner := &model.Member{
		ID:          memberID,
		CommunityID: communityID,
		UserID:      ownerID,
		RoleID:      adminRole.ID,
	}

	if err := s.repo.CreateWithOwner(ctx, community, owner, event); err != nil {
		return nil, err
	}
	return community, nil
}

// uniqueSlug resolves slug collisions with a numeric suffix: book-club,
// book-club-2, book-club-3, ...
func (s *CommunityService) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugTaken(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *CommunityService) ListCommunities(ctx context.Context, page int) ([]model.CommunityOwner, pkg.PageMeta, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	rows, err := s.repo.ListWithOwner(ctx, pkg.Offset(page), pkg.PageSize)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return rows, pkg.NewPageMeta(total, page), nil
}

func (s *CommunityService) ListOwned(ctx context.Context, ownerID string, page int) ([]model.Community, pkg.PageMeta, error) {
	total, err := s.repo.CountOwned(ctx, ownerID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	rows, err := s.repo.ListOwned(ctx, ownerID, pkg.Offset(page), pkg.PageSize)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return rows, pkg.NewPageMeta(total, page), nil
}

func (s *CommunityService) ListJoined(ctx context.Context, userID string, page int) ([]model.CommunityOwner, pkg.PageMeta, error) {
	total, err := s.repo.CountJoined(ctx, userID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	rows, err := s.repo.ListJoinedWithOwner(ctx, userID, pkg.Offset(page), pkg.PageSize)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return rows, pkg.NewPageMeta(total, page), nil
}
