package service

import (
	"context"
	"errors"
	"strings"

	"communityhub/internal/model"
	"communityhub/internal/pkg"

	"gorm.io/gorm"
)

type RoleService struct {
	repo RoleStore
}

func NewRoleService(repo RoleStore) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) CreateRole(ctx context.Context, name string) (*model.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkg.ErrValidation.WithMessage("role name is required")
	}
	if len(name) > 64 {
		return nil, pkg.ErrValidation.WithMessage("role name must be at most 64 characters")
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, pkg.ErrResourceExists.WithMessage("role already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, err := pkg.NewID()
	if err != nil {
		return nil, err
	}

	role := &model.Role{ID: id, Name: name}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) ListRoles(ctx context.Context, page int) ([]model.Role, pkg.PageMeta, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}

	list, err := s.repo.List(ctx, pkg.Offset(page), pkg.PageSize)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return list, pkg.NewPageMeta(total, page), nil
}
