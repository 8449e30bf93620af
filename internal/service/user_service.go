package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"communityhub/internal/model"
	"communityhub/internal/pkg"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     UserStore
	sessions SessionStore
	mailer   Mailer
}

func NewUserService(repo UserStore, sessions SessionStore, mailer Mailer) *UserService {
	return &UserService{
		repo:     repo,
		sessions: sessions,
		mailer:   mailer,
	}
}

// Signup creates the user and signs them in, returning the record and a
// fresh access token.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return nil, "", pkg.ErrValidation.WithMessage("email and password are required")
	}
	if len(name) > 64 {
		return nil, "", pkg.ErrValidation.WithMessage("name must be at most 64 characters")
	}
	if len(email) > 128 {
		return nil, "", pkg.ErrValidation.WithMessage("email must be at most 128 characters")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", pkg.ErrResourceExists.WithMessage("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	id, err := pkg.NewID()
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
				log.Printf("welcome mail to %s failed: %v", user.Email, err)
			}
		}()
	}

	return user, token, nil
}

// Signin verifies the credentials and returns the user with a fresh access
// token. Any signin replaces the user's previous session.
func (s *UserService) Signin(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", pkg.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", pkg.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me returns the user record behind a verified caller identity.
func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound.WithMessage("user not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) issueToken(ctx context.Context, userID string) (string, error) {
	token, err := pkg.GenerateAccess(userID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.AddUserToken(ctx, userID, token); err != nil {
		return "", err
	}
	return token, nil
}
