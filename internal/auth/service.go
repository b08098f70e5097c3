package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lestahub/lestahub-backend/internal/users"
	pkgauth "github.com/lestahub/lestahub-backend/pkg/auth"
	"github.com/lestahub/lestahub-backend/pkg/config"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/security"
)

// Session pairs an authenticated user with a freshly minted access token.
type Session struct {
	User        *models.User
	AccessToken string
	ExpiresAt   time.Time
}

// Service authenticates team members against stored credentials.
type Service interface {
	Login(ctx context.Context, email, password string) (*Session, error)
}

type service struct {
	repo users.Repository
	jwt  config.JWTConfig
	now  func() time.Time
}

// NewService builds an auth service with the required dependencies.
func NewService(repo users.Repository, jwt config.JWTConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if jwt.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{repo: repo, jwt: jwt, now: time.Now}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user by email")
	}
	if user == nil || user.PasswordHash == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
	}
	if user.Status != enums.UserStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "User is not active")
	}

	matches, err := security.VerifyPassword(password, *user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !matches {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
	}

	now := s.now()
	token, err := pkgauth.MintAccessToken(s.jwt, now, pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	loginAt := now
	user.LastLoginAt = &loginAt
	if user, err = s.repo.Save(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record login time")
	}

	return &Session{
		User:        user,
		AccessToken: token,
		ExpiresAt:   now.Add(s.jwt.Expiration()),
	}, nil
}
