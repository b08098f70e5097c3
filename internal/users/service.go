package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestahub/lestahub-backend/pkg/config"
	"github.com/lestahub/lestahub-backend/pkg/db"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/security"
)

const (
	inviteTokenLength  = 48
	tempPasswordLength = 16
)

// InviteInput carries the fields an admin provides when inviting a user.
type InviteInput struct {
	Name  string
	Email string
	Role  enums.UserRole
}

// UpdateInput carries optional account changes. Nil means unchanged.
type UpdateInput struct {
	Name   *string
	Role   *enums.UserRole
	Status *enums.UserStatus
}

// Invite pairs the created account with its one-time credentials.
type Invite struct {
	User              *models.User
	Token             string
	TemporaryPassword string
}

// Service exposes account management operations.
type Service interface {
	Invite(ctx context.Context, input InviteInput) (*Invite, error)
	RegenerateInvite(ctx context.Context, userID int64) (*Invite, error)
	Update(ctx context.Context, userID int64, input UpdateInput) (*models.User, error)
	Get(ctx context.Context, userID int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type service struct {
	repo     Repository
	password config.PasswordConfig
}

// NewService builds a users service with the required dependencies.
func NewService(repo Repository, password config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo, password: password}, nil
}

func (s *service) Invite(ctx context.Context, input InviteInput) (*Invite, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email required")
	}
	if !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user by email")
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "User with this email already exists")
	}

	token, tempPassword, hash, err := s.mintCredentials()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Role:         input.Role,
		Status:       enums.UserStatusInvited,
		PasswordHash: &hash,
		InviteToken:  &token,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// Concurrent invites can slip past the FindByEmail pre-read.
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "User with this email already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	return &Invite{User: created, Token: token, TemporaryPassword: tempPassword}, nil
}

// RegenerateInvite rotates the invite credentials and puts the account back
// into the invited state.
func (s *service) RegenerateInvite(ctx context.Context, userID int64) (*Invite, error) {
	user, err := s.mustFind(ctx, userID)
	if err != nil {
		return nil, err
	}

	token, tempPassword, hash, err := s.mintCredentials()
	if err != nil {
		return nil, err
	}

	user.InviteToken = &token
	user.PasswordHash = &hash
	user.Status = enums.UserStatusInvited

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save user")
	}
	return &Invite{User: saved, Token: token, TemporaryPassword: tempPassword}, nil
}

func (s *service) Update(ctx context.Context, userID int64, input UpdateInput) (*models.User, error) {
	user, err := s.mustFind(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
		}
		user.Name = name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
		}
		user.Role = *input.Role
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
		}
		user.Status = *input.Status
	}

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save user")
	}
	return saved, nil
}

func (s *service) Get(ctx context.Context, userID int64) (*models.User, error) {
	return s.mustFind(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return rows, nil
}

func (s *service) mustFind(ctx context.Context, userID int64) (*models.User, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid user id")
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return user, nil
}

func (s *service) mintCredentials() (token, tempPassword, hash string, err error) {
	token, err = security.GenerateTempPassword(inviteTokenLength)
	if err != nil {
		return "", "", "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate invite token")
	}
	tempPassword, err = security.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return "", "", "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate temporary password")
	}
	hash, err = security.HashPassword(tempPassword, s.password)
	if err != nil {
		return "", "", "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash temporary password")
	}
	return token, tempPassword, hash, nil
}
