package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lestahub/lestahub-backend/pkg/auth"
	"github.com/lestahub/lestahub-backend/pkg/config"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/security"
)

type stubUsersRepo struct {
	rows map[int64]*models.User
}

func newStubUsersRepo(rows ...*models.User) *stubUsersRepo {
	repo := &stubUsersRepo{rows: make(map[int64]*models.User)}
	for _, row := range rows {
		repo.rows[row.ID] = row
	}
	return repo
}

func (s *stubUsersRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.rows[user.ID] = user
	return user, nil
}

func (s *stubUsersRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	return s.rows[id], nil
}

func (s *stubUsersRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, row := range s.rows {
		if row.Email == strings.ToLower(email) {
			return row, nil
		}
	}
	return nil, nil
}

func (s *stubUsersRepo) List(_ context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubUsersRepo) Save(_ context.Context, user *models.User) (*models.User, error) {
	s.rows[user.ID] = user
	return user, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "lestahub-test",
		ExpirationMinutes: 30,
	}
}

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &models.User{
		ID:           7,
		Name:         "Anna",
		Email:        "anna@lesta.ru",
		Role:         enums.UserRoleManager,
		Status:       enums.UserStatusActive,
		PasswordHash: &hash,
	}
}

func TestLoginIssuesToken(t *testing.T) {
	user := activeUser(t, "correct horse")
	repo := newStubUsersRepo(user)
	svc, err := NewService(repo, testJWTConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	loginAt := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	svc.(*service).now = func() time.Time { return loginAt }

	session, err := svc.Login(context.Background(), "Anna@Lesta.ru", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.AccessToken == "" {
		t.Fatal("expected access token")
	}
	claims, err := auth.ParseAccessToken(testJWTConfig(), session.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != 7 || claims.Role != enums.UserRoleManager {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if user.LastLoginAt == nil || !user.LastLoginAt.Equal(loginAt) {
		t.Fatalf("expected last login to be recorded, got %v", user.LastLoginAt)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newStubUsersRepo(activeUser(t, "correct horse"))
	svc, err := NewService(repo, testJWTConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Login(context.Background(), "anna@lesta.ru", "wrong")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Message() != "Invalid credentials" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, err := NewService(newStubUsersRepo(), testJWTConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Login(context.Background(), "ghost@lesta.ru", "whatever")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	user := activeUser(t, "correct horse")
	user.Status = enums.UserStatusInvited
	repo := newStubUsersRepo(user)
	svc, err := NewService(repo, testJWTConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Login(context.Background(), "anna@lesta.ru", "correct horse")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if typed.Message() != "User is not active" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}
