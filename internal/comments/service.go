package comments

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

// CreateInput carries a manual note written by a team member.
type CreateInput struct {
	AuthorID       int64
	Body           string
	BloggerID      *int64
	CounterpartyID *int64
}

// SystemInput captures an audit trail entry written on behalf of the system.
type SystemInput struct {
	AuthorID       int64
	Body           string
	BloggerID      *int64
	CounterpartyID *int64
	PlacementID    *int64
}

// Service exposes comment operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Comment, error)
	Append(ctx context.Context, tx *gorm.DB, input SystemInput) (*models.Comment, error)
	ListByBlogger(ctx context.Context, bloggerID int64) ([]models.Comment, error)
	ListByCounterparty(ctx context.Context, counterpartyID int64) ([]models.Comment, error)
}

type service struct {
	repo Repository
}

// NewService builds a comments service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("comments repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Comment, error) {
	if input.AuthorID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comment body required")
	}
	if input.BloggerID == nil && input.CounterpartyID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Either bloggerId or counterpartyId must be provided")
	}

	comment := &models.Comment{
		AuthorID:       input.AuthorID,
		Body:           input.Body,
		BloggerID:      input.BloggerID,
		CounterpartyID: input.CounterpartyID,
	}
	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create comment")
	}
	return created, nil
}

// Append writes a system comment inside the caller's transaction so the audit
// entry commits or rolls back together with the change it describes.
func (s *service) Append(ctx context.Context, tx *gorm.DB, input SystemInput) (*models.Comment, error) {
	if input.AuthorID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "author id required")
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comment body required")
	}

	comment := &models.Comment{
		AuthorID:       input.AuthorID,
		Body:           input.Body,
		BloggerID:      input.BloggerID,
		CounterpartyID: input.CounterpartyID,
		PlacementID:    input.PlacementID,
		IsSystem:       true,
	}
	created, err := s.repo.WithTx(tx).Create(ctx, comment)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append audit comment")
	}
	return created, nil
}

func (s *service) ListByBlogger(ctx context.Context, bloggerID int64) ([]models.Comment, error) {
	if bloggerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blogger id required")
	}
	rows, err := s.repo.ListByBlogger(ctx, bloggerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list blogger comments")
	}
	return rows, nil
}

func (s *service) ListByCounterparty(ctx context.Context, counterpartyID int64) ([]models.Comment, error) {
	if counterpartyID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "counterparty id required")
	}
	rows, err := s.repo.ListByCounterparty(ctx, counterpartyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list counterparty comments")
	}
	return rows, nil
}
