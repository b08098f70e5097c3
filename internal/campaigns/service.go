package campaigns

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

// CreateInput carries a new campaign. OwnerID nil assigns the creating
// manager as owner.
type CreateInput struct {
	Name          string
	Product       enums.ProductCode
	Goal          *string
	Type          *string
	Status        *enums.CampaignStatus
	BudgetPlanned *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	OwnerID       *int64
	AlanbaseSub2  *string
}

// UpdateInput carries campaign changes. Nil means unchanged.
type UpdateInput struct {
	Name          *string
	Product       *enums.ProductCode
	Goal          *string
	Type          *string
	Status        *enums.CampaignStatus
	BudgetPlanned *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	OwnerID       *int64
	AlanbaseSub2  *string
}

// Overview pairs a campaign with its aggregated placement figures.
type Overview struct {
	Campaign   models.Campaign
	Spend      decimal.Decimal
	Placements int64
}

// Service exposes campaign operations.
type Service interface {
	Create(ctx context.Context, actor models.User, input CreateInput) (*models.Campaign, error)
	Get(ctx context.Context, campaignID int64) (*models.Campaign, error)
	List(ctx context.Context, filters Filters) ([]Overview, error)
	Update(ctx context.Context, campaignID int64, input UpdateInput) (*models.Campaign, error)
}

type service struct {
	repo Repository
}

// NewService builds a campaigns service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("campaigns repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, actor models.User, input CreateInput) (*models.Campaign, error) {
	if actor.ID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if !input.Product.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product")
	}

	status := enums.CampaignStatusDraft
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
		}
		status = *input.Status
	}

	ownerID := actor.ID
	if input.OwnerID != nil {
		ownerID = *input.OwnerID
	}

	campaign := &models.Campaign{
		Name:          input.Name,
		Product:       input.Product,
		Goal:          input.Goal,
		Type:          input.Type,
		Status:        status,
		BudgetPlanned: input.BudgetPlanned,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		OwnerID:       &ownerID,
		AlanbaseSub2:  input.AlanbaseSub2,
	}
	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create campaign")
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, campaignID int64) (*models.Campaign, error) {
	if campaignID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid campaign id")
	}
	campaign, err := s.repo.FindDetail(ctx, campaignID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find campaign")
	}
	if campaign == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Campaign not found")
	}
	return campaign, nil
}

// List annotates each campaign with its committed spend and placement count.
func (s *service) List(ctx context.Context, filters Filters) ([]Overview, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list campaigns")
	}

	ids := make([]int64, 0, len(rows))
	for _, campaign := range rows {
		ids = append(ids, campaign.ID)
	}
	totals, err := s.repo.SpendTotals(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate campaign spend")
	}

	overviews := make([]Overview, 0, len(rows))
	for _, campaign := range rows {
		total := totals[campaign.ID]
		overviews = append(overviews, Overview{
			Campaign:   campaign,
			Spend:      total.Spend,
			Placements: total.Placements,
		})
	}
	return overviews, nil
}

func (s *service) Update(ctx context.Context, campaignID int64, input UpdateInput) (*models.Campaign, error) {
	if campaignID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid campaign id")
	}
	if input.Product != nil && !input.Product.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	campaign, err := s.repo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find campaign")
	}
	if campaign == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Campaign not found")
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Product != nil {
		campaign.Product = *input.Product
	}
	if input.Goal != nil {
		campaign.Goal = input.Goal
	}
	if input.Type != nil {
		campaign.Type = input.Type
	}
	if input.Status != nil {
		campaign.Status = *input.Status
	}
	if input.BudgetPlanned != nil {
		campaign.BudgetPlanned = input.BudgetPlanned
	}
	if input.StartDate != nil {
		campaign.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		campaign.EndDate = input.EndDate
	}
	if input.OwnerID != nil {
		campaign.OwnerID = input.OwnerID
	}
	if input.AlanbaseSub2 != nil {
		campaign.AlanbaseSub2 = input.AlanbaseSub2
	}

	saved, err := s.repo.Save(ctx, campaign)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save campaign")
	}
	return saved, nil
}
