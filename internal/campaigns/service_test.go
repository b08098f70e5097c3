package campaigns

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

type stubCampaignsRepo struct {
	rows   map[int64]*models.Campaign
	totals map[int64]SpendTotal
	nextID int64
}

func newStubCampaignsRepo(rows ...*models.Campaign) *stubCampaignsRepo {
	repo := &stubCampaignsRepo{
		rows:   make(map[int64]*models.Campaign),
		totals: make(map[int64]SpendTotal),
		nextID: 1,
	}
	for _, row := range rows {
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
		repo.rows[row.ID] = row
	}
	return repo
}

func (s *stubCampaignsRepo) Create(_ context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	campaign.ID = s.nextID
	s.nextID++
	s.rows[campaign.ID] = campaign
	return campaign, nil
}

func (s *stubCampaignsRepo) FindByID(_ context.Context, id int64) (*models.Campaign, error) {
	return s.rows[id], nil
}

func (s *stubCampaignsRepo) FindDetail(_ context.Context, id int64) (*models.Campaign, error) {
	return s.rows[id], nil
}

func (s *stubCampaignsRepo) List(_ context.Context, filters Filters) ([]models.Campaign, error) {
	out := make([]models.Campaign, 0, len(s.rows))
	for _, row := range s.rows {
		if filters.Product != nil && row.Product != *filters.Product {
			continue
		}
		if filters.Status != nil && row.Status != *filters.Status {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubCampaignsRepo) Save(_ context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	s.rows[campaign.ID] = campaign
	return campaign, nil
}

func (s *stubCampaignsRepo) SpendTotals(_ context.Context, campaignIDs []int64) (map[int64]SpendTotal, error) {
	out := make(map[int64]SpendTotal, len(campaignIDs))
	for _, id := range campaignIDs {
		if total, ok := s.totals[id]; ok {
			out[id] = total
		}
	}
	return out, nil
}

func newTestCampaigns(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func manager() models.User {
	return models.User{ID: 1, Name: "Anna", Role: enums.UserRoleManager}
}

func TestCreateDefaultsOwnerAndStatus(t *testing.T) {
	repo := newStubCampaignsRepo()
	svc := newTestCampaigns(t, repo)

	created, err := svc.Create(context.Background(), manager(), CreateInput{
		Name:    "Summer push",
		Product: enums.ProductCodeTanks,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != enums.CampaignStatusDraft {
		t.Fatalf("expected draft status, got %s", created.Status)
	}
	if created.OwnerID == nil || *created.OwnerID != 1 {
		t.Fatalf("expected creator as owner, got %v", created.OwnerID)
	}
}

func TestCreateRejectsInvalidProduct(t *testing.T) {
	svc := newTestCampaigns(t, newStubCampaignsRepo())

	_, err := svc.Create(context.Background(), manager(), CreateInput{
		Name:    "Summer push",
		Product: enums.ProductCode("CHESS"),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListAnnotatesSpend(t *testing.T) {
	repo := newStubCampaignsRepo(&models.Campaign{
		ID:      4,
		Name:    "Summer push",
		Product: enums.ProductCodeTanks,
		Status:  enums.CampaignStatusActive,
	})
	repo.totals[4] = SpendTotal{Spend: decimal.NewFromInt(2500), Placements: 6}
	svc := newTestCampaigns(t, repo)

	overviews, err := svc.List(context.Background(), Filters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(overviews) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(overviews))
	}
	if !overviews[0].Spend.Equal(decimal.NewFromInt(2500)) || overviews[0].Placements != 6 {
		t.Fatalf("unexpected totals %+v", overviews[0])
	}
}

func TestListZeroSpendWithoutPlacements(t *testing.T) {
	repo := newStubCampaignsRepo(&models.Campaign{
		ID:      4,
		Name:    "Summer push",
		Product: enums.ProductCodeTanks,
	})
	svc := newTestCampaigns(t, repo)

	overviews, err := svc.List(context.Background(), Filters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !overviews[0].Spend.IsZero() || overviews[0].Placements != 0 {
		t.Fatalf("expected zero totals, got %+v", overviews[0])
	}
}

func TestUpdateMergesFields(t *testing.T) {
	goal := "awareness"
	repo := newStubCampaignsRepo(&models.Campaign{
		ID:      4,
		Name:    "Summer push",
		Product: enums.ProductCodeTanks,
		Goal:    &goal,
		Status:  enums.CampaignStatusDraft,
	})
	svc := newTestCampaigns(t, repo)

	status := enums.CampaignStatusActive
	updated, err := svc.Update(context.Background(), 4, UpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != enums.CampaignStatusActive {
		t.Fatalf("expected active status, got %s", updated.Status)
	}
	if updated.Goal == nil || *updated.Goal != "awareness" {
		t.Fatalf("expected untouched goal, got %v", updated.Goal)
	}
}

func TestUpdateUnknownCampaign(t *testing.T) {
	svc := newTestCampaigns(t, newStubCampaignsRepo())

	name := "Renamed"
	_, err := svc.Update(context.Background(), 77, UpdateInput{Name: &name})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
