package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

type stubDashboardRepo struct {
	placements []models.Placement
	campaigns  []models.Campaign

	lastStart   time.Time
	lastEnd     time.Time
	lastProduct *enums.ProductCode
}

func (s *stubDashboardRepo) CompletedPlacements(_ context.Context, start, end time.Time, product *enums.ProductCode) ([]models.Placement, error) {
	s.lastStart = start
	s.lastEnd = end
	s.lastProduct = product
	return s.placements, nil
}

func (s *stubDashboardRepo) ActiveCampaigns(_ context.Context, _ *enums.ProductCode) ([]models.Campaign, error) {
	return s.campaigns, nil
}

func newTestDashboard(t *testing.T, repo *stubDashboardRepo, now time.Time) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	svc.(*service).now = func() time.Time { return now }
	return svc
}

func completedPlacement(bloggerID int64, bloggerName string, fee float64, views int64, counterpartyType enums.CounterpartyType) models.Placement {
	amount := decimal.NewFromFloat(fee)
	return models.Placement{
		Status: enums.PlacementStatusPublished,
		Fee:    &amount,
		Views:  &views,
		Blogger: &models.Blogger{
			ID:   bloggerID,
			Name: bloggerName,
		},
		Counterparty: &models.Counterparty{
			Type: counterpartyType,
		},
	}
}

func TestSummarizeEmptyWindow(t *testing.T) {
	repo := &stubDashboardRepo{}
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboard(t, repo, now)

	summary, err := svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if summary.Summary.TotalSpend != 0 {
		t.Fatalf("expected zero spend, got %v", summary.Summary.TotalSpend)
	}
	if summary.Summary.TotalPublications != 0 {
		t.Fatalf("expected zero publications, got %d", summary.Summary.TotalPublications)
	}
	if summary.Summary.AverageCpv != nil {
		t.Fatalf("expected nil averageCpv, got %v", *summary.Summary.AverageCpv)
	}
	if summary.Summary.AverageEr != nil {
		t.Fatalf("expected nil averageEr, got %v", *summary.Summary.AverageEr)
	}
	if len(summary.TopBloggers) != 0 {
		t.Fatalf("expected no top bloggers, got %d", len(summary.TopBloggers))
	}
	if len(summary.SpendByCounterpartyType) != 0 {
		t.Fatalf("expected no counterparty groups, got %d", len(summary.SpendByCounterpartyType))
	}
	if summary.Filters.Product != "ALL" {
		t.Fatalf("expected product ALL, got %q", summary.Filters.Product)
	}
	wantStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !summary.Filters.Start.Equal(wantStart) || !summary.Filters.End.Equal(now) {
		t.Fatalf("unexpected window %v - %v", summary.Filters.Start, summary.Filters.End)
	}
}

func TestSummarizeTotalsAndAverages(t *testing.T) {
	first := completedPlacement(1, "Anna", 1000, 20000, enums.CounterpartyTypeLegalEntity)
	er := decimal.NewFromFloat(4.5)
	first.EngagementRate = &er

	second := completedPlacement(2, "Boris", 500, 0, enums.CounterpartyTypeSelfEmployed)
	second.Views = nil

	repo := &stubDashboardRepo{placements: []models.Placement{first, second}}
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboard(t, repo, now)

	summary, err := svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if summary.Summary.TotalSpend != 1500 {
		t.Fatalf("expected total spend 1500, got %v", summary.Summary.TotalSpend)
	}
	if summary.Summary.TotalPublications != 2 {
		t.Fatalf("expected 2 publications, got %d", summary.Summary.TotalPublications)
	}
	if summary.Summary.AverageCpv == nil || *summary.Summary.AverageCpv != 0.075 {
		t.Fatalf("expected averageCpv 0.075, got %v", summary.Summary.AverageCpv)
	}
	if summary.Summary.AverageEr == nil || *summary.Summary.AverageEr != 4.5 {
		t.Fatalf("expected averageEr 4.5, got %v", summary.Summary.AverageEr)
	}
}

func TestSummarizeRanksBloggersBySpend(t *testing.T) {
	placements := []models.Placement{
		completedPlacement(1, "Anna", 300, 1000, enums.CounterpartyTypeLegalEntity),
		completedPlacement(2, "Boris", 800, 2000, enums.CounterpartyTypeLegalEntity),
		completedPlacement(3, "Vera", 300, 0, enums.CounterpartyTypeSoleProprietor),
		completedPlacement(1, "Anna", 200, 500, enums.CounterpartyTypeLegalEntity),
	}
	placements[2].Views = nil

	repo := &stubDashboardRepo{placements: placements}
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboard(t, repo, now)

	summary, err := svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	top := summary.TopBloggers
	if len(top) != 3 {
		t.Fatalf("expected 3 bloggers, got %d", len(top))
	}
	if top[0].Name != "Boris" || top[0].Spend != 800 {
		t.Fatalf("expected Boris first, got %q spend %v", top[0].Name, top[0].Spend)
	}
	// Anna and Vera both spent 300 total; Anna appeared first and keeps
	// her position.
	if top[1].Name != "Anna" || top[1].Spend != 500 {
		t.Fatalf("expected Anna second, got %q spend %v", top[1].Name, top[1].Spend)
	}
	if top[1].Placements != 2 {
		t.Fatalf("expected Anna to have 2 placements, got %d", top[1].Placements)
	}
	if top[2].Name != "Vera" {
		t.Fatalf("expected Vera third, got %q", top[2].Name)
	}
	if top[2].AverageCpv != nil {
		t.Fatalf("expected nil averageCpv without views, got %v", *top[2].AverageCpv)
	}
}

func TestSummarizeTopBloggersCappedAtTen(t *testing.T) {
	placements := make([]models.Placement, 0, 12)
	for i := int64(1); i <= 12; i++ {
		placements = append(placements, completedPlacement(i, "Blogger", float64(i*100), 1000, enums.CounterpartyTypeLegalEntity))
	}

	repo := &stubDashboardRepo{placements: placements}
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboard(t, repo, now)

	summary, err := svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(summary.TopBloggers) != 10 {
		t.Fatalf("expected 10 bloggers, got %d", len(summary.TopBloggers))
	}
	if summary.TopBloggers[0].Spend != 1200 {
		t.Fatalf("expected highest spender first, got %v", summary.TopBloggers[0].Spend)
	}
}

func TestSummarizeGroupsSpendByCounterpartyType(t *testing.T) {
	placements := []models.Placement{
		completedPlacement(1, "Anna", 400, 0, enums.CounterpartyTypeLegalEntity),
		completedPlacement(2, "Boris", 100, 0, enums.CounterpartyTypeSelfEmployed),
		completedPlacement(3, "Vera", 600, 0, enums.CounterpartyTypeLegalEntity),
	}

	repo := &stubDashboardRepo{placements: placements}
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboard(t, repo, now)

	summary, err := svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	groups := summary.SpendByCounterpartyType
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Type != enums.CounterpartyTypeLegalEntity || groups[0].Spend != 1000 {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if groups[1].Type != enums.CounterpartyTypeSelfEmployed || groups[1].Spend != 100 {
		t.Fatalf("unexpected second group %+v", groups[1])
	}
}

func TestSummarizeCampaignProgress(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	budget := decimal.NewFromInt(1000)
	committedFee := decimal.NewFromInt(300)
	plannedFee := decimal.NewFromInt(700)

	repo := &stubDashboardRepo{
		campaigns: []models.Campaign{
			{
				ID:            7,
				Name:          "Summer push",
				Product:       enums.ProductCodeTanks,
				StartDate:     &start,
				EndDate:       &end,
				BudgetPlanned: &budget,
				Placements: []models.Placement{
					{Status: enums.PlacementStatusAgreed, Fee: &committedFee},
					{Status: enums.PlacementStatusPlanned, Fee: &plannedFee},
					{Status: enums.PlacementStatusDeclined, Fee: &plannedFee},
				},
			},
			{
				ID:   8,
				Name: "No dates",
			},
		},
	}

	// 29 days elapsed of a 29 day window would clamp to 1; pick halfway.
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboard(t, repo, now)

	summary, err := svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(summary.ActiveCampaigns) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(summary.ActiveCampaigns))
	}

	first := summary.ActiveCampaigns[0]
	if first.Spend != 300 {
		t.Fatalf("expected committed spend 300, got %v", first.Spend)
	}
	if first.BudgetProgress != 0.3 {
		t.Fatalf("expected budget progress 0.3, got %v", first.BudgetProgress)
	}
	if first.TimeProgress <= 0.4 || first.TimeProgress >= 0.6 {
		t.Fatalf("expected mid-window time progress, got %v", first.TimeProgress)
	}

	second := summary.ActiveCampaigns[1]
	if second.TimeProgress != 0 || second.BudgetProgress != 0 {
		t.Fatalf("expected zero progress without dates and budget, got %+v", second)
	}
}

func TestSummarizeProductFilter(t *testing.T) {
	repo := &stubDashboardRepo{}
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboard(t, repo, now)

	summary, err := svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, string(enums.ProductCodeTanks))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if repo.lastProduct == nil || *repo.lastProduct != enums.ProductCodeTanks {
		t.Fatalf("expected product filter to reach the repository, got %v", repo.lastProduct)
	}
	if summary.Filters.Product != string(enums.ProductCodeTanks) {
		t.Fatalf("expected echoed product, got %q", summary.Filters.Product)
	}

	summary, err = svc.Summarize(context.Background(), enums.DashboardPeriodCurrentMonth, "NOT_A_PRODUCT")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if repo.lastProduct != nil {
		t.Fatalf("expected no filter for unknown product, got %v", *repo.lastProduct)
	}
	if summary.Filters.Product != "ALL" {
		t.Fatalf("expected product ALL for unknown input, got %q", summary.Filters.Product)
	}
}
