package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

const topBloggerLimit = 10

var committedStatuses = map[enums.PlacementStatus]bool{
	enums.PlacementStatusAgreed:              true,
	enums.PlacementStatusAwaitingPayment:     true,
	enums.PlacementStatusAwaitingPublication: true,
	enums.PlacementStatusPublished:           true,
	enums.PlacementStatusOverdue:             true,
	enums.PlacementStatusClosed:              true,
}

// Service summarizes campaign performance over a reporting window.
type Service interface {
	Summarize(ctx context.Context, period enums.DashboardPeriod, product string) (*Summary, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a dashboard service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Summarize(ctx context.Context, period enums.DashboardPeriod, product string) (*Summary, error) {
	now := s.now()
	start, end, periodKey := resolvePeriodRange(period, now)

	// Unknown products fall back to the unfiltered view rather than erroring.
	var productFilter *enums.ProductCode
	productLabel := "ALL"
	if parsed, err := enums.ParseProductCode(product); err == nil {
		productFilter = &parsed
		productLabel = string(parsed)
	}

	completed, err := s.repo.CompletedPlacements(ctx, start, end, productFilter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load completed placements")
	}
	campaigns, err := s.repo.ActiveCampaigns(ctx, productFilter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load active campaigns")
	}

	summary := &Summary{
		Filters: Filters{
			Period:  periodKey,
			Product: productLabel,
			Start:   start,
			End:     end,
		},
		Summary:                 foldTotals(completed),
		ActiveCampaigns:         summarizeCampaigns(campaigns, now),
		TopBloggers:             rankBloggers(completed),
		SpendByCounterpartyType: groupCounterpartySpend(completed),
	}
	return summary, nil
}

func foldTotals(completed []models.Placement) Totals {
	totalSpend := decimal.Zero
	totalViews := int64(0)
	erSum := decimal.Zero
	erCount := 0

	for _, placement := range completed {
		totalSpend = totalSpend.Add(feeOf(placement))
		totalViews += viewsOf(placement)
		if placement.EngagementRate != nil {
			erSum = erSum.Add(*placement.EngagementRate)
			erCount++
		}
	}

	totals := Totals{
		TotalSpend:        totalSpend.InexactFloat64(),
		TotalPublications: len(completed),
	}
	if totalViews > 0 {
		cpv := totalSpend.Div(decimal.NewFromInt(totalViews)).InexactFloat64()
		totals.AverageCpv = &cpv
	}
	if erCount > 0 {
		er := erSum.Div(decimal.NewFromInt(int64(erCount))).InexactFloat64()
		totals.AverageEr = &er
	}
	return totals
}

// rankBloggers keeps first-seen order as the tie-break so equal spends stay
// stable across runs.
func rankBloggers(completed []models.Placement) []BloggerStats {
	type bloggerAccum struct {
		name       string
		placements int
		spend      decimal.Decimal
		views      int64
	}

	order := make([]int64, 0)
	accum := make(map[int64]*bloggerAccum)

	for _, placement := range completed {
		if placement.Blogger == nil {
			continue
		}
		id := placement.Blogger.ID
		current, ok := accum[id]
		if !ok {
			current = &bloggerAccum{name: placement.Blogger.Name, spend: decimal.Zero}
			accum[id] = current
			order = append(order, id)
		}
		current.placements++
		current.spend = current.spend.Add(feeOf(placement))
		current.views += viewsOf(placement)
	}

	stats := make([]BloggerStats, 0, len(order))
	for _, id := range order {
		current := accum[id]
		entry := BloggerStats{
			BloggerID:  id,
			Name:       current.name,
			Placements: current.placements,
			Spend:      current.spend.InexactFloat64(),
			Views:      current.views,
		}
		if current.views > 0 {
			cpv := current.spend.Div(decimal.NewFromInt(current.views)).InexactFloat64()
			entry.AverageCpv = &cpv
		}
		stats = append(stats, entry)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Spend > stats[j].Spend
	})
	if len(stats) > topBloggerLimit {
		stats = stats[:topBloggerLimit]
	}
	return stats
}

func groupCounterpartySpend(completed []models.Placement) []CounterpartySpend {
	order := make([]enums.CounterpartyType, 0)
	spend := make(map[enums.CounterpartyType]decimal.Decimal)

	for _, placement := range completed {
		if placement.Counterparty == nil {
			continue
		}
		kind := placement.Counterparty.Type
		current, ok := spend[kind]
		if !ok {
			order = append(order, kind)
			current = decimal.Zero
		}
		spend[kind] = current.Add(feeOf(placement))
	}

	grouped := make([]CounterpartySpend, 0, len(order))
	for _, kind := range order {
		grouped = append(grouped, CounterpartySpend{Type: kind, Spend: spend[kind].InexactFloat64()})
	}
	return grouped
}

func summarizeCampaigns(campaigns []models.Campaign, now time.Time) []CampaignSummary {
	summaries := make([]CampaignSummary, 0, len(campaigns))
	for _, campaign := range campaigns {
		budgetPlanned := decimal.Zero
		if campaign.BudgetPlanned != nil {
			budgetPlanned = *campaign.BudgetPlanned
		}

		timeProgress := 0.0
		if campaign.StartDate != nil && campaign.EndDate != nil {
			totalDuration := campaign.EndDate.Sub(*campaign.StartDate)
			if totalDuration > 0 {
				timeProgress = clamp01(float64(now.Sub(*campaign.StartDate)) / float64(totalDuration))
			} else if !now.Before(*campaign.EndDate) {
				timeProgress = 1
			}
		}

		spend := decimal.Zero
		for _, placement := range campaign.Placements {
			if committedStatuses[placement.Status] {
				spend = spend.Add(feeOf(placement))
			}
		}

		budgetProgress := 0.0
		if budgetPlanned.IsPositive() {
			budgetProgress = clamp01(spend.Div(budgetPlanned).InexactFloat64())
		}

		summaries = append(summaries, CampaignSummary{
			ID:             campaign.ID,
			Name:           campaign.Name,
			Product:        campaign.Product,
			StartDate:      campaign.StartDate,
			EndDate:        campaign.EndDate,
			BudgetPlanned:  budgetPlanned.InexactFloat64(),
			Spend:          spend.InexactFloat64(),
			TimeProgress:   timeProgress,
			BudgetProgress: budgetProgress,
		})
	}
	return summaries
}

func feeOf(placement models.Placement) decimal.Decimal {
	if placement.Fee == nil {
		return decimal.Zero
	}
	return *placement.Fee
}

func viewsOf(placement models.Placement) int64 {
	if placement.Views == nil {
		return 0
	}
	return *placement.Views
}

func clamp01(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return math.Min(1, math.Max(0, value))
}
