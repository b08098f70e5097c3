package dashboard

import (
	"time"

	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Filters echoes the resolved reporting window back to the caller.
type Filters struct {
	Period  enums.DashboardPeriod `json:"period"`
	Product string                `json:"product"`
	Start   time.Time             `json:"start"`
	End     time.Time             `json:"end"`
}

// Totals aggregates the completed placements inside the window.
type Totals struct {
	TotalSpend        float64  `json:"totalSpend"`
	TotalPublications int      `json:"totalPublications"`
	AverageCpv        *float64 `json:"averageCpv"`
	AverageEr         *float64 `json:"averageEr"`
}

// BloggerStats ranks a blogger by completed spend.
type BloggerStats struct {
	BloggerID  int64    `json:"bloggerId"`
	Name       string   `json:"name"`
	Placements int      `json:"placements"`
	Spend      float64  `json:"spend"`
	Views      int64    `json:"views"`
	AverageCpv *float64 `json:"averageCpv"`
}

// CounterpartySpend groups completed spend by counterparty legal form.
type CounterpartySpend struct {
	Type  enums.CounterpartyType `json:"type"`
	Spend float64                `json:"spend"`
}

// CampaignSummary annotates an active campaign with progress ratios.
type CampaignSummary struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Product        enums.ProductCode `json:"product"`
	StartDate      *time.Time        `json:"startDate"`
	EndDate        *time.Time        `json:"endDate"`
	BudgetPlanned  float64           `json:"budgetPlanned"`
	Spend          float64           `json:"spend"`
	TimeProgress   float64           `json:"timeProgress"`
	BudgetProgress float64           `json:"budgetProgress"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Filters                 Filters             `json:"filters"`
	Summary                 Totals              `json:"summary"`
	ActiveCampaigns         []CampaignSummary   `json:"activeCampaigns"`
	TopBloggers             []BloggerStats      `json:"topBloggers"`
	SpendByCounterpartyType []CounterpartySpend `json:"spendByCounterpartyType"`
}
