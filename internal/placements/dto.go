package placements

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// CreateInput captures the data required to register a placement.
type CreateInput struct {
	CampaignID     int64
	BloggerID      int64
	CounterpartyID int64
	PlacementType  enums.PlacementType
	PricingModel   enums.PricingModel
	PaymentTerms   enums.PaymentTerms
	Status         *enums.PlacementStatus
	PlacementDate  *time.Time
	Fee            *decimal.Decimal
	PlacementURL   *string
	ScreenshotURL  *string
	TrackingLink   *string
	AlanbaseSub1   *string
	EridToken      *string
	Views          *int64
	Likes          *int64
	CommentsCount  *int64
	Shares         *int64
	ROI            *decimal.Decimal
	EngagementRate *decimal.Decimal
}

// UpdateInput carries a partial placement update. A nil field leaves the
// stored value unchanged.
type UpdateInput struct {
	BloggerID      *int64
	CounterpartyID *int64
	PlacementType  *enums.PlacementType
	PricingModel   *enums.PricingModel
	PaymentTerms   *enums.PaymentTerms
	Status         *enums.PlacementStatus
	PlacementDate  *time.Time
	Fee            *decimal.Decimal
	PlacementURL   *string
	ScreenshotURL  *string
	TrackingLink   *string
	AlanbaseSub1   *string
	EridToken      *string
	Views          *int64
	Likes          *int64
	CommentsCount  *int64
	Shares         *int64
	ROI            *decimal.Decimal
	EngagementRate *decimal.Decimal
}

// hasNonStatusFields reports whether the payload touches anything besides the
// status column.
func (u UpdateInput) hasNonStatusFields() bool {
	return u.BloggerID != nil ||
		u.CounterpartyID != nil ||
		u.PlacementType != nil ||
		u.PricingModel != nil ||
		u.PaymentTerms != nil ||
		u.PlacementDate != nil ||
		u.Fee != nil ||
		u.PlacementURL != nil ||
		u.ScreenshotURL != nil ||
		u.TrackingLink != nil ||
		u.AlanbaseSub1 != nil ||
		u.EridToken != nil ||
		u.Views != nil ||
		u.Likes != nil ||
		u.CommentsCount != nil ||
		u.Shares != nil ||
		u.ROI != nil ||
		u.EngagementRate != nil
}

// Filters narrows placement listings.
type Filters struct {
	Status         *enums.PlacementStatus
	CampaignID     *int64
	BloggerID      *int64
	CounterpartyID *int64
}

// ExportFilters selects the rows serialized into the finance spreadsheet.
type ExportFilters struct {
	Status     *enums.PlacementStatus
	CampaignID *int64
}

// ImportSummary tallies the outcome of a payment reconciliation import.
type ImportSummary struct {
	Updated  int `json:"updated"`
	NotFound int `json:"notFound"`
	Skipped  int `json:"skipped"`
}

// CampaignRef is the trimmed campaign reference embedded in a placement.
type CampaignRef struct {
	ID      int64             `json:"id"`
	Name    string            `json:"name"`
	Product enums.ProductCode `json:"product"`
}

// BloggerRef is the trimmed blogger reference embedded in a placement.
type BloggerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CounterpartyRef is the trimmed counterparty reference embedded in a
// placement.
type CounterpartyRef struct {
	ID   int64                  `json:"id"`
	Name string                 `json:"name"`
	Type enums.CounterpartyType `json:"type"`
}

// DTO is the serialized representation of a placement.
type DTO struct {
	ID             int64                 `json:"id"`
	CampaignID     int64                 `json:"campaignId"`
	BloggerID      int64                 `json:"bloggerId"`
	CounterpartyID int64                 `json:"counterpartyId"`
	CreatedByID    int64                 `json:"createdById"`
	PlacementType  enums.PlacementType   `json:"placementType"`
	PricingModel   enums.PricingModel    `json:"pricingModel"`
	PaymentTerms   enums.PaymentTerms    `json:"paymentTerms"`
	Status         enums.PlacementStatus `json:"status"`
	PlacementDate  *time.Time            `json:"placementDate,omitempty"`
	Fee            *float64              `json:"fee,omitempty"`
	PlacementURL   *string               `json:"placementUrl,omitempty"`
	ScreenshotURL  *string               `json:"screenshotUrl,omitempty"`
	TrackingLink   *string               `json:"trackingLink,omitempty"`
	AlanbaseSub1   *string               `json:"alanbaseSub1,omitempty"`
	EridToken      *string               `json:"eridToken,omitempty"`
	Views          *int64                `json:"views,omitempty"`
	Likes          *int64                `json:"likes,omitempty"`
	CommentsCount  *int64                `json:"commentsCount,omitempty"`
	Shares         *int64                `json:"shares,omitempty"`
	ROI            *float64              `json:"roi,omitempty"`
	EngagementRate *float64              `json:"engagementRate,omitempty"`
	Campaign       *CampaignRef          `json:"campaign,omitempty"`
	Blogger        *BloggerRef           `json:"blogger,omitempty"`
	Counterparty   *CounterpartyRef      `json:"counterparty,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func ToDTO(placement *models.Placement) DTO {
	dto := DTO{
		ID:             placement.ID,
		CampaignID:     placement.CampaignID,
		BloggerID:      placement.BloggerID,
		CounterpartyID: placement.CounterpartyID,
		CreatedByID:    placement.CreatedByID,
		PlacementType:  placement.PlacementType,
		PricingModel:   placement.PricingModel,
		PaymentTerms:   placement.PaymentTerms,
		Status:         placement.Status,
		PlacementDate:  placement.PlacementDate,
		Fee:            floatValue(placement.Fee),
		PlacementURL:   placement.PlacementURL,
		ScreenshotURL:  placement.ScreenshotURL,
		TrackingLink:   placement.TrackingLink,
		AlanbaseSub1:   placement.AlanbaseSub1,
		EridToken:      placement.EridToken,
		Views:          placement.Views,
		Likes:          placement.Likes,
		CommentsCount:  placement.CommentsCount,
		Shares:         placement.Shares,
		ROI:            floatValue(placement.ROI),
		EngagementRate: floatValue(placement.EngagementRate),
		CreatedAt:      placement.CreatedAt,
		UpdatedAt:      placement.UpdatedAt,
	}
	if placement.Campaign != nil {
		dto.Campaign = &CampaignRef{ID: placement.Campaign.ID, Name: placement.Campaign.Name, Product: placement.Campaign.Product}
	}
	if placement.Blogger != nil {
		dto.Blogger = &BloggerRef{ID: placement.Blogger.ID, Name: placement.Blogger.Name}
	}
	if placement.Counterparty != nil {
		dto.Counterparty = &CounterpartyRef{ID: placement.Counterparty.ID, Name: placement.Counterparty.Name, Type: placement.Counterparty.Type}
	}
	return dto
}

func ToDTOs(rows []models.Placement) []DTO {
	dtos := make([]DTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, ToDTO(&rows[i]))
	}
	return dtos
}

func floatValue(value *decimal.Decimal) *float64 {
	if value == nil {
		return nil
	}
	parsed := value.InexactFloat64()
	return &parsed
}
