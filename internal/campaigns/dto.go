package campaigns

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// OwnerRef is the trimmed owner reference embedded in a campaign.
type OwnerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PlacementRef is the trimmed placement shape embedded in a detail view.
type PlacementRef struct {
	ID             int64                 `json:"id"`
	BloggerID      int64                 `json:"bloggerId"`
	BloggerName    *string               `json:"bloggerName,omitempty"`
	CounterpartyID int64                 `json:"counterpartyId"`
	Status         enums.PlacementStatus `json:"status"`
	PlacementDate  *time.Time            `json:"placementDate,omitempty"`
	Fee            *float64              `json:"fee,omitempty"`
}

// DTO is the serialized representation of a campaign.
type DTO struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Product       enums.ProductCode    `json:"product"`
	Goal          *string              `json:"goal,omitempty"`
	Type          *string              `json:"type,omitempty"`
	BudgetPlanned *float64             `json:"budgetPlanned,omitempty"`
	Status        enums.CampaignStatus `json:"status"`
	StartDate     *time.Time           `json:"startDate,omitempty"`
	EndDate       *time.Time           `json:"endDate,omitempty"`
	OwnerID       *int64               `json:"ownerId,omitempty"`
	Owner         *OwnerRef            `json:"owner,omitempty"`
	AlanbaseSub2  *string              `json:"alanbaseSub2,omitempty"`
	Placements    []PlacementRef       `json:"placements,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// OverviewDTO annotates a campaign with its aggregated placement figures.
type OverviewDTO struct {
	DTO
	Spend      float64 `json:"spend"`
	Placements int64   `json:"placements"`
}

func ToDTO(campaign *models.Campaign) DTO {
	dto := DTO{
		ID:            campaign.ID,
		Name:          campaign.Name,
		Product:       campaign.Product,
		Goal:          campaign.Goal,
		Type:          campaign.Type,
		BudgetPlanned: floatValue(campaign.BudgetPlanned),
		Status:        campaign.Status,
		StartDate:     campaign.StartDate,
		EndDate:       campaign.EndDate,
		OwnerID:       campaign.OwnerID,
		AlanbaseSub2:  campaign.AlanbaseSub2,
		CreatedAt:     campaign.CreatedAt,
		UpdatedAt:     campaign.UpdatedAt,
	}
	if campaign.Owner != nil {
		dto.Owner = &OwnerRef{ID: campaign.Owner.ID, Name: campaign.Owner.Name}
	}
	for i := range campaign.Placements {
		placement := &campaign.Placements[i]
		ref := PlacementRef{
			ID:             placement.ID,
			BloggerID:      placement.BloggerID,
			CounterpartyID: placement.CounterpartyID,
			Status:         placement.Status,
			PlacementDate:  placement.PlacementDate,
			Fee:            floatValue(placement.Fee),
		}
		if placement.Blogger != nil {
			ref.BloggerName = &placement.Blogger.Name
		}
		dto.Placements = append(dto.Placements, ref)
	}
	return dto
}

func ToOverviewDTO(overview Overview) OverviewDTO {
	return OverviewDTO{
		DTO:        ToDTO(&overview.Campaign),
		Spend:      overview.Spend.InexactFloat64(),
		Placements: overview.Placements,
	}
}

func ToOverviewDTOs(rows []Overview) []OverviewDTO {
	dtos := make([]OverviewDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, ToOverviewDTO(row))
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
