package bloggers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// CounterpartyRef is the trimmed counterparty shape linked to a profile.
type CounterpartyRef struct {
	ID   int64                  `json:"id"`
	Name string                 `json:"name"`
	Type enums.CounterpartyType `json:"type"`
}

// PresetDTO is the serialized representation of a price preset.
type PresetDTO struct {
	ID          int64     `json:"id"`
	BloggerID   int64     `json:"bloggerId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Cost        float64   `json:"cost"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlacementRef is the trimmed placement shape embedded in a profile detail.
type PlacementRef struct {
	ID            int64                 `json:"id"`
	CampaignID    int64                 `json:"campaignId"`
	CampaignName  *string               `json:"campaignName,omitempty"`
	Status        enums.PlacementStatus `json:"status"`
	PlacementDate *time.Time            `json:"placementDate,omitempty"`
	Fee           *float64              `json:"fee,omitempty"`
}

// DTO is the serialized representation of a blogger profile.
type DTO struct {
	ID             int64                 `json:"id"`
	Name           string                `json:"name"`
	ProfileURL     string                `json:"profileUrl"`
	SocialPlatform string                `json:"socialPlatform"`
	Followers      *int64                `json:"followers,omitempty"`
	AverageReach   *int64                `json:"averageReach,omitempty"`
	PrimaryChannel *enums.ContactChannel `json:"primaryChannel,omitempty"`
	PrimaryContact *string               `json:"primaryContact,omitempty"`
	AlanbaseSub3   *string               `json:"alanbaseSub3,omitempty"`
	Topics         []string              `json:"topics"`
	Counterparties []CounterpartyRef     `json:"counterparties"`
	PricePresets   []PresetDTO           `json:"pricePresets"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// DetailDTO extends the profile with placement history and the comment thread.
type DetailDTO struct {
	DTO
	Placements []PlacementRef `json:"placements"`
	Comments   []comments.DTO `json:"comments"`
}

func ToDTO(blogger *models.Blogger) DTO {
	dto := DTO{
		ID:             blogger.ID,
		Name:           blogger.Name,
		ProfileURL:     blogger.ProfileURL,
		SocialPlatform: blogger.SocialPlatform,
		Followers:      blogger.Followers,
		AverageReach:   blogger.AverageReach,
		PrimaryChannel: blogger.PrimaryChannel,
		PrimaryContact: blogger.PrimaryContact,
		AlanbaseSub3:   blogger.AlanbaseSub3,
		Topics:         append([]string{}, blogger.Topics...),
		Counterparties: make([]CounterpartyRef, 0, len(blogger.Counterparties)),
		PricePresets:   make([]PresetDTO, 0, len(blogger.PricePresets)),
		CreatedAt:      blogger.CreatedAt,
		UpdatedAt:      blogger.UpdatedAt,
	}
	for i := range blogger.Counterparties {
		cp := &blogger.Counterparties[i]
		dto.Counterparties = append(dto.Counterparties, CounterpartyRef{ID: cp.ID, Name: cp.Name, Type: cp.Type})
	}
	for i := range blogger.PricePresets {
		dto.PricePresets = append(dto.PricePresets, ToPresetDTO(&blogger.PricePresets[i]))
	}
	return dto
}

func ToDTOs(rows []models.Blogger) []DTO {
	dtos := make([]DTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, ToDTO(&rows[i]))
	}
	return dtos
}

func ToDetailDTO(blogger *models.Blogger) DetailDTO {
	detail := DetailDTO{
		DTO:        ToDTO(blogger),
		Placements: make([]PlacementRef, 0, len(blogger.Placements)),
		Comments:   comments.ToDTOs(blogger.Comments),
	}
	for i := range blogger.Placements {
		placement := &blogger.Placements[i]
		ref := PlacementRef{
			ID:            placement.ID,
			CampaignID:    placement.CampaignID,
			Status:        placement.Status,
			PlacementDate: placement.PlacementDate,
			Fee:           floatPtr(placement.Fee),
		}
		if placement.Campaign != nil {
			ref.CampaignName = &placement.Campaign.Name
		}
		detail.Placements = append(detail.Placements, ref)
	}
	return detail
}

func ToPresetDTO(preset *models.PricePreset) PresetDTO {
	return PresetDTO{
		ID:          preset.ID,
		BloggerID:   preset.BloggerID,
		Title:       preset.Title,
		Description: preset.Description,
		Cost:        preset.Cost.InexactFloat64(),
		CreatedAt:   preset.CreatedAt,
		UpdatedAt:   preset.UpdatedAt,
	}
}

func ToPresetDTOs(rows []models.PricePreset) []PresetDTO {
	dtos := make([]PresetDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, ToPresetDTO(&rows[i]))
	}
	return dtos
}

func floatPtr(value *decimal.Decimal) *float64 {
	if value == nil {
		return nil
	}
	parsed := value.InexactFloat64()
	return &parsed
}
