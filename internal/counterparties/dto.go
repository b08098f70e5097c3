package counterparties

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// BloggerRef is the trimmed blogger shape linked to a counterparty.
type BloggerRef struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	SocialPlatform string `json:"socialPlatform"`
}

// PlacementRef is the trimmed placement shape embedded in a detail view.
type PlacementRef struct {
	ID            int64                 `json:"id"`
	CampaignID    int64                 `json:"campaignId"`
	CampaignName  *string               `json:"campaignName,omitempty"`
	BloggerID     int64                 `json:"bloggerId"`
	BloggerName   *string               `json:"bloggerName,omitempty"`
	Status        enums.PlacementStatus `json:"status"`
	PlacementDate *time.Time            `json:"placementDate,omitempty"`
	Fee           *float64              `json:"fee,omitempty"`
}

// DTO is the serialized representation of a counterparty.
type DTO struct {
	ID                   int64                          `json:"id"`
	Name                 string                         `json:"name"`
	Type                 enums.CounterpartyType         `json:"type"`
	RelationshipType     enums.CounterpartyRelationship `json:"relationshipType"`
	ContactName          *string                        `json:"contactName,omitempty"`
	Email                *string                        `json:"email,omitempty"`
	Phone                *string                        `json:"phone,omitempty"`
	INN                  *string                        `json:"inn,omitempty"`
	KPP                  *string                        `json:"kpp,omitempty"`
	OGRN                 *string                        `json:"ogrn,omitempty"`
	OGRNIP               *string                        `json:"ogrnip,omitempty"`
	LegalAddress         *string                        `json:"legalAddress,omitempty"`
	RegistrationAddress  *string                        `json:"registrationAddress,omitempty"`
	CheckingAccount      *string                        `json:"checkingAccount,omitempty"`
	BankName             *string                        `json:"bankName,omitempty"`
	BIK                  *string                        `json:"bik,omitempty"`
	CorrespondentAccount *string                        `json:"correspondentAccount,omitempty"`
	TaxPhone             *string                        `json:"taxPhone,omitempty"`
	PaymentDetails       *string                        `json:"paymentDetails,omitempty"`
	IsActive             bool                           `json:"isActive"`
	Bloggers             []BloggerRef                   `json:"bloggers"`
	Placements           []PlacementRef                 `json:"placements,omitempty"`
	CreatedAt            time.Time                      `json:"createdAt"`
	UpdatedAt            time.Time                      `json:"updatedAt"`
}

// DetailDTO pairs the counterparty with the merged comment thread.
type DetailDTO struct {
	Counterparty DTO            `json:"counterparty"`
	Comments     []comments.DTO `json:"comments"`
}

func ToDTO(counterparty *models.Counterparty) DTO {
	dto := DTO{
		ID:                   counterparty.ID,
		Name:                 counterparty.Name,
		Type:                 counterparty.Type,
		RelationshipType:     counterparty.RelationshipType,
		ContactName:          counterparty.ContactName,
		Email:                counterparty.Email,
		Phone:                counterparty.Phone,
		INN:                  counterparty.INN,
		KPP:                  counterparty.KPP,
		OGRN:                 counterparty.OGRN,
		OGRNIP:               counterparty.OGRNIP,
		LegalAddress:         counterparty.LegalAddress,
		RegistrationAddress:  counterparty.RegistrationAddress,
		CheckingAccount:      counterparty.CheckingAccount,
		BankName:             counterparty.BankName,
		BIK:                  counterparty.BIK,
		CorrespondentAccount: counterparty.CorrespondentAccount,
		TaxPhone:             counterparty.TaxPhone,
		PaymentDetails:       counterparty.PaymentDetails,
		IsActive:             counterparty.IsActive,
		Bloggers:             make([]BloggerRef, 0, len(counterparty.Bloggers)),
		CreatedAt:            counterparty.CreatedAt,
		UpdatedAt:            counterparty.UpdatedAt,
	}
	for i := range counterparty.Bloggers {
		blogger := &counterparty.Bloggers[i]
		dto.Bloggers = append(dto.Bloggers, BloggerRef{
			ID:             blogger.ID,
			Name:           blogger.Name,
			SocialPlatform: blogger.SocialPlatform,
		})
	}
	for i := range counterparty.Placements {
		placement := &counterparty.Placements[i]
		ref := PlacementRef{
			ID:            placement.ID,
			CampaignID:    placement.CampaignID,
			BloggerID:     placement.BloggerID,
			Status:        placement.Status,
			PlacementDate: placement.PlacementDate,
			Fee:           floatValue(placement.Fee),
		}
		if placement.Campaign != nil {
			ref.CampaignName = &placement.Campaign.Name
		}
		if placement.Blogger != nil {
			ref.BloggerName = &placement.Blogger.Name
		}
		dto.Placements = append(dto.Placements, ref)
	}
	return dto
}

func ToDTOs(rows []models.Counterparty) []DTO {
	dtos := make([]DTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, ToDTO(&rows[i]))
	}
	return dtos
}

func ToDetailDTO(detail *Detail) DetailDTO {
	return DetailDTO{
		Counterparty: ToDTO(detail.Counterparty),
		Comments:     comments.ToDTOs(detail.Comments),
	}
}

func floatValue(value *decimal.Decimal) *float64 {
	if value == nil {
		return nil
	}
	parsed := value.InexactFloat64()
	return &parsed
}
