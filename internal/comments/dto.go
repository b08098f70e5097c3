package comments

import (
	"time"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
)

// AuthorDTO is the trimmed author reference embedded in a comment.
type AuthorDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DTO is the serialized representation of a comment.
type DTO struct {
	ID             int64      `json:"id"`
	Body           string     `json:"body"`
	IsSystem       bool       `json:"isSystem"`
	BloggerID      *int64     `json:"bloggerId,omitempty"`
	CounterpartyID *int64     `json:"counterpartyId,omitempty"`
	PlacementID    *int64     `json:"placementId,omitempty"`
	Author         *AuthorDTO `json:"author,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func ToDTO(comment *models.Comment) DTO {
	dto := DTO{
		ID:             comment.ID,
		Body:           comment.Body,
		IsSystem:       comment.IsSystem,
		BloggerID:      comment.BloggerID,
		CounterpartyID: comment.CounterpartyID,
		PlacementID:    comment.PlacementID,
		CreatedAt:      comment.CreatedAt,
	}
	if comment.Author != nil {
		dto.Author = &AuthorDTO{ID: comment.Author.ID, Name: comment.Author.Name}
	}
	return dto
}

func ToDTOs(rows []models.Comment) []DTO {
	dtos := make([]DTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, ToDTO(&rows[i]))
	}
	return dtos
}
