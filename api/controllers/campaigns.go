package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lestahub/lestahub-backend/api/middleware"
	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/api/validators"
	"github.com/lestahub/lestahub-backend/internal/campaigns"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

type campaignCreateRequest struct {
	Name          string   `json:"name" validate:"required,min=1"`
	Product       string   `json:"product" validate:"required"`
	Goal          *string  `json:"goal,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Status        *string  `json:"status,omitempty"`
	BudgetPlanned *float64 `json:"budgetPlanned,omitempty" validate:"omitempty,gte=0"`
	StartDate     *string  `json:"startDate,omitempty"`
	EndDate       *string  `json:"endDate,omitempty"`
	OwnerID       *int64   `json:"ownerId,omitempty" validate:"omitempty,gt=0"`
	AlanbaseSub2  *string  `json:"alanbaseSub2,omitempty"`
}

type campaignUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Product       *string  `json:"product,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Status        *string  `json:"status,omitempty"`
	BudgetPlanned *float64 `json:"budgetPlanned,omitempty" validate:"omitempty,gte=0"`
	StartDate     *string  `json:"startDate,omitempty"`
	EndDate       *string  `json:"endDate,omitempty"`
	OwnerID       *int64   `json:"ownerId,omitempty" validate:"omitempty,gt=0"`
	AlanbaseSub2  *string  `json:"alanbaseSub2,omitempty"`
}

func CampaignsList(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := campaigns.Filters{Search: r.URL.Query().Get("search")}

		if raw := r.URL.Query().Get("product"); raw != "" {
			parsed, err := enums.ParseProductCode(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product"))
				return
			}
			filters.Product = &parsed
		}
		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed, err := enums.ParseCampaignStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid status"))
				return
			}
			filters.Status = &parsed
		}

		rows, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"campaigns": campaigns.ToOverviewDTOs(rows)})
	}
}

func CampaignCreate(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload campaignCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := enums.ParseProductCode(payload.Product)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product"))
			return
		}

		input := campaigns.CreateInput{
			Name:          payload.Name,
			Product:       product,
			Goal:          payload.Goal,
			Type:          payload.Type,
			BudgetPlanned: decimalFromFloat(payload.BudgetPlanned),
			OwnerID:       payload.OwnerID,
			AlanbaseSub2:  payload.AlanbaseSub2,
		}
		if payload.Status != nil {
			parsed, err := enums.ParseCampaignStatus(*payload.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid status"))
				return
			}
			input.Status = &parsed
		}
		if input.StartDate, err = parseDate(payload.StartDate, "startDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.EndDate, err = parseDate(payload.EndDate, "endDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.Create(r.Context(), middleware.ActorFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"campaign": campaigns.ToDTO(campaign)})
	}
}

func CampaignGet(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID, err := validators.PathID(chi.URLParam(r, "id"), "campaign id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		campaign, err := svc.Get(r.Context(), campaignID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"campaign": campaigns.ToDTO(campaign)})
	}
}

func CampaignUpdate(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID, err := validators.PathID(chi.URLParam(r, "id"), "campaign id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload campaignUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := campaigns.UpdateInput{
			Name:          payload.Name,
			Goal:          payload.Goal,
			Type:          payload.Type,
			BudgetPlanned: decimalFromFloat(payload.BudgetPlanned),
			OwnerID:       payload.OwnerID,
			AlanbaseSub2:  payload.AlanbaseSub2,
		}
		if payload.Product != nil {
			parsed, err := enums.ParseProductCode(*payload.Product)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product"))
				return
			}
			input.Product = &parsed
		}
		if payload.Status != nil {
			parsed, err := enums.ParseCampaignStatus(*payload.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid status"))
				return
			}
			input.Status = &parsed
		}
		if input.StartDate, err = parseDate(payload.StartDate, "startDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.EndDate, err = parseDate(payload.EndDate, "endDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.Update(r.Context(), campaignID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"campaign": campaigns.ToDTO(campaign)})
	}
}
