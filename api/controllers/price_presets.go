package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/api/validators"
	"github.com/lestahub/lestahub-backend/internal/bloggers"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

type presetCreateRequest struct {
	BloggerID   int64   `json:"bloggerId" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
	Cost        float64 `json:"cost" validate:"gte=0"`
}

type presetUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Cost        *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
}

func PricePresetsList(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bloggerID, err := validators.ParseQueryID(r, "bloggerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.ListPresets(r.Context(), bloggerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"pricePresets": bloggers.ToPresetDTOs(rows)})
	}
}

func PricePresetCreate(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload presetCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		preset, err := svc.CreatePreset(r.Context(), bloggers.PresetInput{
			BloggerID:   payload.BloggerID,
			Title:       payload.Title,
			Description: payload.Description,
			Cost:        decimal.NewFromFloat(payload.Cost),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"pricePreset": bloggers.ToPresetDTO(preset)})
	}
}

func PricePresetUpdate(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		presetID, err := validators.PathID(chi.URLParam(r, "id"), "preset id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload presetUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		preset, err := svc.UpdatePreset(r.Context(), presetID, bloggers.PresetUpdateInput{
			Title:       payload.Title,
			Description: payload.Description,
			Cost:        decimalFromFloat(payload.Cost),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"pricePreset": bloggers.ToPresetDTO(preset)})
	}
}

func PricePresetDelete(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		presetID, err := validators.PathID(chi.URLParam(r, "id"), "preset id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeletePreset(r.Context(), presetID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
