package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lestahub/lestahub-backend/api/middleware"
	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/api/validators"
	"github.com/lestahub/lestahub-backend/internal/placements"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

const (
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxImportBytes   = 10 << 20
	exportAttachment = `attachment; filename="placements_export.xlsx"`
)

type placementCreateRequest struct {
	CampaignID     int64    `json:"campaignId" validate:"required,gt=0"`
	BloggerID      int64    `json:"bloggerId" validate:"required,gt=0"`
	CounterpartyID int64    `json:"counterpartyId" validate:"required,gt=0"`
	PlacementType  string   `json:"placementType" validate:"required"`
	PricingModel   string   `json:"pricingModel" validate:"required"`
	PaymentTerms   string   `json:"paymentTerms" validate:"required"`
	Status         *string  `json:"status,omitempty"`
	PlacementDate  *string  `json:"placementDate,omitempty"`
	Fee            *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	PlacementURL   *string  `json:"placementUrl,omitempty"`
	ScreenshotURL  *string  `json:"screenshotUrl,omitempty"`
	TrackingLink   *string  `json:"trackingLink,omitempty"`
	AlanbaseSub1   *string  `json:"alanbaseSub1,omitempty"`
	EridToken      *string  `json:"eridToken,omitempty"`
	Views          *int64   `json:"views,omitempty" validate:"omitempty,gte=0"`
	Likes          *int64   `json:"likes,omitempty" validate:"omitempty,gte=0"`
	CommentsCount  *int64   `json:"commentsCount,omitempty" validate:"omitempty,gte=0"`
	Shares         *int64   `json:"shares,omitempty" validate:"omitempty,gte=0"`
	ROI            *float64 `json:"roi,omitempty"`
	EngagementRate *float64 `json:"engagementRate,omitempty" validate:"omitempty,gte=0"`
}

type placementUpdateRequest struct {
	BloggerID      *int64   `json:"bloggerId,omitempty" validate:"omitempty,gt=0"`
	CounterpartyID *int64   `json:"counterpartyId,omitempty" validate:"omitempty,gt=0"`
	PlacementType  *string  `json:"placementType,omitempty"`
	PricingModel   *string  `json:"pricingModel,omitempty"`
	PaymentTerms   *string  `json:"paymentTerms,omitempty"`
	Status         *string  `json:"status,omitempty"`
	PlacementDate  *string  `json:"placementDate,omitempty"`
	Fee            *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	PlacementURL   *string  `json:"placementUrl,omitempty"`
	ScreenshotURL  *string  `json:"screenshotUrl,omitempty"`
	TrackingLink   *string  `json:"trackingLink,omitempty"`
	AlanbaseSub1   *string  `json:"alanbaseSub1,omitempty"`
	EridToken      *string  `json:"eridToken,omitempty"`
	Views          *int64   `json:"views,omitempty" validate:"omitempty,gte=0"`
	Likes          *int64   `json:"likes,omitempty" validate:"omitempty,gte=0"`
	CommentsCount  *int64   `json:"commentsCount,omitempty" validate:"omitempty,gte=0"`
	Shares         *int64   `json:"shares,omitempty" validate:"omitempty,gte=0"`
	ROI            *float64 `json:"roi,omitempty"`
	EngagementRate *float64 `json:"engagementRate,omitempty" validate:"omitempty,gte=0"`
}

func parsePlacementStatus(raw *string) (*enums.PlacementStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := enums.ParsePlacementStatus(*raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid placement status")
	}
	return &status, nil
}

func PlacementsList(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := placements.Filters{}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status, err := parsePlacementStatus(&raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			filters.Status = status
		}
		var err error
		if filters.CampaignID, err = validators.ParseQueryID(r, "campaignId"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if filters.BloggerID, err = validators.ParseQueryID(r, "bloggerId"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if filters.CounterpartyID, err = validators.ParseQueryID(r, "counterpartyId"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"placements": placements.ToDTOs(rows)})
	}
}

func PlacementCreate(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload placementCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		placementType, err := enums.ParsePlacementType(payload.PlacementType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid placement type"))
			return
		}
		pricingModel, err := enums.ParsePricingModel(payload.PricingModel)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid pricing model"))
			return
		}
		paymentTerms, err := enums.ParsePaymentTerms(payload.PaymentTerms)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment terms"))
			return
		}

		input := placements.CreateInput{
			CampaignID:     payload.CampaignID,
			BloggerID:      payload.BloggerID,
			CounterpartyID: payload.CounterpartyID,
			PlacementType:  placementType,
			PricingModel:   pricingModel,
			PaymentTerms:   paymentTerms,
			Fee:            decimalFromFloat(payload.Fee),
			PlacementURL:   payload.PlacementURL,
			ScreenshotURL:  payload.ScreenshotURL,
			TrackingLink:   payload.TrackingLink,
			AlanbaseSub1:   payload.AlanbaseSub1,
			EridToken:      payload.EridToken,
			Views:          payload.Views,
			Likes:          payload.Likes,
			CommentsCount:  payload.CommentsCount,
			Shares:         payload.Shares,
			ROI:            decimalFromFloat(payload.ROI),
			EngagementRate: decimalFromFloat(payload.EngagementRate),
		}
		if input.Status, err = parsePlacementStatus(payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.PlacementDate, err = parseDate(payload.PlacementDate, "placementDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		placement, err := svc.Create(r.Context(), input, middleware.ActorFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"placement": placements.ToDTO(placement)})
	}
}

func PlacementGet(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placementID, err := validators.PathID(chi.URLParam(r, "id"), "placement id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		placement, err := svc.Get(r.Context(), placementID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"placement": placements.ToDTO(placement)})
	}
}

func PlacementUpdate(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placementID, err := validators.PathID(chi.URLParam(r, "id"), "placement id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload placementUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := placements.UpdateInput{
			BloggerID:      payload.BloggerID,
			CounterpartyID: payload.CounterpartyID,
			Fee:            decimalFromFloat(payload.Fee),
			PlacementURL:   payload.PlacementURL,
			ScreenshotURL:  payload.ScreenshotURL,
			TrackingLink:   payload.TrackingLink,
			AlanbaseSub1:   payload.AlanbaseSub1,
			EridToken:      payload.EridToken,
			Views:          payload.Views,
			Likes:          payload.Likes,
			CommentsCount:  payload.CommentsCount,
			Shares:         payload.Shares,
			ROI:            decimalFromFloat(payload.ROI),
			EngagementRate: decimalFromFloat(payload.EngagementRate),
		}
		if payload.PlacementType != nil {
			parsed, err := enums.ParsePlacementType(*payload.PlacementType)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid placement type"))
				return
			}
			input.PlacementType = &parsed
		}
		if payload.PricingModel != nil {
			parsed, err := enums.ParsePricingModel(*payload.PricingModel)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid pricing model"))
				return
			}
			input.PricingModel = &parsed
		}
		if payload.PaymentTerms != nil {
			parsed, err := enums.ParsePaymentTerms(*payload.PaymentTerms)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment terms"))
				return
			}
			input.PaymentTerms = &parsed
		}
		if input.Status, err = parsePlacementStatus(payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.PlacementDate, err = parseDate(payload.PlacementDate, "placementDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		placement, err := svc.Update(r.Context(), placementID, input, middleware.ActorFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"placement": placements.ToDTO(placement)})
	}
}

func PlacementDelete(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placementID, err := validators.PathID(chi.URLParam(r, "id"), "placement id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), placementID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// PlacementsExport streams the finance spreadsheet for the filtered rows.
func PlacementsExport(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := placements.ExportFilters{}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status, err := parsePlacementStatus(&raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			filters.Status = status
		}
		var err error
		if filters.CampaignID, err = validators.ParseQueryID(r, "campaignId"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		data, err := svc.Export(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", exportAttachment)
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil && logg != nil {
			logg.Error(r.Context(), "placements.export.write", err)
		}
	}
}

// PlacementsImport reconciles payment statuses from an uploaded spreadsheet.
func PlacementsImport(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart payload"))
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "file is required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read uploaded file"))
			return
		}

		summary, err := svc.Import(r.Context(), data, middleware.ActorFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
