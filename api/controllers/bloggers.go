package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/api/validators"
	"github.com/lestahub/lestahub-backend/internal/bloggers"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

type bloggerCreateRequest struct {
	Name            string   `json:"name" validate:"required,min=1"`
	ProfileURL      string   `json:"profileUrl" validate:"required,url"`
	SocialPlatform  string   `json:"socialPlatform" validate:"required,min=1"`
	Followers       *int64   `json:"followers,omitempty" validate:"omitempty,gte=0"`
	AverageReach    *int64   `json:"averageReach,omitempty" validate:"omitempty,gte=0"`
	PrimaryChannel  *string  `json:"primaryChannel,omitempty"`
	PrimaryContact  *string  `json:"primaryContact,omitempty"`
	AlanbaseSub3    *string  `json:"alanbaseSub3,omitempty"`
	Topics          []string `json:"topics,omitempty"`
	CounterpartyIDs []int64  `json:"counterpartyIds,omitempty" validate:"omitempty,dive,gt=0"`
}

type bloggerUpdateRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	ProfileURL      *string  `json:"profileUrl,omitempty" validate:"omitempty,url"`
	SocialPlatform  *string  `json:"socialPlatform,omitempty" validate:"omitempty,min=1"`
	Followers       *int64   `json:"followers,omitempty" validate:"omitempty,gte=0"`
	AverageReach    *int64   `json:"averageReach,omitempty" validate:"omitempty,gte=0"`
	PrimaryChannel  *string  `json:"primaryChannel,omitempty"`
	PrimaryContact  *string  `json:"primaryContact,omitempty"`
	AlanbaseSub3    *string  `json:"alanbaseSub3,omitempty"`
	Topics          []string `json:"topics,omitempty"`
	CounterpartyIDs []int64  `json:"counterpartyIds,omitempty" validate:"omitempty,dive,gt=0"`
}

func parseContactChannel(raw *string) (*enums.ContactChannel, error) {
	if raw == nil {
		return nil, nil
	}
	channel, err := enums.ParseContactChannel(*raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid contact channel")
	}
	return &channel, nil
}

func BloggersList(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counterpartyID, err := validators.ParseQueryID(r, "counterpartyId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters := bloggers.Filters{
			Search:         r.URL.Query().Get("search"),
			Social:         r.URL.Query().Get("social"),
			CounterpartyID: counterpartyID,
		}
		rows, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"bloggers": bloggers.ToDTOs(rows)})
	}
}

func BloggerCreate(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bloggerCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		channel, err := parseContactChannel(payload.PrimaryChannel)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		blogger, err := svc.Create(r.Context(), bloggers.CreateInput{
			Name:            payload.Name,
			ProfileURL:      payload.ProfileURL,
			SocialPlatform:  payload.SocialPlatform,
			Followers:       payload.Followers,
			AverageReach:    payload.AverageReach,
			PrimaryChannel:  channel,
			PrimaryContact:  payload.PrimaryContact,
			AlanbaseSub3:    payload.AlanbaseSub3,
			Topics:          payload.Topics,
			CounterpartyIDs: payload.CounterpartyIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"blogger": bloggers.ToDTO(blogger)})
	}
}

func BloggerGet(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bloggerID, err := validators.PathID(chi.URLParam(r, "id"), "blogger id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		blogger, err := svc.Get(r.Context(), bloggerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"blogger": bloggers.ToDetailDTO(blogger)})
	}
}

func BloggerUpdate(svc bloggers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bloggerID, err := validators.PathID(chi.URLParam(r, "id"), "blogger id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload bloggerUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		channel, err := parseContactChannel(payload.PrimaryChannel)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		blogger, err := svc.Update(r.Context(), bloggerID, bloggers.UpdateInput{
			Name:            payload.Name,
			ProfileURL:      payload.ProfileURL,
			SocialPlatform:  payload.SocialPlatform,
			Followers:       payload.Followers,
			AverageReach:    payload.AverageReach,
			PrimaryChannel:  channel,
			PrimaryContact:  payload.PrimaryContact,
			AlanbaseSub3:    payload.AlanbaseSub3,
			Topics:          payload.Topics,
			CounterpartyIDs: payload.CounterpartyIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"blogger": bloggers.ToDTO(blogger)})
	}
}
