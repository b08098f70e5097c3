package controllers

import (
	"net/http"

	"github.com/lestahub/lestahub-backend/api/middleware"
	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/api/validators"
	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

type commentCreateRequest struct {
	Body           string `json:"body" validate:"required,min=1"`
	BloggerID      *int64 `json:"bloggerId,omitempty" validate:"omitempty,gt=0"`
	CounterpartyID *int64 `json:"counterpartyId,omitempty" validate:"omitempty,gt=0"`
}

func CommentCreate(svc comments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload commentCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comment, err := svc.Create(r.Context(), comments.CreateInput{
			AuthorID:       middleware.UserIDFromContext(r.Context()),
			Body:           payload.Body,
			BloggerID:      payload.BloggerID,
			CounterpartyID: payload.CounterpartyID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"comment": comments.ToDTO(comment)})
	}
}

func CommentsList(svc comments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bloggerID, err := validators.ParseQueryID(r, "bloggerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		counterpartyID, err := validators.ParseQueryID(r, "counterpartyId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var rows []models.Comment
		switch {
		case bloggerID != nil:
			rows, err = svc.ListByBlogger(r.Context(), *bloggerID)
		case counterpartyID != nil:
			rows, err = svc.ListByCounterparty(r.Context(), *counterpartyID)
		default:
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "bloggerId or counterpartyId is required"))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"comments": comments.ToDTOs(rows)})
	}
}
