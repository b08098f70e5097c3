package controllers

import (
	"net/http"
	"time"

	"github.com/lestahub/lestahub-backend/api/middleware"
	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/api/validators"
	"github.com/lestahub/lestahub-backend/internal/auth"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionView struct {
	User        userView  `json:"user"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		session, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sessionView{
			User:        toUserView(session.User),
			AccessToken: session.AccessToken,
			ExpiresAt:   session.ExpiresAt,
		})
	}
}

// AuthMe echoes the identity carried by the access token.
func AuthMe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFromContext(r.Context())
		responses.WriteSuccess(w, map[string]any{
			"id":   actor.ID,
			"name": actor.Name,
			"role": actor.Role,
		})
	}
}
