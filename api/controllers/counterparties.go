package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/api/validators"
	"github.com/lestahub/lestahub-backend/internal/counterparties"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

type counterpartyCreateRequest struct {
	Name                 string  `json:"name" validate:"required,min=1"`
	Type                 string  `json:"type" validate:"required"`
	RelationshipType     string  `json:"relationshipType" validate:"required"`
	ContactName          *string `json:"contactName,omitempty"`
	Email                *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone                *string `json:"phone,omitempty"`
	INN                  *string `json:"inn,omitempty"`
	KPP                  *string `json:"kpp,omitempty"`
	OGRN                 *string `json:"ogrn,omitempty"`
	OGRNIP               *string `json:"ogrnip,omitempty"`
	LegalAddress         *string `json:"legalAddress,omitempty"`
	RegistrationAddress  *string `json:"registrationAddress,omitempty"`
	CheckingAccount      *string `json:"checkingAccount,omitempty"`
	BankName             *string `json:"bankName,omitempty"`
	BIK                  *string `json:"bik,omitempty"`
	CorrespondentAccount *string `json:"correspondentAccount,omitempty"`
	TaxPhone             *string `json:"taxPhone,omitempty"`
	PaymentDetails       *string `json:"paymentDetails,omitempty"`
	IsActive             *bool   `json:"isActive,omitempty"`
	BloggerIDs           []int64 `json:"bloggerIds,omitempty" validate:"omitempty,dive,gt=0"`
}

type counterpartyUpdateRequest struct {
	Name                 *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Type                 *string `json:"type,omitempty"`
	RelationshipType     *string `json:"relationshipType,omitempty"`
	ContactName          *string `json:"contactName,omitempty"`
	Email                *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone                *string `json:"phone,omitempty"`
	INN                  *string `json:"inn,omitempty"`
	KPP                  *string `json:"kpp,omitempty"`
	OGRN                 *string `json:"ogrn,omitempty"`
	OGRNIP               *string `json:"ogrnip,omitempty"`
	LegalAddress         *string `json:"legalAddress,omitempty"`
	RegistrationAddress  *string `json:"registrationAddress,omitempty"`
	CheckingAccount      *string `json:"checkingAccount,omitempty"`
	BankName             *string `json:"bankName,omitempty"`
	BIK                  *string `json:"bik,omitempty"`
	CorrespondentAccount *string `json:"correspondentAccount,omitempty"`
	TaxPhone             *string `json:"taxPhone,omitempty"`
	PaymentDetails       *string `json:"paymentDetails,omitempty"`
	IsActive             *bool   `json:"isActive,omitempty"`
	BloggerIDs           []int64 `json:"bloggerIds,omitempty" validate:"omitempty,dive,gt=0"`
}

func CounterpartiesList(svc counterparties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := counterparties.Filters{Search: r.URL.Query().Get("search")}

		if raw := r.URL.Query().Get("type"); raw != "" {
			parsed, err := enums.ParseCounterpartyType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid counterparty type"))
				return
			}
			filters.Type = &parsed
		}
		if raw := r.URL.Query().Get("relationshipType"); raw != "" {
			parsed, err := enums.ParseCounterpartyRelationship(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid relationship type"))
				return
			}
			filters.Relationship = &parsed
		}
		active, err := validators.ParseQueryBool(r, "active")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.Active = active

		rows, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"counterparties": counterparties.ToDTOs(rows)})
	}
}

func CounterpartyCreate(svc counterparties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload counterpartyCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cpType, err := enums.ParseCounterpartyType(payload.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid counterparty type"))
			return
		}
		relationship, err := enums.ParseCounterpartyRelationship(payload.RelationshipType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid relationship type"))
			return
		}

		counterparty, err := svc.Create(r.Context(), counterparties.CreateInput{
			Name:                 payload.Name,
			Type:                 cpType,
			RelationshipType:     relationship,
			ContactName:          payload.ContactName,
			Email:                payload.Email,
			Phone:                payload.Phone,
			INN:                  payload.INN,
			KPP:                  payload.KPP,
			OGRN:                 payload.OGRN,
			OGRNIP:               payload.OGRNIP,
			LegalAddress:         payload.LegalAddress,
			RegistrationAddress:  payload.RegistrationAddress,
			CheckingAccount:      payload.CheckingAccount,
			BankName:             payload.BankName,
			BIK:                  payload.BIK,
			CorrespondentAccount: payload.CorrespondentAccount,
			TaxPhone:             payload.TaxPhone,
			PaymentDetails:       payload.PaymentDetails,
			IsActive:             payload.IsActive,
			BloggerIDs:           payload.BloggerIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"counterparty": counterparties.ToDTO(counterparty)})
	}
}

func CounterpartyGet(svc counterparties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counterpartyID, err := validators.PathID(chi.URLParam(r, "id"), "counterparty id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		detail, err := svc.Get(r.Context(), counterpartyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, counterparties.ToDetailDTO(detail))
	}
}

func CounterpartyUpdate(svc counterparties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counterpartyID, err := validators.PathID(chi.URLParam(r, "id"), "counterparty id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload counterpartyUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := counterparties.UpdateInput{
			Name:                 payload.Name,
			ContactName:          payload.ContactName,
			Email:                payload.Email,
			Phone:                payload.Phone,
			INN:                  payload.INN,
			KPP:                  payload.KPP,
			OGRN:                 payload.OGRN,
			OGRNIP:               payload.OGRNIP,
			LegalAddress:         payload.LegalAddress,
			RegistrationAddress:  payload.RegistrationAddress,
			CheckingAccount:      payload.CheckingAccount,
			BankName:             payload.BankName,
			BIK:                  payload.BIK,
			CorrespondentAccount: payload.CorrespondentAccount,
			TaxPhone:             payload.TaxPhone,
			PaymentDetails:       payload.PaymentDetails,
			IsActive:             payload.IsActive,
			BloggerIDs:           payload.BloggerIDs,
		}
		if payload.Type != nil {
			parsed, err := enums.ParseCounterpartyType(*payload.Type)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid counterparty type"))
				return
			}
			input.Type = &parsed
		}
		if payload.RelationshipType != nil {
			parsed, err := enums.ParseCounterpartyRelationship(*payload.RelationshipType)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid relationship type"))
				return
			}
			input.RelationshipType = &parsed
		}

		counterparty, err := svc.Update(r.Context(), counterpartyID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"counterparty": counterparties.ToDTO(counterparty)})
	}
}
