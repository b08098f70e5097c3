package controllers

import (
	"net/http"

	"github.com/lestahub/lestahub-backend/api/responses"
	"github.com/lestahub/lestahub-backend/internal/dashboard"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

func DashboardSummary(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := enums.ParseDashboardPeriod(r.URL.Query().Get("period"))
		product := r.URL.Query().Get("product")

		summary, err := svc.Summarize(r.Context(), period, product)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
