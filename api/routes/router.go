package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lestahub/lestahub-backend/api/controllers"
	"github.com/lestahub/lestahub-backend/api/middleware"
	"github.com/lestahub/lestahub-backend/internal/auth"
	"github.com/lestahub/lestahub-backend/internal/bloggers"
	"github.com/lestahub/lestahub-backend/internal/campaigns"
	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/internal/counterparties"
	"github.com/lestahub/lestahub-backend/internal/dashboard"
	"github.com/lestahub/lestahub-backend/internal/placements"
	"github.com/lestahub/lestahub-backend/internal/users"
	"github.com/lestahub/lestahub-backend/pkg/config"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	"github.com/lestahub/lestahub-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	authService auth.Service,
	usersService users.Service,
	bloggersService bloggers.Service,
	counterpartiesService counterparties.Service,
	campaignsService campaigns.Service,
	placementsService placements.Service,
	commentsService comments.Service,
	dashboardService dashboard.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/auth/me", controllers.AuthMe(logg))

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))
			r.Get("/", controllers.UsersList(usersService, logg))
			r.Post("/", controllers.UserCreate(usersService, logg))
			r.Patch("/{id}", controllers.UserUpdate(usersService, logg))
			r.Post("/{id}/invite", controllers.UserInviteRegenerate(usersService, logg))
		})

		r.Route("/bloggers", func(r chi.Router) {
			r.Get("/", controllers.BloggersList(bloggersService, logg))
			r.Post("/", controllers.BloggerCreate(bloggersService, logg))
			r.Get("/{id}", controllers.BloggerGet(bloggersService, logg))
			r.Patch("/{id}", controllers.BloggerUpdate(bloggersService, logg))
		})

		r.Route("/price-presets", func(r chi.Router) {
			r.Get("/", controllers.PricePresetsList(bloggersService, logg))
			r.Post("/", controllers.PricePresetCreate(bloggersService, logg))
			r.Patch("/{id}", controllers.PricePresetUpdate(bloggersService, logg))
			r.Delete("/{id}", controllers.PricePresetDelete(bloggersService, logg))
		})

		r.Route("/counterparties", func(r chi.Router) {
			r.Get("/", controllers.CounterpartiesList(counterpartiesService, logg))
			r.Post("/", controllers.CounterpartyCreate(counterpartiesService, logg))
			r.Get("/{id}", controllers.CounterpartyGet(counterpartiesService, logg))
			r.Patch("/{id}", controllers.CounterpartyUpdate(counterpartiesService, logg))
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", controllers.CampaignsList(campaignsService, logg))
			r.Post("/", controllers.CampaignCreate(campaignsService, logg))
			r.Get("/{id}", controllers.CampaignGet(campaignsService, logg))
			r.Patch("/{id}", controllers.CampaignUpdate(campaignsService, logg))
		})

		r.Route("/placements", func(r chi.Router) {
			r.Get("/", controllers.PlacementsList(placementsService, logg))
			r.Post("/", controllers.PlacementCreate(placementsService, logg))
			r.Get("/export", controllers.PlacementsExport(placementsService, logg))
			r.Post("/import", controllers.PlacementsImport(placementsService, logg))
			r.Get("/{id}", controllers.PlacementGet(placementsService, logg))
			r.Patch("/{id}", controllers.PlacementUpdate(placementsService, logg))
			r.Delete("/{id}", controllers.PlacementDelete(placementsService, logg))
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", controllers.CommentsList(commentsService, logg))
			r.Post("/", controllers.CommentCreate(commentsService, logg))
		})

		r.Get("/dashboard", controllers.DashboardSummary(dashboardService, logg))
	})

	return r
}
