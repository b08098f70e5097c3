package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lestahub/lestahub-backend/api/routes"
	"github.com/lestahub/lestahub-backend/internal/auth"
	"github.com/lestahub/lestahub-backend/internal/bloggers"
	"github.com/lestahub/lestahub-backend/internal/campaigns"
	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/internal/counterparties"
	"github.com/lestahub/lestahub-backend/internal/dashboard"
	"github.com/lestahub/lestahub-backend/internal/placements"
	"github.com/lestahub/lestahub-backend/internal/users"
	"github.com/lestahub/lestahub-backend/pkg/config"
	"github.com/lestahub/lestahub-backend/pkg/db"
	"github.com/lestahub/lestahub-backend/pkg/logger"
	"github.com/lestahub/lestahub-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	gdb := dbClient.DB()

	usersRepo := users.NewRepository(gdb)
	usersService, err := users.NewService(usersRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(usersRepo, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	commentsRepo := comments.NewRepository(gdb)
	commentsService, err := comments.NewService(commentsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create comments service", err)
		os.Exit(1)
	}

	bloggersService, err := bloggers.NewService(bloggers.NewRepository(gdb), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create bloggers service", err)
		os.Exit(1)
	}

	counterpartiesService, err := counterparties.NewService(counterparties.NewRepository(gdb), dbClient, commentsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create counterparties service", err)
		os.Exit(1)
	}

	campaignsService, err := campaigns.NewService(campaigns.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create campaigns service", err)
		os.Exit(1)
	}

	placementsService, err := placements.NewService(placements.NewRepository(gdb), dbClient, commentsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create placements service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dashboard.NewRepository(gdb))
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			authService,
			usersService,
			bloggersService,
			counterpartiesService,
			campaignsService,
			placementsService,
			commentsService,
			dashboardService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
