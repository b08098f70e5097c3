package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/internal/bloggers"
	"github.com/lestahub/lestahub-backend/internal/campaigns"
	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/internal/counterparties"
	"github.com/lestahub/lestahub-backend/internal/placements"
	"github.com/lestahub/lestahub-backend/internal/users"
	"github.com/lestahub/lestahub-backend/pkg/config"
	"github.com/lestahub/lestahub-backend/pkg/db"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	"github.com/lestahub/lestahub-backend/pkg/logger"
	"github.com/lestahub/lestahub-backend/pkg/migrate"
	"github.com/lestahub/lestahub-backend/pkg/security"
)

const seedPassword = "lestahub-dev-password"

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	if cfg.App.IsProd() {
		logg.Warn(ctx, "seed refuses to run against a production environment")
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	gdb := dbClient.DB()
	usersRepo := users.NewRepository(gdb)

	admin, err := seedUser(ctx, usersRepo, cfg, "Seed Admin", "admin@lestahub.local", enums.UserRoleAdmin)
	if err != nil {
		logg.Error(ctx, "failed to seed admin", err)
		os.Exit(1)
	}
	manager, err := seedUser(ctx, usersRepo, cfg, "Seed Manager", "manager@lestahub.local", enums.UserRoleManager)
	if err != nil {
		logg.Error(ctx, "failed to seed manager", err)
		os.Exit(1)
	}

	commentsService, err := comments.NewService(comments.NewRepository(gdb))
	if err != nil {
		logg.Error(ctx, "failed to create comments service", err)
		os.Exit(1)
	}
	bloggersService, err := bloggers.NewService(bloggers.NewRepository(gdb), dbClient)
	if err != nil {
		logg.Error(ctx, "failed to create bloggers service", err)
		os.Exit(1)
	}
	counterpartiesService, err := counterparties.NewService(counterparties.NewRepository(gdb), dbClient, comments.NewRepository(gdb))
	if err != nil {
		logg.Error(ctx, "failed to create counterparties service", err)
		os.Exit(1)
	}
	campaignsService, err := campaigns.NewService(campaigns.NewRepository(gdb))
	if err != nil {
		logg.Error(ctx, "failed to create campaigns service", err)
		os.Exit(1)
	}
	placementsService, err := placements.NewService(placements.NewRepository(gdb), dbClient, commentsService)
	if err != nil {
		logg.Error(ctx, "failed to create placements service", err)
		os.Exit(1)
	}

	counterparty, err := counterpartiesService.Create(ctx, counterparties.CreateInput{
		Name:             "Seed Media LLC",
		Type:             enums.CounterpartyTypeLegalEntity,
		RelationshipType: enums.CounterpartyRelationshipAgency,
		ContactName:      ptr("Olga Seed"),
		Email:            ptr("billing@seedmedia.local"),
		INN:              ptr("7712345678"),
	})
	if err != nil {
		logg.Error(ctx, "failed to seed counterparty", err)
		os.Exit(1)
	}

	blogger, err := bloggersService.Create(ctx, bloggers.CreateInput{
		Name:            "Seed Blogger",
		ProfileURL:      "https://example.com/seed-blogger",
		SocialPlatform:  "YOUTUBE",
		Followers:       ptr(int64(250000)),
		AverageReach:    ptr(int64(40000)),
		Topics:          []string{"games", "reviews"},
		CounterpartyIDs: []int64{counterparty.ID},
	})
	if err != nil {
		logg.Error(ctx, "failed to seed blogger", err)
		os.Exit(1)
	}

	if _, err := bloggersService.CreatePreset(ctx, bloggers.PresetInput{
		BloggerID: blogger.ID,
		Title:     "Integration, 60s",
		Cost:      decimal.NewFromInt(50000),
	}); err != nil {
		logg.Error(ctx, "failed to seed price preset", err)
		os.Exit(1)
	}

	activeStatus := enums.CampaignStatusActive
	start := time.Now().AddDate(0, 0, -14)
	end := time.Now().AddDate(0, 1, 0)
	budget := decimal.NewFromInt(500000)
	campaign, err := campaignsService.Create(ctx, *manager, campaigns.CreateInput{
		Name:          "Seed Spring Push",
		Product:       enums.ProductCodeTanks,
		Status:        &activeStatus,
		BudgetPlanned: &budget,
		StartDate:     &start,
		EndDate:       &end,
	})
	if err != nil {
		logg.Error(ctx, "failed to seed campaign", err)
		os.Exit(1)
	}

	fee := decimal.NewFromInt(50000)
	placement, err := placementsService.Create(ctx, placements.CreateInput{
		CampaignID:     campaign.ID,
		BloggerID:      blogger.ID,
		CounterpartyID: counterparty.ID,
		PlacementType:  enums.PlacementTypeIntegration,
		PricingModel:   enums.PricingModelFix,
		PaymentTerms:   enums.PaymentTermsPrepayment,
		Fee:            &fee,
	}, *manager)
	if err != nil {
		logg.Error(ctx, "failed to seed placement", err)
		os.Exit(1)
	}

	// Walk the first placement into the committed pipeline.
	placementDate := time.Now().AddDate(0, 0, 7)
	agreed := enums.PlacementStatusAgreed
	if _, err := placementsService.Update(ctx, placement.ID, placements.UpdateInput{
		Status:        &agreed,
		PlacementDate: &placementDate,
	}, *manager); err != nil {
		logg.Error(ctx, "failed to advance seed placement", err)
		os.Exit(1)
	}
	awaitingPayment := enums.PlacementStatusAwaitingPayment
	if _, err := placementsService.Update(ctx, placement.ID, placements.UpdateInput{Status: &awaitingPayment}, *manager); err != nil {
		logg.Error(ctx, "failed to advance seed placement", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"admin":    admin.Email,
		"manager":  manager.Email,
		"campaign": campaign.ID,
	})
	logg.Info(ctx, "seed complete")
}

func seedUser(ctx context.Context, repo users.Repository, cfg *config.Config, name, email string, role enums.UserRole) (*models.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := security.HashPassword(seedPassword, cfg.Password)
	if err != nil {
		return nil, err
	}
	return repo.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		Role:         role,
		Status:       enums.UserStatusActive,
		PasswordHash: &hash,
	})
}

func ptr[T any](v T) *T {
	return &v
}
