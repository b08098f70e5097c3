package bloggers

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

// CreateInput carries a new blogger profile. CounterpartyIDs links the
// profile to existing counterparties.
type CreateInput struct {
	Name            string
	ProfileURL      string
	SocialPlatform  string
	Followers       *int64
	AverageReach    *int64
	PrimaryChannel  *enums.ContactChannel
	PrimaryContact  *string
	AlanbaseSub3    *string
	Topics          []string
	CounterpartyIDs []int64
}

// UpdateInput carries profile changes. Nil pointers mean unchanged; a non-nil
// CounterpartyIDs slice replaces the whole link set.
type UpdateInput struct {
	Name            *string
	ProfileURL      *string
	SocialPlatform  *string
	Followers       *int64
	AverageReach    *int64
	PrimaryChannel  *enums.ContactChannel
	PrimaryContact  *string
	AlanbaseSub3    *string
	Topics          []string
	CounterpartyIDs []int64
}

// PresetInput carries a price preset create payload.
type PresetInput struct {
	BloggerID   int64
	Title       string
	Description *string
	Cost        decimal.Decimal
}

// PresetUpdateInput carries preset changes. Nil means unchanged.
type PresetUpdateInput struct {
	Title       *string
	Description *string
	Cost        *decimal.Decimal
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes blogger profile and price preset operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Blogger, error)
	Get(ctx context.Context, bloggerID int64) (*models.Blogger, error)
	List(ctx context.Context, filters Filters) ([]models.Blogger, error)
	Update(ctx context.Context, bloggerID int64, input UpdateInput) (*models.Blogger, error)

	CreatePreset(ctx context.Context, input PresetInput) (*models.PricePreset, error)
	ListPresets(ctx context.Context, bloggerID *int64) ([]models.PricePreset, error)
	UpdatePreset(ctx context.Context, presetID int64, input PresetUpdateInput) (*models.PricePreset, error)
	DeletePreset(ctx context.Context, presetID int64) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds a bloggers service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bloggers repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Blogger, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if strings.TrimSpace(input.ProfileURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile url required")
	}
	if strings.TrimSpace(input.SocialPlatform) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "social platform required")
	}
	if input.PrimaryChannel != nil && !input.PrimaryChannel.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid contact channel")
	}

	blogger := &models.Blogger{
		Name:           input.Name,
		ProfileURL:     input.ProfileURL,
		SocialPlatform: input.SocialPlatform,
		Followers:      input.Followers,
		AverageReach:   input.AverageReach,
		PrimaryChannel: input.PrimaryChannel,
		PrimaryContact: input.PrimaryContact,
		AlanbaseSub3:   input.AlanbaseSub3,
		Topics:         input.Topics,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		created, err := repo.Create(ctx, blogger)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create blogger")
		}
		if len(input.CounterpartyIDs) > 0 {
			if err := repo.ReplaceCounterparties(ctx, created.ID, input.CounterpartyIDs); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "link counterparties")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, blogger.ID)
}

func (s *service) Get(ctx context.Context, bloggerID int64) (*models.Blogger, error) {
	if bloggerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid blogger id")
	}
	blogger, err := s.repo.FindDetail(ctx, bloggerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find blogger")
	}
	if blogger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Blogger not found")
	}
	return blogger, nil
}

func (s *service) List(ctx context.Context, filters Filters) ([]models.Blogger, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bloggers")
	}
	return rows, nil
}

func (s *service) Update(ctx context.Context, bloggerID int64, input UpdateInput) (*models.Blogger, error) {
	if bloggerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid blogger id")
	}
	if input.PrimaryChannel != nil && !input.PrimaryChannel.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid contact channel")
	}

	blogger, err := s.repo.FindByID(ctx, bloggerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find blogger")
	}
	if blogger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Blogger not found")
	}

	applyUpdate(blogger, input)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if input.CounterpartyIDs != nil {
			if err := repo.ReplaceCounterparties(ctx, bloggerID, input.CounterpartyIDs); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace counterparty links")
			}
		}
		if _, err := repo.Save(ctx, blogger); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save blogger")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, bloggerID)
}

func applyUpdate(blogger *models.Blogger, input UpdateInput) {
	if input.Name != nil {
		blogger.Name = *input.Name
	}
	if input.ProfileURL != nil {
		blogger.ProfileURL = *input.ProfileURL
	}
	if input.SocialPlatform != nil {
		blogger.SocialPlatform = *input.SocialPlatform
	}
	if input.Followers != nil {
		blogger.Followers = input.Followers
	}
	if input.AverageReach != nil {
		blogger.AverageReach = input.AverageReach
	}
	if input.PrimaryChannel != nil {
		blogger.PrimaryChannel = input.PrimaryChannel
	}
	if input.PrimaryContact != nil {
		blogger.PrimaryContact = input.PrimaryContact
	}
	if input.AlanbaseSub3 != nil {
		blogger.AlanbaseSub3 = input.AlanbaseSub3
	}
	if input.Topics != nil {
		blogger.Topics = input.Topics
	}
}

func (s *service) reload(ctx context.Context, bloggerID int64) (*models.Blogger, error) {
	blogger, err := s.repo.FindByID(ctx, bloggerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload blogger")
	}
	if blogger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Blogger not found")
	}
	return blogger, nil
}

func (s *service) CreatePreset(ctx context.Context, input PresetInput) (*models.PricePreset, error) {
	if input.BloggerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blogger id required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title required")
	}
	if input.Cost.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cost cannot be negative")
	}

	blogger, err := s.repo.FindByID(ctx, input.BloggerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find blogger")
	}
	if blogger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Blogger not found")
	}

	preset := &models.PricePreset{
		BloggerID:   input.BloggerID,
		Title:       input.Title,
		Description: input.Description,
		Cost:        input.Cost,
	}
	created, err := s.repo.CreatePreset(ctx, preset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create price preset")
	}
	return created, nil
}

func (s *service) ListPresets(ctx context.Context, bloggerID *int64) ([]models.PricePreset, error) {
	rows, err := s.repo.ListPresets(ctx, bloggerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list price presets")
	}
	return rows, nil
}

func (s *service) UpdatePreset(ctx context.Context, presetID int64, input PresetUpdateInput) (*models.PricePreset, error) {
	preset, err := s.mustFindPreset(ctx, presetID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title required")
		}
		preset.Title = *input.Title
	}
	if input.Description != nil {
		preset.Description = input.Description
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cost cannot be negative")
		}
		preset.Cost = *input.Cost
	}

	saved, err := s.repo.SavePreset(ctx, preset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save price preset")
	}
	return saved, nil
}

func (s *service) DeletePreset(ctx context.Context, presetID int64) error {
	if _, err := s.mustFindPreset(ctx, presetID); err != nil {
		return err
	}
	if err := s.repo.DeletePreset(ctx, presetID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete price preset")
	}
	return nil
}

func (s *service) mustFindPreset(ctx context.Context, presetID int64) (*models.PricePreset, error) {
	if presetID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid preset id")
	}
	preset, err := s.repo.FindPresetByID(ctx, presetID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find price preset")
	}
	if preset == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "price preset not found")
	}
	return preset, nil
}
