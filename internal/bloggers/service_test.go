package bloggers

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

type stubBloggersRepo struct {
	rows         map[int64]*models.Blogger
	links        map[int64][]int64
	presets      map[int64]*models.PricePreset
	nextID       int64
	nextPresetID int64
}

func newStubBloggersRepo(rows ...*models.Blogger) *stubBloggersRepo {
	repo := &stubBloggersRepo{
		rows:         make(map[int64]*models.Blogger),
		links:        make(map[int64][]int64),
		presets:      make(map[int64]*models.PricePreset),
		nextID:       1,
		nextPresetID: 1,
	}
	for _, row := range rows {
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
		repo.rows[row.ID] = row
	}
	return repo
}

func (s *stubBloggersRepo) WithTx(_ *gorm.DB) Repository { return s }

func (s *stubBloggersRepo) Create(_ context.Context, blogger *models.Blogger) (*models.Blogger, error) {
	blogger.ID = s.nextID
	s.nextID++
	s.rows[blogger.ID] = blogger
	return blogger, nil
}

func (s *stubBloggersRepo) FindByID(_ context.Context, id int64) (*models.Blogger, error) {
	return s.rows[id], nil
}

func (s *stubBloggersRepo) FindDetail(_ context.Context, id int64) (*models.Blogger, error) {
	return s.rows[id], nil
}

func (s *stubBloggersRepo) List(_ context.Context, filters Filters) ([]models.Blogger, error) {
	out := make([]models.Blogger, 0, len(s.rows))
	for _, row := range s.rows {
		if filters.Search != "" && !strings.Contains(row.Name, filters.Search) {
			continue
		}
		if filters.Social != "" && row.SocialPlatform != filters.Social {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubBloggersRepo) Save(_ context.Context, blogger *models.Blogger) (*models.Blogger, error) {
	s.rows[blogger.ID] = blogger
	return blogger, nil
}

func (s *stubBloggersRepo) ReplaceCounterparties(_ context.Context, bloggerID int64, counterpartyIDs []int64) error {
	s.links[bloggerID] = counterpartyIDs
	return nil
}

func (s *stubBloggersRepo) CreatePreset(_ context.Context, preset *models.PricePreset) (*models.PricePreset, error) {
	preset.ID = s.nextPresetID
	s.nextPresetID++
	s.presets[preset.ID] = preset
	return preset, nil
}

func (s *stubBloggersRepo) FindPresetByID(_ context.Context, id int64) (*models.PricePreset, error) {
	return s.presets[id], nil
}

func (s *stubBloggersRepo) ListPresets(_ context.Context, bloggerID *int64) ([]models.PricePreset, error) {
	out := make([]models.PricePreset, 0, len(s.presets))
	for _, preset := range s.presets {
		if bloggerID != nil && preset.BloggerID != *bloggerID {
			continue
		}
		out = append(out, *preset)
	}
	return out, nil
}

func (s *stubBloggersRepo) SavePreset(_ context.Context, preset *models.PricePreset) (*models.PricePreset, error) {
	s.presets[preset.ID] = preset
	return preset, nil
}

func (s *stubBloggersRepo) DeletePreset(_ context.Context, id int64) error {
	delete(s.presets, id)
	return nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestBloggers(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateLinksCounterparties(t *testing.T) {
	repo := newStubBloggersRepo()
	svc := newTestBloggers(t, repo)

	blogger, err := svc.Create(context.Background(), CreateInput{
		Name:            "Vera",
		ProfileURL:      "https://t.me/vera",
		SocialPlatform:  "telegram",
		Topics:          []string{"gaming"},
		CounterpartyIDs: []int64{4, 9},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if blogger.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if got := repo.links[blogger.ID]; len(got) != 2 || got[0] != 4 || got[1] != 9 {
		t.Fatalf("expected counterparty links, got %v", got)
	}
}

func TestCreateRequiresProfileFields(t *testing.T) {
	svc := newTestBloggers(t, newStubBloggersRepo())

	_, err := svc.Create(context.Background(), CreateInput{Name: "Vera"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateMergesAndReplacesLinks(t *testing.T) {
	followers := int64(1000)
	repo := newStubBloggersRepo(&models.Blogger{
		ID:             3,
		Name:           "Vera",
		ProfileURL:     "https://t.me/vera",
		SocialPlatform: "telegram",
		Followers:      &followers,
	})
	repo.links[3] = []int64{1}
	svc := newTestBloggers(t, repo)

	reach := int64(250)
	updated, err := svc.Update(context.Background(), 3, UpdateInput{
		AverageReach:    &reach,
		CounterpartyIDs: []int64{2, 5},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Vera" || updated.Followers == nil || *updated.Followers != 1000 {
		t.Fatalf("expected untouched fields, got %+v", updated)
	}
	if updated.AverageReach == nil || *updated.AverageReach != 250 {
		t.Fatalf("expected average reach update, got %v", updated.AverageReach)
	}
	if got := repo.links[3]; len(got) != 2 || got[0] != 2 || got[1] != 5 {
		t.Fatalf("expected replaced links, got %v", got)
	}
}

func TestUpdateKeepsLinksWhenAbsent(t *testing.T) {
	repo := newStubBloggersRepo(&models.Blogger{
		ID:             3,
		Name:           "Vera",
		ProfileURL:     "https://t.me/vera",
		SocialPlatform: "telegram",
	})
	repo.links[3] = []int64{1}
	svc := newTestBloggers(t, repo)

	name := "Vera Petrova"
	if _, err := svc.Update(context.Background(), 3, UpdateInput{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := repo.links[3]; len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected untouched links, got %v", got)
	}
}

func TestGetUnknownBlogger(t *testing.T) {
	svc := newTestBloggers(t, newStubBloggersRepo())

	_, err := svc.Get(context.Background(), 42)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Blogger not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestPresetLifecycle(t *testing.T) {
	repo := newStubBloggersRepo(&models.Blogger{
		ID:             3,
		Name:           "Vera",
		ProfileURL:     "https://t.me/vera",
		SocialPlatform: "telegram",
	})
	svc := newTestBloggers(t, repo)

	preset, err := svc.CreatePreset(context.Background(), PresetInput{
		BloggerID: 3,
		Title:     "Story pack",
		Cost:      decimal.NewFromInt(15000),
	})
	if err != nil {
		t.Fatalf("CreatePreset: %v", err)
	}

	cost := decimal.NewFromInt(18000)
	updated, err := svc.UpdatePreset(context.Background(), preset.ID, PresetUpdateInput{Cost: &cost})
	if err != nil {
		t.Fatalf("UpdatePreset: %v", err)
	}
	if !updated.Cost.Equal(cost) || updated.Title != "Story pack" {
		t.Fatalf("unexpected preset %+v", updated)
	}

	if err := svc.DeletePreset(context.Background(), preset.ID); err != nil {
		t.Fatalf("DeletePreset: %v", err)
	}
	if err := svc.DeletePreset(context.Background(), preset.ID); err == nil {
		t.Fatal("expected not found on second delete")
	}
}

func TestCreatePresetRequiresExistingBlogger(t *testing.T) {
	svc := newTestBloggers(t, newStubBloggersRepo())

	_, err := svc.CreatePreset(context.Background(), PresetInput{
		BloggerID: 9,
		Title:     "Story pack",
		Cost:      decimal.NewFromInt(100),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
