package counterparties

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

type stubCounterpartiesRepo struct {
	rows   map[int64]*models.Counterparty
	links  map[int64][]int64
	nextID int64
}

func newStubCounterpartiesRepo(rows ...*models.Counterparty) *stubCounterpartiesRepo {
	repo := &stubCounterpartiesRepo{
		rows:   make(map[int64]*models.Counterparty),
		links:  make(map[int64][]int64),
		nextID: 1,
	}
	for _, row := range rows {
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
		repo.rows[row.ID] = row
	}
	return repo
}

func (s *stubCounterpartiesRepo) WithTx(_ *gorm.DB) Repository { return s }

func (s *stubCounterpartiesRepo) Create(_ context.Context, counterparty *models.Counterparty) (*models.Counterparty, error) {
	counterparty.ID = s.nextID
	s.nextID++
	s.rows[counterparty.ID] = counterparty
	return counterparty, nil
}

func (s *stubCounterpartiesRepo) FindByID(_ context.Context, id int64) (*models.Counterparty, error) {
	return s.rows[id], nil
}

func (s *stubCounterpartiesRepo) FindDetail(_ context.Context, id int64) (*models.Counterparty, error) {
	return s.rows[id], nil
}

func (s *stubCounterpartiesRepo) List(_ context.Context, filters Filters) ([]models.Counterparty, error) {
	out := make([]models.Counterparty, 0, len(s.rows))
	for _, row := range s.rows {
		if filters.Type != nil && row.Type != *filters.Type {
			continue
		}
		if filters.Active != nil && row.IsActive != *filters.Active {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubCounterpartiesRepo) Save(_ context.Context, counterparty *models.Counterparty) (*models.Counterparty, error) {
	s.rows[counterparty.ID] = counterparty
	return counterparty, nil
}

func (s *stubCounterpartiesRepo) ReplaceBloggers(_ context.Context, counterpartyID int64, bloggerIDs []int64) error {
	s.links[counterpartyID] = bloggerIDs
	return nil
}

func (s *stubCounterpartiesRepo) LinkedBloggerIDs(_ context.Context, counterpartyID int64) ([]int64, error) {
	return s.links[counterpartyID], nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubThreadLister struct {
	comments       []models.Comment
	lastBloggerIDs []int64
}

func (s *stubThreadLister) ListForCounterpartyThread(_ context.Context, _ int64, bloggerIDs []int64) ([]models.Comment, error) {
	s.lastBloggerIDs = bloggerIDs
	return s.comments, nil
}

func newTestCounterparties(t *testing.T, repo Repository, lister commentThreadLister) Service {
	t.Helper()
	if lister == nil {
		lister = &stubThreadLister{}
	}
	svc, err := NewService(repo, stubTxRunner{}, lister)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateDefaultsToActive(t *testing.T) {
	repo := newStubCounterpartiesRepo()
	svc := newTestCounterparties(t, repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		Name:             "Media LLC",
		Type:             enums.CounterpartyTypeLegalEntity,
		RelationshipType: enums.CounterpartyRelationshipDirect,
		BloggerIDs:       []int64{3},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.IsActive {
		t.Fatal("expected new counterparty to be active")
	}
	if got := repo.links[created.ID]; len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected blogger link, got %v", got)
	}
}

func TestCreateRejectsInvalidType(t *testing.T) {
	svc := newTestCounterparties(t, newStubCounterpartiesRepo(), nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:             "Media LLC",
		Type:             enums.CounterpartyType("PARTNERSHIP"),
		RelationshipType: enums.CounterpartyRelationshipDirect,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetMergesLinkedBloggerComments(t *testing.T) {
	counterparty := &models.Counterparty{
		ID:               5,
		Name:             "Media LLC",
		Type:             enums.CounterpartyTypeLegalEntity,
		RelationshipType: enums.CounterpartyRelationshipDirect,
		IsActive:         true,
		Bloggers: []models.Blogger{
			{ID: 11, Name: "Vera"},
			{ID: 12, Name: "Anna"},
		},
	}
	repo := newStubCounterpartiesRepo(counterparty)
	lister := &stubThreadLister{comments: []models.Comment{{ID: 1, Body: "paid"}}}
	svc := newTestCounterparties(t, repo, lister)

	detail, err := svc.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(detail.Comments) != 1 || detail.Comments[0].Body != "paid" {
		t.Fatalf("unexpected comments %+v", detail.Comments)
	}
	if len(lister.lastBloggerIDs) != 2 || lister.lastBloggerIDs[0] != 11 || lister.lastBloggerIDs[1] != 12 {
		t.Fatalf("expected linked blogger ids to reach the lister, got %v", lister.lastBloggerIDs)
	}
}

func TestUpdateMergesAndReplacesLinks(t *testing.T) {
	inn := "7701234567"
	counterparty := &models.Counterparty{
		ID:               5,
		Name:             "Media LLC",
		Type:             enums.CounterpartyTypeLegalEntity,
		RelationshipType: enums.CounterpartyRelationshipDirect,
		INN:              &inn,
		IsActive:         true,
	}
	repo := newStubCounterpartiesRepo(counterparty)
	repo.links[5] = []int64{1}
	svc := newTestCounterparties(t, repo, nil)

	inactive := false
	updated, err := svc.Update(context.Background(), 5, UpdateInput{
		IsActive:   &inactive,
		BloggerIDs: []int64{2, 3},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected counterparty to be deactivated")
	}
	if updated.INN == nil || *updated.INN != "7701234567" {
		t.Fatalf("expected untouched INN, got %v", updated.INN)
	}
	if got := repo.links[5]; len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("expected replaced links, got %v", got)
	}
}

func TestGetUnknownCounterparty(t *testing.T) {
	svc := newTestCounterparties(t, newStubCounterpartiesRepo(), nil)

	_, err := svc.Get(context.Background(), 404)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Counterparty not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}
