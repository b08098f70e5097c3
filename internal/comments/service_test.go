package comments

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

type stubCommentsRepo struct {
	rows   []models.Comment
	nextID int64
	inTx   bool
}

func (s *stubCommentsRepo) WithTx(tx *gorm.DB) Repository {
	s.inTx = true
	return s
}

func (s *stubCommentsRepo) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	s.nextID++
	comment.ID = s.nextID
	s.rows = append(s.rows, *comment)
	return comment, nil
}

func (s *stubCommentsRepo) ListByBlogger(ctx context.Context, bloggerID int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, row := range s.rows {
		if row.BloggerID != nil && *row.BloggerID == bloggerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubCommentsRepo) ListByCounterparty(ctx context.Context, counterpartyID int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, row := range s.rows {
		if row.CounterpartyID != nil && *row.CounterpartyID == counterpartyID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubCommentsRepo) ListByPlacement(ctx context.Context, placementID int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, row := range s.rows {
		if row.PlacementID != nil && *row.PlacementID == placementID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubCommentsRepo) ListForCounterpartyThread(ctx context.Context, counterpartyID int64, bloggerIDs []int64) ([]models.Comment, error) {
	linked := make(map[int64]bool, len(bloggerIDs))
	for _, id := range bloggerIDs {
		linked[id] = true
	}
	var out []models.Comment
	for _, row := range s.rows {
		if row.CounterpartyID != nil && *row.CounterpartyID == counterpartyID {
			out = append(out, row)
			continue
		}
		if row.BloggerID != nil && linked[*row.BloggerID] {
			out = append(out, row)
		}
	}
	return out, nil
}

func newTestComments(t *testing.T) (Service, *stubCommentsRepo) {
	t.Helper()
	repo := &stubCommentsRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc, repo
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateRequiresTarget(t *testing.T) {
	svc, _ := newTestComments(t)

	_, err := svc.Create(context.Background(), CreateInput{AuthorID: 1, Body: "hello"})
	if err == nil {
		t.Fatal("expected error when neither target id is provided")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "Either bloggerId or counterpartyId must be provided" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestCreateRequiresAuthor(t *testing.T) {
	svc, _ := newTestComments(t)

	_, err := svc.Create(context.Background(), CreateInput{Body: "hello", BloggerID: int64Ptr(3)})
	if err == nil {
		t.Fatal("expected error without an author")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCreateStoresManualComment(t *testing.T) {
	svc, repo := newTestComments(t)

	created, err := svc.Create(context.Background(), CreateInput{
		AuthorID:  7,
		Body:      "negotiated a discount",
		BloggerID: int64Ptr(3),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if created.IsSystem {
		t.Fatal("manual comments must not be flagged as system")
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(repo.rows))
	}
}

func TestAppendMarksSystemAndUsesTx(t *testing.T) {
	svc, repo := newTestComments(t)

	created, err := svc.Append(context.Background(), nil, SystemInput{
		AuthorID:    7,
		Body:        "Status changed",
		BloggerID:   int64Ptr(3),
		PlacementID: int64Ptr(9),
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if !created.IsSystem {
		t.Fatal("audit entries must be flagged as system")
	}
	if !repo.inTx {
		t.Fatal("expected the repo to be rebound to the caller's transaction")
	}
}

func TestListByBloggerValidatesID(t *testing.T) {
	svc, _ := newTestComments(t)

	if _, err := svc.ListByBlogger(context.Background(), 0); err == nil {
		t.Fatal("expected error for non-positive blogger id")
	}
	if _, err := svc.ListByCounterparty(context.Background(), -1); err == nil {
		t.Fatal("expected error for non-positive counterparty id")
	}
}

func TestListByBloggerFiltersRows(t *testing.T) {
	svc, repo := newTestComments(t)
	repo.rows = []models.Comment{
		{ID: 1, BloggerID: int64Ptr(3), Body: "a"},
		{ID: 2, BloggerID: int64Ptr(4), Body: "b"},
		{ID: 3, CounterpartyID: int64Ptr(3), Body: "c"},
	}

	rows, err := svc.ListByBlogger(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByBlogger returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Fatalf("expected only comment 1, got %+v", rows)
	}
}
