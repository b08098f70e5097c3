package placements

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

type stubPlacementsRepo struct {
	placements map[int64]*models.Placement
	nextID     int64
	deletedID  int64
}

func newStubPlacementsRepo(rows ...*models.Placement) *stubPlacementsRepo {
	repo := &stubPlacementsRepo{placements: make(map[int64]*models.Placement)}
	for _, row := range rows {
		if row.ID > repo.nextID {
			repo.nextID = row.ID
		}
		repo.placements[row.ID] = row
	}
	return repo
}

func (s *stubPlacementsRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubPlacementsRepo) Create(ctx context.Context, placement *models.Placement) (*models.Placement, error) {
	s.nextID++
	placement.ID = s.nextID
	copied := *placement
	s.placements[placement.ID] = &copied
	return placement, nil
}

func (s *stubPlacementsRepo) FindByID(ctx context.Context, id int64) (*models.Placement, error) {
	placement, ok := s.placements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *placement
	return &copied, nil
}

func (s *stubPlacementsRepo) FindDetail(ctx context.Context, id int64) (*models.Placement, error) {
	return s.FindByID(ctx, id)
}

func (s *stubPlacementsRepo) List(ctx context.Context, filters Filters) ([]models.Placement, error) {
	var rows []models.Placement
	for _, placement := range s.placements {
		if filters.Status != nil && placement.Status != *filters.Status {
			continue
		}
		if filters.CampaignID != nil && placement.CampaignID != *filters.CampaignID {
			continue
		}
		rows = append(rows, *placement)
	}
	return rows, nil
}

func (s *stubPlacementsRepo) Save(ctx context.Context, placement *models.Placement) error {
	copied := *placement
	s.placements[placement.ID] = &copied
	return nil
}

func (s *stubPlacementsRepo) Delete(ctx context.Context, id int64) error {
	s.deletedID = id
	delete(s.placements, id)
	return nil
}

func (s *stubPlacementsRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	for _, placement := range s.placements {
		if placement.Status == enums.PlacementStatusAwaitingPublication &&
			placement.PlacementDate != nil && placement.PlacementDate.Before(now) {
			placement.Status = enums.PlacementStatusOverdue
			count++
		}
	}
	return count, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubAuditWriter struct {
	entries []comments.SystemInput
}

func (s *stubAuditWriter) Append(ctx context.Context, tx *gorm.DB, input comments.SystemInput) (*models.Comment, error) {
	s.entries = append(s.entries, input)
	return &models.Comment{ID: int64(len(s.entries)), AuthorID: input.AuthorID, Body: input.Body, IsSystem: true}, nil
}

func newTestService(t *testing.T, repo Repository) (Service, *stubAuditWriter) {
	t.Helper()
	audit := &stubAuditWriter{}
	svc, err := NewService(repo, stubTxRunner{}, audit)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, audit
}

func testAuthor() models.User {
	return models.User{ID: 1, Name: "Anna", Role: enums.UserRoleManager}
}

func decimalPtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func statusPtr(status enums.PlacementStatus) *enums.PlacementStatus {
	return &status
}

func TestCreateDefaultsToPlanned(t *testing.T) {
	repo := newStubPlacementsRepo()
	svc, audit := newTestService(t, repo)

	created, err := svc.Create(context.Background(), CreateInput{
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		PlacementType:  enums.PlacementTypePost,
		PricingModel:   enums.PricingModelFix,
		PaymentTerms:   enums.PaymentTermsPrepayment,
	}, testAuthor())
	if err != nil {
		t.Fatalf("create placement: %v", err)
	}

	if created.Status != enums.PlacementStatusPlanned {
		t.Fatalf("expected status PLANNED, got %s", created.Status)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected one audit comment, got %d", len(audit.entries))
	}
	if audit.entries[0].Body != "Placement created by manager Anna" {
		t.Fatalf("unexpected audit body %q", audit.entries[0].Body)
	}
	if audit.entries[0].PlacementID == nil || *audit.entries[0].PlacementID != created.ID {
		t.Fatal("audit comment not attached to created placement")
	}
}

func TestCreateAgreedRequiresFeeAndDate(t *testing.T) {
	repo := newStubPlacementsRepo()
	svc, _ := newTestService(t, repo)

	base := CreateInput{
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		PlacementType:  enums.PlacementTypePost,
		PricingModel:   enums.PricingModelFix,
		PaymentTerms:   enums.PaymentTermsPrepayment,
		Status:         statusPtr(enums.PlacementStatusAgreed),
	}

	complete := base
	complete.Fee = decimalPtr(65000)
	complete.PlacementDate = timePtr(time.Now())
	if _, err := svc.Create(context.Background(), complete, testAuthor()); err != nil {
		t.Fatalf("create agreed placement: %v", err)
	}

	missingFee := base
	missingFee.PlacementDate = timePtr(time.Now())
	_, err := svc.Create(context.Background(), missingFee, testAuthor())
	if err == nil {
		t.Fatal("expected missing fee error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Message() != "Fee is required for agreed or payable placements" {
		t.Fatalf("unexpected error: %v", err)
	}

	missingDate := base
	missingDate.Fee = decimalPtr(65000)
	_, err = svc.Create(context.Background(), missingDate, testAuthor())
	if err == nil {
		t.Fatal("expected missing date error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Message() != "Placement date is required for agreed placements" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateFeeLockedAfterPayment(t *testing.T) {
	existing := &models.Placement{
		ID:             7,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusAwaitingPayment,
		Fee:            decimalPtr(100),
		PlacementDate:  timePtr(time.Now()),
	}
	repo := newStubPlacementsRepo(existing)
	svc, audit := newTestService(t, repo)

	_, err := svc.Update(context.Background(), 7, UpdateInput{Fee: decimalPtr(200)}, testAuthor())
	if err == nil {
		t.Fatal("expected fee locked error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "Fee cannot be changed after payment has been initiated" {
		t.Fatalf("unexpected error: %v", err)
	}
	if typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict code, got %s", typed.Code())
	}

	updated, err := svc.Update(context.Background(), 7, UpdateInput{
		Status: statusPtr(enums.PlacementStatusAwaitingPublication),
	}, testAuthor())
	if err != nil {
		t.Fatalf("advance status: %v", err)
	}
	if updated.Status != enums.PlacementStatusAwaitingPublication {
		t.Fatalf("expected AWAITING_PUBLICATION, got %s", updated.Status)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected one audit comment, got %d", len(audit.entries))
	}
	want := "Status changed from 'Awaiting payment' to 'Paid, awaiting publication' by manager Anna"
	if audit.entries[0].Body != want {
		t.Fatalf("unexpected audit body %q", audit.entries[0].Body)
	}
}

func TestUpdateRejectsEditsInTerminalStatus(t *testing.T) {
	existing := &models.Placement{
		ID:             8,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusDeclined,
	}
	repo := newStubPlacementsRepo(existing)
	svc, _ := newTestService(t, repo)

	url := "https://example.com/post/1"
	_, err := svc.Update(context.Background(), 8, UpdateInput{PlacementURL: &url}, testAuthor())
	if err == nil {
		t.Fatal("expected non-editable error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Message() != "Placement cannot be edited in the current status" {
		t.Fatalf("unexpected error: %v", err)
	}

	// A status-only payload is still allowed on terminal rows.
	if _, err := svc.Update(context.Background(), 8, UpdateInput{
		Status: statusPtr(enums.PlacementStatusPlanned),
	}, testAuthor()); err != nil {
		t.Fatalf("status-only update: %v", err)
	}
}

func TestUpdateWithoutStatusChangeWritesNoAudit(t *testing.T) {
	existing := &models.Placement{
		ID:             9,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusPlanned,
	}
	repo := newStubPlacementsRepo(existing)
	svc, audit := newTestService(t, repo)

	link := "https://track.example.com/abc"
	if _, err := svc.Update(context.Background(), 9, UpdateInput{TrackingLink: &link}, testAuthor()); err != nil {
		t.Fatalf("update placement: %v", err)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no audit comments, got %d", len(audit.entries))
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := newStubPlacementsRepo()
	svc, _ := newTestService(t, repo)

	_, err := svc.Update(context.Background(), 404, UpdateInput{}, testAuthor())
	if err == nil {
		t.Fatal("expected not found error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
	if typed.Message() != "placement not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestMarkOverdueSweepsPastDueOnly(t *testing.T) {
	yesterday := time.Now().Add(-24 * time.Hour)
	tomorrow := time.Now().Add(24 * time.Hour)
	pastDue := &models.Placement{
		ID:             1,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusAwaitingPublication,
		PlacementDate:  &yesterday,
	}
	notDue := &models.Placement{
		ID:             2,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusAwaitingPublication,
		PlacementDate:  &tomorrow,
	}
	repo := newStubPlacementsRepo(pastDue, notDue)
	svc, _ := newTestService(t, repo)

	count, err := svc.MarkOverdue(context.Background())
	if err != nil {
		t.Fatalf("mark overdue: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 swept row, got %d", count)
	}
	if repo.placements[1].Status != enums.PlacementStatusOverdue {
		t.Fatalf("expected past-due row to be OVERDUE, got %s", repo.placements[1].Status)
	}
	if repo.placements[2].Status != enums.PlacementStatusAwaitingPublication {
		t.Fatalf("expected future row untouched, got %s", repo.placements[2].Status)
	}

	// Sweeping again is a no-op.
	count, err = svc.MarkOverdue(context.Background())
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected idempotent sweep, got %d", count)
	}
}

func TestDeleteOnlyPlannedPlacements(t *testing.T) {
	agreed := &models.Placement{
		ID:             3,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusAgreed,
	}
	planned := &models.Placement{
		ID:             4,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusPlanned,
	}
	repo := newStubPlacementsRepo(agreed, planned)
	svc, _ := newTestService(t, repo)

	err := svc.Delete(context.Background(), 3)
	if err == nil {
		t.Fatal("expected delete rejection")
	}
	if !strings.Contains(err.Error(), "Only planned placements can be removed") {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("delete planned placement: %v", err)
	}
	if _, ok := repo.placements[4]; ok {
		t.Fatal("expected planned placement to be removed")
	}
}
