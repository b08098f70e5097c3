package placements

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

func buildImportWorkbook(t *testing.T, idHeader string, ids []string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetCellValue(sheet, "A1", idHeader); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := f.SetCellValue(sheet, "B1", "Amount"); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i, id := range ids {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue(sheet, cell, id); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func TestImportAdvancesPaymentQueue(t *testing.T) {
	now := time.Now()
	awaiting := &models.Placement{
		ID:             1,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusAwaitingPayment,
		Fee:            decimalPtr(100),
		PlacementDate:  &now,
	}
	published := &models.Placement{
		ID:             2,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusPublished,
	}
	repo := newStubPlacementsRepo(awaiting, published)
	svc, audit := newTestService(t, repo)

	data := buildImportWorkbook(t, "PlacementID", []string{"1", "2", "9", "abc"})

	summary, err := svc.Import(context.Background(), data, testAuthor())
	if err != nil {
		t.Fatalf("import workbook: %v", err)
	}

	if summary.Updated != 1 {
		t.Fatalf("expected 1 updated, got %d", summary.Updated)
	}
	if summary.NotFound != 1 {
		t.Fatalf("expected 1 not found, got %d", summary.NotFound)
	}
	if summary.Skipped != 2 {
		t.Fatalf("expected 2 skipped, got %d", summary.Skipped)
	}

	if repo.placements[1].Status != enums.PlacementStatusAwaitingPublication {
		t.Fatalf("expected row 1 advanced, got %s", repo.placements[1].Status)
	}
	if repo.placements[2].Status != enums.PlacementStatusPublished {
		t.Fatalf("expected row 2 untouched, got %s", repo.placements[2].Status)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected one status-change audit comment, got %d", len(audit.entries))
	}
}

func TestImportWithoutIDColumnSkipsRows(t *testing.T) {
	repo := newStubPlacementsRepo()
	svc, _ := newTestService(t, repo)

	data := buildImportWorkbook(t, "SomethingElse", []string{"1", "2"})

	summary, err := svc.Import(context.Background(), data, testAuthor())
	if err != nil {
		t.Fatalf("import workbook: %v", err)
	}
	if summary.Skipped != 2 || summary.Updated != 0 || summary.NotFound != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestExportDefaultsToPaymentQueue(t *testing.T) {
	inn := "7701234567"
	date := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	awaiting := &models.Placement{
		ID:             1,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusAwaitingPayment,
		Fee:            decimalPtr(65000),
		PlacementDate:  &date,
		Counterparty:   &models.Counterparty{ID: 30, Name: "Media LLC", INN: &inn},
		Campaign:       &models.Campaign{ID: 10, Name: "Summer push"},
		Blogger:        &models.Blogger{ID: 20, Name: "TankReview"},
	}
	planned := &models.Placement{
		ID:             2,
		CampaignID:     10,
		BloggerID:      20,
		CounterpartyID: 30,
		Status:         enums.PlacementStatusPlanned,
	}
	repo := newStubPlacementsRepo(awaiting, planned)
	svc, _ := newTestService(t, repo)

	data, err := svc.Export(context.Background(), ExportFilters{})
	if err != nil {
		t.Fatalf("export placements: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[0][0] != "Counterparty" || rows[0][6] != "Status" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "Media LLC" {
		t.Fatalf("unexpected counterparty %q", rows[1][0])
	}
	if rows[1][1] != inn {
		t.Fatalf("unexpected inn %q", rows[1][1])
	}
	if rows[1][5] != "2025-06-15" {
		t.Fatalf("unexpected date %q", rows[1][5])
	}
	if rows[1][6] != string(enums.PlacementStatusAwaitingPayment) {
		t.Fatalf("unexpected status %q", rows[1][6])
	}
}
