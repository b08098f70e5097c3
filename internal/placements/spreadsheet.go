package placements

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

const exportSheetName = "Placements"

var exportColumns = []string{"Counterparty", "INN", "Amount", "Campaign", "Blogger", "PlacementDate", "Status"}

// idColumnNames are the accepted spellings of the placement id column on import.
var idColumnNames = []string{"ID", "PlacementID", "placementId", "id"}

// Export serializes placements into the finance reconciliation workbook.
// Without an explicit status filter it exports the payment queue.
func (s *service) Export(ctx context.Context, filters ExportFilters) ([]byte, error) {
	status := enums.PlacementStatusAwaitingPayment
	if filters.Status != nil {
		if !filters.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid placement status")
		}
		status = *filters.Status
	}

	listFilters := Filters{Status: &status, CampaignID: filters.CampaignID}
	rows, err := s.repo.List(ctx, listFilters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list placements for export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rename export sheet")
	}

	for i, col := range exportColumns {
		cell := fmt.Sprintf("%s1", columnLetter(i+1))
		if err := f.SetCellValue(exportSheetName, cell, col); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write export header")
		}
	}

	for i, placement := range rows {
		rowNum := i + 2
		values := exportRow(placement)
		for j, value := range values {
			cell := fmt.Sprintf("%s%d", columnLetter(j+1), rowNum)
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write export row")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize export workbook")
	}
	return buf.Bytes(), nil
}

func exportRow(placement models.Placement) []any {
	var counterpartyName, inn, campaignName, bloggerName string
	if placement.Counterparty != nil {
		counterpartyName = placement.Counterparty.Name
		if placement.Counterparty.INN != nil {
			inn = *placement.Counterparty.INN
		}
	}
	if placement.Campaign != nil {
		campaignName = placement.Campaign.Name
	}
	if placement.Blogger != nil {
		bloggerName = placement.Blogger.Name
	}

	amount := 0.0
	if placement.Fee != nil {
		amount = placement.Fee.InexactFloat64()
	}

	date := ""
	if placement.PlacementDate != nil {
		date = placement.PlacementDate.UTC().Format("2006-01-02")
	}

	return []any{
		counterpartyName,
		inn,
		amount,
		campaignName,
		bloggerName,
		date,
		string(placement.Status),
	}
}

// Import reads the first sheet of an uploaded workbook and advances every row
// still awaiting payment to the paid state. Rows without a usable id are
// skipped rather than failing the whole upload.
func (s *service) Import(ctx context.Context, data []byte, author models.User) (*ImportSummary, error) {
	if author.ID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "File is required")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read workbook rows")
	}
	if len(rows) == 0 {
		return &ImportSummary{}, nil
	}

	idCol := findIDColumn(rows[0])

	summary := &ImportSummary{}
	nextStatus := enums.PlacementStatusAwaitingPublication

	for _, row := range rows[1:] {
		if idCol < 0 || idCol >= len(row) || strings.TrimSpace(row[idCol]) == "" {
			summary.Skipped++
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSpace(row[idCol]), 10, 64)
		if err != nil {
			summary.Skipped++
			continue
		}

		placement, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				summary.NotFound++
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load placement")
		}

		if placement.Status != enums.PlacementStatusAwaitingPayment {
			summary.Skipped++
			continue
		}

		if _, err := s.Update(ctx, id, UpdateInput{Status: &nextStatus}, author); err != nil {
			summary.Skipped++
			continue
		}
		summary.Updated++
	}

	return summary, nil
}

func findIDColumn(header []string) int {
	for _, name := range idColumnNames {
		for i, cell := range header {
			if strings.TrimSpace(cell) == name {
				return i
			}
		}
	}
	return -1
}

func columnLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
