package placements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/internal/comments"
	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

var statusLabels = map[enums.PlacementStatus]string{
	enums.PlacementStatusPlanned:             "Planned",
	enums.PlacementStatusAgreed:              "Agreed",
	enums.PlacementStatusDeclined:            "Declined",
	enums.PlacementStatusAwaitingPayment:     "Awaiting payment",
	enums.PlacementStatusAwaitingPublication: "Paid, awaiting publication",
	enums.PlacementStatusPublished:           "Published",
	enums.PlacementStatusOverdue:             "Overdue",
	enums.PlacementStatusClosed:              "Closed",
}

var nonEditableStatuses = map[enums.PlacementStatus]bool{
	enums.PlacementStatusDeclined: true,
	enums.PlacementStatusClosed:   true,
}

var feeLockedStatuses = map[enums.PlacementStatus]bool{
	enums.PlacementStatusAwaitingPayment:     true,
	enums.PlacementStatusAwaitingPublication: true,
	enums.PlacementStatusPublished:           true,
	enums.PlacementStatusOverdue:             true,
	enums.PlacementStatusClosed:              true,
}

var statusesRequiringFeeAndDate = map[enums.PlacementStatus]bool{
	enums.PlacementStatusAgreed:              true,
	enums.PlacementStatusAwaitingPayment:     true,
	enums.PlacementStatusAwaitingPublication: true,
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type auditWriter interface {
	Append(ctx context.Context, tx *gorm.DB, input comments.SystemInput) (*models.Comment, error)
}

// Service drives the placement lifecycle.
type Service interface {
	Create(ctx context.Context, input CreateInput, author models.User) (*models.Placement, error)
	Update(ctx context.Context, id int64, input UpdateInput, author models.User) (*models.Placement, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Placement, error)
	List(ctx context.Context, filters Filters) ([]models.Placement, error)
	MarkOverdue(ctx context.Context) (int64, error)
	Export(ctx context.Context, filters ExportFilters) ([]byte, error)
	Import(ctx context.Context, data []byte, author models.User) (*ImportSummary, error)
}

type service struct {
	repo  Repository
	tx    txRunner
	audit auditWriter
	now   func() time.Time
}

// NewService builds a placement service with the required dependencies.
func NewService(repo Repository, tx txRunner, audit auditWriter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("placements repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if audit == nil {
		return nil, fmt.Errorf("audit writer required")
	}
	return &service{
		repo:  repo,
		tx:    tx,
		audit: audit,
		now:   time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput, author models.User) (*models.Placement, error) {
	if input.CampaignID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "campaign id required")
	}
	if input.BloggerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blogger id required")
	}
	if input.CounterpartyID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "counterparty id required")
	}
	if author.ID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	status := enums.PlacementStatusPlanned
	if input.Status != nil {
		status = *input.Status
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid placement status")
	}

	if err := assertRequirements(status, input.Fee, input.PlacementDate); err != nil {
		return nil, err
	}

	placement := &models.Placement{
		CampaignID:     input.CampaignID,
		BloggerID:      input.BloggerID,
		CounterpartyID: input.CounterpartyID,
		CreatedByID:    author.ID,
		PlacementType:  input.PlacementType,
		PricingModel:   input.PricingModel,
		PaymentTerms:   input.PaymentTerms,
		Status:         status,
		PlacementDate:  input.PlacementDate,
		Fee:            input.Fee,
		PlacementURL:   input.PlacementURL,
		ScreenshotURL:  input.ScreenshotURL,
		TrackingLink:   input.TrackingLink,
		AlanbaseSub1:   input.AlanbaseSub1,
		EridToken:      input.EridToken,
		Views:          input.Views,
		Likes:          input.Likes,
		CommentsCount:  input.CommentsCount,
		Shares:         input.Shares,
		ROI:            input.ROI,
		EngagementRate: input.EngagementRate,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		created, err := repo.Create(ctx, placement)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create placement")
		}
		placement = created

		body := fmt.Sprintf("Placement created by manager %s", author.Name)
		_, err = s.audit.Append(ctx, tx, comments.SystemInput{
			AuthorID:       author.ID,
			Body:           body,
			BloggerID:      &placement.BloggerID,
			CounterpartyID: &placement.CounterpartyID,
			PlacementID:    &placement.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return placement, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput, author models.User) (*models.Placement, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "placement id required")
	}
	if author.ID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid placement status")
	}

	var updated *models.Placement
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		placement, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "placement not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load placement")
		}

		if err := assertEditable(placement, input); err != nil {
			return err
		}
		if err := assertFeeUnlocked(placement, input); err != nil {
			return err
		}

		nextStatus := placement.Status
		if input.Status != nil {
			nextStatus = *input.Status
		}

		effectiveFee := input.Fee
		if effectiveFee == nil {
			effectiveFee = placement.Fee
		}
		effectiveDate := input.PlacementDate
		if effectiveDate == nil {
			effectiveDate = placement.PlacementDate
		}
		if err := assertRequirements(nextStatus, effectiveFee, effectiveDate); err != nil {
			return err
		}

		previousStatus := placement.Status
		applyUpdate(placement, input, nextStatus)

		if err := repo.Save(ctx, placement); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update placement")
		}

		if previousStatus != nextStatus {
			body := fmt.Sprintf("Status changed from '%s' to '%s' by manager %s",
				statusLabel(previousStatus), statusLabel(nextStatus), author.Name)
			if _, err := s.audit.Append(ctx, tx, comments.SystemInput{
				AuthorID:       author.ID,
				Body:           body,
				BloggerID:      &placement.BloggerID,
				CounterpartyID: &placement.CounterpartyID,
				PlacementID:    &placement.ID,
			}); err != nil {
				return err
			}
		}

		updated = placement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "placement id required")
	}

	placement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "placement not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load placement")
	}

	if placement.Status != enums.PlacementStatusPlanned {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "Only planned placements can be removed")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete placement")
	}
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Placement, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "placement id required")
	}
	placement, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "placement not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load placement")
	}
	return placement, nil
}

// List sweeps overdue rows first so the listing reflects reality without
// waiting for the next cron tick.
func (s *service) List(ctx context.Context, filters Filters) ([]models.Placement, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid placement status")
	}

	if _, err := s.MarkOverdue(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list placements")
	}
	return rows, nil
}

func (s *service) MarkOverdue(ctx context.Context) (int64, error) {
	count, err := s.repo.MarkOverdue(ctx, s.now())
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark overdue placements")
	}
	return count, nil
}

func assertEditable(placement *models.Placement, input UpdateInput) error {
	if nonEditableStatuses[placement.Status] && input.hasNonStatusFields() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "Placement cannot be edited in the current status")
	}
	return nil
}

func assertFeeUnlocked(placement *models.Placement, input UpdateInput) error {
	if input.Fee != nil && feeLockedStatuses[placement.Status] {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "Fee cannot be changed after payment has been initiated")
	}
	return nil
}

func assertRequirements(nextStatus enums.PlacementStatus, fee *decimal.Decimal, date *time.Time) error {
	if !statusesRequiringFeeAndDate[nextStatus] {
		return nil
	}
	if fee == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Fee is required for agreed or payable placements")
	}
	if date == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Placement date is required for agreed placements")
	}
	return nil
}

func applyUpdate(placement *models.Placement, input UpdateInput, nextStatus enums.PlacementStatus) {
	placement.Status = nextStatus
	if input.BloggerID != nil {
		placement.BloggerID = *input.BloggerID
	}
	if input.CounterpartyID != nil {
		placement.CounterpartyID = *input.CounterpartyID
	}
	if input.PlacementType != nil {
		placement.PlacementType = *input.PlacementType
	}
	if input.PricingModel != nil {
		placement.PricingModel = *input.PricingModel
	}
	if input.PaymentTerms != nil {
		placement.PaymentTerms = *input.PaymentTerms
	}
	if input.PlacementDate != nil {
		placement.PlacementDate = input.PlacementDate
	}
	if input.Fee != nil {
		placement.Fee = input.Fee
	}
	if input.PlacementURL != nil {
		placement.PlacementURL = input.PlacementURL
	}
	if input.ScreenshotURL != nil {
		placement.ScreenshotURL = input.ScreenshotURL
	}
	if input.TrackingLink != nil {
		placement.TrackingLink = input.TrackingLink
	}
	if input.AlanbaseSub1 != nil {
		placement.AlanbaseSub1 = input.AlanbaseSub1
	}
	if input.EridToken != nil {
		placement.EridToken = input.EridToken
	}
	if input.Views != nil {
		placement.Views = input.Views
	}
	if input.Likes != nil {
		placement.Likes = input.Likes
	}
	if input.CommentsCount != nil {
		placement.CommentsCount = input.CommentsCount
	}
	if input.Shares != nil {
		placement.Shares = input.Shares
	}
	if input.ROI != nil {
		placement.ROI = input.ROI
	}
	if input.EngagementRate != nil {
		placement.EngagementRate = input.EngagementRate
	}
}

func statusLabel(status enums.PlacementStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}
