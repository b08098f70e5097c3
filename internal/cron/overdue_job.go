package cron

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/lestahub/lestahub-backend/pkg/logger"
)

// OverdueSweepJobParams configure the overdue placement sweeper.
type OverdueSweepJobParams struct {
	Logger  *logger.Logger
	Sweeper overdueSweeper
}

type overdueSweeper interface {
	MarkOverdue(ctx context.Context) (int64, error)
}

// NewOverdueSweepJob builds the cron job that flags payable placements whose
// agreed publication date has passed.
func NewOverdueSweepJob(params OverdueSweepJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Sweeper == nil {
		return nil, fmt.Errorf("placement sweeper required")
	}
	return &overdueSweepJob{
		logg:    params.Logger,
		sweeper: params.Sweeper,
	}, nil
}

type overdueSweepJob struct {
	logg    *logger.Logger
	sweeper overdueSweeper
}

func (j *overdueSweepJob) Name() string { return "overdue-sweep" }

func (j *overdueSweepJob) Run(ctx context.Context) error {
	var errs []error
	if err := j.sweepOverdue(ctx); err != nil {
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

func (j *overdueSweepJob) sweepOverdue(ctx context.Context) error {
	count, err := j.sweeper.MarkOverdue(ctx)
	if err != nil {
		return fmt.Errorf("sweep overdue placements: %w", err)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{"count": count})
	j.logg.Info(logCtx, "overdue sweep complete")
	return nil
}
