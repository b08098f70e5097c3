package cron

import (
	"context"
	"fmt"
	"testing"

	"github.com/lestahub/lestahub-backend/pkg/logger"
)

type fakeSweeper struct {
	count int64
	err   error
	calls int
}

func (f *fakeSweeper) MarkOverdue(_ context.Context) (int64, error) {
	f.calls++
	return f.count, f.err
}

func TestOverdueSweepJob_runsSweeper(t *testing.T) {
	sweeper := &fakeSweeper{count: 3}
	job, err := NewOverdueSweepJob(OverdueSweepJobParams{
		Logger:  logger.New(logger.Options{ServiceName: "test"}),
		Sweeper: sweeper,
	})
	if err != nil {
		t.Fatalf("NewOverdueSweepJob: %v", err)
	}
	if job.Name() != "overdue-sweep" {
		t.Fatalf("unexpected job name %q", job.Name())
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sweeper.calls != 1 {
		t.Fatalf("expected 1 sweep, got %d", sweeper.calls)
	}
}

func TestOverdueSweepJob_propagatesError(t *testing.T) {
	sweeper := &fakeSweeper{err: fmt.Errorf("db down")}
	job, err := NewOverdueSweepJob(OverdueSweepJobParams{
		Logger:  logger.New(logger.Options{ServiceName: "test"}),
		Sweeper: sweeper,
	})
	if err != nil {
		t.Fatalf("NewOverdueSweepJob: %v", err)
	}
	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected sweep error to propagate")
	}
}

func TestNewOverdueSweepJob_requiresDeps(t *testing.T) {
	if _, err := NewOverdueSweepJob(OverdueSweepJobParams{Sweeper: &fakeSweeper{}}); err == nil {
		t.Fatal("expected error without logger")
	}
	if _, err := NewOverdueSweepJob(OverdueSweepJobParams{Logger: logger.New(logger.Options{ServiceName: "test"})}); err == nil {
		t.Fatal("expected error without sweeper")
	}
}
