package usecase

import (
	"context"
	"time"

	"fleetalert/internal/domain/entity"
)

// RunnerUsecase performs a complete scheduled alert run
type RunnerUsecase interface {
	// Run fetches the active fleet and every subscription, evaluates alerts for ref and dispatches them.
	// A zero ref means today in the configured time zone. Fetch failures and a missing push transport
	// abort the run before any delivery is attempted.
	Run(ctx context.Context, ref time.Time) (*entity.RunReport, error)
}
