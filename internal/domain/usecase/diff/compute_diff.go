package diff

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

// DiffUseCase implements the time-diff business logic
type DiffUseCase struct {
	computationRepo persistence.ComputationRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	defaultLimit    int
	maxLimit        int
}

// NewDiffUseCase creates a new diff use case instance. The history
// limits come from configuration; non-positive values fall back to the
// package defaults.
func NewDiffUseCase(
	computationRepo persistence.ComputationRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultLimit int,
	maxLimit int,
) usecase.DiffUseCase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultHistoryLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxHistoryLimit
	}
	return &DiffUseCase{
		computationRepo: computationRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
	}
}

// ComputeDiff derives a signed duration from the request inputs, applies
// absolute-value and rounding post-processing, renders the result and
// records the computation. A history write failure is logged but does
// not fail the computation - the result is already correct at that
// point and the record is advisory.
func (u *DiffUseCase) ComputeDiff(ctx context.Context, req usecase.DiffRequest) (*usecase.DiffResponse, error) {
	if err := validateRequest(req); err != nil {
		u.logger.Warn("Rejected diff request", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	opts := entity.DiffOptions{
		Absolute: req.Absolute,
		RoundTo:  entity.RoundUnit(req.RoundTo),
	}

	result, err := entity.TimeDiff(req.From, req.To, opts)
	if err != nil {
		u.logger.Warn("Failed to compute diff", map[string]any{
			"from":  fmt.Sprintf("%v", req.From),
			"to":    fmt.Sprintf("%v", req.To),
			"error": err.Error(),
		})
		return nil, err
	}

	format := normalizeFormat(req.Format)
	computation := entity.NewComputation(
		fmt.Sprintf("%v", req.From),
		fmt.Sprintf("%v", req.To),
		opts,
		format,
		result,
		u.timeProvider,
	)

	if err := u.computationRepo.Create(ctx, computation); err != nil {
		u.logger.Error("Failed to record computation", map[string]any{
			"from":  computation.FromInput,
			"to":    computation.ToInput,
			"error": err.Error(),
		})
	}

	u.logger.Info("Diff computed", map[string]any{
		"from":      computation.FromInput,
		"to":        computation.ToInput,
		"absolute":  req.Absolute,
		"round_to":  req.RoundTo,
		"result":    computation.Result,
		"result_ms": computation.ResultMs,
	})

	return &usecase.DiffResponse{
		Result:   computation.Result,
		ResultMs: computation.ResultMs,
	}, nil
}

// GetHistory returns the most recent computation records, newest first
func (u *DiffUseCase) GetHistory(ctx context.Context, limit int) ([]*entity.Computation, error) {
	limit = normalizeLimit(limit, u.defaultLimit, u.maxLimit)

	computations, err := u.computationRepo.ListRecent(ctx, limit)
	if err != nil {
		u.logger.Error("Failed to list computation history", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}

	return computations, nil
}
