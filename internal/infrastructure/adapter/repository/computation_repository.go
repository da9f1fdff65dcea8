package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/model"
)

// ComputationRepository implements the computation repository port using GORM
type ComputationRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	queryTimeout time.Duration
}

// NewComputationRepository creates a new ComputationRepository instance.
// Every query is bounded by queryTimeout; a zero timeout leaves queries
// bounded only by the caller's context.
func NewComputationRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *ComputationRepository {
	return &ComputationRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// queryContext derives the context a single database operation runs under
func (r *ComputationRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return r.timeProvider.WithTimeout(ctx, r.queryTimeout)
}

// entityToModel converts a computation entity to a database model
func (r *ComputationRepository) entityToModel(computation *entity.Computation) model.Computation {
	return model.Computation{
		ID:        computation.ID,
		FromInput: computation.FromInput,
		ToInput:   computation.ToInput,
		Absolute:  computation.Absolute,
		RoundTo:   string(computation.RoundTo),
		Format:    computation.Format,
		ResultMs:  computation.ResultMs,
		Result:    computation.Result,
		CreatedAt: computation.CreatedAt,
	}
}

// modelToEntity converts a database model to a computation entity
func (r *ComputationRepository) modelToEntity(m *model.Computation) *entity.Computation {
	return &entity.Computation{
		ID:        m.ID,
		FromInput: m.FromInput,
		ToInput:   m.ToInput,
		Absolute:  m.Absolute,
		RoundTo:   entity.RoundUnit(m.RoundTo),
		Format:    m.Format,
		ResultMs:  m.ResultMs,
		Result:    m.Result,
		CreatedAt: m.CreatedAt,
	}
}

// Create stores a new computation record and fills in its ID
func (r *ComputationRepository) Create(ctx context.Context, computation *entity.Computation) error {
	r.logger.Debug("Creating computation record", map[string]any{
		"from": computation.FromInput,
		"to":   computation.ToInput,
	})

	computationModel := r.entityToModel(computation)

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Create(&computationModel)
	if result.Error != nil {
		r.logger.Error("Failed to create computation record", map[string]any{
			"from":  computation.FromInput,
			"to":    computation.ToInput,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	computation.ID = computationModel.ID
	return nil
}

// GetByID retrieves a single computation record
func (r *ComputationRepository) GetByID(ctx context.Context, id uint64) (*entity.Computation, error) {
	var computationModel model.Computation

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).First(&computationModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrComputationNotFound
		}
		r.logger.Error("Failed to get computation record", map[string]any{
			"id":    id,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&computationModel), nil
}

// ListRecent returns up to limit records, newest first
func (r *ComputationRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Computation, error) {
	var computationModels []model.Computation

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&computationModels)
	if result.Error != nil {
		r.logger.Error("Failed to list computation records", map[string]any{
			"limit": limit,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	computations := make([]*entity.Computation, 0, len(computationModels))
	for i := range computationModels {
		computations = append(computations, r.modelToEntity(&computationModels[i]))
	}
	return computations, nil
}
