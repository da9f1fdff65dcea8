package diff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

func TestDiffUseCase_ComputeDiff(t *testing.T) {
	// Fixed time for consistent record timestamps
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should compute and record a diff", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Computation")).Return(nil)
		mockLogger.On("Info", "Diff computed", mock.Anything).Return()

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		response, err := useCase.ComputeDiff(ctx, usecase.DiffRequest{
			From: "2024-01-01T10:00:00",
			To:   "2024-01-01T12:30:00",
		})

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Equal(t, "02:30:00.000", response.Result)
		assert.Equal(t, int64(2*60*60*1000+30*60*1000), response.ResultMs)

		mockRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should apply absolute and rounding options", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockLogger.On("Info", "Diff computed", mock.Anything).Return()

		var recorded *entity.Computation
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Computation")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*entity.Computation)
			}).
			Return(nil)

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		response, err := useCase.ComputeDiff(ctx, usecase.DiffRequest{
			From:     "2024-01-01T12:00:00",
			To:       "2024-01-01T10:30:45.500",
			Absolute: true,
			RoundTo:  "hour",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "01:00:00.000", response.Result)
		assert.NotNil(t, recorded)
		assert.True(t, recorded.Absolute)
		assert.Equal(t, entity.RoundUnitHour, recorded.RoundTo)
		assert.Equal(t, fixedTime, recorded.CreatedAt)
	})

	t.Run("should render with a custom format", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Computation")).Return(nil)
		mockLogger.On("Info", "Diff computed", mock.Anything).Return()

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		response, err := useCase.ComputeDiff(ctx, usecase.DiffRequest{
			From:   "2024-01-01T10:00:00",
			To:     "2024-01-01T12:30:00",
			Format: "h:mm",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "2:30", response.Result)
	})

	t.Run("should reject missing inputs without touching the repository", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockLogger.On("Warn", "Rejected diff request", mock.Anything).Return()

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		response, err := useCase.ComputeDiff(ctx, usecase.DiffRequest{
			From: nil,
			To:   "2024-01-01T10:00:00",
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("should reject an unknown rounding unit", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockLogger.On("Warn", "Rejected diff request", mock.Anything).Return()

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		response, err := useCase.ComputeDiff(ctx, usecase.DiffRequest{
			From:    "2024-01-01T10:00:00",
			To:      "2024-01-01T12:00:00",
			RoundTo: "day",
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrInvalidRoundUnit)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("should propagate invalid input from resolution", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockLogger.On("Warn", "Failed to compute diff", mock.Anything).Return()

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		response, err := useCase.ComputeDiff(ctx, usecase.DiffRequest{
			From: "2024-01-01T10:00:00",
			To:   "not-a-date",
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("should still return the result when recording fails", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Computation")).Return(errs.ErrDatabaseConnection)
		mockLogger.On("Error", "Failed to record computation", mock.Anything).Return()
		mockLogger.On("Info", "Diff computed", mock.Anything).Return()

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		response, err := useCase.ComputeDiff(ctx, usecase.DiffRequest{
			From: "2024-01-01T10:00:00",
			To:   "2024-01-01T12:30:00",
		})

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Equal(t, "02:30:00.000", response.Result)

		mockRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})
}

func TestDiffUseCase_GetHistory(t *testing.T) {
	t.Run("should list recent computations", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		records := []*entity.Computation{
			{ID: 2, Result: "01:00:00.000"},
			{ID: 1, Result: "02:30:00.000"},
		}
		mockRepo.On("ListRecent", ctx, 2).Return(records, nil)

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		result, err := useCase.GetHistory(ctx, 2)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, uint64(2), result[0].ID)

		mockRepo.AssertExpectations(t)
	})

	t.Run("should normalize out-of-range limits", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockRepo.On("ListRecent", ctx, DefaultHistoryLimit).Return([]*entity.Computation{}, nil)
		mockRepo.On("ListRecent", ctx, MaxHistoryLimit).Return([]*entity.Computation{}, nil)

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		_, err := useCase.GetHistory(ctx, 0)
		assert.NoError(t, err)
		_, err = useCase.GetHistory(ctx, 5000)
		assert.NoError(t, err)

		// Assert
		mockRepo.AssertExpectations(t)
	})

	t.Run("should honor limits from configuration", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockRepo.On("ListRecent", ctx, 5).Return([]*entity.Computation{}, nil)
		mockRepo.On("ListRecent", ctx, 50).Return([]*entity.Computation{}, nil)

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 5, 50)

		// Act
		_, err := useCase.GetHistory(ctx, 0)
		assert.NoError(t, err)
		_, err = useCase.GetHistory(ctx, 5000)
		assert.NoError(t, err)

		// Assert
		mockRepo.AssertExpectations(t)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockRepo := new(MockComputationRepository)
		mockTimeProvider := new(MockTimeProvider)
		mockLogger := new(MockLogger)

		mockRepo.On("ListRecent", ctx, 10).Return(nil, errors.New("connection refused"))
		mockLogger.On("Error", "Failed to list computation history", mock.Anything).Return()

		useCase := NewDiffUseCase(mockRepo, mockTimeProvider, mockLogger, 0, 0)

		// Act
		result, err := useCase.GetHistory(ctx, 10)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)

		mockRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})
}
