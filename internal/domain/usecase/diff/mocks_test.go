package diff

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// MockComputationRepository is a testify mock for the computation repository port
type MockComputationRepository struct {
	mock.Mock
}

func (m *MockComputationRepository) Create(ctx context.Context, computation *entity.Computation) error {
	args := m.Called(ctx, computation)
	return args.Error(0)
}

func (m *MockComputationRepository) GetByID(ctx context.Context, id uint64) (*entity.Computation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Computation), args.Error(1)
}

func (m *MockComputationRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Computation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Computation), args.Error(1)
}

// MockTimeProvider is a testify mock for the time provider port
type MockTimeProvider struct {
	mock.Mock
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}

// MockLogger is a testify mock for the logger port
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

func (m *MockLogger) GetLevel() coreport.LogLevel {
	args := m.Called()
	return args.Get(0).(coreport.LogLevel)
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
