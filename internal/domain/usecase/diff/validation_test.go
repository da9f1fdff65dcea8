package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

func TestValidateRequest(t *testing.T) {
	t.Run("Valid requests", func(t *testing.T) {
		testCases := []usecase.DiffRequest{
			{From: "2024-01-01T10:00:00", To: "2024-01-01T12:00:00"},
			{From: float64(1609372800000), To: "2024-01-01", RoundTo: "minute"},
			{From: "2024-01-01", To: "2024-01-02", Absolute: true, RoundTo: "hour"},
		}

		for _, req := range testCases {
			assert.NoError(t, validateRequest(req))
		}
	})

	t.Run("Invalid requests", func(t *testing.T) {
		testCases := []struct {
			name     string
			req      usecase.DiffRequest
			expected error
		}{
			{"missing from", usecase.DiffRequest{To: "2024-01-01"}, errs.ErrInvalidInput},
			{"missing to", usecase.DiffRequest{From: "2024-01-01"}, errs.ErrInvalidInput},
			{"unknown round unit", usecase.DiffRequest{From: "a", To: "b", RoundTo: "week"}, errs.ErrInvalidRoundUnit},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := validateRequest(tc.req)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, entity.DefaultFormat, normalizeFormat(""))
	assert.Equal(t, "h:mm", normalizeFormat("h:mm"))
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, normalizeLimit(0, DefaultHistoryLimit, MaxHistoryLimit))
	assert.Equal(t, DefaultHistoryLimit, normalizeLimit(-5, DefaultHistoryLimit, MaxHistoryLimit))
	assert.Equal(t, 42, normalizeLimit(42, DefaultHistoryLimit, MaxHistoryLimit))
	assert.Equal(t, MaxHistoryLimit, normalizeLimit(10000, DefaultHistoryLimit, MaxHistoryLimit))
	assert.Equal(t, 5, normalizeLimit(0, 5, 50))
	assert.Equal(t, 50, normalizeLimit(200, 5, 50))
}
