package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/dto"
)

// DiffHandler handles time-diff HTTP requests
type DiffHandler struct {
	diffService usecase.DiffUseCase
	logger      coreport.Logger
}

// NewDiffHandler creates a new diff handler instance
func NewDiffHandler(diffService usecase.DiffUseCase, logger coreport.Logger) *DiffHandler {
	return &DiffHandler{
		diffService: diffService,
		logger:      logger,
	}
}

// ComputeDiff handles the POST /diff endpoint
func (h *DiffHandler) ComputeDiff(c *gin.Context) {
	var req dto.DiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid diff request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.diffService.ComputeDiff(c.Request.Context(), usecase.DiffRequest{
		From:     req.From,
		To:       req.To,
		Absolute: req.Absolute,
		RoundTo:  req.RoundTo,
		Format:   req.Format,
	})
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.DiffResponse{
		Result:   result.Result,
		ResultMs: result.ResultMs,
	})
}

// GetHistory handles the GET /diff/history endpoint
func (h *DiffHandler) GetHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	computations, err := h.diffService.GetHistory(c.Request.Context(), limit)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to load computation history",
		})
		return
	}

	response := dto.HistoryResponse{
		Computations: make([]dto.ComputationResponse, 0, len(computations)),
	}
	for _, computation := range computations {
		response.Computations = append(response.Computations, dto.ComputationResponse{
			ID:        computation.ID,
			From:      computation.FromInput,
			To:        computation.ToInput,
			Absolute:  computation.Absolute,
			RoundTo:   string(computation.RoundTo),
			Format:    computation.Format,
			Result:    computation.Result,
			ResultMs:  computation.ResultMs,
			CreatedAt: computation.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidInput),
		errors.Is(err, domainerr.ErrFormatMismatch),
		errors.Is(err, domainerr.ErrDivisionByZero),
		errors.Is(err, domainerr.ErrInvalidRoundUnit),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrComputationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
