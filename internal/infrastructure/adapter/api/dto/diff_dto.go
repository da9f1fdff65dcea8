package dto

import "time"

// DiffRequest represents the API request for a time-diff computation.
// From and To accept either an ISO-8601-ish timestamp string or a
// number of milliseconds since the Unix epoch.
type DiffRequest struct {
	From     any    `json:"from" binding:"required"`
	To       any    `json:"to" binding:"required"`
	Absolute bool   `json:"absolute"`
	RoundTo  string `json:"roundTo"`
	Format   string `json:"format"`
}

// DiffResponse represents the API response for a computed diff, in both
// the formatted rendering and the raw signed millisecond count
type DiffResponse struct {
	Result   string `json:"result"`
	ResultMs int64  `json:"resultMs"`
}

// ComputationResponse represents one stored computation record
type ComputationResponse struct {
	ID        uint64    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Absolute  bool      `json:"absolute"`
	RoundTo   string    `json:"roundTo,omitempty"`
	Format    string    `json:"format"`
	Result    string    `json:"result"`
	ResultMs  int64     `json:"resultMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryResponse represents the API response for the computation history
type HistoryResponse struct {
	Computations []ComputationResponse `json:"computations"`
}
