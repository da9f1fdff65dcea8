package dto

// ErrorResponse is the JSON body of every failed diff or history
// request. Code carries the numeric value from the domain error
// package so clients can distinguish, say, a format mismatch from an
// unresolvable timestamp without parsing the message.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
