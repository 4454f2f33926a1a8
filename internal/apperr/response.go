package apperr

import (
	stderrors "errors"
)

// Response is the JSON envelope returned by every endpoint:
// {"success": bool, "data": ..., "error": {"code", "message", "details"}}.
type Response struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Error   *Body `json:"error"`
}

// Body contains the error details sent to clients.
type Body struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// ToResponse converts an Error to a failure envelope.
func (e *Error) ToResponse() Response {
	return Response{
		Success: false,
		Error: &Body{
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
		},
	}
}

// As converts err to an *Error if possible.
func As(err error) (*Error, bool) {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
