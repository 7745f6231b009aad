// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strconv"

// EstimateRequest represents the JSON request body for the stateless estimate endpoint.
//
// Headcount is quantized by the service before the estimate is computed,
// so any integer is accepted. ActiveToolCount must fit the tool catalog.
//
// @Description Request to estimate annual savings for a headcount and number of tools
// @Example {"headcount": 100, "active_tool_count": 3}
type EstimateRequest struct {
	// Headcount is the company size picked on the slider.
	Headcount int `json:"headcount" example:"100"`
	// ActiveToolCount is the number of tools the company uses today.
	ActiveToolCount int `json:"active_tool_count" example:"3" minimum:"0"`
} // @name EstimateRequest

// HeadcountRequest represents the JSON request body for updating a session headcount.
type HeadcountRequest struct {
	// Headcount is clamped to [1, 1000] and snapped to the slider step.
	Headcount int `json:"headcount" example:"470"`
} // @name HeadcountRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrNegativeToolCount is returned when active_tool_count is below zero.
	ErrNegativeToolCount = &ValidationError{
		Field:   "active_tool_count",
		Message: "must not be negative",
	}
)

// Validate checks the request against a catalog of catalogSize tools.
func (r *EstimateRequest) Validate(catalogSize int) error {
	if r.ActiveToolCount < 0 {
		return ErrNegativeToolCount
	}
	if r.ActiveToolCount > catalogSize {
		return &ValidationError{
			Field:   "active_tool_count",
			Message: "must not exceed " + strconv.Itoa(catalogSize),
		}
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
