package dto

import "github.com/ufvjm/estagiopro/internal/pkg/helpers"

// APIResponse is the uniform success/error envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse wraps an error message in a failure envelope. Internal
// detail never travels here; callers log it and pass a generic message.
func NewErrorResponse(errMsg string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   errMsg,
	}
}

// PaginatedResponse is the uniform paginated list payload.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

// NewPaginatedResponse builds the envelope; totalPages is ceil(total/limit).
func NewPaginatedResponse(data interface{}, total int64, page, limit int) PaginatedResponse {
	return PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: helpers.TotalPages(total, limit),
	}
}
