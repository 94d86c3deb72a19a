package dto

import "github.com/SscSPs/grn_tracker/internal/utils/pagination"

// Response is the envelope of every successful JSON response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListResponse is the envelope of paginated list responses.
type ListResponse struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListQuery carries the paging and filter query parameters shared by list endpoints.
type ListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	Search string `form:"search" binding:"omitempty,max=100"`
	Status string `form:"status"`
}
