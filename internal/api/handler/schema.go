package handler

// errorResponse documents the error envelope rendered by the central error
// handler; handlers never build it themselves.
type errorResponse struct {
	Error string `json:"error"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type statusResponse struct {
	Status string `json:"status"`
}
