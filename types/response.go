package types

// ApiResponse is the envelope every handler returns.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is returned for request-level failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
