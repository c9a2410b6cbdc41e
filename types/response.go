package types

// ApiResponse is the envelope for the few JSON endpoints (health, status).
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}
