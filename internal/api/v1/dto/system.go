package dto

// RootResponse is returned by GET /.
type RootResponse struct {
	OK  bool   `json:"ok" example:"true"`
	Msg string `json:"msg" example:"LucidScript backend is up"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp int64  `json:"timestamp"`
}
