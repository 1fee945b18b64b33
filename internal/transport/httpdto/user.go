package httpdto

// Create and update bodies for /user decode straight into user.User and
// domain.Fields so that passthrough keys survive; only fixed-shape bodies
// get a DTO here.

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
