package api

const (
	StatusOnline  = "online"
	StatusHealthy = "healthy"
)

type Status struct {
	Status string `json:"status"`
}
