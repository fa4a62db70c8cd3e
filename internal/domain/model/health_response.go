package model

type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
	// StatusUnknown marks a component that is not configured.
	StatusUnknown HealthStatus = "UNKNOWN"
)

type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
	Queue    ComponentHealthStatus `json:"queue"`
}

// OverallStatus is DOWN when any component is DOWN and UP otherwise.
func OverallStatus(components ...ComponentHealthStatus) HealthStatus {
	for _, component := range components {
		if component.Status == StatusDown {
			return StatusDown
		}
	}
	return StatusUp
}

func NewHealthResponse(database, cache, queue ComponentHealthStatus) HealthResponse {
	return HealthResponse{
		Status:   OverallStatus(database, cache, queue),
		Database: database,
		Cache:    cache,
		Queue:    queue,
	}
}
