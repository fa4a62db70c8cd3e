package db

import "todo-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}

// MemoryHealthDBGateway reports the in-memory store, which is always available.
type MemoryHealthDBGateway struct{}

var _ HealthDBGateway = MemoryHealthDBGateway{}

func (MemoryHealthDBGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":  "memory",
			"message": string(model.StatusUp),
		},
	}
}
