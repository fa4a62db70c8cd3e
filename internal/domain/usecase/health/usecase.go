package health

import "todo-api/internal/domain/model"

// UseCase reports the store, the cache and the command workers.
type UseCase interface {
	CheckHealth() model.HealthResponse
}
