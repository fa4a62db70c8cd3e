package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
)

type stubHealth model.HealthStatus

func (s stubHealth) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.HealthStatus(s), Details: map[string]string{}}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		database db.HealthDBGateway
		cache    cache.HealthGateway
		expected model.HealthStatus
	}{
		{"AllUp", stubHealth(model.StatusUp), stubHealth(model.StatusUp), model.StatusUp},
		{"UnknownIsTolerated", db.MemoryHealthDBGateway{}, cache.DisabledHealthGateway{}, model.StatusUp},
		{"DatabaseDown", stubHealth(model.StatusDown), stubHealth(model.StatusUp), model.StatusDown},
		{"CacheDown", stubHealth(model.StatusUp), stubHealth(model.StatusDown), model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewHealthUseCase(tt.database, tt.cache, queue.NewWorkerHealthGateway())

			health := useCase.CheckHealth()
			assert.Equal(t, tt.expected, health.Status)
			assert.Equal(t, tt.database.Health().Status, health.Database.Status)
			assert.Equal(t, tt.cache.Health().Status, health.Cache.Status)
			assert.Equal(t, model.StatusUnknown, health.Queue.Status)
		})
	}
}
