package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/model"
	"todo-api/pkg/sqs"
)

type stubWorker sqs.HealthStatus

func (s stubWorker) HealthCheck() sqs.WorkerHealthCheck {
	return sqs.WorkerHealthCheck{
		Status:  sqs.HealthStatus(s),
		Details: map[string]string{"processed": "3"},
	}
}

func TestWorkerHealthGateway(t *testing.T) {
	gateway := NewWorkerHealthGateway()
	assert.Equal(t, model.StatusUnknown, gateway.Health().Status)

	gateway.RegisterWorker("todo_commands", stubWorker(sqs.StatusUp))
	health := gateway.Health()
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "1", health.Details["workers"])
	assert.Equal(t, "UP", health.Details["todo_commands.status"])
	assert.Equal(t, "3", health.Details["todo_commands.processed"])

	gateway.RegisterWorker("replay", stubWorker(sqs.StatusDown))
	health = gateway.Health()
	assert.Equal(t, model.StatusDown, health.Status)
	assert.Equal(t, "replay", health.Details["down"])

	gateway.UnregisterWorker("replay")
	gateway.UnregisterWorker("todo_commands")
	assert.Equal(t, model.StatusUnknown, gateway.Health().Status)
}
