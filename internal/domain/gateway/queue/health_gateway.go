package queue

import (
	"todo-api/internal/domain/model"
	"todo-api/pkg/sqs"
)

// WorkerHealthChecker is implemented by *sqs.Worker.
type WorkerHealthChecker interface {
	HealthCheck() sqs.WorkerHealthCheck
}

// HealthGateway reports the workers consuming todo command queues.
type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealthChecker)
	UnregisterWorker(name string)
}
