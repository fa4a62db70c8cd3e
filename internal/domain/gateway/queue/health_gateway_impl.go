package queue

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"todo-api/internal/domain/model"
	"todo-api/pkg/sqs"
)

// WorkerHealthGateway aggregates registered workers. It is DOWN when any worker stopped polling
// and UNKNOWN when no worker is registered, as with commands disabled.
type WorkerHealthGateway struct {
	mutex   sync.RWMutex
	workers map[string]WorkerHealthChecker
}

var _ HealthGateway = (*WorkerHealthGateway)(nil)

func NewWorkerHealthGateway() *WorkerHealthGateway {
	return &WorkerHealthGateway{workers: make(map[string]WorkerHealthChecker)}
}

func (gateway *WorkerHealthGateway) RegisterWorker(name string, worker WorkerHealthChecker) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.workers[name] = worker
}

func (gateway *WorkerHealthGateway) UnregisterWorker(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.workers, name)
}

func (gateway *WorkerHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.workers) == 0 {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "No command workers registered"},
		}
	}

	status := model.StatusUp
	details := map[string]string{"workers": strconv.Itoa(len(gateway.workers))}
	var down []string

	for _, name := range slices.Sorted(maps.Keys(gateway.workers)) {
		check := gateway.workers[name].HealthCheck()
		details[name+".status"] = string(check.Status)
		for key, value := range check.Details {
			details[name+"."+key] = value
		}
		if check.Status != sqs.StatusUp {
			status = model.StatusDown
			down = append(down, name)
		}
	}

	if len(down) > 0 {
		details["down"] = strings.Join(down, ",")
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
