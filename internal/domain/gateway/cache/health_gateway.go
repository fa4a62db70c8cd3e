package cache

import (
	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{checker: redis.NewHealthChecker(client)}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck()
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}

// DisabledHealthGateway reports a cache that is not configured.
type DisabledHealthGateway struct{}

func (DisabledHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "Redis is disabled"},
	}
}
