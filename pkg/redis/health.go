package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings Redis and performs a set/get round trip
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client, timeout: 2 * time.Second}
}

func (h *HealthChecker) HealthCheck() HealthCheck {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"host":     config.Host,
		"port":     strconv.Itoa(config.Port),
		"database": strconv.Itoa(config.Database),
	}

	if err := h.roundTrip(ctx); err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.GetClient().PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["message"] = string(StatusUp)
	return HealthCheck{Status: StatusUp, Details: details}
}

func (h *HealthChecker) roundTrip(ctx context.Context) error {
	if err := h.client.Ping(ctx); err != nil {
		return err
	}

	key := "health_check::" + uuid.NewString()
	value := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := h.client.Set(ctx, key, value, time.Minute); err != nil {
		return err
	}
	defer h.client.Delete(context.Background(), key)

	got, err := h.client.GetBytes(ctx, key)
	if err != nil {
		return err
	}
	if string(got) != value {
		return errors.New("health check value mismatch")
	}
	return nil
}
