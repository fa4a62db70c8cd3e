package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"todo-api/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return downStatus("postgres", err)
	}

	stats := gateway.DB.Stats()
	return upStatus("postgres", stats.OpenConnections, stats.InUse)
}

func upStatus(driver string, openConnections, inUse int) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":           driver,
			"message":          string(model.StatusUp),
			"open_connections": strconv.Itoa(openConnections),
			"in_use":           strconv.Itoa(inUse),
		},
	}
}

func downStatus(driver string, err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"driver":  driver,
			"message": err.Error(),
		},
	}
}
