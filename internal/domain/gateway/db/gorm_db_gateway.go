package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"todo-api/internal/domain/model"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health() model.ComponentHealthStatus {
	driver := gateway.DB.Dialector.Name()

	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(ctx); err != nil {
		return downStatus(driver, err)
	}

	stats := sqlDB.Stats()
	return upStatus(driver, stats.OpenConnections, stats.InUse)
}
