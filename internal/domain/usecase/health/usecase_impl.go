package health

import (
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	response := model.NewHealthResponse(
		useCase.dbGateway.Health(),
		useCase.cacheGateway.Health(),
		useCase.queueGateway.Health(),
	)
	if response.Status == model.StatusDown {
		log.Warnw("health check failed",
			"database", response.Database.Status,
			"cache", response.Cache.Status,
			"queue", response.Queue.Status)
	}
	return response
}
