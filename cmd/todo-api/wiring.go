package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todo-api/configs"
	"todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/processor"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/api"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/lock"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	infraaws "todo-api/internal/infra/aws"
	infragorm "todo-api/internal/infra/database/gorm"
	infrasqlc "todo-api/internal/infra/database/sqlc"
	infraredis "todo-api/internal/infra/redis"
	"todo-api/pkg/http"
	"todo-api/pkg/log"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
	"todo-api/pkg/sqs"
)

const (
	todoListLockKey    = "todo-list"
	todoSummaryLockKey = "todo-summary"
	commandWorkerName  = "todo_commands"
)

type application struct {
	echo        *echo.Echo
	closers     []io.Closer
	worker      *sqs.Worker
	workerState *queue.WorkerHealthGateway
	scheduler   *schedule.TodoSummaryScheduler
	wg          sync.WaitGroup
}

// store bundles the todo gateway selected by app.todo.store.driver with its health check.
type store struct {
	gateway db.TodoGateway
	health  db.HealthDBGateway
}

func newApplication(ctx context.Context) (*application, error) {
	app := &application{}
	ok := false
	defer func() {
		if !ok {
			app.Close()
		}
	}()

	owner, err := entity.ParseAddress(resource.GetStringWithDefault("app.todo.owner", configs.Env.OwnerAddress))
	if err != nil {
		return nil, fmt.Errorf("invalid app.todo.owner: %w", err)
	}

	todoStore, err := app.newStore(ctx)
	if err != nil {
		return nil, err
	}

	var locker lock.Locker = lock.NewLocalLocker()
	var summaryLocker lock.Locker
	var cacheHealth cache.HealthGateway = cache.DisabledHealthGateway{}
	var mutationMiddleware []echo.MiddlewareFunc
	publisher := queue.NewMultiEventPublisher()

	if resource.GetBool("app.redis.enabled") {
		redisClient, err := infraredis.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("fail to connect Redis: %w", err)
		}
		app.closers = append(app.closers, redisClient)

		cacheHealth = cache.NewRedisHealthGateway(redisClient)
		locker = lock.NewRedisLocker(redisClient, todoListLockKey, infraredis.NewLockOptions())
		summaryLocker = lock.NewRedisLeaseLocker(redisClient, todoSummaryLockKey,
			resource.GetDurationWithDefault("app.todo.summary.lease", 30*time.Second))

		if resource.GetBool("app.todo.cache.enabled") {
			todoCache := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName(infraredis.TodoCacheName))
			todoStore.gateway = db.NewCachedTodoGateway(todoStore.gateway, todoCache)
		}
		if resource.GetBool("app.todo.rate-limit.enabled") {
			limiter, err := redis.NewRateLimiter(redisClient, infraredis.NewRateLimiterOptions())
			if err != nil {
				return nil, fmt.Errorf("invalid app.todo.rate-limit: %w", err)
			}
			mutationMiddleware = append(mutationMiddleware, middleware.RateLimitCaller(limiter))
		}
		if resource.GetBool("app.todo.events.redis.enabled") {
			publisher.Add(queue.NewRedisEventPublisher(redis.NewPublisher(redisClient, nil),
				resource.GetStringWithDefault("app.todo.events.redis.channel", "todo-events")))
		}
	}

	var sqsClient *awssqs.Client
	if resource.GetBool("app.todo.events.sqs.enabled") || resource.GetBool("app.todo.commands.enabled") {
		awsConfig, err := infraaws.NewConfig(ctx)
		if err != nil {
			return nil, err
		}
		sqsClient = infraaws.NewSqsClient(awsConfig)
	}

	if resource.GetBool("app.todo.events.sqs.enabled") {
		publisher.Add(queue.NewSQSEventPublisher(infraaws.NewSQSSenderAdapter(sqsClient),
			resource.GetStringWithDefault("app.todo.events.sqs.queue", "todo-events")))
	}

	if webhookURL := resource.GetString("app.todo.events.webhook.url"); webhookURL != "" {
		webhook, err := api.NewWebhookGateway(webhookURL, configs.Env.ApplicationName, http.ClientOptions{
			ReadTimeout: resource.GetDurationWithDefault("app.todo.events.webhook.timeout", 5*time.Second),
			Backoff:     http.DefaultBackoff(),
			Logger:      http.ZapHTTPLogger{},
		})
		if err != nil {
			return nil, err
		}
		publisher.Add(webhook)
	}

	todoUseCase, err := todo.NewTodoUseCase(ctx, owner, todoStore.gateway, locker, publisher)
	if err != nil {
		return nil, err
	}

	app.workerState = queue.NewWorkerHealthGateway()
	if resource.GetBool("app.todo.commands.enabled") {
		commandProcessor := processor.NewTodoCommandProcessor(todoUseCase, 0)
		app.worker, err = sqs.NewWorker(ctx, sqsClient,
			resource.GetStringWithDefault("app.todo.commands.queue", "todo-commands"),
			commandProcessor,
			&sqs.WorkerConfig{
				PoolSize: resource.GetIntWithDefault("app.todo.commands.pool-size", 1),
				LogLevel: sqs.InfoLevel,
			})
		if err != nil {
			return nil, fmt.Errorf("fail to create command worker: %w", err)
		}
		app.workerState.RegisterWorker(commandWorkerName, app.worker)
	}

	if resource.GetBool("app.todo.summary.enabled") {
		app.scheduler = schedule.NewTodoSummaryScheduler(todoUseCase, summaryLocker,
			resource.GetStringWithDefault("app.todo.summary.cron", "0 * * * *"))
	}

	healthUseCase := health.NewHealthUseCase(todoStore.health, cacheHealth, app.workerState)
	app.echo = newEcho(todoUseCase, healthUseCase, mutationMiddleware...)

	log.Infof("Todo store %s ready with %d event publisher(s)",
		resource.GetStringWithDefault("app.todo.store.driver", "memory"), publisher.Len())

	ok = true
	return app, nil
}

func (app *application) newStore(ctx context.Context) (*store, error) {
	switch driver := resource.GetStringWithDefault("app.todo.store.driver", "memory"); driver {
	case "memory":
		return &store{gateway: db.NewMemoryTodoGateway(), health: db.MemoryHealthDBGateway{}}, nil

	case "gorm":
		gormDB, err := infragorm.NewDB()
		if err != nil {
			return nil, err
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			app.closers = append(app.closers, sqlDB)
		}
		gateway, err := db.NewGormTodoGateway(gormDB)
		if err != nil {
			return nil, err
		}
		return &store{gateway: gateway, health: db.NewGormHealthDBGateway(gormDB)}, nil

	case "sqlc":
		sqlDB, err := infrasqlc.NewDB(ctx)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, sqlDB)
		gateway := db.NewSQLCTodoGateway(sqlDB)
		if err = gateway.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return &store{gateway: gateway, health: db.NewSQLCHealthDBGateway(sqlDB)}, nil

	default:
		return nil, fmt.Errorf("unsupported app.todo.store.driver %q", driver)
	}
}

func newEcho(todoUseCase todo.UseCase, healthUseCase health.UseCase, mutationMiddleware ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetStringWithDefault("app.server.context-path", configs.Env.ContextPath)
	docs.SwaggerInfo.BasePath = contextPath
	apiGroup := e.Group(contextPath)

	controller.NewHealthController(apiGroup, healthUseCase).InitHealthRoutes()
	controller.NewTodoController(apiGroup, todoUseCase, mutationMiddleware...).InitTodoRoutes()
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// StartBackground launches the command worker and the summary scheduler.
func (app *application) StartBackground(ctx context.Context) {
	if app.worker != nil {
		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			app.worker.Start(ctx)
		}()
	}

	if app.scheduler != nil {
		if err := app.scheduler.InitTodoSummaryScheduleTasks(); err != nil {
			log.Errorf("Todo summary scheduler not started: %v", err)
			app.scheduler = nil
		}
	}
}

// StopBackground waits for the worker, whose context is already cancelled, and stops the scheduler.
func (app *application) StopBackground() {
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	app.wg.Wait()
	if app.worker != nil {
		app.workerState.UnregisterWorker(commandWorkerName)
	}
}

func (app *application) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			log.Warnf("failed to close resource: %v", err)
		}
	}
	app.closers = nil
}
