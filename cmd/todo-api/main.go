package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// @title todo-api
// @version 1.0
// @description Owner-gated todo list.
// @BasePath /todo-api
func main() {
	log.Info(msg.GetMessage("app.start"))
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx)
	if err != nil {
		log.Fatal("Fail to start application", zap.Error(err))
	}
	defer app.Close()

	app.StartBackground(ctx)

	port := resource.GetStringWithDefault("app.server.port", "8080")
	go func() {
		if err := app.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationWithDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()

	if err := app.echo.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	app.StopBackground()

	log.Info(msg.GetMessage("app.stopped"))
}
