package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

// Limiter admits or rejects one event for key. *redis.RateLimiter implements it.
type Limiter interface {
	Allow(ctx context.Context, key string) error
}

// RateLimitCaller throttles requests per caller address. It must run after ResolveCaller.
// Limiter failures other than ErrRateLimited let the request through.
func RateLimitCaller(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller(c).String()
			err := limiter.Allow(c.Request().Context(), caller)
			switch {
			case err == nil:
				return next(c)
			case errors.Is(err, redis.ErrRateLimited):
				log.Warn(msg.GetMessage("todo.rate-limited", caller, err))
				return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{Error: "Too many requests"})
			default:
				log.Warn(msg.GetMessage("todo.rate-limit.unavailable", caller, err))
				return next(c)
			}
		}
	}
}
