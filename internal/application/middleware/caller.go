package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// CallerHeader carries the address of the identity invoking the API.
const CallerHeader = "X-Caller-Address"

const callerContextKey = "todo.caller"

// ResolveCaller parses CallerHeader into the request context. A malformed address is rejected
// with 400; a missing header leaves the zero address, which is never the owner.
func ResolveCaller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := strings.TrimSpace(c.Request().Header.Get(CallerHeader))
			if header == "" {
				return next(c)
			}

			caller, err := entity.ParseAddress(header)
			if err != nil {
				return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			}
			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

// Caller returns the address resolved by ResolveCaller, or the zero address.
func Caller(c echo.Context) entity.Address {
	if caller, ok := c.Get(callerContextKey).(entity.Address); ok {
		return caller
	}
	return entity.ZeroAddress
}
