package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/util/numberutils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TodoController struct {
	api                *echo.Group
	useCase            todo.UseCase
	mutationMiddleware []echo.MiddlewareFunc
}

// NewTodoController creates the controller. mutationMiddleware runs on mutating routes after
// the caller is resolved.
func NewTodoController(api *echo.Group, useCase todo.UseCase, mutationMiddleware ...echo.MiddlewareFunc) *TodoController {
	return &TodoController{api: api, useCase: useCase, mutationMiddleware: mutationMiddleware}
}

// InitTodoRoutes initializes owner and todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/owner", controller.Owner)

	controller.api.GET("/todos", controller.GetAllTodo)
	controller.api.GET("/todos/page", controller.GetTodoPage)
	controller.api.GET("/todos/summary", controller.Summary)
	controller.api.GET("/todos/:index", controller.GetTodo)

	mutating := append([]echo.MiddlewareFunc{middleware.ResolveCaller()}, controller.mutationMiddleware...)
	controller.api.POST("/todos", controller.CreateTodo, mutating...)
	controller.api.PUT("/todos/:index", controller.UpdateTodo, mutating...)
	controller.api.PATCH("/todos/:index/completed", controller.TodoCompleted, mutating...)
	controller.api.DELETE("/todos/:index", controller.DeleteTodo, mutating...)
}

// Owner godoc
// @Summary Get the list owner
// @Description Address allowed to mutate the todo list
// @Tags todo
// @Produce json
// @Success 200 {object} model.OwnerResponse
// @Router /owner [get]
func (controller *TodoController) Owner(c echo.Context) error {
	return c.JSON(http.StatusOK, model.OwnerResponse{Owner: controller.useCase.Owner().String()})
}

// GetAllTodo godoc
// @Summary Get all todos
// @Description Full ordered todo list. Reads are not restricted to the owner.
// @Tags todo
// @Produce json
// @Success 200 {array} model.TodoResponse
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos [get]
func (controller *TodoController) GetAllTodo(c echo.Context) error {
	todos, err := controller.useCase.GetAllTodo(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponses(0, todos))
}

// GetTodoPage godoc
// @Summary Get a page of todos
// @Tags todo
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} model.Page[model.TodoResponse]
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/page [get]
func (controller *TodoController) GetTodoPage(c echo.Context) error {
	page := numberutils.MaxInt(numberutils.ToIntWithDefault(c.QueryParam("page"), 0), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), defaultPageSize)
	if !numberutils.IsIntInRange(size, 1, maxPageSize) {
		size = numberutils.ClampInt(size, 1, maxPageSize)
	}

	todoPage, err := controller.useCase.GetTodoPage(c.Request().Context(), page, size)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, todoPage)
}

// Summary godoc
// @Summary Count todos per status
// @Tags todo
// @Produce json
// @Success 200 {object} entity.TodoSummary
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/summary [get]
func (controller *TodoController) Summary(c echo.Context) error {
	summary, err := controller.useCase.Summary(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetTodo godoc
// @Summary Get a todo by index
// @Tags todo
// @Produce json
// @Param index path int true "Todo index"
// @Success 200 {object} model.TodoResponse
// @Failure 400 {object} model.ErrorResponse "Invalid index"
// @Failure 404 {object} model.ErrorResponse "Index is out-of-bound"
// @Router /todos/{index} [get]
func (controller *TodoController) GetTodo(c echo.Context) error {
	index, err := numberutils.ToIntWithError(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid index"})
	}

	found, err := controller.useCase.GetTodo(c.Request().Context(), index)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponse(index, *found))
}

// CreateTodo godoc
// @Summary Create a todo
// @Description Appends a todo with status Created. Owner only.
// @Tags todo
// @Accept json
// @Produce json
// @Param X-Caller-Address header string true "Caller address"
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} model.TodoResponse
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 403 {object} model.ErrorResponse "You're not allowed"
// @Failure 429 {object} model.ErrorResponse "Too many requests"
// @Router /todos [post]
func (controller *TodoController) CreateTodo(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
	}

	index, created, err := controller.useCase.CreateTodo(c.Request().Context(), middleware.Caller(c), dto.Title, dto.Description)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, model.NewTodoResponse(index, *created))
}

// UpdateTodo godoc
// @Summary Update a todo
// @Description Replaces title and description and sets status Updated. Owner only.
// @Tags todo
// @Accept json
// @Produce json
// @Param X-Caller-Address header string true "Caller address"
// @Param index path int true "Todo index"
// @Param todo body model.UpdateTodoDTO true "Todo update data"
// @Success 200 {object} model.TodoResponse
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 403 {object} model.ErrorResponse "You're not allowed"
// @Failure 404 {object} model.ErrorResponse "Index is out-of-bound"
// @Failure 429 {object} model.ErrorResponse "Too many requests"
// @Router /todos/{index} [put]
func (controller *TodoController) UpdateTodo(c echo.Context) error {
	index, err := numberutils.ToIntWithError(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid index"})
	}

	var dto model.UpdateTodoDTO
	if err = c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
	}

	updated, err := controller.useCase.UpdateTodo(c.Request().Context(), middleware.Caller(c), index, dto.Title, dto.Description)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponse(index, *updated))
}

// TodoCompleted godoc
// @Summary Complete a todo
// @Description Sets status Completed. Owner only.
// @Tags todo
// @Produce json
// @Param X-Caller-Address header string true "Caller address"
// @Param index path int true "Todo index"
// @Success 200 {object} model.TodoResponse
// @Failure 403 {object} model.ErrorResponse "You're not allowed"
// @Failure 404 {object} model.ErrorResponse "Index is out-of-bound"
// @Failure 429 {object} model.ErrorResponse "Too many requests"
// @Router /todos/{index}/completed [patch]
func (controller *TodoController) TodoCompleted(c echo.Context) error {
	index, err := numberutils.ToIntWithError(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid index"})
	}

	completed, err := controller.useCase.TodoCompleted(c.Request().Context(), middleware.Caller(c), index)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponse(index, *completed))
}

// DeleteTodo godoc
// @Summary Delete a todo
// @Description Removes the todo; following todos move down one index. Owner only.
// @Tags todo
// @Param X-Caller-Address header string true "Caller address"
// @Param index path int true "Todo index"
// @Success 204 "Todo deleted successfully"
// @Failure 403 {object} model.ErrorResponse "You're not allowed"
// @Failure 404 {object} model.ErrorResponse "Index is out-of-bound"
// @Failure 429 {object} model.ErrorResponse "Too many requests"
// @Router /todos/{index} [delete]
func (controller *TodoController) DeleteTodo(c echo.Context) error {
	index, err := numberutils.ToIntWithError(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid index"})
	}

	if err = controller.useCase.DeleteTodo(c.Request().Context(), middleware.Caller(c), index); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, todo.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, todo.ErrIndexOutOfBound):
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
}
