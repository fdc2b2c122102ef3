package http

import (
	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) (any, error) {
	var req dto.CreateTaskRequest
	if err := validators.BindJSON(c, &req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return h.taskService.CreateTask(c.Request().Context(), &req)
}

func (h *Handler) ListTasks(c echo.Context) (any, error) {
	return h.taskService.ListTasks(c.Request().Context())
}

func (h *Handler) GetTask(c echo.Context) (any, error) {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return nil, err
	}

	return h.taskService.GetTask(c.Request().Context(), id)
}

func (h *Handler) UpdateTaskStatus(c echo.Context) (any, error) {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return nil, err
	}

	var req dto.UpdateTaskStatusRequest
	if err := validators.BindJSON(c, &req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return h.taskService.UpdateTaskStatus(c.Request().Context(), id, req.Status)
}

func (h *Handler) UpdateTask(c echo.Context) (any, error) {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return nil, err
	}

	var req dto.UpdateTaskRequest
	if err := validators.BindJSON(c, &req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return h.taskService.UpdateTask(c.Request().Context(), id, &req)
}

func (h *Handler) DeleteTask(c echo.Context) (any, error) {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return nil, err
	}

	return nil, h.taskService.DeleteTask(c.Request().Context(), id)
}

