package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/http/response"
)

// HandlerFunc returns the raw payload; Register wraps it in the envelope.
type HandlerFunc func(c echo.Context) (any, error)

// Route declares a path together with the envelope it answers with on success.
type Route struct {
	Method         string
	Path           string
	SuccessStatus  int
	SuccessCode    string
	SuccessMessage string
	Handler        HandlerFunc
}

func Routes(h *Handler) []Route {
	return []Route{
		{
			Method:         http.MethodPost,
			Path:           "/tasks",
			SuccessStatus:  http.StatusCreated,
			SuccessCode:    "TASK_CREATED",
			SuccessMessage: "Task created successfully",
			Handler:        h.CreateTask,
		},
		{
			Method:         http.MethodGet,
			Path:           "/tasks",
			SuccessStatus:  http.StatusOK,
			SuccessMessage: "Tasks retrieved successfully",
			Handler:        h.ListTasks,
		},
		{
			Method:         http.MethodGet,
			Path:           "/tasks/:id",
			SuccessStatus:  http.StatusOK,
			SuccessMessage: "Task retrieved successfully",
			Handler:        h.GetTask,
		},
		{
			Method:         http.MethodPatch,
			Path:           "/tasks/:id/status",
			SuccessStatus:  http.StatusOK,
			SuccessCode:    "TASK_UPDATED",
			SuccessMessage: "Task status updated successfully",
			Handler:        h.UpdateTaskStatus,
		},
		{
			Method:         http.MethodPut,
			Path:           "/tasks/:id",
			SuccessStatus:  http.StatusOK,
			SuccessCode:    "TASK_UPDATED",
			SuccessMessage: "Task updated successfully",
			Handler:        h.UpdateTask,
		},
		{
			Method:         http.MethodDelete,
			Path:           "/tasks/:id",
			SuccessStatus:  http.StatusNoContent,
			SuccessCode:    "TASK_DELETED",
			SuccessMessage: "Task deleted successfully",
			Handler:        h.DeleteTask,
		},
	}
}

func Register(e *echo.Echo, routes []Route) {
	for _, r := range routes {
		e.Add(r.Method, r.Path, wrap(r))
	}
}

func wrap(r Route) echo.HandlerFunc {
	meta := response.Meta{Code: r.SuccessCode, Message: r.SuccessMessage}
	status := r.SuccessStatus
	if status == 0 {
		status = http.StatusOK
	}

	return func(c echo.Context) error {
		data, err := r.Handler(c)
		if err != nil {
			return err
		}
		return response.Success(c, status, meta, data)
	}
}
