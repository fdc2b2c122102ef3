package dto

import "task-tracker.com/task-tracker/internal/constants"

type CreateTaskRequest struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description *string               `json:"description" validate:"omitempty,max=1000"`
	Status      *constants.TaskStatus `json:"status" validate:"omitempty,oneof=pending in_progress done"`
}

type UpdateTaskRequest struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description *string               `json:"description" validate:"omitempty,max=1000"`
	Status      *constants.TaskStatus `json:"status" validate:"omitempty,oneof=pending in_progress done"`
}

// A missing status fails oneof as well, so it gets the same message as a bad value.
type UpdateTaskStatusRequest struct {
	Status constants.TaskStatus `json:"status" validate:"oneof=pending in_progress done"`
}
