package events

import (
	"context"
	"time"

	model "task-tracker.com/task-tracker/internal/models"
)

type Type string

const (
	TaskCreated       Type = "created"
	TaskUpdated       Type = "updated"
	TaskStatusChanged Type = "status_changed"
	TaskDeleted       Type = "deleted"
)

type TaskEvent struct {
	Type       Type        `json:"type"`
	TaskID     uint        `json:"task_id"`
	Task       *model.Task `json:"task,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewTaskEvent(t Type, taskID uint, task *model.Task) TaskEvent {
	return TaskEvent{
		Type:       t,
		TaskID:     taskID,
		Task:       task,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event TaskEvent) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, TaskEvent) error { return nil }
