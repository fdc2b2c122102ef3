package cache

import (
	"context"
	"errors"

	model "task-tracker.com/task-tracker/internal/models"
)

// TaskListCache holds the rendered task list between writes.
type TaskListCache interface {
	GetTasks(ctx context.Context) ([]model.Task, error)

	SetTasks(ctx context.Context, tasks []model.Task) error

	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("task list cache miss")

// NoopTaskListCache is used when no redis address is configured.
type NoopTaskListCache struct{}

func (NoopTaskListCache) GetTasks(context.Context) ([]model.Task, error) {
	return nil, ErrCacheMiss
}

func (NoopTaskListCache) SetTasks(context.Context, []model.Task) error { return nil }

func (NoopTaskListCache) Invalidate(context.Context) error { return nil }
