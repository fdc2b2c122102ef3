package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"task-tracker.com/task-tracker/internal/cache"
	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/events"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

const taskResource = "Task"

type TaskService struct {
	repo      *repository.TaskRepository
	cache     cache.TaskListCache
	publisher events.Publisher
	logger    *slog.Logger
}

func NewTaskService(
	repo *repository.TaskRepository,
	listCache cache.TaskListCache,
	publisher events.Publisher,
) *TaskService {
	if listCache == nil {
		listCache = cache.NoopTaskListCache{}
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return &TaskService{
		repo:      repo,
		cache:     listCache,
		publisher: publisher,
		logger:    slog.Default().With("component", "task_service"),
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	status := constants.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	task, err := s.repo.CreateTask(ctx, req.Title, req.Description, status)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.afterWrite(ctx, events.NewTaskEvent(events.TaskCreated, task.ID, task))
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.cache.GetTasks(ctx)
	if err == nil {
		return tasks, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "task list cache read failed", "error", err)
	}

	tasks, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	if err := s.cache.SetTasks(ctx, tasks); err != nil {
		s.logger.WarnContext(ctx, "task list cache write failed", "error", err)
	}

	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}
	return task, nil
}

// UpdateTaskStatus sets any status regardless of the current one.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id uint, status constants.TaskStatus) (*model.Task, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, s.mapNotFound(err, id)
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}

	s.afterWrite(ctx, events.NewTaskEvent(events.TaskStatusChanged, task.ID, task))
	return task, nil
}

// UpdateTask replaces the title. Description and status are kept when omitted.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}

	task.Title = req.Title
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, s.mapNotFound(err, id)
	}

	s.afterWrite(ctx, events.NewTaskEvent(events.TaskUpdated, task.ID, task))
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapNotFound(err, id)
	}

	s.afterWrite(ctx, events.NewTaskEvent(events.TaskDeleted, id, nil))
	return nil
}

func (s *TaskService) mapNotFound(err error, id uint) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return apperrors.NewNotFoundError(taskResource, id)
	}
	return fmt.Errorf("task %d: %w", id, err)
}

// afterWrite never fails the request: the row is already committed.
func (s *TaskService) afterWrite(ctx context.Context, event events.TaskEvent) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "task list cache invalidation failed", "error", err)
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "task event publish failed",
			"type", event.Type,
			"task_id", event.TaskID,
			"error", err,
		)
	}
}
