package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// ErrTaskNotFound is returned when no row matches the given id.
var ErrTaskNotFound = gorm.ErrRecordNotFound

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(
	ctx context.Context,
	title string,
	description *string,
	status constants.TaskStatus,
) (*model.Task, error) {
	if !status.Valid() {
		return nil, errors.New("invalid task status")
	}

	task := &model.Task{
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns every task, newest first.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&tasks).Error
	return tasks, err
}

// Update overwrites title, description and status. Last write wins.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if !task.Status.Valid() {
		return errors.New("invalid task status")
	}

	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"updated_at":  now,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}

	task.UpdatedAt = now
	return nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uint, status constants.TaskStatus) error {
	if !status.Valid() {
		return errors.New("invalid task status")
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
