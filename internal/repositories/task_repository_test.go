package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func TestTaskRepository_CreateAndFind(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, "Write report", strPtr("quarterly"), constants.StatusPending)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("expected task ID to be assigned")
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	found, err := repo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to find task: %v", err)
	}
	if found.Title != "Write report" || found.Description == nil || *found.Description != "quarterly" {
		t.Errorf("unexpected task %+v", found)
	}
	if found.Status != constants.StatusPending {
		t.Errorf("expected status %s, got %s", constants.StatusPending, found.Status)
	}
}

func TestTaskRepository_CreateRejectsUnknownStatus(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	if _, err := repo.CreateTask(context.Background(), "x", nil, "archived"); err == nil {
		t.Error("expected an error for an unknown status")
	}
}

func TestTaskRepository_ListNewestFirst(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := repo.CreateTask(ctx, title, nil, constants.StatusPending); err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "third" || tasks[2].Title != "first" {
		t.Errorf("expected newest first, got %s, %s, %s", tasks[0].Title, tasks[1].Title, tasks[2].Title)
	}
}

func TestTaskRepository_ListEmpty(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	tasks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", tasks)
	}
}

func TestTaskRepository_UpdateAndUpdateStatus(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, _ := repo.CreateTask(ctx, "old", nil, constants.StatusPending)

	task.Title = "new"
	task.Description = strPtr("details")
	task.Status = constants.StatusDone
	if err := repo.Update(ctx, task); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if err := repo.UpdateStatus(ctx, task.ID, constants.StatusInProgress); err != nil {
		t.Fatalf("failed to update status: %v", err)
	}

	found, _ := repo.FindByID(ctx, task.ID)
	if found.Title != "new" || *found.Description != "details" {
		t.Errorf("unexpected task %+v", found)
	}
	if found.Status != constants.StatusInProgress {
		t.Errorf("expected status %s, got %s", constants.StatusInProgress, found.Status)
	}
}

func TestTaskRepository_MissingRows(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 99); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("FindByID: expected ErrTaskNotFound, got %v", err)
	}
	if err := repo.Update(ctx, &model.Task{ID: 99, Title: "x", Status: constants.StatusDone}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Update: expected ErrTaskNotFound, got %v", err)
	}
	if err := repo.UpdateStatus(ctx, 99, constants.StatusDone); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("UpdateStatus: expected ErrTaskNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 99); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Delete: expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, _ := repo.CreateTask(ctx, "temp", nil, constants.StatusPending)

	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if _, err := repo.FindByID(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
}
