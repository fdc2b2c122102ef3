package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "tasks.created", Subject("tasks", TaskCreated))
	assert.Equal(t, "audit.status_changed", Subject("audit", TaskStatusChanged))
}

func TestTaskEvent_JSONShape(t *testing.T) {
	event := NewTaskEvent(TaskUpdated, 3, &model.Task{ID: 3, Title: "t", Status: constants.StatusDone})

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "updated", decoded["type"])
	assert.Equal(t, float64(3), decoded["task_id"])
	assert.Contains(t, decoded, "occurred_at")
	assert.Equal(t, "done", decoded["task"].(map[string]any)["status"])
}

func TestTaskEvent_DeletedOmitsTask(t *testing.T) {
	raw, err := json.Marshal(NewTaskEvent(TaskDeleted, 9, nil))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"task":`)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), NewTaskEvent(TaskCreated, 1, nil)))
}
