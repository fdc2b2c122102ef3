package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	model "task-tracker.com/task-tracker/internal/models"
)

const TaskListKey = "tasks:list"

type RedisTaskListCache struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewRedisTaskListCache(client rueidis.Client, ttl time.Duration) *RedisTaskListCache {
	return &RedisTaskListCache{
		client: client,
		key:    TaskListKey,
		ttl:    ttl,
	}
}

func (r *RedisTaskListCache) GetTasks(ctx context.Context) ([]model.Task, error) {
	cmd := r.client.B().Get().Key(r.key).Build()
	raw, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	return decodeTasks(raw)
}

func (r *RedisTaskListCache) SetTasks(ctx context.Context, tasks []model.Task) error {
	payload, err := encodeTasks(tasks)
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().Key(r.key).Value(rueidis.BinaryString(payload)).ExSeconds(int64(r.ttl/time.Second)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisTaskListCache) Invalidate(ctx context.Context) error {
	cmd := r.client.B().Del().Key(r.key).Build()
	return r.client.Do(ctx, cmd).Error()
}

func encodeTasks(tasks []model.Task) ([]byte, error) {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode task list: %w", err)
	}
	return payload, nil
}

func decodeTasks(raw []byte) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}
	return tasks, nil
}
