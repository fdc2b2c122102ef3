package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string               `gorm:"size:255;not null" json:"title"`
	Description *string              `gorm:"type:text" json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;default:pending;check:chk_tasks_status,status IN ('pending','in_progress','done')" json:"status"`
	CreatedAt   time.Time            `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}
