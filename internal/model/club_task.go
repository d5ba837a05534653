package model

import "time"

// ClubTask is a chore members can be assigned to (dock duty, race
// committee and so on).
type ClubTask struct {
	TaskID      uint   `gorm:"primaryKey" form:"taskId" json:"task_id"`
	Name        string `gorm:"type:varchar(80);not null;index:idx_task_name" form:"name" binding:"required,max=80" json:"name"`
	Description string `gorm:"type:text" form:"description" json:"description"`
	Version     int    `gorm:"not null;default:1" form:"version" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClubTask) TableName() string { return "tasks" }
