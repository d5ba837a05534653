package service

import (
	"errors"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/gorm"
)

type ClubTaskService struct {
	db *gorm.DB
}

func NewClubTaskService(db *gorm.DB) *ClubTaskService {
	return &ClubTaskService{db: db}
}

func (s *ClubTaskService) List() ([]model.ClubTask, error) {
	var tasks []model.ClubTask
	err := s.db.Order("name ASC").Find(&tasks).Error
	return tasks, err
}

func (s *ClubTaskService) Get(id uint) (*model.ClubTask, error) {
	var task model.ClubTask
	if err := s.db.First(&task, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (s *ClubTaskService) Create(task *model.ClubTask) error {
	task.Version = 1
	return s.db.Create(task).Error
}

func (s *ClubTaskService) Update(id uint, task *model.ClubTask) error {
	if id != task.TaskID {
		return ErrNotFound
	}
	oldVersion := task.Version
	task.Version++
	return saveVersioned(s.db, task, "task_id", id, oldVersion)
}

func (s *ClubTaskService) Delete(id uint) error {
	tx := s.db.Delete(&model.ClubTask{}, "task_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
