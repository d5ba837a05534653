package service

import (
	"errors"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/gorm"
)

type BoatTypeService struct {
	db *gorm.DB
}

func NewBoatTypeService(db *gorm.DB) *BoatTypeService {
	return &BoatTypeService{db: db}
}

func (s *BoatTypeService) List() ([]model.BoatType, error) {
	var boatTypes []model.BoatType
	err := s.db.Order("name ASC").Find(&boatTypes).Error
	return boatTypes, err
}

func (s *BoatTypeService) Get(id uint) (*model.BoatType, error) {
	var boatType model.BoatType
	if err := s.db.First(&boatType, "boat_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &boatType, nil
}

func (s *BoatTypeService) Create(boatType *model.BoatType) error {
	boatType.Version = 1
	return s.db.Create(boatType).Error
}

func (s *BoatTypeService) Update(id uint, boatType *model.BoatType) error {
	if id != boatType.BoatTypeID {
		return ErrNotFound
	}
	oldVersion := boatType.Version
	boatType.Version++
	return saveVersioned(s.db, boatType, "boat_type_id", id, oldVersion)
}

func (s *BoatTypeService) Delete(id uint) error {
	tx := s.db.Delete(&model.BoatType{}, "boat_type_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
