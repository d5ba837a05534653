package service

import (
	"errors"
	"time"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/gorm"
)

type FeeStructureService struct {
	db *gorm.DB
}

func NewFeeStructureService(db *gorm.DB) *FeeStructureService {
	return &FeeStructureService{db: db}
}

// List returns all fee schedules, newest season first.
func (s *FeeStructureService) List() ([]model.FeeStructure, error) {
	var fees []model.FeeStructure
	err := s.db.Order("year DESC").Find(&fees).Error
	return fees, err
}

func (s *FeeStructureService) Get(year int) (*model.FeeStructure, error) {
	var fee model.FeeStructure
	if err := s.db.First(&fee, "year = ?", year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fee, nil
}

// Latest returns the most recent season's schedule. The create form is
// pre-filled from it so the treasurer only has to adjust what changed.
func (s *FeeStructureService) Latest() (*model.FeeStructure, error) {
	var fee model.FeeStructure
	if err := s.db.Order("year DESC").First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fee, nil
}

func (s *FeeStructureService) Create(fee *model.FeeStructure) error {
	fee.Version = 1
	return s.db.Create(fee).Error
}

// Update rejects edits to past seasons before touching the database.
func (s *FeeStructureService) Update(year int, fee *model.FeeStructure) error {
	if year != fee.Year {
		return ErrNotFound
	}
	if !CanEditYear(fee.Year, time.Now().Year()) {
		return ErrEditBlocked
	}
	oldVersion := fee.Version
	fee.Version++
	return saveVersioned(s.db, fee, "year", year, oldVersion)
}

func (s *FeeStructureService) Delete(year int) error {
	tx := s.db.Delete(&model.FeeStructure{}, "year = ?", year)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
