package service

import (
	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/gorm"
)

// ReferenceService serves the read-only lookup tables that populate the
// form dropdowns. Nothing in the application writes to these tables.
type ReferenceService struct {
	db *gorm.DB
}

func NewReferenceService(db *gorm.DB) *ReferenceService {
	return &ReferenceService{db: db}
}

func (s *ReferenceService) Provinces() ([]model.Province, error) {
	var provinces []model.Province
	err := s.db.Order("name ASC").Find(&provinces).Error
	return provinces, err
}

func (s *ReferenceService) MembershipTypes() ([]model.MembershipType, error) {
	var types []model.MembershipType
	err := s.db.Order("membership_type_name ASC").Find(&types).Error
	return types, err
}
