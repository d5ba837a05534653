package service

import (
	"errors"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// List returns every member with their province resolved, sorted by full
// name the way the roster page shows them.
func (s *MemberService) List() ([]model.Member, error) {
	var members []model.Member
	err := s.db.Preload("Province").Order("full_name ASC").Find(&members).Error
	return members, err
}

func (s *MemberService) Get(id uint) (*model.Member, error) {
	var member model.Member
	if err := s.db.Preload("Province").First(&member, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (s *MemberService) Create(member *model.Member) error {
	member.Version = 1
	return s.db.Create(member).Error
}

func (s *MemberService) Update(id uint, member *model.Member) error {
	if id != member.MemberID {
		return ErrNotFound
	}
	oldVersion := member.Version
	member.Version++
	return saveVersioned(s.db, member, "member_id", id, oldVersion)
}

func (s *MemberService) Delete(id uint) error {
	tx := s.db.Delete(&model.Member{}, "member_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
