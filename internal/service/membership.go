package service

import (
	"errors"
	"time"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/gorm"
)

type MembershipService struct {
	db   *gorm.DB
	fees *FeeCalculator
}

func NewMembershipService(db *gorm.DB, fees *FeeCalculator) *MembershipService {
	return &MembershipService{db: db, fees: fees}
}

// ListForMember returns one member's memberships, newest season first.
func (s *MembershipService) ListForMember(memberID uint) ([]model.Membership, error) {
	var memberships []model.Membership
	err := s.db.Preload("Member").Preload("MembershipType").
		Where("member_id = ?", memberID).
		Order("year DESC").
		Find(&memberships).Error
	return memberships, err
}

func (s *MembershipService) Get(id uint) (*model.Membership, error) {
	var membership model.Membership
	if err := s.db.Preload("Member").Preload("MembershipType").
		First(&membership, "membership_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &membership, nil
}

// Create derives the fee before inserting. Whatever fee value came in on
// the form is overwritten; the fee is user-visible, never user-entered.
func (s *MembershipService) Create(membership *model.Membership) error {
	fee, err := s.fees.Compute(membership.Year, membership.MembershipTypeName)
	if err != nil {
		return err
	}
	membership.Fee = fee
	membership.Version = 1
	return s.db.Create(membership).Error
}

// Update writes the submitted record as-is. The fee is NOT recomputed
// even when the year or type changed; it was fixed at creation. The
// guard runs on the submitted year before anything is written.
func (s *MembershipService) Update(id uint, membership *model.Membership) error {
	if id != membership.MembershipID {
		return ErrNotFound
	}
	if !CanEditYear(membership.Year, time.Now().Year()) {
		return ErrEditBlocked
	}
	oldVersion := membership.Version
	membership.Version++
	return saveVersioned(s.db, membership, "membership_id", id, oldVersion)
}

func (s *MembershipService) Delete(id uint) error {
	tx := s.db.Delete(&model.Membership{}, "membership_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
