package service

import (
	"errors"
	"fmt"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/gorm"
)

// CanEditYear is the temporal edit guard: fee schedules and memberships
// from seasons that already ended are frozen.
func CanEditYear(targetYear, currentYear int) bool {
	return targetYear >= currentYear
}

// FeeCalculator derives a membership's fee from the season's fee
// structure and the membership type's ratio.
type FeeCalculator struct {
	db *gorm.DB
}

func NewFeeCalculator(db *gorm.DB) *FeeCalculator {
	return &FeeCalculator{db: db}
}

// Compute returns annualFee(year) * ratioToFull(typeName). A published
// schedule with no annual fee yet counts as a base fee of zero, but a
// missing schedule row or an unknown membership type is an error: a fee
// must never be silently derived from defaulted reference data.
func (f *FeeCalculator) Compute(year int, membershipTypeName string) (float64, error) {
	var fs model.FeeStructure
	if err := f.db.First(&fs, "year = ?", year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: no fee structure for year %d", ErrMissingReference, year)
		}
		return 0, err
	}
	var mt model.MembershipType
	if err := f.db.First(&mt, "membership_type_name = ?", membershipTypeName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: no membership type %q", ErrMissingReference, membershipTypeName)
		}
		return 0, err
	}

	base := 0.0
	if fs.AnnualFee != nil {
		base = *fs.AnnualFee
	}
	return base * mt.RatioToFull, nil
}
