package model

import "time"

// FeeStructure holds the club's fee schedule for one season. Year is the
// primary key, so there is at most one row per year. Money columns are
// pointers because the treasurer may publish a partial schedule first and
// fill the rest in later.
type FeeStructure struct {
	Year                      int        `gorm:"primaryKey;autoIncrement:false" form:"year" binding:"required,min=1900,max=2200" json:"year"`
	AnnualFee                 *float64   `form:"annualFee" json:"annual_fee"`
	EarlyDiscountedFee        *float64   `form:"earlyDiscountedFee" json:"early_discounted_fee"`
	EarlyDiscountEndDate      *time.Time `form:"earlyDiscountEndDate" time_format:"2006-01-02" json:"early_discount_end_date"`
	RenewDeadlineDate         *time.Time `form:"renewDeadlineDate" time_format:"2006-01-02" json:"renew_deadline_date"`
	TaskExemptionFee          *float64   `form:"taskExemptionFee" json:"task_exemption_fee"`
	SecondBoatFee             *float64   `form:"secondBoatFee" json:"second_boat_fee"`
	ThirdBoatFee              *float64   `form:"thirdBoatFee" json:"third_boat_fee"`
	ForthAndSubsequentBoatFee *float64   `form:"forthAndSubsequentBoatFee" json:"forth_and_subsequent_boat_fee"`
	NonSailFee                *float64   `form:"nonSailFee" json:"non_sail_fee"`
	NewMember25DiscountDate   *time.Time `form:"newMember25DiscountDate" time_format:"2006-01-02" json:"new_member_25_discount_date"`
	NewMember50DiscountDate   *time.Time `form:"newMember50DiscountDate" time_format:"2006-01-02" json:"new_member_50_discount_date"`
	NewMember75DiscountDate   *time.Time `form:"newMember75DiscountDate" time_format:"2006-01-02" json:"new_member_75_discount_date"`
	Version                   int        `gorm:"not null;default:1" form:"version" json:"version"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

func (FeeStructure) TableName() string { return "annual_fee_structures" }
