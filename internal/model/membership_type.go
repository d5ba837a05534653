package model

// MembershipType is reference data. RatioToFull is the multiplier applied
// to the year's base annual fee for this category (1.0 = full member).
type MembershipType struct {
	MembershipTypeName string  `gorm:"primaryKey;type:varchar(40)" json:"membership_type_name"`
	RatioToFull        float64 `gorm:"not null" json:"ratio_to_full"`
}

func (MembershipType) TableName() string { return "membership_types" }
