package model

import "time"

// Membership ties a member to a season. Fee is derived from the year's
// fee structure and the membership type at creation time and is carried
// as-is afterwards, never recomputed.
type Membership struct {
	MembershipID       uint    `gorm:"primaryKey" form:"membershipId" json:"membership_id"`
	MemberID           uint    `gorm:"not null;index:idx_membership_member" form:"memberId" binding:"required" json:"member_id"`
	Year               int     `gorm:"not null;index:idx_membership_year" form:"year" binding:"required,min=1900,max=2200" json:"year"`
	MembershipTypeName string  `gorm:"type:varchar(40);not null" form:"membershipTypeName" binding:"required,max=40" json:"membership_type_name"`
	Fee                float64 `form:"fee" json:"fee"`
	Comments           string  `gorm:"type:text" form:"comments" json:"comments"`
	Paid               bool    `form:"paid" json:"paid"`
	Version            int     `gorm:"not null;default:1" form:"version" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Member         *Member         `gorm:"foreignKey:MemberID;references:MemberID" form:"-" json:"member,omitempty"`
	MembershipType *MembershipType `gorm:"foreignKey:MembershipTypeName;references:MembershipTypeName" form:"-" json:"membership_type,omitempty"`
}

func (Membership) TableName() string { return "memberships" }
