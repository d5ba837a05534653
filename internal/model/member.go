package model

import "time"

type Member struct {
	MemberID        uint   `gorm:"primaryKey" form:"memberId" json:"member_id"`
	FullName        string `gorm:"type:varchar(120);not null;index:idx_full_name" form:"fullName" binding:"required,max=120" json:"full_name"`
	FirstName       string `gorm:"type:varchar(60)" form:"firstName" binding:"max=60" json:"first_name"`
	LastName        string `gorm:"type:varchar(60)" form:"lastName" binding:"max=60" json:"last_name"`
	SpouseFirstName string `gorm:"type:varchar(60)" form:"spouseFirstName" binding:"max=60" json:"spouse_first_name"`
	SpouseLastName  string `gorm:"type:varchar(60)" form:"spouseLastName" binding:"max=60" json:"spouse_last_name"`
	Street          string `gorm:"type:varchar(120)" form:"street" json:"street"`
	City            string `gorm:"type:varchar(80)" form:"city" json:"city"`
	ProvinceCode    string `gorm:"type:char(2);index" form:"provinceCode" binding:"omitempty,len=2" json:"province_code"`
	PostalCode      string `gorm:"type:varchar(10)" form:"postalCode" json:"postal_code"`
	HomePhone       string `gorm:"type:varchar(20)" form:"homePhone" json:"home_phone"`
	Email           string `gorm:"type:varchar(128)" form:"email" binding:"omitempty,email" json:"email"`
	YearJoined      *int   `form:"yearJoined" json:"year_joined"`
	Comment         string `gorm:"type:text" form:"comment" json:"comment"`
	TaskExempt      bool   `form:"taskExempt" json:"task_exempt"`
	UseCanadaPost   bool   `form:"useCanadaPost" json:"use_canada_post"`
	Version         int    `gorm:"not null;default:1" form:"version" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Province *Province `gorm:"foreignKey:ProvinceCode;references:ProvinceCode" form:"-" json:"province,omitempty"`
}

func (Member) TableName() string { return "members" }
