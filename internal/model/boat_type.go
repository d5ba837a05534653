package model

import "time"

type BoatType struct {
	BoatTypeID  uint   `gorm:"primaryKey" form:"boatTypeId" json:"boat_type_id"`
	Name        string `gorm:"type:varchar(80);not null;index:idx_boat_type_name" form:"name" binding:"required,max=80" json:"name"`
	Description string `gorm:"type:text" form:"description" json:"description"`
	Chargeable  bool   `form:"chargeable" json:"chargeable"`
	Sail        bool   `form:"sail" json:"sail"`
	Image       string `gorm:"type:varchar(255)" form:"image" json:"image"`
	Version     int    `gorm:"not null;default:1" form:"version" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BoatType) TableName() string { return "boat_types" }
