package model

// Province is reference data; nothing in the application mutates it.
type Province struct {
	ProvinceCode string `gorm:"primaryKey;type:char(2)" json:"province_code"`
	Name         string `gorm:"type:varchar(60);not null" json:"name"`
}

func (Province) TableName() string { return "provinces" }
