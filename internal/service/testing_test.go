package service

import (
	"testing"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB creates an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Province{},
		&model.Member{},
		&model.BoatType{},
		&model.ClubTask{},
		&model.FeeStructure{},
		&model.MembershipType{},
		&model.Membership{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func money(v float64) *float64 { return &v }

func seedMembershipTypes(t *testing.T, db *gorm.DB) {
	t.Helper()
	types := []model.MembershipType{
		{MembershipTypeName: "Full", RatioToFull: 1.0},
		{MembershipTypeName: "Associate", RatioToFull: 0.5},
	}
	if err := db.Create(&types).Error; err != nil {
		t.Fatalf("seed membership types: %v", err)
	}
}

func seedFeeStructure(t *testing.T, db *gorm.DB, year int, annualFee *float64) {
	t.Helper()
	fs := model.FeeStructure{Year: year, AnnualFee: annualFee, Version: 1}
	if err := db.Create(&fs).Error; err != nil {
		t.Fatalf("seed fee structure %d: %v", year, err)
	}
}
