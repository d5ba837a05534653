package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveVersioned writes record with a compare-and-swap on the version
// column: the update only lands if the stored version still equals
// oldVersion. The caller must have bumped record's version field already.
// Zero rows affected means the row changed or vanished underneath us; a
// follow-up existence check tells the two apart.
func saveVersioned(db *gorm.DB, record interface{}, keyColumn string, keyValue interface{}, oldVersion int) error {
	tx := db.Model(record).
		Where(keyColumn+" = ? AND version = ?", keyValue, oldVersion).
		Select("*").Omit("created_at", clause.Associations).
		Updates(record)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(record).Where(keyColumn+" = ?", keyValue).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrConflict
}
