package owner

import "gorm.io/gorm"

// Scope filters a query down to records owned by the given user. Every
// repository read and delete goes through this; a record owned by someone
// else is indistinguishable from one that does not exist.
func Scope(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
