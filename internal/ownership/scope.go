package ownership

import "gorm.io/gorm"

// Scope membatasi query ke baris milik satu user.
func Scope(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
