package tenant

import "gorm.io/gorm"

func Scope(schoolID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("school_id = ?", schoolID)
	}
}

// ScopeTable qualifies the column for queries joining several tenant tables.
func ScopeTable(table, schoolID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".school_id = ?", schoolID)
	}
}
