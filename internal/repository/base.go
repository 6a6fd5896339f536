package repository

import (
	"community/internal/database"

	"gorm.io/gorm"
)

// readDB prefers the read replica for query paths when one is configured.
func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}
