package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates/updates the schema for all entities. Unique indexes
// (email, favorite pair, one rating per request) live here, not in code.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Client{},
		&models.Worker{},
		&models.ServiceRequest{},
		&models.Rating{},
		&models.Favorite{},
		&models.Message{},
	)
}
