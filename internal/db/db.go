package db

import (
	"os"

	"commentboard/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=comments_db port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[db] failed to connect: %v", err)
	}
	log.Info("[db] connection established")

	if err := DB.AutoMigrate(&models.Comment{}); err != nil {
		log.Fatalf("[db] migration failed: %v", err)
	}
	log.Info("[db] migration completed")
}

// Ping verifies the underlying connection is alive.
func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
