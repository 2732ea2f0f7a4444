package config

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database, sizes the connection pool and runs migrations.
func Connect(settings *Settings) {
	var err error
	DB, err = gorm.Open(postgres.Open(settings.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool:", err)
	}
	sqlDB.SetMaxOpenConns(settings.DBPoolSize)
	sqlDB.SetMaxIdleConns(settings.DBPoolSize / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrations(DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
}
