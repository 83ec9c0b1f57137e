package config

import (
	"FoodShare-Backend/internal/utils"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB picks the backend once at startup: PostgreSQL when connection
// parameters are configured, otherwise an embedded SQLite file.
func ConnectDB() (*gorm.DB, error) {
	if utils.GetConfig("DB_HOST") == "" && utils.GetConfig("DB_NAME") == "" {
		path := utils.GetConfig("SQLITE_PATH")
		if path == "" {
			path = "local_food.db"
		}

		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("sqlite connection failed: %w", err)
		}
		return db, nil
	}

	port := utils.GetConfig("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}
	return db, nil
}
