package config

import (
	"fmt"
	"os"

	"github.com/MehulKanani556/Dance-Fitme/models"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv reads .env when present. Missing files are fine; deployments set
// real environment variables instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}
}

// InitDB opens the Postgres connection and migrates the schema. The returned
// handle is passed down explicitly; there is no package-level DB.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.DanceSession{},
		&models.UserTotalStats{},
		&models.DanceGoal{},
		&models.Weight{},
		&models.WeightRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
