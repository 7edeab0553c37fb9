package database

import (
	"log"
	"os"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Local dev fallback
		dsn = "host=localhost user=postgres password=password dbname=talentscout port=5432 sslmode=disable"
	}

	var err error
	// TranslateError maps unique violations onto gorm.ErrDuplicatedKey,
	// which the store layer relies on for slug claims.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: This creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	DB.AutoMigrate(
		&models.Organization{}, &models.User{}, &models.Candidate{},
		&models.Job{}, &models.JobStage{}, &models.Application{},
		&models.StageChangeEvent{},
	)
	return DB
}
