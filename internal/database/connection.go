package database

import (
	"fmt"
	"log"

	"sop_inventory/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate all models
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

// AutoMigrate creates or updates the schema for every live and archive table.
// The test suites reuse it against an in-memory database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Address{},
		&models.Building{},
		&models.Room{},
		&models.ItemType{},
		&models.ItemGroup{},
		&models.Item{},
		&models.Status{},
		&models.StatusHistory{},
		&models.PartType{},
		&models.PartGroup{},
		&models.ComputerPart{},
		&models.Computer{},
		&models.Preset{},
		&models.Role{},
		&models.User{},
		&models.Loan{},
		&models.Request{},
		&models.ArchiveItem{},
		&models.ArchiveStatusHistory{},
		&models.ArchiveItemGroup{},
		&models.ArchiveItemType{},
		&models.ArchiveLoan{},
		&models.ArchiveRequest{},
		&models.ArchiveUser{},
	)
}
