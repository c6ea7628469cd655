package migrations

import (
	"errors"
	"log"

	"order_kiosk/internal/models"

	"gorm.io/gorm"
)

// RunMigrations migrates the schema and makes sure at least one business
// exists so a fresh install can take orders right away.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Business{},
		&models.Category{},
		&models.Product{},
		&models.OptionGroup{},
		&models.OptionValue{},
		&models.Customer{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.SelectedOption{},
	)
	if err != nil {
		return err
	}

	if err := ensureDefaultBusiness(db); err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}

func ensureDefaultBusiness(db *gorm.DB) error {
	var business models.Business
	err := db.First(&business).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	business = models.Business{
		Name:             "Demo Restaurant",
		Phone:            "081234567890",
		OrderStartNumber: 1,
		IsActive:         true,
	}
	if err := db.Create(&business).Error; err != nil {
		return err
	}
	log.Printf("Created default business %q (id %d)", business.Name, business.ID)
	return nil
}
