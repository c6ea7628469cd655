package main

import (
	"fmt"
	"log"

	"order_kiosk/internal/config"
	"order_kiosk/internal/database"
	"order_kiosk/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.SelectedOption{},
		&models.OrderLineItem{},
		&models.Order{},
		&models.Customer{},
		&models.OptionValue{},
		&models.OptionGroup{},
		&models.Product{},
		&models.Category{},
		&models.Business{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
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
		log.Fatal("Failed to create tables:", err)
	}

	if err := seedDemoCatalog(db); err != nil {
		log.Fatal("Failed to seed demo catalog:", err)
	}

	fmt.Println("Database initialized successfully")
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatal("bad decimal literal:", s)
	}
	return d
}

func seedDemoCatalog(db *gorm.DB) error {
	business := models.Business{
		Name:             "Demo Pizzeria",
		Phone:            "081234567890",
		OrderStartNumber: 1,
		IsActive:         true,
	}
	if err := db.Create(&business).Error; err != nil {
		return err
	}

	category := models.Category{
		BusinessID: business.ID,
		Name:       "Pizza",
		SortOrder:  1,
	}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	pizza := models.Product{
		BusinessID:  business.ID,
		CategoryID:  category.ID,
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella, basil",
		BasePrice:   dec("45.00"),
		IsAvailable: true,
		SortOrder:   1,
		OptionGroups: []models.OptionGroup{
			{
				Name: "Size", Type: models.SingleChoice, IsRequired: true, SortOrder: 1,
				Values: []models.OptionValue{
					{Name: "Medium", AdditionalPrice: dec("0.00"), IsDefault: true, SortOrder: 1},
					{Name: "Large", AdditionalPrice: dec("20.00"), SortOrder: 2},
					{Name: "Half Pizza", AdditionalPrice: dec("-15.00"), SortOrder: 3},
				},
			},
			{
				Name: "Split Toppings", Type: models.HalfAndHalf, SortOrder: 2,
				Values: []models.OptionValue{
					{Name: "Pepperoni", AdditionalPrice: dec("5.00"), HalfPosition: models.HalfLeft, SortOrder: 1},
					{Name: "Mushroom", AdditionalPrice: dec("3.00"), HalfPosition: models.HalfRight, SortOrder: 2},
					{Name: "Classic", AdditionalPrice: dec("0.00"), HalfPosition: models.HalfFull, SortOrder: 3},
				},
			},
			{
				Name: "Extras", Type: models.MultipleChoice, SortOrder: 3,
				Values: []models.OptionValue{
					{Name: "Olives", AdditionalPrice: dec("2.00"), SortOrder: 1},
					{Name: "Onion", AdditionalPrice: dec("1.50"), SortOrder: 2},
				},
			},
			{
				Name: "Extra Cheese", Type: models.Quantity, SortOrder: 4,
				Values: []models.OptionValue{
					{Name: "Cheese Portion", AdditionalPrice: dec("2.50"), SortOrder: 1},
				},
			},
		},
	}
	if err := db.Create(&pizza).Error; err != nil {
		return err
	}

	fmt.Printf("Seeded business %d with product %d\n", business.ID, pizza.ID)
	return nil
}
