package database

import (
	"fmt"
	"strconv"

	"cinema_ops/config"
	"cinema_ops/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Customer{},
		&model.Movie{},
		&model.Room{},
		&model.Seat{},
		&model.Screening{},
		&model.ScreeningSeat{},
		&model.Ticket{},
		&model.ConcessionItem{},
		&model.FoodOrder{},
		&model.FoodOrderItem{},
		&model.RoomRental{},
	)
	fmt.Println("Database Migrated")

	SeedData(DB)
}
