package database

import (
	"log"

	"cinema_ops/model"

	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	items := []model.ConcessionItem{
		{Name: "Popcorn (small)", Category: "FOOD", Price: 4.50},
		{Name: "Popcorn (large)", Category: "FOOD", Price: 7.00},
		{Name: "Nachos", Category: "FOOD", Price: 6.25},
		{Name: "Soda (medium)", Category: "DRINK", Price: 3.75},
		{Name: "Water", Category: "DRINK", Price: 2.00},
		{Name: "Movie combo", Category: "COMBO", Price: 11.50},
	}

	for _, item := range items {
		if err := db.Where(model.ConcessionItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed concession item:", item.Name, "error:", err)
		}
	}
}
