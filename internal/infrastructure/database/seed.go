package database

import (
	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedItem struct {
	name     string
	price    int64 // paise
	category string
}

var defaultMenu = []seedItem{
	// Tiffins
	{"Idli", 3000, "Tiffins"},
	{"Sambar Idli", 5000, "Tiffins"},
	{"Gheepodi Idli", 6000, "Tiffins"},
	{"Vada", 5000, "Tiffins"},
	{"Perugu Vada", 6000, "Tiffins"},
	{"Mysore Bonda", 4000, "Tiffins"},
	{"Upma", 4000, "Tiffins"},
	{"Ghee Upma", 5000, "Tiffins"},
	{"Ghee Pongal", 6000, "Tiffins"},
	{"Poori", 5500, "Tiffins"},
	{"Plain Dosa", 5500, "Tiffins"},
	{"Onion Dosa", 6500, "Tiffins"},
	{"Masala Dosa", 7000, "Tiffins"},
	{"Upma Dosa", 6500, "Tiffins"},
	{"Onion Masala Dosa", 7500, "Tiffins"},
	{"Ghee Karam Dosa", 8000, "Tiffins"},
	{"Ghee Karam Onion Dosa", 9000, "Tiffins"},
	{"Ghee Karam Masala Dosa", 9500, "Tiffins"},
	{"Ghee Karam Upma Dosa", 9500, "Tiffins"},
	{"Ravva Dosa", 5000, "Tiffins"},
	{"Onion Ravva Dosa", 6000, "Tiffins"},
	{"Ravva Upma Dosa", 6000, "Tiffins"},
	{"Onion Masala Ravva", 7500, "Tiffins"},
	{"Uthappam", 5500, "Tiffins"},
	{"Plain Pesarattu", 6000, "Tiffins"},
	{"Chitti Pesarattu Upma", 6500, "Tiffins"},
	{"Chitti Pesarattu", 6000, "Tiffins"},
	{"Pesarattu Upma", 6000, "Tiffins"},
	{"Onion Pesarattu", 7000, "Tiffins"},
	{"Onion Pesarattu Upma", 8000, "Tiffins"},
	{"Chapathi", 5000, "Tiffins"},
	{"Parotta", 5000, "Tiffins"},
	{"Single Poori Upma", 4000, "Tiffins"},
	{"Pottikkallu", 4000, "Tiffins"},
	{"Single Idli", 2000, "Tiffins"},
	{"Single Vada", 3000, "Tiffins"},
	{"Single Poori", 3000, "Tiffins"},
	{"Single Perugu Vada", 3000, "Tiffins"},
	// Combos
	{"2 Idli & 1 Bonda", 4500, "Combos"},
	{"1 Idli & 2 Bonda", 4000, "Combos"},
	{"1 Idli & 1 Bonda", 3000, "Combos"},
	// Fresh Juices
	{"ABC Juice", 8000, "Fresh Juices"},
	{"Carrot Juice", 7000, "Fresh Juices"},
	{"Beetroot Juice", 7000, "Fresh Juices"},
	{"Watermelon Juice", 6000, "Fresh Juices"},
	{"Banana Juice", 5000, "Fresh Juices"},
	{"Grapes Juice", 5000, "Fresh Juices"},
	{"Karbujua Juice", 5000, "Fresh Juices"},
	{"Pineapple Juice", 6000, "Fresh Juices"},
	{"Papaya Juice", 5000, "Fresh Juices"},
	// Milkshakes
	{"Chocolate Milkshake", 7000, "Milkshakes"},
	{"Vanilla Milkshake", 6000, "Milkshakes"},
	{"Strawberry Milkshake", 7000, "Milkshakes"},
	{"Butterscotch Milkshake", 8000, "Milkshakes"},
	// Tea & Coffee
	{"Tea", 1000, "Tea & Coffee"},
	{"Green Tea", 2000, "Tea & Coffee"},
	{"Lemon Tea", 2000, "Tea & Coffee"},
	{"Ginger Tea", 2000, "Tea & Coffee"},
	{"Filter Coffee", 3000, "Tea & Coffee"},
	{"Coffee (Extra Strong)", 2500, "Tea & Coffee"},
	{"Black Coffee", 2000, "Tea & Coffee"},
	{"Hot Milk", 2500, "Tea & Coffee"},
	{"Boost", 3000, "Tea & Coffee"},
	{"Horlicks", 3000, "Tea & Coffee"},
	{"Bournvita", 3000, "Tea & Coffee"},
}

// SeedMenu inserts the default menu when the items table is empty.
// Idempotent: a non-empty table is left untouched.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := make([]entity.MenuItem, len(defaultMenu))
	for i, s := range defaultMenu {
		items[i] = entity.MenuItem{Name: s.name, Price: s.price, Category: s.category}
	}

	if err := db.Create(&items).Error; err != nil {
		return err
	}

	logrus.WithField("items", len(items)).Info("seeded default menu")
	return nil
}
