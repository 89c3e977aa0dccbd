package entity

import (
	"encoding/json"
	"time"
)

// MenuItem represents an item on the menu catalog.
// Bills snapshot name/price/category at order time, so editing or deleting
// a menu item never changes a stored bill.
type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Category  string    `gorm:"size:100;not null;index" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert paise to decimal rupees for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// GetPriceDecimal returns the unit price in rupees
func (m *MenuItem) GetPriceDecimal() float64 {
	return float64(m.Price) / 100
}

// SetPriceFromDecimal sets the unit price from a rupee value
func (m *MenuItem) SetPriceFromDecimal(price float64) {
	m.Price = int64(price*100 + 0.5)
}
