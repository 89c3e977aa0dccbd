package entity

import (
	"encoding/json"
	"time"
)

// Bill is a finalized, immutable ledger entry. It is created exactly once
// per finalized order and only ever removed by the admin bulk-clear.
// GrandTotal is stored as charged, never recomputed from line items.
type Bill struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BillNumber   string    `gorm:"size:16;not null;index" json:"bill_number"`
	Date         string    `gorm:"size:10;not null" json:"date"`
	Time         string    `gorm:"size:8;not null" json:"time"`
	OrderType    string    `gorm:"size:50" json:"order_type"`
	Cashier      string    `gorm:"size:100" json:"cashier"`
	CustomerName string    `gorm:"size:100" json:"customer_name"`
	Subtotal     int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	CGST         int64     `gorm:"default:0" json:"-"`
	SGST         int64     `gorm:"default:0" json:"-"`
	RoundOff     int64     `gorm:"default:0" json:"-"`
	GrandTotal   int64     `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
}

// MarshalJSON custom marshaler to convert paise to decimal rupees for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Subtotal   float64 `json:"subtotal"`
		CGST       float64 `json:"cgst"`
		SGST       float64 `json:"sgst"`
		RoundOff   float64 `json:"round_off"`
		GrandTotal float64 `json:"grand_total"`
	}{
		Alias:      Alias(b),
		Subtotal:   float64(b.Subtotal) / 100,
		CGST:       float64(b.CGST) / 100,
		SGST:       float64(b.SGST) / 100,
		RoundOff:   float64(b.RoundOff) / 100,
		GrandTotal: float64(b.GrandTotal) / 100,
	})
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// GetGrandTotalDecimal returns the grand total in rupees
func (b *Bill) GetGrandTotalDecimal() float64 {
	return float64(b.GrandTotal) / 100
}

// TotalQuantity returns the summed quantity across line items
func (b *Bill) TotalQuantity() int {
	total := 0
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}

// BillItem is a line item snapshot inside a bill. It copies the menu item's
// name and price at finalize time; there is no foreign key to menu_items.
type BillItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BillID    uint   `gorm:"not null;index" json:"bill_id"`
	ItemName  string `gorm:"size:255;not null" json:"name"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	UnitPrice int64  `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Amount    int64  `gorm:"not null" json:"-"` // UnitPrice x Quantity, stored in paise
}

// MarshalJSON custom marshaler to convert paise to decimal rupees for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"price"`
		Amount    float64 `json:"amount"`
	}{
		Alias:     Alias(bi),
		UnitPrice: float64(bi.UnitPrice) / 100,
		Amount:    float64(bi.Amount) / 100,
	})
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
