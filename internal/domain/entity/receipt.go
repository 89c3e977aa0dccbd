package entity

// ReceiptHeader holds the store/business header printed at the top of a bill.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Tagline   string `json:"tagline,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a printed bill.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	Amount    float64 `json:"amount"`
}

// Receipt is a value object representing a printable bill. It is NOT a
// database entity — it is composed from a stored Bill at print time.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	BillNumber   string        `json:"bill_number"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	OrderType    string        `json:"order_type,omitempty"`
	Cashier      string        `json:"cashier,omitempty"`
	CustomerName string        `json:"customer_name,omitempty"`
	Items        []ReceiptItem `json:"items"`
	Subtotal     float64       `json:"subtotal"`
	CGST         float64       `json:"cgst"`
	SGST         float64       `json:"sgst"`
	RoundOff     float64       `json:"round_off"`
	GrandTotal   float64       `json:"grand_total"`
}

// KOTItem is a single line on a kitchen order ticket.
type KOTItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// KOT is a printable kitchen order ticket: items and quantities only,
// no pricing. The number is issued from the shared bill sequence.
type KOT struct {
	Number    string    `json:"kot_number"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	OrderType string    `json:"order_type"`
	Items     []KOTItem `json:"items"`
}

// TotalQuantity returns the summed quantity across ticket lines.
func (k *KOT) TotalQuantity() int {
	total := 0
	for _, item := range k.Items {
		total += item.Quantity
	}
	return total
}
