package request

// OrderLineRequest is one line of an order being finalized or previewed.
// Price is in decimal rupees.
type OrderLineRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"gte=0"`
	Category string  `json:"category" binding:"max=100"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

// FinalizeBillRequest is the request body for finalizing a bill.
type FinalizeBillRequest struct {
	Items        []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	OrderType    string             `json:"order_type" binding:"max=50"`
	Cashier      string             `json:"cashier" binding:"max=100"`
	CustomerName string             `json:"customer_name" binding:"max=100"`
}

// PreviewTotalsRequest is the request body for a totals preview.
type PreviewTotalsRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}
