package request

// PrintBillRequest is the request body for printing a stored bill receipt.
type PrintBillRequest struct {
	BillID uint `json:"bill_id" binding:"required"`
}

// PrintKOTRequest is the request body for printing a kitchen order ticket
// from transient order lines.
type PrintKOTRequest struct {
	KOTNumber string             `json:"kot_number" binding:"required,max=16"`
	OrderType string             `json:"order_type" binding:"max=50"`
	Items     []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}
