package request

// MenuItemRequest is the request body for creating or updating a menu item.
// Price is in decimal rupees.
type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"gte=0"`
	Category string  `json:"category" binding:"max=100"`
}
