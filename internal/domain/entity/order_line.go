package entity

import "github.com/madhuram-pos/pos-api/pkg/apperror"

// OrderLine is a transient, in-memory line of an order being built. It
// snapshots the menu item's name/price/category at add time and is never
// persisted directly; finalizing converts it into a BillItem.
type OrderLine struct {
	Name      string
	UnitPrice int64 // paise
	Category  string
	Quantity  int
}

// NewOrderLine validates and builds an order line. Validation happens here,
// at the order-entry boundary, so the totals computation can assume
// non-negative inputs.
func NewOrderLine(name string, unitPrice int64, category string, quantity int) (OrderLine, error) {
	if name == "" {
		return OrderLine{}, apperror.NewBadRequestError("Item name is required")
	}
	if unitPrice < 0 {
		return OrderLine{}, apperror.NewBadRequestError("Item price cannot be negative")
	}
	if quantity <= 0 {
		return OrderLine{}, apperror.NewBadRequestError("Item quantity must be positive")
	}
	return OrderLine{
		Name:      name,
		UnitPrice: unitPrice,
		Category:  category,
		Quantity:  quantity,
	}, nil
}

// Amount returns the line total in paise.
func (l OrderLine) Amount() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Order is the transient accumulation of lines for one table/parcel.
type Order struct {
	Lines []OrderLine
}

// Add merges a line into the order, summing quantity when the item is
// already present.
func (o *Order) Add(line OrderLine) {
	for i := range o.Lines {
		if o.Lines[i].Name == line.Name && o.Lines[i].UnitPrice == line.UnitPrice {
			o.Lines[i].Quantity += line.Quantity
			return
		}
	}
	o.Lines = append(o.Lines, line)
}

// Adjust changes a line's quantity by delta. The line is removed when the
// quantity would drop to zero or below.
func (o *Order) Adjust(name string, delta int) {
	for i := range o.Lines {
		if o.Lines[i].Name != name {
			continue
		}
		o.Lines[i].Quantity += delta
		if o.Lines[i].Quantity <= 0 {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
		}
		return
	}
}

// TotalQuantity returns the summed quantity across lines.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, l := range o.Lines {
		total += l.Quantity
	}
	return total
}
