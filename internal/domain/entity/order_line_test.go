package entity

import "testing"

func TestNewOrderLineValidation(t *testing.T) {
	if _, err := NewOrderLine("", 1000, "", 1); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := NewOrderLine("Tea", -1, "", 1); err == nil {
		t.Error("negative price accepted")
	}
	if _, err := NewOrderLine("Tea", 1000, "", 0); err == nil {
		t.Error("zero quantity accepted")
	}

	line, err := NewOrderLine("Tea", 1500, "Beverages", 3)
	if err != nil {
		t.Fatalf("NewOrderLine: %v", err)
	}
	if line.Amount() != 4500 {
		t.Errorf("Amount = %d, want 4500", line.Amount())
	}
}

func TestOrderAddMergesSameItem(t *testing.T) {
	var order Order
	dosa, _ := NewOrderLine("Masala Dosa", 5500, "Dosa", 1)

	order.Add(dosa)
	order.Add(dosa)
	if len(order.Lines) != 1 {
		t.Fatalf("lines = %d, want merged 1", len(order.Lines))
	}
	if order.Lines[0].Quantity != 2 {
		t.Errorf("merged quantity = %d, want 2", order.Lines[0].Quantity)
	}

	// Same name at a different price stays a separate line.
	discounted, _ := NewOrderLine("Masala Dosa", 5000, "Dosa", 1)
	order.Add(discounted)
	if len(order.Lines) != 2 {
		t.Errorf("lines = %d, want 2 after price variant", len(order.Lines))
	}
}

func TestOrderAdjustRemovesAtZero(t *testing.T) {
	var order Order
	idli, _ := NewOrderLine("Idli", 3000, "Tiffins", 2)
	order.Add(idli)

	order.Adjust("Idli", -1)
	if order.Lines[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", order.Lines[0].Quantity)
	}

	order.Adjust("Idli", -1)
	if len(order.Lines) != 0 {
		t.Errorf("lines = %d, want 0 after quantity hit zero", len(order.Lines))
	}

	order.Adjust("Missing", 1) // no-op
	if order.TotalQuantity() != 0 {
		t.Errorf("TotalQuantity = %d, want 0", order.TotalQuantity())
	}
}
