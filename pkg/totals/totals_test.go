package totals

import "testing"

func TestComputeTaxDisabled(t *testing.T) {
	tests := []struct {
		name      string
		lines     []Line
		subtotal  int64
		grand     int64
	}{
		{
			name:     "whole rupee amounts",
			lines:    []Line{{UnitPrice: 5500, Quantity: 2}, {UnitPrice: 3000, Quantity: 1}},
			subtotal: 14000,
			grand:    14000,
		},
		{
			name:     "fractional subtotal rounds down",
			lines:    []Line{{UnitPrice: 3333, Quantity: 1}},
			subtotal: 3333,
			grand:    3300,
		},
		{
			name:     "half rupee rounds up",
			lines:    []Line{{UnitPrice: 3350, Quantity: 1}},
			subtotal: 3350,
			grand:    3400,
		},
		{
			name:  "empty order",
			lines: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.lines, Policy{})
			if got.Subtotal != tc.subtotal {
				t.Errorf("subtotal = %d, want %d", got.Subtotal, tc.subtotal)
			}
			if got.GrandTotal != tc.grand {
				t.Errorf("grand total = %d, want %d", got.GrandTotal, tc.grand)
			}
			if got.CGST != 0 || got.SGST != 0 || got.RoundOff != 0 {
				t.Errorf("tax fields must be zero when tax is disabled, got %+v", got)
			}
		})
	}
}

func TestComputeTaxEnabled(t *testing.T) {
	// 100.00 subtotal: 2.50 CGST + 2.50 SGST, lands on a whole rupee.
	got := Compute([]Line{{UnitPrice: 10000, Quantity: 1}}, Policy{TaxEnabled: true})
	if got.CGST != 250 || got.SGST != 250 {
		t.Errorf("CGST/SGST = %d/%d, want 250/250", got.CGST, got.SGST)
	}
	if got.GrandTotal != 10500 {
		t.Errorf("grand total = %d, want 10500", got.GrandTotal)
	}
	if got.RoundOff != 0 {
		t.Errorf("round off = %d, want 0", got.RoundOff)
	}

	// 99.99 subtotal: 2.50 + 2.50 tax, 104.99 before round, +0.01 round off.
	got = Compute([]Line{{UnitPrice: 9999, Quantity: 1}}, Policy{TaxEnabled: true})
	if got.CGST != 250 || got.SGST != 250 {
		t.Errorf("CGST/SGST = %d/%d, want 250/250", got.CGST, got.SGST)
	}
	if got.GrandTotal != 10500 {
		t.Errorf("grand total = %d, want 10500", got.GrandTotal)
	}
	if got.RoundOff != 1 {
		t.Errorf("round off = %d, want 1", got.RoundOff)
	}
}

func TestComputeIsPure(t *testing.T) {
	lines := []Line{{UnitPrice: 5500, Quantity: 2}}
	first := Compute(lines, Policy{})
	second := Compute(lines, Policy{})
	if first != second {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}
}
