// Package totals computes bill totals from order lines. It is pure and
// deterministic so callers can render previews before a bill is finalized.
// All amounts are int64 paise; callers are responsible for rejecting
// negative prices and quantities at the order-entry boundary.
package totals

import "math"

// Line is one {unitPrice, quantity} input pair.
type Line struct {
	UnitPrice int64 // paise
	Quantity  int
}

// Policy controls the tax branch. With TaxEnabled false (the production
// default) CGST, SGST and round-off are stored as zero and the grand total
// is the subtotal rounded to the nearest rupee. With TaxEnabled true the
// dormant 2.5% + 2.5% formula applies with round-off to the nearest rupee.
type Policy struct {
	TaxEnabled bool
}

// Result holds the derived totals, all in paise. The tax and round-off
// fields stay present in the wire/data format even while zeroed, for
// backward compatibility and future reactivation.
type Result struct {
	Subtotal   int64
	CGST       int64
	SGST       int64
	RoundOff   int64
	GrandTotal int64
}

const taxRate = 0.025 // CGST and SGST each

// Compute derives totals for the given lines under the given policy.
func Compute(lines []Line, policy Policy) Result {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPrice * int64(l.Quantity)
	}

	if !policy.TaxEnabled {
		return Result{
			Subtotal:   subtotal,
			GrandTotal: roundToRupee(subtotal),
		}
	}

	cgst := int64(math.Round(float64(subtotal) * taxRate))
	sgst := int64(math.Round(float64(subtotal) * taxRate))
	beforeRound := subtotal + cgst + sgst
	grand := roundToRupee(beforeRound)

	return Result{
		Subtotal:   subtotal,
		CGST:       cgst,
		SGST:       sgst,
		RoundOff:   grand - beforeRound,
		GrandTotal: grand,
	}
}

// roundToRupee rounds paise to the nearest whole rupee, half-up.
// 3350 paise (33.50) rounds to 3400 (34.00).
func roundToRupee(paise int64) int64 {
	return (paise + 50) / 100 * 100
}
