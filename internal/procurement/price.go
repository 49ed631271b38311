package procurement

import "math"

// ComputeTotalPrice derives the stored total from its inputs. The markup
// amount is rounded half-up before the quantity multiplication; the final
// total is never rounded. Every write path that touches a price input calls
// this before the database round-trip.
func ComputeTotalPrice(unitPrice int64, markupPercentage float64, quantity int) int64 {
	markupAmount := roundHalfUp(float64(unitPrice) * markupPercentage / 100)
	return (unitPrice + markupAmount) * int64(quantity)
}

func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
