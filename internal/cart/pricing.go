package cart

import "math"

// Pure pricing over cart state. All amounts are whole numbers in the display
// currency unit; nothing here converts to or from subdivisions.

// LineTotal is (unit price + selected option deltas) * quantity. No rounding
// happens at the line level.
func LineTotal(item Item) int64 {
	unit := item.Product.Price
	for _, opt := range item.SelectedOptions {
		unit += opt.Price
	}
	return unit * int64(item.Quantity)
}

// Subtotal sums the line totals of every item.
func Subtotal(state State) int64 {
	var total int64
	for _, item := range state.Items {
		total += LineTotal(item)
	}
	return total
}

// CommissionAmount is the surcharge on the subtotal. A rate of zero or less
// contributes nothing. The product of subtotal and a fractional rate is
// rounded half up, so e.g. a subtotal of 1005 at 2.5% yields 25.
func CommissionAmount(state State) int64 {
	if state.CommissionPercentage <= 0 {
		return 0
	}
	raw := float64(Subtotal(state)) * state.CommissionPercentage / 100
	return int64(math.Floor(raw + 0.5))
}

// TotalPrice is the subtotal plus commission.
func TotalPrice(state State) int64 {
	return Subtotal(state) + CommissionAmount(state)
}
