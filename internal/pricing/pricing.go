package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"order_kiosk/internal/models"
)

// LineTotal computes the price of one order line:
//
//	(basePrice + sum of option deltas) x quantity
//
// Deltas are summed once per unit and the sum is multiplied by quantity,
// never the other way around. A quantity-modifier selection contributes
// its delta Count times to the per-unit sum. Deltas may be negative.
func LineTotal(basePrice decimal.Decimal, quantity int, selections []models.SelectedOption) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	perUnit := basePrice
	for _, sel := range selections {
		count := sel.Count
		if count < 1 {
			count = 1
		}
		perUnit = perUnit.Add(sel.AdditionalPrice.Mul(decimal.NewFromInt(int64(count))))
	}

	return perUnit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// OrderTotal sums already-computed line totals.
func OrderTotal(lineTotals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, lt := range lineTotals {
		total = total.Add(lt)
	}
	return total
}
