package reconcile

import "github.com/shopspring/decimal"

// WeightedAverageCost blends the cost of stock on hand with an incoming lot:
//
//	newCost = (oldQty*oldCost + inQty*inCost) / (oldQty + inQty)
//
// rounded to 2 decimal places. Non-positive stock on hand means the incoming
// cost wins outright; a non-positive incoming quantity leaves the old cost
// untouched.
func WeightedAverageCost(oldQty, oldCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	if inQty.LessThanOrEqual(decimal.Zero) {
		return oldCost.Round(2)
	}
	if oldQty.LessThanOrEqual(decimal.Zero) {
		return inCost.Round(2)
	}
	total := oldQty.Add(inQty)
	blended := oldQty.Mul(oldCost).Add(inQty.Mul(inCost)).Div(total)
	return blended.Round(2)
}
