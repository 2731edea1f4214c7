package entities

import "github.com/shopspring/decimal"

// pointsUnit - сколько денежных единиц стоит один балл.
var pointsUnit = decimal.NewFromInt(1000)

type LoyaltyAward struct {
	OrderID    string
	CustomerID string
	Points     int64
}

// LoyaltyPointsFor считает floor(total / 1000); отрицательная сумма дает 0.
func LoyaltyPointsFor(total decimal.Decimal) int64 {
	if !total.IsPositive() {
		return 0
	}
	return total.Div(pointsUnit).Floor().IntPart()
}
