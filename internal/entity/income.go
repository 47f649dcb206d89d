package entity

import (
	"github.com/shopspring/decimal"
)

// HomeCurrency is the currency agreements are priced in.
const HomeCurrency = "PLN"

type Income struct {
	ActualProfit   decimal.Decimal
	ExpectedProfit decimal.Decimal
}
