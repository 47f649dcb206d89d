package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Software is a product on sale. One-time and subscription pricing are
// independent flags: a product may carry both, and agreements only require
// IsOneTimePurchase to be set.
type Software struct {
	ID                     uuid.UUID
	Name                   string
	Description            string
	Category               string
	CurrentVersion         string
	OneTimePrice           decimal.Decimal
	SubscriptionPrice      decimal.Decimal
	IsOneTimePurchase      bool
	IsSubscriptionPurchase bool
}
