package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypeAgreement    DiscountType = "Agreement"
	DiscountTypeSubscription DiscountType = "Subscription"
)

func (d DiscountType) String() string {
	return string(d)
}

type Discount struct {
	ID         uuid.UUID
	Name       string
	Percentage decimal.Decimal
	From       time.Time
	Until      time.Time
	Type       DiscountType
	SoftwareID uuid.UUID
}

// ActiveAt reports whether now lies within the validity window, bounds inclusive.
func (d Discount) ActiveAt(now time.Time) bool {
	return !now.Before(d.From) && !now.After(d.Until)
}

// MaxAgreementDiscount returns the largest agreement discount percentage active
// at now, or zero if none applies. Overlapping discounts do not stack.
func MaxAgreementDiscount(discounts []Discount, now time.Time) decimal.Decimal {
	max := decimal.Zero

	for _, d := range discounts {
		if d.Type != DiscountTypeAgreement || !d.ActiveAt(now) {
			continue
		}

		if d.Percentage.GreaterThan(max) {
			max = d.Percentage
		}
	}

	return max
}
