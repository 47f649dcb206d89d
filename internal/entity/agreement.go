package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	// SupportYearSurcharge is the flat charge for every year of version
	// support beyond the first.
	SupportYearSurcharge = 1000

	// ReturningClientDiscountPercent is added on top of the resolved
	// software discount for clients with prior business.
	ReturningClientDiscountPercent = 5
)

// Agreement is a purchase contract for one-time-purchase software. It is
// created once by the pricing engine and mutated only by deposit settlement.
// Invariant: 0 <= Deposited <= Price, and Signed holds exactly when
// Deposited == Price. Signed is terminal.
type Agreement struct {
	ID                  uuid.UUID
	ClientID            uuid.UUID
	SoftwareID          uuid.UUID
	Price               decimal.Decimal
	Deposited           decimal.Decimal
	PaymentFrom         time.Time
	PaymentUntil        time.Time
	Signed              bool
	SoftwareVersion     string
	EndOfVersionSupport time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AgreementTerms are the client-chosen terms of a new agreement.
type AgreementTerms struct {
	PaymentFrom           time.Time
	PaymentUntil          time.Time
	YearsOfVersionSupport int
}

// AgreementPrice computes the final contract price: the one-time price plus
// the support surcharge for years beyond the first, reduced by
// discountPercent percent.
func AgreementPrice(oneTimePrice decimal.Decimal, yearsOfSupport int, discountPercent decimal.Decimal) decimal.Decimal {
	price := oneTimePrice

	if yearsOfSupport > 1 {
		price = price.Add(decimal.NewFromInt(int64(yearsOfSupport-1) * SupportYearSurcharge))
	}

	oneHundred := decimal.New(100, 0)

	return price.Sub(price.Mul(discountPercent).Div(oneHundred))
}

// AmountExceededError reports a deposit that would overfund an agreement.
// It matches ErrAmountExceeded under errors.Is.
type AmountExceededError struct {
	AgreementID uuid.UUID
	Excess      decimal.Decimal
}

func (e *AmountExceededError) Error() string {
	return fmt.Sprintf("amount exceeded by %s for agreement %s", e.Excess, e.AgreementID)
}

func (e *AmountExceededError) Is(target error) bool {
	return target == ErrAmountExceeded
}

// ApplyDeposit advances the funding state machine by amount. A deposit on a
// signed agreement fails with ErrAlreadySigned; a deposit pushing the total
// past the price fails with AmountExceededError and leaves the agreement
// unchanged. Reaching the price exactly signs the agreement.
func (a *Agreement) ApplyDeposit(amount decimal.Decimal) error {
	if a.Signed {
		return fmt.Errorf("agreement %s: %w", a.ID, ErrAlreadySigned)
	}

	total := a.Deposited.Add(amount)

	if total.GreaterThan(a.Price) {
		return &AmountExceededError{AgreementID: a.ID, Excess: total.Sub(a.Price)}
	}

	a.Deposited = total

	if a.Deposited.Equal(a.Price) {
		a.Signed = true
	}

	return nil
}
