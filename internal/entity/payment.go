package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Payment is an append-only record of one deposit against an agreement.
type Payment struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	ClientID    uuid.UUID
	AgreementID uuid.UUID
}

type PaymentReceipt struct {
	PaymentID      uuid.UUID
	Amount         decimal.Decimal
	Date           time.Time
	ClientID       uuid.UUID
	AgreementID    uuid.UUID
	Deposited      decimal.Decimal
	AgreementPrice decimal.Decimal
	Signed         bool
}
