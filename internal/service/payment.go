package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/softsales/api/internal/entity"
)

const moneyScale = 2

// RecordPayment applies a deposit to the client's agreement. Settlement runs
// atomically in the repository; the returned receipt carries the running
// deposited total next to the agreement price.
func (s *Service) RecordPayment(
	ctx context.Context,
	amount decimal.Decimal,
	clientID, agreementID uuid.UUID,
) (entity.PaymentReceipt, error) {
	_, err := s.repo.Client(ctx, clientID)
	if err != nil {
		return entity.PaymentReceipt{}, fmt.Errorf("get client: %w", err)
	}

	p := entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      amount,
		Date:        s.now(),
		ClientID:    clientID,
		AgreementID: agreementID,
	}

	a, err := s.repo.ApplyDeposit(ctx, p)
	if err != nil {
		return entity.PaymentReceipt{}, fmt.Errorf("apply deposit: %w", err)
	}

	slog.InfoContext(ctx, "payment recorded",
		"payment_id", p.ID, "agreement_id", agreementID, "amount", amount, "deposited", a.Deposited)

	if a.Signed {
		s.producer.SendAgreementSigned(ctx, a)

		slog.InfoContext(ctx, "agreement signed", "agreement_id", a.ID, "price", a.Price)
	}

	return entity.PaymentReceipt{
		PaymentID:      p.ID,
		Amount:         p.Amount,
		Date:           p.Date,
		ClientID:       clientID,
		AgreementID:    agreementID,
		Deposited:      a.Deposited,
		AgreementPrice: a.Price,
		Signed:         a.Signed,
	}, nil
}

// TotalIncome reports actual income over signed agreements and expected income
// over signed plus still-collectable unsigned ones, converted from PLN to the
// requested currency. Converted values are rounded to 2 decimal places, half
// away from zero.
func (s *Service) TotalIncome(ctx context.Context, currency string) (entity.Income, error) {
	return s.income(ctx, nil, currency)
}

// ProductIncome is TotalIncome narrowed to one software product.
func (s *Service) ProductIncome(ctx context.Context, softwareID uuid.UUID, currency string) (entity.Income, error) {
	_, err := s.repo.Software(ctx, softwareID)
	if err != nil {
		return entity.Income{}, fmt.Errorf("get software: %w", err)
	}

	return s.income(ctx, &softwareID, currency)
}

func (s *Service) income(ctx context.Context, softwareID *uuid.UUID, currency string) (entity.Income, error) {
	actual, pending, err := s.repo.IncomeTotals(ctx, softwareID, s.now())
	if err != nil {
		return entity.Income{}, fmt.Errorf("get income totals: %w", err)
	}

	rate, err := s.rates.Rate(ctx, entity.HomeCurrency, currency)
	if err != nil {
		return entity.Income{}, fmt.Errorf("get %s rate for %q: %w", entity.HomeCurrency, currency, err)
	}

	return entity.Income{
		ActualProfit:   actual.Mul(rate).Round(moneyScale),
		ExpectedProfit: actual.Add(pending).Mul(rate).Round(moneyScale),
	}, nil
}
