package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/softsales/api/internal/entity"
)

// AgreementDiscount resolves the discount percentage applicable to a new
// agreement for the software right now: the maximum of the software's active
// agreement discounts, or zero.
func (s *Service) AgreementDiscount(ctx context.Context, softwareID uuid.UUID) (decimal.Decimal, error) {
	discounts, err := s.repo.SoftwareDiscounts(ctx, softwareID, entity.DiscountTypeAgreement)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get software %s discounts: %w", softwareID, err)
	}

	return entity.MaxAgreementDiscount(discounts, s.now()), nil
}

// CreateAgreement prices and persists a purchase agreement for one-time
// purchase software. The software version is frozen at creation time.
func (s *Service) CreateAgreement(
	ctx context.Context,
	terms entity.AgreementTerms,
	clientID, softwareID uuid.UUID,
) (entity.Agreement, error) {
	client, err := s.repo.Client(ctx, clientID)
	if err != nil {
		return entity.Agreement{}, fmt.Errorf("get client: %w", err)
	}

	software, err := s.repo.Software(ctx, softwareID)
	if err != nil {
		return entity.Agreement{}, fmt.Errorf("get software: %w", err)
	}

	if !software.IsOneTimePurchase {
		return entity.Agreement{}, fmt.Errorf("%w: software %s is not one-time purchase software",
			entity.ErrWrongSoftwareType, softwareID)
	}

	discount, err := s.AgreementDiscount(ctx, softwareID)
	if err != nil {
		return entity.Agreement{}, err
	}

	if client.Returning {
		discount = discount.Add(decimal.NewFromInt(entity.ReturningClientDiscountPercent))
	}

	now := s.now()

	a := entity.Agreement{
		ID:                  uuid.Must(uuid.NewV4()),
		ClientID:            clientID,
		SoftwareID:          softwareID,
		Price:               entity.AgreementPrice(software.OneTimePrice, terms.YearsOfVersionSupport, discount),
		Deposited:           decimal.Zero,
		PaymentFrom:         terms.PaymentFrom,
		PaymentUntil:        terms.PaymentUntil,
		Signed:              false,
		SoftwareVersion:     software.CurrentVersion,
		EndOfVersionSupport: terms.PaymentFrom.AddDate(terms.YearsOfVersionSupport, 0, 0),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	a, err = s.repo.CreateAgreement(ctx, a)
	if err != nil {
		return entity.Agreement{}, fmt.Errorf("create agreement: %w", err)
	}

	slog.InfoContext(ctx, "agreement created",
		"agreement_id", a.ID, "client_id", clientID, "software_id", softwareID, "price", a.Price)

	return a, nil
}
