package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/softsales/api/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	UpdateIndividualClient(ctx context.Context, id uuid.UUID, upd entity.IndividualUpdate, updatedAt time.Time) error
	UpdateBusinessClient(ctx context.Context, id uuid.UUID, upd entity.BusinessUpdate, updatedAt time.Time) error
	SoftDeleteIndividualClient(ctx context.Context, id uuid.UUID, deletedAt time.Time) error
	Software(ctx context.Context, id uuid.UUID) (entity.Software, error)
	SoftwareDiscounts(ctx context.Context, softwareID uuid.UUID, discountType entity.DiscountType) ([]entity.Discount, error)
	CreateAgreement(ctx context.Context, a entity.Agreement) (entity.Agreement, error)
	ApplyDeposit(ctx context.Context, p entity.Payment) (entity.Agreement, error)
	IncomeTotals(ctx context.Context, softwareID *uuid.UUID, now time.Time) (actual, pending decimal.Decimal, err error)
}

// RateGateway resolves a currency conversion rate. An unknown target currency
// fails with entity.ErrNotFound.
type RateGateway interface {
	Rate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

type Producer interface {
	SendAgreementSigned(ctx context.Context, a entity.Agreement)
}

type Service struct {
	repo     Repository
	rates    RateGateway
	producer Producer
	now      func() time.Time
}

func New(repo Repository, rates RateGateway, producer Producer, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:     repo,
		rates:    rates,
		producer: producer,
		now:      now,
	}
}
