package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/softsales/api/internal/entity"
	"github.com/softsales/api/internal/mocks"
	"github.com/softsales/api/internal/service"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockRateGateway, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	rates := mocks.NewMockRateGateway(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, rates, producer, func() time.Time { return testNow })

	return s, repo, rates, producer
}

func TestService_CreateAgreement(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	softwareID := uuid.Must(uuid.NewV4())

	software := entity.Software{
		ID:                softwareID,
		Name:              "FinTrack",
		CurrentVersion:    "4.2.1",
		OneTimePrice:      decimal.RequireFromString("5000"),
		IsOneTimePurchase: true,
	}

	discounts := []entity.Discount{{
		Percentage: decimal.RequireFromString("10"),
		From:       testNow.AddDate(0, -1, 0),
		Until:      testNow.AddDate(0, 1, 0),
		Type:       entity.DiscountTypeAgreement,
		SoftwareID: softwareID,
	}}

	repo.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{ID: clientID, Returning: true}, nil)
	repo.EXPECT().Software(gomock.Any(), softwareID).Return(software, nil)
	repo.EXPECT().SoftwareDiscounts(gomock.Any(), softwareID, entity.DiscountTypeAgreement).Return(discounts, nil)
	repo.EXPECT().CreateAgreement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a entity.Agreement) (entity.Agreement, error) {
			return a, nil
		})

	terms := entity.AgreementTerms{
		PaymentFrom:           testNow,
		PaymentUntil:          testNow.AddDate(0, 0, 14),
		YearsOfVersionSupport: 3,
	}

	a, err := s.CreateAgreement(context.Background(), terms, clientID, softwareID)
	require.NoError(t, err)

	// 5000 + 2*1000 surcharge, minus 10% promo plus 5% returning client
	require.True(t, a.Price.Equal(decimal.RequireFromString("5950")), "price %s", a.Price)
	require.True(t, a.Deposited.IsZero())
	require.False(t, a.Signed)
	require.Equal(t, "4.2.1", a.SoftwareVersion)
	require.Equal(t, testNow.AddDate(3, 0, 0), a.EndOfVersionSupport)
}

func TestService_CreateAgreement_ClientNotFound(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)

	clientID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{}, entity.ErrNotFound)

	_, err := s.CreateAgreement(context.Background(), entity.AgreementTerms{}, clientID, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_CreateAgreement_SubscriptionOnlySoftware(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	softwareID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().Software(gomock.Any(), softwareID).Return(entity.Software{
		ID:                     softwareID,
		IsSubscriptionPurchase: true,
	}, nil)

	_, err := s.CreateAgreement(context.Background(), entity.AgreementTerms{}, clientID, softwareID)
	require.ErrorIs(t, err, entity.ErrWrongSoftwareType)
}

func TestService_CreateAgreement_DualFlagSoftware(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	softwareID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().Software(gomock.Any(), softwareID).Return(entity.Software{
		ID:                     softwareID,
		OneTimePrice:           decimal.RequireFromString("3000"),
		IsOneTimePurchase:      true,
		IsSubscriptionPurchase: true,
	}, nil)
	repo.EXPECT().SoftwareDiscounts(gomock.Any(), softwareID, entity.DiscountTypeAgreement).Return(nil, nil)
	repo.EXPECT().CreateAgreement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a entity.Agreement) (entity.Agreement, error) {
			return a, nil
		})

	terms := entity.AgreementTerms{
		PaymentFrom:           testNow,
		PaymentUntil:          testNow.AddDate(0, 0, 7),
		YearsOfVersionSupport: 1,
	}

	a, err := s.CreateAgreement(context.Background(), terms, clientID, softwareID)
	require.NoError(t, err)
	require.True(t, a.Price.Equal(decimal.RequireFromString("3000")))
}

func TestService_RecordPayment_SignsAndNotifies(t *testing.T) {
	t.Parallel()

	s, repo, _, producer := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	agreementID := uuid.Must(uuid.NewV4())

	signed := entity.Agreement{
		ID:        agreementID,
		ClientID:  clientID,
		Price:     decimal.RequireFromString("1000"),
		Deposited: decimal.RequireFromString("1000"),
		Signed:    true,
	}

	repo.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().ApplyDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.Payment) (entity.Agreement, error) {
			require.True(t, p.Amount.Equal(decimal.RequireFromString("600")))
			require.Equal(t, testNow, p.Date)
			require.Equal(t, agreementID, p.AgreementID)

			return signed, nil
		})
	producer.EXPECT().SendAgreementSigned(gomock.Any(), signed)

	receipt, err := s.RecordPayment(context.Background(), decimal.RequireFromString("600"), clientID, agreementID)
	require.NoError(t, err)
	require.True(t, receipt.Signed)
	require.True(t, receipt.Deposited.Equal(signed.Price))
	require.True(t, receipt.AgreementPrice.Equal(signed.Price))
}

func TestService_RecordPayment_PartialDoesNotNotify(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	agreementID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().ApplyDeposit(gomock.Any(), gomock.Any()).Return(entity.Agreement{
		ID:        agreementID,
		Price:     decimal.RequireFromString("1000"),
		Deposited: decimal.RequireFromString("400"),
	}, nil)

	receipt, err := s.RecordPayment(context.Background(), decimal.RequireFromString("400"), clientID, agreementID)
	require.NoError(t, err)
	require.False(t, receipt.Signed)
}

func TestService_RecordPayment_Overpayment(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	agreementID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().ApplyDeposit(gomock.Any(), gomock.Any()).
		Return(entity.Agreement{}, &entity.AmountExceededError{
			AgreementID: agreementID,
			Excess:      decimal.RequireFromString("200"),
		})

	_, err := s.RecordPayment(context.Background(), decimal.RequireFromString("1200"), clientID, agreementID)
	require.ErrorIs(t, err, entity.ErrAmountExceeded)
}

func TestService_TotalIncome(t *testing.T) {
	t.Parallel()

	s, repo, rates, _ := newService(t)

	repo.EXPECT().IncomeTotals(gomock.Any(), nil, testNow).
		Return(decimal.RequireFromString("1000"), decimal.RequireFromString("500"), nil)
	rates.EXPECT().Rate(gomock.Any(), "PLN", "EUR").Return(decimal.RequireFromString("0.2345"), nil)

	income, err := s.TotalIncome(context.Background(), "EUR")
	require.NoError(t, err)

	// 1000*0.2345=234.5, 1500*0.2345=351.675 rounded half away from zero
	require.Equal(t, "234.5", income.ActualProfit.String())
	require.Equal(t, "351.68", income.ExpectedProfit.String())
}

func TestService_TotalIncome_SameCurrency(t *testing.T) {
	t.Parallel()

	s, repo, rates, _ := newService(t)

	repo.EXPECT().IncomeTotals(gomock.Any(), nil, testNow).
		Return(decimal.RequireFromString("1000"), decimal.Zero, nil)
	rates.EXPECT().Rate(gomock.Any(), "PLN", "PLN").Return(decimal.NewFromInt(1), nil)

	income, err := s.TotalIncome(context.Background(), "PLN")
	require.NoError(t, err)
	require.True(t, income.ActualProfit.Equal(decimal.RequireFromString("1000")))
	require.True(t, income.ExpectedProfit.Equal(decimal.RequireFromString("1000")))
}

func TestService_ProductIncome_SoftwareNotFound(t *testing.T) {
	t.Parallel()

	s, repo, _, _ := newService(t)

	softwareID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Software(gomock.Any(), softwareID).Return(entity.Software{}, entity.ErrNotFound)

	_, err := s.ProductIncome(context.Background(), softwareID, "USD")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_ProductIncome(t *testing.T) {
	t.Parallel()

	s, repo, rates, _ := newService(t)

	softwareID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Software(gomock.Any(), softwareID).Return(entity.Software{ID: softwareID}, nil)
	repo.EXPECT().IncomeTotals(gomock.Any(), &softwareID, testNow).
		Return(decimal.RequireFromString("250"), decimal.RequireFromString("750"), nil)
	rates.EXPECT().Rate(gomock.Any(), "PLN", "USD").Return(decimal.RequireFromString("0.25"), nil)

	income, err := s.ProductIncome(context.Background(), softwareID, "USD")
	require.NoError(t, err)
	require.Equal(t, "62.5", income.ActualProfit.String())
	require.Equal(t, "250", income.ExpectedProfit.String())
}
