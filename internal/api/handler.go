package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/softsales/api/internal/entity"
)

// @title SoftSales API
// @version 1.0
// @description Business-management API for software sales: clients, purchase agreements, payments and income reporting
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const (
	minPaymentWindowDays = 3
	maxPaymentWindowDays = 30
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateAgreement(ctx context.Context, terms entity.AgreementTerms, clientID, softwareID uuid.UUID) (entity.Agreement, error)
	RecordPayment(ctx context.Context, amount decimal.Decimal, clientID, agreementID uuid.UUID) (entity.PaymentReceipt, error)
	TotalIncome(ctx context.Context, currency string) (entity.Income, error)
	ProductIncome(ctx context.Context, softwareID uuid.UUID, currency string) (entity.Income, error)
	CreateIndividualClient(ctx context.Context, in entity.NewIndividual) (entity.Client, error)
	CreateBusinessClient(ctx context.Context, in entity.NewBusiness) (entity.Client, error)
	UpdateIndividualClient(ctx context.Context, id uuid.UUID, upd entity.IndividualUpdate) error
	UpdateBusinessClient(ctx context.Context, id uuid.UUID, upd entity.BusinessUpdate) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type AuthService interface {
	Register(ctx context.Context, login, password, role string) error
	Login(ctx context.Context, login, password string) (entity.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (entity.TokenPair, error)
}

type Handler struct {
	s    Service
	auth AuthService
}

func NewHandler(s Service, auth AuthService) *Handler {
	return &Handler{
		s:    s,
		auth: auth,
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type CreateAgreementRequest struct {
	PaymentFrom           time.Time `json:"paymentFrom"`
	PaymentUntil          time.Time `json:"paymentUntil"`
	YearsOfVersionSupport int       `json:"yearsOfVersionSupport"`
}

type AgreementResponse struct {
	ID                  uuid.UUID `json:"id"`
	Price               string    `json:"price"`
	CurrentDeposited    string    `json:"currentDeposited"`
	PaymentFrom         time.Time `json:"paymentFrom"`
	PaymentUntil        time.Time `json:"paymentUntil"`
	Signed              bool      `json:"signed"`
	SoftwareVersion     string    `json:"currentSoftwareVersion"`
	EndOfVersionSupport time.Time `json:"endOfVersionSupport"`
	ClientID            uuid.UUID `json:"clientId"`
	SoftwareID          uuid.UUID `json:"softwareId"`
}

// CreateAgreement creates a purchase agreement
// @Summary Create agreement
// @Description Prices and creates a purchase agreement for one-time purchase software
// @Tags agreements
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param software_id path string true "Software ID"
// @Param CreateAgreementRequest body CreateAgreementRequest true "Agreement terms"
// @Success 201 {object} AgreementResponse
// @Failure 400 {object} ErrorResponse "Invalid terms or wrong software type"
// @Failure 404 {object} ErrorResponse "Client or software not found"
// @Failure 500 {object} ErrorResponse "Failed to create agreement"
// @Router /clients/{client_id}/software/{software_id}/agreement [post]
// @Security BearerAuth
func (h *Handler) CreateAgreement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	softwareID, err := uuid.FromString(chi.URLParam(r, "software_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid software id")
		return
	}

	var req CreateAgreementRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = validateAgreementTerms(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, err.Error())
		return
	}

	terms := entity.AgreementTerms{
		PaymentFrom:           req.PaymentFrom,
		PaymentUntil:          req.PaymentUntil,
		YearsOfVersionSupport: req.YearsOfVersionSupport,
	}

	a, err := h.s.CreateAgreement(ctx, terms, clientID, softwareID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client or software not found")
		case errors.Is(err, entity.ErrWrongSoftwareType):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Software is not sold as a one-time purchase")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create agreement")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, AgreementResponse{
		ID:                  a.ID,
		Price:               a.Price.String(),
		CurrentDeposited:    a.Deposited.String(),
		PaymentFrom:         a.PaymentFrom,
		PaymentUntil:        a.PaymentUntil,
		Signed:              a.Signed,
		SoftwareVersion:     a.SoftwareVersion,
		EndOfVersionSupport: a.EndOfVersionSupport,
		ClientID:            a.ClientID,
		SoftwareID:          a.SoftwareID,
	})
}

type CreatePaymentRequest struct {
	DepositSize decimal.Decimal `json:"depositSize"`
}

type PaymentReceiptResponse struct {
	ID             uuid.UUID `json:"id"`
	DepositSize    string    `json:"depositSize"`
	PaymentDate    time.Time `json:"paymentDate"`
	ClientID       uuid.UUID `json:"clientId"`
	AgreementID    uuid.UUID `json:"agreementId"`
	AlreadyPaid    string    `json:"alreadyPaid"`
	AgreementPrice string    `json:"agreementPrice"`
	Signed         bool      `json:"signed"`
}

// RecordPayment applies a deposit to an agreement
// @Summary Record payment
// @Description Applies a deposit to the client's agreement; signs the agreement when fully funded
// @Tags payments
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param agreement_id path string true "Agreement ID"
// @Param CreatePaymentRequest body CreatePaymentRequest true "Deposit"
// @Success 201 {object} PaymentReceiptResponse
// @Failure 400 {object} ErrorResponse "Agreement already signed or deposit too large"
// @Failure 404 {object} ErrorResponse "Client or agreement not found"
// @Failure 422 {object} ErrorResponse "Deposit size must be greater than 0"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Router /clients/{client_id}/agreement/{agreement_id}/payment [post]
// @Security BearerAuth
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	agreementID, err := uuid.FromString(chi.URLParam(r, "agreement_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid agreement id")
		return
	}

	var req CreatePaymentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if !req.DepositSize.IsPositive() {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
			fmt.Errorf("not positive deposit %s", req.DepositSize), "Deposit size must be greater than 0")
		return
	}

	receipt, err := h.s.RecordPayment(ctx, req.DepositSize, clientID, agreementID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client or agreement not found")
		case errors.Is(err, entity.ErrAlreadySigned):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Agreement is already signed")
		case errors.Is(err, entity.ErrAmountExceeded):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Deposit exceeds the remaining agreement price")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to record payment")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, PaymentReceiptResponse{
		ID:             receipt.PaymentID,
		DepositSize:    receipt.Amount.String(),
		PaymentDate:    receipt.Date,
		ClientID:       receipt.ClientID,
		AgreementID:    receipt.AgreementID,
		AlreadyPaid:    receipt.Deposited.String(),
		AgreementPrice: receipt.AgreementPrice.String(),
		Signed:         receipt.Signed,
	})
}

type IncomeResponse struct {
	ActualProfit   string `json:"actualProfit"`
	ExpectedProfit string `json:"expectedProfit"`
}

// TotalIncome reports income over all agreements
// @Summary Total income
// @Description Sums signed and still-collectable agreement prices, converted to the requested currency
// @Tags income
// @Produce json
// @Param currency path string true "Target currency code"
// @Success 200 {object} IncomeResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to compute income"
// @Router /totalIncome/{currency} [get]
// @Security BearerAuth
func (h *Handler) TotalIncome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	income, err := h.s.TotalIncome(ctx, chi.URLParam(r, "currency"))
	if err != nil {
		h.sendIncomeErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, IncomeResponse{
		ActualProfit:   income.ActualProfit.String(),
		ExpectedProfit: income.ExpectedProfit.String(),
	})
}

// ProductIncome reports income over one product's agreements
// @Summary Product income
// @Description Total income narrowed to one software product
// @Tags income
// @Produce json
// @Param currency path string true "Target currency code"
// @Param software_id path string true "Software ID"
// @Success 200 {object} IncomeResponse
// @Failure 404 {object} ErrorResponse "Currency or software not found"
// @Failure 500 {object} ErrorResponse "Failed to compute income"
// @Router /productIncome/{currency}/software/{software_id} [get]
// @Security BearerAuth
func (h *Handler) ProductIncome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	softwareID, err := uuid.FromString(chi.URLParam(r, "software_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid software id")
		return
	}

	income, err := h.s.ProductIncome(ctx, softwareID, chi.URLParam(r, "currency"))
	if err != nil {
		h.sendIncomeErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, IncomeResponse{
		ActualProfit:   income.ActualProfit.String(),
		ExpectedProfit: income.ExpectedProfit.String(),
	})
}

func (h *Handler) sendIncomeErr(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrNotFound) {
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Currency or software not found")
		return
	}

	SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to compute income")
}

func validateAgreementTerms(req CreateAgreementRequest) error {
	if req.PaymentFrom.IsZero() || req.PaymentUntil.IsZero() {
		return errors.New("payment window is required")
	}

	days := req.PaymentUntil.Sub(req.PaymentFrom).Hours() / 24
	if days < minPaymentWindowDays || days > maxPaymentWindowDays {
		return fmt.Errorf("payment duration must be between %d and %d days", minPaymentWindowDays, maxPaymentWindowDays)
	}

	if req.YearsOfVersionSupport < 1 {
		return errors.New("minimal number of years of version support is 1")
	}

	return nil
}
