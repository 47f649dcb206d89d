package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/softsales/api/internal/api"
	"github.com/softsales/api/internal/entity"
	"github.com/softsales/api/internal/mocks"
)

type testAPI struct {
	service *mocks.MockService
	auth    *mocks.MockAuthService
	router  http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	serviceMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)
	verifierMock := mocks.NewMockTokenVerifier(ctrl)

	verifierMock.EXPECT().VerifyAccess(gomock.Any(), "dev").
		Return(entity.User{ID: uuid.Must(uuid.NewV4()), Login: "dev", Role: entity.RoleAdmin}, nil).
		AnyTimes()
	verifierMock.EXPECT().VerifyAccess(gomock.Any(), gomock.Not("dev")).
		Return(entity.User{}, entity.ErrUnauthenticated).
		AnyTimes()

	h := api.NewHandler(serviceMock, authMock)
	mw := api.NewMiddleware(verifierMock)

	return &testAPI{
		service: serviceMock,
		auth:    authMock,
		router:  api.NewRouter(h, mw),
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CreateAgreement(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())
	softwareID := uuid.Must(uuid.NewV4())
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	agreement := entity.Agreement{
		ID:                  uuid.Must(uuid.NewV4()),
		ClientID:            clientID,
		SoftwareID:          softwareID,
		Price:               decimal.RequireFromString("5950"),
		Deposited:           decimal.Zero,
		PaymentFrom:         from,
		PaymentUntil:        from.AddDate(0, 0, 14),
		SoftwareVersion:     "4.2.1",
		EndOfVersionSupport: from.AddDate(3, 0, 0),
	}

	a.service.EXPECT().CreateAgreement(gomock.Any(), gomock.Any(), clientID, softwareID).Return(agreement, nil)

	rec := a.do(t, http.MethodPost,
		fmt.Sprintf("/api/clients/%s/software/%s/agreement", clientID, softwareID), "dev",
		api.CreateAgreementRequest{
			PaymentFrom:           from,
			PaymentUntil:          from.AddDate(0, 0, 14),
			YearsOfVersionSupport: 3,
		})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.AgreementResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, agreement.ID, resp.ID)
	require.Equal(t, "5950", resp.Price)
	require.Equal(t, "4.2.1", resp.SoftwareVersion)
	require.False(t, resp.Signed)
}

func TestHandler_CreateAgreement_Validation(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())
	softwareID := uuid.Must(uuid.NewV4())
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	path := fmt.Sprintf("/api/clients/%s/software/%s/agreement", clientID, softwareID)

	tests := []struct {
		name string
		req  api.CreateAgreementRequest
	}{
		{
			name: "missing window",
			req:  api.CreateAgreementRequest{YearsOfVersionSupport: 1},
		},
		{
			name: "window too short",
			req: api.CreateAgreementRequest{
				PaymentFrom:           from,
				PaymentUntil:          from.AddDate(0, 0, 2),
				YearsOfVersionSupport: 1,
			},
		},
		{
			name: "window too long",
			req: api.CreateAgreementRequest{
				PaymentFrom:           from,
				PaymentUntil:          from.AddDate(0, 0, 31),
				YearsOfVersionSupport: 1,
			},
		},
		{
			name: "no support years",
			req: api.CreateAgreementRequest{
				PaymentFrom:  from,
				PaymentUntil: from.AddDate(0, 0, 14),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := a.do(t, http.MethodPost, path, "dev", tt.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_CreateAgreement_WrongSoftwareType(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())
	softwareID := uuid.Must(uuid.NewV4())
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	a.service.EXPECT().CreateAgreement(gomock.Any(), gomock.Any(), clientID, softwareID).
		Return(entity.Agreement{}, entity.ErrWrongSoftwareType)

	rec := a.do(t, http.MethodPost,
		fmt.Sprintf("/api/clients/%s/software/%s/agreement", clientID, softwareID), "dev",
		api.CreateAgreementRequest{
			PaymentFrom:           from,
			PaymentUntil:          from.AddDate(0, 0, 14),
			YearsOfVersionSupport: 1,
		})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateAgreement_Unauthorized(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	path := fmt.Sprintf("/api/clients/%s/software/%s/agreement",
		uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	rec := a.do(t, http.MethodPost, path, "", api.CreateAgreementRequest{})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(t, http.MethodPost, path, "stale", api.CreateAgreementRequest{})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_RecordPayment(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())
	agreementID := uuid.Must(uuid.NewV4())

	receipt := entity.PaymentReceipt{
		PaymentID:      uuid.Must(uuid.NewV4()),
		Amount:         decimal.RequireFromString("600"),
		Date:           time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC),
		ClientID:       clientID,
		AgreementID:    agreementID,
		Deposited:      decimal.RequireFromString("1000"),
		AgreementPrice: decimal.RequireFromString("1000"),
		Signed:         true,
	}

	a.service.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), clientID, agreementID).Return(receipt, nil)

	rec := a.do(t, http.MethodPost,
		fmt.Sprintf("/api/clients/%s/agreement/%s/payment", clientID, agreementID), "dev",
		api.CreatePaymentRequest{DepositSize: decimal.RequireFromString("600")})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.PaymentReceiptResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Signed)
	require.Equal(t, "1000", resp.AlreadyPaid)
	require.Equal(t, "600", resp.DepositSize)
}

func TestHandler_RecordPayment_NonPositiveDeposit(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	path := fmt.Sprintf("/api/clients/%s/agreement/%s/payment",
		uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	rec := a.do(t, http.MethodPost, path, "dev", api.CreatePaymentRequest{DepositSize: decimal.Zero})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = a.do(t, http.MethodPost, path, "dev",
		api.CreatePaymentRequest{DepositSize: decimal.RequireFromString("-5")})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_RecordPayment_DomainErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "already signed", err: entity.ErrAlreadySigned, wantCode: http.StatusBadRequest},
		{name: "amount exceeded", err: entity.ErrAmountExceeded, wantCode: http.StatusBadRequest},
		{name: "not found", err: entity.ErrNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAPI(t)

			clientID := uuid.Must(uuid.NewV4())
			agreementID := uuid.Must(uuid.NewV4())

			a.service.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), clientID, agreementID).
				Return(entity.PaymentReceipt{}, tt.err)

			rec := a.do(t, http.MethodPost,
				fmt.Sprintf("/api/clients/%s/agreement/%s/payment", clientID, agreementID), "dev",
				api.CreatePaymentRequest{DepositSize: decimal.RequireFromString("100")})

			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_TotalIncome(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().TotalIncome(gomock.Any(), "EUR").Return(entity.Income{
		ActualProfit:   decimal.RequireFromString("234.5"),
		ExpectedProfit: decimal.RequireFromString("351.68"),
	}, nil)

	rec := a.do(t, http.MethodGet, "/api/totalIncome/EUR", "dev", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.IncomeResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "234.5", resp.ActualProfit)
	require.Equal(t, "351.68", resp.ExpectedProfit)
}

func TestHandler_TotalIncome_UnknownCurrency(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().TotalIncome(gomock.Any(), "XXX").Return(entity.Income{}, entity.ErrNotFound)

	rec := a.do(t, http.MethodGet, "/api/totalIncome/XXX", "dev", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ProductIncome(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	softwareID := uuid.Must(uuid.NewV4())

	a.service.EXPECT().ProductIncome(gomock.Any(), softwareID, "USD").Return(entity.Income{
		ActualProfit:   decimal.RequireFromString("62.5"),
		ExpectedProfit: decimal.RequireFromString("250"),
	}, nil)

	rec := a.do(t, http.MethodGet,
		fmt.Sprintf("/api/productIncome/USD/software/%s", softwareID), "dev", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CreateIndividualClient(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	created := entity.Client{
		ID:    uuid.Must(uuid.NewV4()),
		Kind:  entity.ClientKindIndividual,
		Email: "jan@example.com",
		Phone: "123456789",
		Individual: &entity.Individual{
			FirstName: "Jan",
			LastName:  "Kowalski",
			PESEL:     "90010112345",
		},
	}

	a.service.EXPECT().CreateIndividualClient(gomock.Any(), entity.NewIndividual{
		Email:     "jan@example.com",
		Address:   "ul. Prosta 1, Warszawa",
		Phone:     "123456789",
		FirstName: "Jan",
		LastName:  "Kowalski",
		PESEL:     "90010112345",
	}).Return(created, nil)

	rec := a.do(t, http.MethodPost, "/api/clients/individual", "dev", api.CreateIndividualClientRequest{
		Email:     "jan@example.com",
		Address:   "ul. Prosta 1, Warszawa",
		Phone:     "123456789",
		FirstName: "Jan",
		LastName:  "Kowalski",
		PESEL:     "90010112345",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.ClientResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, created.ID, resp.ID)
	require.Equal(t, "INDIVIDUAL", resp.Kind)
	require.Equal(t, "Kowalski", resp.LastName)
}

func TestHandler_CreateIndividualClient_Validation(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	valid := api.CreateIndividualClientRequest{
		Email:     "jan@example.com",
		Address:   "ul. Prosta 1",
		Phone:     "123456789",
		FirstName: "Jan",
		LastName:  "Kowalski",
		PESEL:     "90010112345",
	}

	tests := []struct {
		name   string
		mutate func(r *api.CreateIndividualClientRequest)
	}{
		{name: "short pesel", mutate: func(r *api.CreateIndividualClientRequest) { r.PESEL = "1234567890" }},
		{name: "pesel with letters", mutate: func(r *api.CreateIndividualClientRequest) { r.PESEL = "9001011234a" }},
		{name: "bad email", mutate: func(r *api.CreateIndividualClientRequest) { r.Email = "not-an-email" }},
		{name: "long email", mutate: func(r *api.CreateIndividualClientRequest) {
			r.Email = "very-long-local-part-over-the-limit-for-sure@example.com"
		}},
		{name: "short phone", mutate: func(r *api.CreateIndividualClientRequest) { r.Phone = "12345678" }},
		{name: "no first name", mutate: func(r *api.CreateIndividualClientRequest) { r.FirstName = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)

			rec := a.do(t, http.MethodPost, "/api/clients/individual", "dev", req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_CreateBusinessClient(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	created := entity.Client{
		ID:   uuid.Must(uuid.NewV4()),
		Kind: entity.ClientKindBusiness,
		Business: &entity.Business{
			Name: "Softex sp. z o.o.",
			KRS:  "0000123456",
		},
	}

	a.service.EXPECT().CreateBusinessClient(gomock.Any(), gomock.Any()).Return(created, nil)

	rec := a.do(t, http.MethodPost, "/api/clients/business", "dev", api.CreateBusinessClientRequest{
		Email:   "office@softex.pl",
		Address: "ul. Krakowska 5",
		Phone:   "987654321",
		Name:    "Softex sp. z o.o.",
		KRS:     "0000123456",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.ClientResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "BUSINESS", resp.Kind)
	require.Equal(t, "0000123456", resp.KRS)
}

func TestHandler_UpdateIndividualClient(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	id := uuid.Must(uuid.NewV4())

	a.service.EXPECT().UpdateIndividualClient(gomock.Any(), id, entity.IndividualUpdate{
		Phone: "111222333",
	}).Return(nil)

	rec := a.do(t, http.MethodPut, "/api/clients/individual/"+id.String(), "dev",
		api.UpdateIndividualClientRequest{Phone: "111222333"})
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_UpdateBusinessClient_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	id := uuid.Must(uuid.NewV4())

	a.service.EXPECT().UpdateBusinessClient(gomock.Any(), id, gomock.Any()).Return(entity.ErrNotFound)

	rec := a.do(t, http.MethodPut, "/api/clients/business/"+id.String(), "dev",
		api.UpdateBusinessClientRequest{Name: "New Name"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteClient(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	id := uuid.Must(uuid.NewV4())

	a.service.EXPECT().DeleteClient(gomock.Any(), id).Return(nil)

	rec := a.do(t, http.MethodDelete, "/api/clients/"+id.String(), "dev", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.auth.EXPECT().Register(gomock.Any(), "alice", "s3cret-pass", entity.RoleUser).Return(nil)

	rec := a.do(t, http.MethodPost, "/api/auth/register", "",
		api.RegisterRequest{Login: "alice", Password: "s3cret-pass"})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/api/auth/register", "",
		api.RegisterRequest{Login: "alice", Password: "short"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.auth.EXPECT().Login(gomock.Any(), "alice", "s3cret-pass").
		Return(entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	rec := a.do(t, http.MethodPost, "/api/auth/login", "",
		api.LoginRequest{Login: "alice", Password: "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenPairResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "access", resp.AccessToken)
	require.Equal(t, "refresh", resp.RefreshToken)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.auth.EXPECT().Login(gomock.Any(), "alice", "wrong").
		Return(entity.TokenPair{}, entity.ErrUnauthenticated)

	rec := a.do(t, http.MethodPost, "/api/auth/login", "",
		api.LoginRequest{Login: "alice", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Refresh(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.auth.EXPECT().Refresh(gomock.Any(), "old-token").
		Return(entity.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	rec := a.do(t, http.MethodPost, "/api/auth/refresh", "",
		api.RefreshRequest{RefreshToken: "old-token"})
	require.Equal(t, http.StatusOK, rec.Code)
}
