package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/softsales/api/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=../mocks/auth.go -package=mocks

type AccountRepository interface {
	CreateAccount(ctx context.Context, a entity.Account) error
	AccountByLogin(ctx context.Context, login string) (entity.Account, error)
	Account(ctx context.Context, id uuid.UUID) (entity.Account, error)
	SaveRefreshToken(ctx context.Context, t entity.RefreshToken) error
	RefreshTokenByToken(ctx context.Context, token string) (entity.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) error
}

type Auth struct {
	repo       AccountRepository
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewAuth(repo AccountRepository, privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, accessTTL, refreshTTL time.Duration, now func() time.Time) *Auth {
	if now == nil {
		now = time.Now
	}

	return &Auth{
		repo:       repo,
		privateKey: privateKey,
		publicKey:  publicKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        now,
	}
}

type accessClaims struct {
	Login string `json:"login"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (a *Auth) Register(ctx context.Context, login, password, role string) error {
	_, err := a.repo.AccountByLogin(ctx, login)
	if err == nil {
		return fmt.Errorf("%w: login %q is already taken", entity.ErrInvalidArgument, login)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("get account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account := entity.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Login:        login,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    a.now(),
	}

	err = a.repo.CreateAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	slog.InfoContext(ctx, "account registered", "login", login, "role", role)

	return nil
}

func (a *Auth) Login(ctx context.Context, login, password string) (entity.TokenPair, error) {
	account, err := a.repo.AccountByLogin(ctx, login)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.TokenPair{}, fmt.Errorf("%w: unknown login or wrong password", entity.ErrUnauthenticated)
	}

	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("get account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("%w: unknown login or wrong password", entity.ErrUnauthenticated)
	}

	access, err := a.newAccessToken(account)
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh := entity.RefreshToken{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    account.ID,
		Token:     newOpaqueToken(),
		ExpiresAt: a.now().Add(a.refreshTTL),
	}

	err = a.repo.SaveRefreshToken(ctx, refresh)
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("save refresh token: %w", err)
	}

	return entity.TokenPair{AccessToken: access, RefreshToken: refresh.Token}, nil
}

// Refresh exchanges a live refresh token for a fresh pair, rotating the stored
// token in place.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (entity.TokenPair, error) {
	stored, err := a.repo.RefreshTokenByToken(ctx, refreshToken)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.TokenPair{}, fmt.Errorf("%w: unknown refresh token", entity.ErrUnauthenticated)
	}

	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("get refresh token: %w", err)
	}

	if !stored.ExpiresAt.After(a.now()) {
		return entity.TokenPair{}, fmt.Errorf("%w: refresh token expired", entity.ErrUnauthenticated)
	}

	account, err := a.repo.Account(ctx, stored.UserID)
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("get account %s: %w", stored.UserID, err)
	}

	access, err := a.newAccessToken(account)
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	rotated := newOpaqueToken()

	err = a.repo.RotateRefreshToken(ctx, stored.ID, rotated, a.now().Add(a.refreshTTL))
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("rotate refresh token: %w", err)
	}

	return entity.TokenPair{AccessToken: access, RefreshToken: rotated}, nil
}

// VerifyAccess checks the access token signature and expiry locally, without a
// repository round trip.
func (a *Auth) VerifyAccess(_ context.Context, token string) (entity.User, error) {
	var claims accessClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		_, ok := t.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return a.publicKey, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: %w", entity.ErrUnauthenticated, err)
	}

	if !parsed.Valid {
		return entity.User{}, fmt.Errorf("%w: invalid token", entity.ErrUnauthenticated)
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: bad subject: %w", entity.ErrUnauthenticated, err)
	}

	return entity.User{ID: id, Login: claims.Login, Role: claims.Role}, nil
}

// CleanExpiredRefreshTokens is run periodically by the job runner.
func (a *Auth) CleanExpiredRefreshTokens(ctx context.Context) error {
	err := a.repo.DeleteExpiredRefreshTokens(ctx, a.now())
	if err != nil {
		return fmt.Errorf("delete expired refresh tokens: %w", err)
	}

	return nil
}

func (a *Auth) newAccessToken(account entity.Account) (string, error) {
	now := a.now()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, accessClaims{
		Login: account.Login,
		Role:  account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.accessTTL)),
		},
	})

	return token.SignedString(a.privateKey)
}

func newOpaqueToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)

	return base64.RawURLEncoding.EncodeToString(b)
}
