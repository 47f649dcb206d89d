package service_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/softsales/api/internal/entity"
	"github.com/softsales/api/internal/mocks"
	"github.com/softsales/api/internal/service"
	"github.com/softsales/api/pkg/security"
)

func newAuth(t *testing.T) (*service.Auth, *mocks.MockAccountRepository) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pub, err := security.ParsePublicKey(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)

	a := service.NewAuth(repo, key, pub, 15*time.Minute, 72*time.Hour, func() time.Time { return testNow })

	return a, repo
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	a, repo := newAuth(t)

	repo.EXPECT().AccountByLogin(gomock.Any(), "alice").Return(entity.Account{}, entity.ErrNotFound)
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc entity.Account) error {
			require.Equal(t, "alice", acc.Login)
			require.Equal(t, entity.RoleUser, acc.Role)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("s3cret-pass")))

			return nil
		})

	err := a.Register(context.Background(), "alice", "s3cret-pass", entity.RoleUser)
	require.NoError(t, err)
}

func TestAuth_Register_LoginTaken(t *testing.T) {
	t.Parallel()

	a, repo := newAuth(t)

	repo.EXPECT().AccountByLogin(gomock.Any(), "alice").Return(entity.Account{Login: "alice"}, nil)

	err := a.Register(context.Background(), "alice", "s3cret-pass", entity.RoleUser)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestAuth_LoginAndVerify(t *testing.T) {
	t.Parallel()

	a, repo := newAuth(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	account := entity.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Login:        "alice",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}

	repo.EXPECT().AccountByLogin(gomock.Any(), "alice").Return(account, nil)
	repo.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rt entity.RefreshToken) error {
			require.Equal(t, account.ID, rt.UserID)
			require.Equal(t, testNow.Add(72*time.Hour), rt.ExpiresAt)
			require.NotEmpty(t, rt.Token)

			return nil
		})

	pair, err := a.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	user, err := a.VerifyAccess(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, account.ID, user.ID)
	require.Equal(t, "alice", user.Login)
	require.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	a, repo := newAuth(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().AccountByLogin(gomock.Any(), "alice").
		Return(entity.Account{Login: "alice", PasswordHash: string(hash)}, nil)

	_, err = a.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestAuth_VerifyAccess_Garbage(t *testing.T) {
	t.Parallel()

	a, _ := newAuth(t)

	_, err := a.VerifyAccess(context.Background(), "not-a-token")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestAuth_Refresh_Rotates(t *testing.T) {
	t.Parallel()

	a, repo := newAuth(t)

	account := entity.Account{
		ID:    uuid.Must(uuid.NewV4()),
		Login: "alice",
		Role:  entity.RoleUser,
	}

	stored := entity.RefreshToken{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    account.ID,
		Token:     "old-token",
		ExpiresAt: testNow.Add(time.Hour),
	}

	repo.EXPECT().RefreshTokenByToken(gomock.Any(), "old-token").Return(stored, nil)
	repo.EXPECT().Account(gomock.Any(), account.ID).Return(account, nil)
	repo.EXPECT().RotateRefreshToken(gomock.Any(), stored.ID, gomock.Any(), testNow.Add(72*time.Hour)).Return(nil)

	pair, err := a.Refresh(context.Background(), "old-token")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEqual(t, "old-token", pair.RefreshToken)
}

func TestAuth_Refresh_Expired(t *testing.T) {
	t.Parallel()

	a, repo := newAuth(t)

	repo.EXPECT().RefreshTokenByToken(gomock.Any(), "old-token").Return(entity.RefreshToken{
		ID:        uuid.Must(uuid.NewV4()),
		Token:     "old-token",
		ExpiresAt: testNow.Add(-time.Minute),
	}, nil)

	_, err := a.Refresh(context.Background(), "old-token")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestAuth_CleanExpiredRefreshTokens(t *testing.T) {
	t.Parallel()

	a, repo := newAuth(t)

	repo.EXPECT().DeleteExpiredRefreshTokens(gomock.Any(), testNow).Return(nil)

	err := a.CleanExpiredRefreshTokens(context.Background())
	require.NoError(t, err)
}
