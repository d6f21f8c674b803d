package auth

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository/repofakes"
	"starspin_backend/pkg/token"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJWTConfig struct{}

func (testJWTConfig) AccessTokenSecretKey() []byte        { return []byte("test-secret") }
func (testJWTConfig) AccessTokenDuration() time.Duration  { return 15 * time.Minute }
func (testJWTConfig) RefreshTokenDuration() time.Duration { return 24 * time.Hour }

type authFixture struct {
	svc      *serv
	authRepo *repofakes.FakeAuthRepository
}

func newAuthFixture() authFixture {
	authRepo := repofakes.NewFakeAuthRepository()
	svc := NewAuthService(repofakes.FakeTxManager{}, authRepo, testJWTConfig{}).(*serv)
	return authFixture{svc: svc, authRepo: authRepo}
}

func TestRegister_CreatesAdminAndSession(t *testing.T) {
	f := newAuthFixture()

	data, err := f.svc.Register(context.Background(), &model.Admin{
		Name:     "Алексей",
		Login:    "alex",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, data.AccessToken)
	require.NotEmpty(t, data.RefreshToken)
	require.NotEmpty(t, data.SessionID)

	// Пароль в хранилище лежит только в виде bcrypt-хэша
	stored, err := f.authRepo.GetAdminByLogin(context.Background(), "alex")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)

	// Access токен валиден и содержит ID администратора
	claims, err := token.VerifyToken(data.AccessToken, testJWTConfig{}.AccessTokenSecretKey())
	require.NoError(t, err)
	assert.Equal(t, "1", claims.ID)

	// В хранилище лежит хэш refresh токена, а не сам токен
	hash, err := f.authRepo.GetRefreshTokenBySessionID(context.Background(), data.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, data.RefreshToken, hash)
	assert.True(t, token.VerifyRefreshToken(data.RefreshToken, hash))
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), &model.Admin{Name: "A", Login: "alex", Password: "secret123"})
	require.NoError(t, err)

	data, err := f.svc.Login(context.Background(), "alex", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, data.AccessToken)

	claims, err := token.VerifyToken(data.AccessToken, testJWTConfig{}.AccessTokenSecretKey())
	require.NoError(t, err)
	assert.Equal(t, "1", claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	_, err := f.svc.Register(context.Background(), &model.Admin{Name: "A", Login: "alex", Password: "secret123"})
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), "alex", "wrong")
	assert.Error(t, err)
}

func TestLogin_UnknownAdmin(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, model.ErrAdminNotFound)
}

func TestRefresh(t *testing.T) {
	f := newAuthFixture()
	data, err := f.svc.Register(context.Background(), &model.Admin{Name: "A", Login: "alex", Password: "secret123"})
	require.NoError(t, err)

	newAccess, err := f.svc.Refresh(context.Background(), data)
	require.NoError(t, err)

	claims, err := token.VerifyToken(newAccess, testJWTConfig{}.AccessTokenSecretKey())
	require.NoError(t, err)
	assert.Equal(t, "1", claims.ID)
}

func TestRefresh_InvalidToken(t *testing.T) {
	f := newAuthFixture()
	data, err := f.svc.Register(context.Background(), &model.Admin{Name: "A", Login: "alex", Password: "secret123"})
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), &model.AuthData{
		SessionID:    data.SessionID,
		RefreshToken: "forged",
	})
	assert.Error(t, err)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	f := newAuthFixture()
	data, err := f.svc.Register(context.Background(), &model.Admin{Name: "A", Login: "alex", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), data.SessionID))

	_, err = f.svc.Refresh(context.Background(), data)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
