package player

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository/repofakes"
	"starspin_backend/internal/repository/session_cache"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        *serv
	playerRepo *repofakes.FakePlayerRepository
}

func newFixture(players ...*model.Player) *fixture {
	f := &fixture{playerRepo: repofakes.NewFakePlayerRepository(players...)}
	f.svc = NewPlayerService(
		f.playerRepo,
		session_cache.NewSessionCache(time.Minute),
		repofakes.FakeTxManager{},
	).(*serv)
	return f
}

func TestRegister_CreatesOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	reg := model.PlayerRegistration{TelegramID: 1, Username: "alice", FirstName: "Alice"}

	first, err := f.svc.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Username)

	// Повторная регистрация не создаёт второго игрока и не меняет данные
	reg.Username = "alice_new"
	second, err := f.svc.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, "alice", second.Username)
	assert.Len(t, f.playerRepo.Players, 1)
}

func TestRegister_ReferralAttribution(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 100})
	ctx := context.Background()

	p, err := f.svc.Register(ctx, model.PlayerRegistration{TelegramID: 1, ReferrerID: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.ReferrerID)
}

func TestRegister_SelfReferralStripped(t *testing.T) {
	f := newFixture()

	p, err := f.svc.Register(context.Background(), model.PlayerRegistration{TelegramID: 1, ReferrerID: 1})

	require.NoError(t, err)
	assert.Zero(t, p.ReferrerID)
}

func TestRegister_UnknownReferrerStripped(t *testing.T) {
	f := newFixture()

	p, err := f.svc.Register(context.Background(), model.PlayerRegistration{TelegramID: 1, ReferrerID: 999})

	require.NoError(t, err)
	assert.Zero(t, p.ReferrerID)
}

func TestCaptchaFlow(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1})
	ctx := context.Background()

	question, err := f.svc.NewCaptcha(ctx, 1)
	require.NoError(t, err)

	// Вопрос вида "a + b = ?"
	parts := strings.Split(strings.TrimSuffix(question, " = ?"), " + ")
	require.Len(t, parts, 2)
	a, err := strconv.Atoi(parts[0])
	require.NoError(t, err)
	b, err := strconv.Atoi(parts[1])
	require.NoError(t, err)

	// Неверный ответ не засчитывается
	ok, err := f.svc.VerifyCaptcha(ctx, 1, strconv.Itoa(a+b+1))
	require.NoError(t, err)
	assert.False(t, ok)

	// Верный ответ помечает игрока и удаляет капчу
	ok, err = f.svc.VerifyCaptcha(ctx, 1, strconv.Itoa(a+b))
	require.NoError(t, err)
	assert.True(t, ok)

	p, _ := f.playerRepo.GetByTelegramID(ctx, 1)
	assert.True(t, p.CaptchaPassed)

	// Повторная проверка того же ответа уже не проходит
	ok, err = f.svc.VerifyCaptcha(ctx, 1, strconv.Itoa(a+b))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCaptcha_UnknownPlayer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.NewCaptcha(context.Background(), 404)

	require.ErrorIs(t, err, model.ErrPlayerNotFound)
}
