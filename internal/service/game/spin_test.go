package game

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository/repofakes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spinFixture struct {
	svc        *serv
	playerRepo *repofakes.FakePlayerRepository
	spinRepo   *repofakes.FakeSpinRepository
	txRepo     *repofakes.FakeTransactionRepository
	statsRepo  *repofakes.FakeHouseStatsRepository
}

func newSpinFixture(rnd Rand, players ...*model.Player) *spinFixture {
	f := &spinFixture{
		playerRepo: repofakes.NewFakePlayerRepository(players...),
		spinRepo:   &repofakes.FakeSpinRepository{},
		txRepo:     &repofakes.FakeTransactionRepository{},
		statsRepo:  &repofakes.FakeHouseStatsRepository{},
	}
	f.svc = NewGameService(
		defaultTestConfig(),
		f.playerRepo,
		f.spinRepo,
		f.txRepo,
		f.statsRepo,
		repofakes.FakeTxManager{},
		rnd,
	).(*serv)
	return f
}

func TestSpin_InvalidWager(t *testing.T) {
	f := newSpinFixture(seededRand(1), &model.Player{TelegramID: 1, Stars: 100})

	for _, bet := range []int{0, -5} {
		_, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 1, Bet: bet})
		require.ErrorIs(t, err, model.ErrInvalidWager)
	}

	// Никаких мутаций при отказе
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 100, p.Stars)
	assert.Empty(t, f.spinRepo.Records)
	assert.Zero(t, f.statsRepo.TotalSpins)
}

func TestSpin_InsufficientFunds(t *testing.T) {
	f := newSpinFixture(seededRand(1), &model.Player{TelegramID: 1, Stars: 5})

	_, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 1, Bet: 10})

	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 5, p.Stars)
	assert.Empty(t, f.spinRepo.Records)
}

func TestSpin_PlayerNotFound(t *testing.T) {
	f := newSpinFixture(seededRand(1))

	_, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 404, Bet: 10})

	require.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestSpin_BannedPlayer(t *testing.T) {
	f := newSpinFixture(seededRand(1), &model.Player{TelegramID: 1, Stars: 100, IsBanned: true})

	_, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 1, Bet: 10})

	require.ErrorIs(t, err, model.ErrPlayerBanned)
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 100, p.Stars)
}

func TestSpin_LoseDebitsWager(t *testing.T) {
	// Float64 = 0.99 гарантирует проигрыш на любой ступени
	rnd := &seqRand{floats: []float64{0.99}, ints: []int{0, 3, 5}}
	f := newSpinFixture(rnd, &model.Player{TelegramID: 1, Stars: 100, TotalDeposited: 1000})

	res, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 1, Bet: 10})

	require.NoError(t, err)
	assert.False(t, res.Win)
	assert.Equal(t, 90, res.Balance)
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 90, p.Stars)
	assert.Equal(t, 0, p.TotalWon)
	require.Len(t, f.spinRepo.Records, 1)
	assert.Equal(t, 10, f.spinRepo.Records[0].BetAmount)
	assert.False(t, f.spinRepo.Records[0].IsWin)
	// Проигрыш не пишет транзакцию
	assert.Empty(t, f.txRepo.Transactions)
	assert.Equal(t, 1, f.statsRepo.TotalSpins)
}

func TestSpin_WinCreditsAndLogs(t *testing.T) {
	// Выигрыш с множителем x1.5 (num=60)
	rnd := &seqRand{floats: []float64{0.0}, ints: []int{60, 2}}
	f := newSpinFixture(rnd, &model.Player{TelegramID: 1, Stars: 100, TotalDeposited: 1000})

	res, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 1, Bet: 10})

	require.NoError(t, err)
	require.True(t, res.Win)
	assert.Equal(t, 1.5, res.Multiplier)
	assert.Equal(t, 15, res.WinAmount)
	// 100 - 10 + 15
	assert.Equal(t, 105, res.Balance)

	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 105, p.Stars)
	assert.Equal(t, 15, p.TotalWon)

	require.Len(t, f.txRepo.Transactions, 1)
	assert.Equal(t, model.TransactionWin, f.txRepo.Transactions[0].Type)
	assert.Equal(t, 15, f.txRepo.Transactions[0].Amount)

	require.Len(t, f.spinRepo.Records, 1)
	assert.True(t, f.spinRepo.Records[0].IsWin)
	assert.Equal(t, 15, f.spinRepo.Records[0].WinAmount)

	assert.Equal(t, 10, f.statsRepo.TotalBet)
	assert.Equal(t, 15, f.statsRepo.TotalPayout)
}

func TestSpin_FreeSpinConsumed(t *testing.T) {
	rnd := &seqRand{floats: []float64{0.99}, ints: []int{0, 3, 5}}
	f := newSpinFixture(rnd, &model.Player{TelegramID: 1, Stars: 100, TotalDeposited: 1000, FreeSpins: 2})

	res, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 1, Bet: 50})

	require.NoError(t, err)
	assert.True(t, res.FreeSpinUsed)
	// Ставка фриспина равна стоимости спина, а не запрошенной
	assert.Equal(t, 10, res.Bet)
	assert.Equal(t, 1, res.FreeSpinCount)
	// Баланс не тронут
	assert.Equal(t, 100, res.Balance)
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 100, p.Stars)
	assert.Equal(t, 1, p.FreeSpins)
}

func TestSpin_FreeSpinWithZeroBalance(t *testing.T) {
	// Фриспин доступен даже при пустом балансе
	rnd := &seqRand{floats: []float64{0.99}, ints: []int{0, 3, 5}}
	f := newSpinFixture(rnd, &model.Player{TelegramID: 1, Stars: 0, TotalDeposited: 1000, FreeSpins: 1})

	res, err := f.svc.Spin(context.Background(), model.SpinRequest{TelegramID: 1, Bet: 10})

	require.NoError(t, err)
	assert.True(t, res.FreeSpinUsed)
	assert.Equal(t, 0, res.FreeSpinCount)
}

func TestSpin_BalanceConservation(t *testing.T) {
	// После любой серии спинов баланс равен начальному минус сумма ставок
	// плюс сумма выигрышей, и никогда не уходит в минус
	f := newSpinFixture(seededRand(21),
		&model.Player{TelegramID: 1, Stars: 2000, TotalDeposited: 2000})

	ctx := context.Background()
	wagered, won := 0, 0
	for i := 0; i < 150; i++ {
		res, err := f.svc.Spin(ctx, model.SpinRequest{TelegramID: 1, Bet: 10})
		if err != nil {
			require.ErrorIs(t, err, model.ErrInsufficientFunds)
			break
		}
		wagered += res.Bet
		won += res.WinAmount
		require.GreaterOrEqual(t, res.Balance, 0)
	}

	p, _ := f.playerRepo.GetByTelegramID(ctx, 1)
	assert.Equal(t, 2000-wagered+won, p.Stars)
	assert.Equal(t, won, p.TotalWon)
	assert.Len(t, f.spinRepo.Records, f.statsRepo.TotalSpins)
}

func TestSpin_CASPreventsDoubleSpend(t *testing.T) {
	// Два конкурирующих спина на весь баланс: CAS-путь обязан отдать
	// второму ErrConcurrentModification после успеха первого
	repo := repofakes.NewFakePlayerRepository(&model.Player{TelegramID: 1, Stars: 100})
	ctx := context.Background()

	p, err := repo.GetByTelegramIDForUpdate(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateBalanceCAS(ctx, 1, p.Stars, 0))
	err = repo.UpdateBalanceCAS(ctx, 1, p.Stars, 0)
	require.ErrorIs(t, err, model.ErrConcurrentModification)
}
