package withdrawal

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository/repofakes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEconomyConfig struct{}

func (testEconomyConfig) MinWithdrawal() int           { return 150 }
func (testEconomyConfig) ReferralBonus() int           { return 5 }
func (testEconomyConfig) StarPackages() map[int]int    { return map[int]int{100: 100} }
func (testEconomyConfig) ContestQualifyThreshold() int { return 5 }

type fixture struct {
	svc            *serv
	playerRepo     *repofakes.FakePlayerRepository
	withdrawalRepo *repofakes.FakeWithdrawalRepository
	txRepo         *repofakes.FakeTransactionRepository
}

func newFixture(players ...*model.Player) *fixture {
	f := &fixture{
		playerRepo:     repofakes.NewFakePlayerRepository(players...),
		withdrawalRepo: repofakes.NewFakeWithdrawalRepository(),
		txRepo:         &repofakes.FakeTransactionRepository{},
	}
	f.svc = NewWithdrawalService(
		testEconomyConfig{},
		f.playerRepo,
		f.withdrawalRepo,
		f.txRepo,
		repofakes.FakeTxManager{},
	).(*serv)
	return f
}

func TestCreate_BelowMinimum(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 1000})

	_, err := f.svc.Create(context.Background(), 1, 149)

	require.ErrorIs(t, err, model.ErrBelowMinWithdrawal)
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 1000, p.Stars)
}

func TestCreate_InsufficientFunds(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 100})

	_, err := f.svc.Create(context.Background(), 1, 150)

	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 100, p.Stars)
}

func TestCreate_HoldsFunds(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 500})

	w, err := f.svc.Create(context.Background(), 1, 200)

	require.NoError(t, err)
	assert.Equal(t, model.WithdrawalPending, w.Status)
	assert.Equal(t, 200, w.Amount)

	// Сумма списана в момент создания заявки
	p, _ := f.playerRepo.GetByTelegramID(context.Background(), 1)
	assert.Equal(t, 300, p.Stars)
	// Счётчик выведенного растёт только при подтверждении
	assert.Equal(t, 0, p.TotalWithdrawn)
}

func TestCreate_DuplicatePending(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 1000})
	ctx := context.Background()

	_, err := f.svc.Create(ctx, 1, 200)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, 1, 200)
	require.ErrorIs(t, err, model.ErrDuplicatePendingWithdrawal)

	// Холд только одной заявки
	p, _ := f.playerRepo.GetByTelegramID(ctx, 1)
	assert.Equal(t, 800, p.Stars)
}

func TestCreate_BannedPlayer(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 1000, IsBanned: true})

	_, err := f.svc.Create(context.Background(), 1, 200)

	require.ErrorIs(t, err, model.ErrPlayerBanned)
}

func TestApprove(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 500})
	ctx := context.Background()

	created, err := f.svc.Create(ctx, 1, 200)
	require.NoError(t, err)

	w, err := f.svc.Approve(ctx, created.ID, 77, "ok")
	require.NoError(t, err)
	assert.Equal(t, model.WithdrawalApproved, w.Status)
	assert.Equal(t, int64(77), w.ProcessedBy)
	require.NotNil(t, w.ProcessedAt)

	p, _ := f.playerRepo.GetByTelegramID(ctx, 1)
	// Баланс не меняется при подтверждении, холд был раньше
	assert.Equal(t, 300, p.Stars)
	assert.Equal(t, 200, p.TotalWithdrawn)

	// Отрицательная запись в журнале транзакций
	require.Len(t, f.txRepo.Transactions, 1)
	assert.Equal(t, model.TransactionWithdrawal, f.txRepo.Transactions[0].Type)
	assert.Equal(t, -200, f.txRepo.Transactions[0].Amount)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 500})
	ctx := context.Background()

	created, err := f.svc.Create(ctx, 1, 200)
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, created.ID, 77, "ok")
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, created.ID, 77, "again")
	require.ErrorIs(t, err, model.ErrWithdrawalNotPending)
	_, err = f.svc.Reject(ctx, created.ID, 77, "again")
	require.ErrorIs(t, err, model.ErrWithdrawalNotPending)

	// Счётчик выведенного не задвоился
	p, _ := f.playerRepo.GetByTelegramID(ctx, 1)
	assert.Equal(t, 200, p.TotalWithdrawn)
}

func TestReject_RefundsHold(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 500})
	ctx := context.Background()

	created, err := f.svc.Create(ctx, 1, 200)
	require.NoError(t, err)

	w, err := f.svc.Reject(ctx, created.ID, 77, "fraud check")
	require.NoError(t, err)
	assert.Equal(t, model.WithdrawalRejected, w.Status)
	assert.Equal(t, "fraud check", w.AdminNote)

	// Возврат ровно захолдированной суммы
	p, _ := f.playerRepo.GetByTelegramID(ctx, 1)
	assert.Equal(t, 500, p.Stars)
	assert.Equal(t, 0, p.TotalWithdrawn)
	assert.Empty(t, f.txRepo.Transactions)

	// После отклонения можно создать новую заявку
	_, err = f.svc.Create(ctx, 1, 150)
	require.NoError(t, err)
}

func TestListPending(t *testing.T) {
	f := newFixture(
		&model.Player{TelegramID: 1, Stars: 500},
		&model.Player{TelegramID: 2, Stars: 500},
	)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, 1, 150)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, 2, 300)
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, first.ID, 77, "")
	require.NoError(t, err)

	pending, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].TelegramID)
}
