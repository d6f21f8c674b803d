package payment

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository/repofakes"
	"starspin_backend/internal/service/contest"
	"starspin_backend/internal/service/referral"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEconomyConfig struct{}

func (testEconomyConfig) MinWithdrawal() int { return 150 }
func (testEconomyConfig) ReferralBonus() int { return 5 }
func (testEconomyConfig) StarPackages() map[int]int {
	return map[int]int{1: 1, 10: 10, 25: 25, 50: 50, 100: 100, 200: 200, 500: 500, 1000: 1000}
}
func (testEconomyConfig) ContestQualifyThreshold() int { return 2 }

type fixture struct {
	svc         *serv
	playerRepo  *repofakes.FakePlayerRepository
	txRepo      *repofakes.FakeTransactionRepository
	contestRepo *repofakes.FakeContestRepository
}

// Фикстура с настоящими сервисами рефералов и конкурсов поверх fake-репозиториев
func newFixture(players ...*model.Player) *fixture {
	f := &fixture{
		playerRepo:  repofakes.NewFakePlayerRepository(players...),
		txRepo:      &repofakes.FakeTransactionRepository{},
		contestRepo: repofakes.NewFakeContestRepository(),
	}

	contestServ := contest.NewContestService(
		testEconomyConfig{}, f.contestRepo, f.playerRepo, repofakes.FakeTxManager{})
	referralServ := referral.NewReferralService(
		testEconomyConfig{}, f.playerRepo, f.txRepo, contestServ)

	f.svc = NewPaymentService(
		testEconomyConfig{},
		f.playerRepo,
		f.txRepo,
		referralServ,
		repofakes.FakeTxManager{},
	).(*serv)
	return f
}

func TestDeposit_UnknownPackage(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1})

	_, err := f.svc.Deposit(context.Background(), 1, 42, "pay-1")

	require.ErrorIs(t, err, model.ErrUnknownPackage)
}

func TestDeposit_CreditsAndLogs(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, Stars: 10})

	p, err := f.svc.Deposit(context.Background(), 1, 100, "pay-1")

	require.NoError(t, err)
	assert.Equal(t, 110, p.Stars)
	assert.Equal(t, 100, p.TotalDeposited)

	require.Len(t, f.txRepo.Transactions, 1)
	tx := f.txRepo.Transactions[0]
	assert.Equal(t, model.TransactionPurchase, tx.Type)
	assert.Equal(t, 100, tx.Amount)
	assert.Equal(t, "pay-1", tx.PaymentID)
}

func TestDeposit_BannedPlayer(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1, IsBanned: true})

	_, err := f.svc.Deposit(context.Background(), 1, 100, "pay-1")

	require.ErrorIs(t, err, model.ErrPlayerBanned)
}

func TestDeposit_FirstDepositAwardsReferralBonus(t *testing.T) {
	f := newFixture(
		&model.Player{TelegramID: 100, Stars: 50},
		&model.Player{TelegramID: 1, ReferrerID: 100},
	)
	ctx := context.Background()

	_, err := f.svc.Deposit(ctx, 1, 100, "pay-1")
	require.NoError(t, err)

	referrer, _ := f.playerRepo.GetByTelegramID(ctx, 100)
	assert.Equal(t, 55, referrer.Stars)
	assert.Equal(t, 1, referrer.TotalReferrals)
	assert.Equal(t, 5, referrer.ReferralEarnings)

	// Второй депозит бонуса не даёт
	_, err = f.svc.Deposit(ctx, 1, 50, "pay-2")
	require.NoError(t, err)
	referrer, _ = f.playerRepo.GetByTelegramID(ctx, 100)
	assert.Equal(t, 55, referrer.Stars)
	assert.Equal(t, 1, referrer.TotalReferrals)
}

func TestDeposit_NoReferrer(t *testing.T) {
	f := newFixture(&model.Player{TelegramID: 1})

	p, err := f.svc.Deposit(context.Background(), 1, 10, "pay-1")

	require.NoError(t, err)
	assert.Equal(t, 10, p.Stars)
	assert.Zero(t, p.TotalReferrals)
}

func TestDeposit_ReferralCountsTowardContest(t *testing.T) {
	f := newFixture(
		&model.Player{TelegramID: 100, Stars: 0},
		&model.Player{TelegramID: 1, ReferrerID: 100},
		&model.Player{TelegramID: 2, ReferrerID: 100},
	)
	ctx := context.Background()

	contestServ := contest.NewContestService(
		testEconomyConfig{}, f.contestRepo, f.playerRepo, repofakes.FakeTxManager{})
	created, err := contestServ.Create(ctx, "Розыгрыш", "", time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = contestServ.Join(ctx, 100)
	require.NoError(t, err)

	// Первые депозиты двух приглашённых: порог 2 достигнут
	_, err = f.svc.Deposit(ctx, 1, 100, "pay-1")
	require.NoError(t, err)
	_, err = f.svc.Deposit(ctx, 2, 100, "pay-2")
	require.NoError(t, err)

	participant, err := f.contestRepo.GetParticipant(ctx, created.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, participant.ReferralsCompleted)
	assert.True(t, participant.IsQualified)
	assert.Equal(t, 1, participant.ContestNumber)
}
