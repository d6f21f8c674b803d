// Package repofakes содержит in-memory реализации репозиториев для тестов.
// Состояние хранится в map-ах, что позволяет писать интеграционные
// юнит-тесты сервисов без Postgres.
package repofakes

import (
	"starspin_backend/internal/model"
	"context"
	"sort"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// FakeTxManager выполняет функцию без реальной транзакции
type FakeTxManager struct{}

func (FakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (FakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type FakePlayerRepository struct {
	Players map[int64]*model.Player
}

func NewFakePlayerRepository(players ...*model.Player) *FakePlayerRepository {
	r := &FakePlayerRepository{Players: map[int64]*model.Player{}}
	for _, p := range players {
		r.Players[p.TelegramID] = p
	}
	return r
}

func (r *FakePlayerRepository) CreatePlayer(_ context.Context, p *model.Player) (int, error) {
	p.CreatedAt = time.Now()
	r.Players[p.TelegramID] = p
	return len(r.Players), nil
}

func (r *FakePlayerRepository) GetByTelegramID(_ context.Context, id int64) (*model.Player, error) {
	p, ok := r.Players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *FakePlayerRepository) GetByTelegramIDForUpdate(ctx context.Context, id int64) (*model.Player, error) {
	return r.GetByTelegramID(ctx, id)
}

func (r *FakePlayerRepository) UpdateBalance(_ context.Context, id int64, stars int) error {
	p, ok := r.Players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	p.Stars = stars
	return nil
}

func (r *FakePlayerRepository) UpdateBalanceCAS(_ context.Context, id int64, expected, stars int) error {
	p, ok := r.Players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if p.Stars != expected {
		return model.ErrConcurrentModification
	}
	p.Stars = stars
	return nil
}

func (r *FakePlayerRepository) UpdateTotals(_ context.Context, id int64, deposited, won, withdrawn int) error {
	p, ok := r.Players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	p.TotalDeposited = deposited
	p.TotalWon = won
	p.TotalWithdrawn = withdrawn
	return nil
}

func (r *FakePlayerRepository) UpdateReferralStats(_ context.Context, id int64, totalReferrals, earnings int) error {
	p, ok := r.Players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	p.TotalReferrals = totalReferrals
	p.ReferralEarnings = earnings
	return nil
}

func (r *FakePlayerRepository) UpdateFreeSpins(_ context.Context, id int64, count int) error {
	p, ok := r.Players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	p.FreeSpins = count
	return nil
}

func (r *FakePlayerRepository) SetCaptchaPassed(_ context.Context, id int64, passed bool) error {
	p, ok := r.Players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	p.CaptchaPassed = passed
	return nil
}

func (r *FakePlayerRepository) GlobalStats(_ context.Context) (*model.GlobalStats, error) {
	stats := &model.GlobalStats{TotalPlayers: len(r.Players)}
	for _, p := range r.Players {
		stats.TotalDeposited += p.TotalDeposited
		stats.TotalWithdrawn += p.TotalWithdrawn
	}
	return stats, nil
}

type FakeSpinRepository struct {
	Records []model.SpinRecord
}

func (r *FakeSpinRepository) CreateSpinRecord(_ context.Context, rec *model.SpinRecord) (int, error) {
	rec.ID = len(r.Records) + 1
	rec.CreatedAt = time.Now()
	r.Records = append(r.Records, *rec)
	return rec.ID, nil
}

type FakeTransactionRepository struct {
	Transactions []model.Transaction
}

func (r *FakeTransactionRepository) CreateTransaction(_ context.Context, tx *model.Transaction) (int, error) {
	if !tx.Type.Valid() {
		return 0, model.ErrUnknownTransactionType
	}
	tx.ID = len(r.Transactions) + 1
	tx.CreatedAt = time.Now()
	r.Transactions = append(r.Transactions, *tx)
	return tx.ID, nil
}

type FakeWithdrawalRepository struct {
	Withdrawals map[int]*model.Withdrawal
	nextID      int
}

func NewFakeWithdrawalRepository() *FakeWithdrawalRepository {
	return &FakeWithdrawalRepository{Withdrawals: map[int]*model.Withdrawal{}}
}

func (r *FakeWithdrawalRepository) CreateWithdrawal(_ context.Context, w *model.Withdrawal) (int, error) {
	r.nextID++
	cp := *w
	cp.ID = r.nextID
	cp.Status = model.WithdrawalPending
	cp.RequestedAt = time.Now()
	r.Withdrawals[cp.ID] = &cp
	return cp.ID, nil
}

func (r *FakeWithdrawalRepository) GetByIDForUpdate(_ context.Context, id int) (*model.Withdrawal, error) {
	w, ok := r.Withdrawals[id]
	if !ok {
		return nil, model.ErrWithdrawalNotPending
	}
	cp := *w
	return &cp, nil
}

func (r *FakeWithdrawalRepository) HasPending(_ context.Context, telegramID int64) (bool, error) {
	for _, w := range r.Withdrawals {
		if w.TelegramID == telegramID && w.Status == model.WithdrawalPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeWithdrawalRepository) UpdateStatus(_ context.Context, id int, status model.WithdrawalStatus, processedBy int64, note string) error {
	w, ok := r.Withdrawals[id]
	if !ok || w.Status != model.WithdrawalPending {
		return model.ErrWithdrawalNotPending
	}
	now := time.Now()
	w.Status = status
	w.ProcessedAt = &now
	w.ProcessedBy = processedBy
	w.AdminNote = note
	return nil
}

func (r *FakeWithdrawalRepository) ListPending(_ context.Context) ([]model.Withdrawal, error) {
	var result []model.Withdrawal
	for _, w := range r.Withdrawals {
		if w.Status == model.WithdrawalPending {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RequestedAt.Before(result[j].RequestedAt)
	})
	return result, nil
}

type FakeContestRepository struct {
	Contests     map[int]*model.Contest
	Participants []*model.ContestParticipant
	nextID       int
}

func NewFakeContestRepository() *FakeContestRepository {
	return &FakeContestRepository{Contests: map[int]*model.Contest{}}
}

func (r *FakeContestRepository) CreateContest(_ context.Context, c *model.Contest) (int, error) {
	r.nextID++
	cp := *c
	cp.ID = r.nextID
	cp.IsActive = true
	r.Contests[cp.ID] = &cp
	return cp.ID, nil
}

func (r *FakeContestRepository) GetActiveContest(_ context.Context) (*model.Contest, error) {
	for _, c := range r.Contests {
		if c.IsActive {
			cp := *c
			return &cp, nil
		}
	}
	return nil, model.ErrContestNotFound
}

func (r *FakeContestRepository) FinishContest(_ context.Context, id int, winners [3]int64) error {
	c, ok := r.Contests[id]
	if !ok {
		return model.ErrContestNotFound
	}
	c.IsActive = false
	c.Winner1, c.Winner2, c.Winner3 = winners[0], winners[1], winners[2]
	c.WinnersAnnounced = true
	return nil
}

func (r *FakeContestRepository) GetParticipant(_ context.Context, contestID int, telegramID int64) (*model.ContestParticipant, error) {
	for _, p := range r.Participants {
		if p.ContestID == contestID && p.TelegramID == telegramID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *FakeContestRepository) CreateParticipant(_ context.Context, p *model.ContestParticipant) (int, error) {
	cp := *p
	cp.ID = len(r.Participants) + 1
	cp.RegisteredAt = time.Now()
	r.Participants = append(r.Participants, &cp)
	return cp.ID, nil
}

func (r *FakeContestRepository) UpdateParticipant(_ context.Context, p *model.ContestParticipant) error {
	for _, stored := range r.Participants {
		if stored.ID == p.ID {
			stored.ReferralsCompleted = p.ReferralsCompleted
			stored.IsQualified = p.IsQualified
			if p.ContestNumber > 0 {
				stored.ContestNumber = p.ContestNumber
				stored.NumberAssignedAt = p.NumberAssignedAt
			}
			return nil
		}
	}
	return model.ErrContestNotFound
}

func (r *FakeContestRepository) ListParticipants(_ context.Context, contestID int) ([]model.ContestParticipant, error) {
	var result []model.ContestParticipant
	for _, p := range r.Participants {
		if p.ContestID == contestID {
			result = append(result, *p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].ReferralsCompleted != result[j].ReferralsCompleted {
			return result[i].ReferralsCompleted > result[j].ReferralsCompleted
		}
		return result[i].RegisteredAt.Before(result[j].RegisteredAt)
	})
	return result, nil
}

func (r *FakeContestRepository) NextContestNumber(_ context.Context, contestID int) (int, error) {
	max := 0
	for _, p := range r.Participants {
		if p.ContestID == contestID && p.ContestNumber > max {
			max = p.ContestNumber
		}
	}
	return max + 1, nil
}

type FakeAuthRepository struct {
	Admins   map[string]*model.Admin
	Sessions map[string]*model.Session
	nextID   int
}

func NewFakeAuthRepository() *FakeAuthRepository {
	return &FakeAuthRepository{
		Admins:   map[string]*model.Admin{},
		Sessions: map[string]*model.Session{},
	}
}

func (r *FakeAuthRepository) CreateAdmin(_ context.Context, admin *model.Admin) (int, error) {
	r.nextID++
	cp := *admin
	cp.ID = r.nextID
	r.Admins[cp.Login] = &cp
	return cp.ID, nil
}

func (r *FakeAuthRepository) GetAdminByLogin(_ context.Context, login string) (*model.Admin, error) {
	a, ok := r.Admins[login]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *FakeAuthRepository) CreateSession(_ context.Context, session *model.Session) error {
	cp := *session
	r.Sessions[cp.ID] = &cp
	return nil
}

func (r *FakeAuthRepository) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	s, ok := r.Sessions[sessionID]
	if !ok {
		return "", model.ErrSessionNotFound
	}
	return s.RefreshToken, nil
}

func (r *FakeAuthRepository) DeleteSession(_ context.Context, sessionID string) error {
	delete(r.Sessions, sessionID)
	return nil
}

func (r *FakeAuthRepository) GetAdminBySessionID(_ context.Context, sessionID string) (*model.Admin, error) {
	s, ok := r.Sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	for _, a := range r.Admins {
		if a.ID == s.AdminID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, model.ErrAdminNotFound
}

type FakeHouseStatsRepository struct {
	TotalSpins  int
	TotalBet    int
	TotalPayout int
}

func (r *FakeHouseStatsRepository) Update(bet, payout int) {
	r.TotalSpins++
	r.TotalBet += bet
	r.TotalPayout += payout
}

func (r *FakeHouseStatsRepository) Snapshot() model.HouseStats {
	s := model.HouseStats{
		TotalSpins:  r.TotalSpins,
		TotalBet:    r.TotalBet,
		TotalPayout: r.TotalPayout,
	}
	if s.TotalBet > 0 {
		s.RTP = float64(s.TotalPayout) / float64(s.TotalBet) * 100
		s.WindowRTP = s.RTP
	}
	return s
}
