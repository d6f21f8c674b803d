package repository

import (
	"starspin_backend/internal/model"
	"context"
)

type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player *model.Player) (id int, err error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Player, error)
	// GetByTelegramIDForUpdate читает игрока с блокировкой строки (FOR UPDATE).
	// Вызывается только внутри транзакции — сериализует конкурентные операции одного игрока.
	GetByTelegramIDForUpdate(ctx context.Context, telegramID int64) (*model.Player, error)

	UpdateBalance(ctx context.Context, telegramID int64, stars int) error
	// UpdateBalanceCAS обновляет баланс только если он не изменился с момента чтения.
	// При несовпадении возвращает model.ErrConcurrentModification
	UpdateBalanceCAS(ctx context.Context, telegramID int64, expected, stars int) error
	UpdateTotals(ctx context.Context, telegramID int64, deposited, won, withdrawn int) error
	UpdateReferralStats(ctx context.Context, telegramID int64, totalReferrals, earnings int) error
	UpdateFreeSpins(ctx context.Context, telegramID int64, count int) error
	SetCaptchaPassed(ctx context.Context, telegramID int64, passed bool) error

	GlobalStats(ctx context.Context) (*model.GlobalStats, error)
}

// SpinRepository - журнал спинов. Только добавление, записи никогда не мутируются
type SpinRepository interface {
	CreateSpinRecord(ctx context.Context, record *model.SpinRecord) (id int, err error)
}

// TransactionRepository - журнал транзакций. Только добавление
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) (id int, err error)
}

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w *model.Withdrawal) (id int, err error)
	GetByIDForUpdate(ctx context.Context, id int) (*model.Withdrawal, error)
	HasPending(ctx context.Context, telegramID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int, status model.WithdrawalStatus, processedBy int64, note string) error
	ListPending(ctx context.Context) ([]model.Withdrawal, error)
}

type ContestRepository interface {
	CreateContest(ctx context.Context, contest *model.Contest) (id int, err error)
	GetActiveContest(ctx context.Context) (*model.Contest, error)
	FinishContest(ctx context.Context, id int, winners [3]int64) error

	GetParticipant(ctx context.Context, contestID int, telegramID int64) (*model.ContestParticipant, error)
	CreateParticipant(ctx context.Context, p *model.ContestParticipant) (id int, err error)
	UpdateParticipant(ctx context.Context, p *model.ContestParticipant) error
	ListParticipants(ctx context.Context, contestID int) ([]model.ContestParticipant, error)
	NextContestNumber(ctx context.Context, contestID int) (int, error)
}

type AuthRepository interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) (id int, err error)
	GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error)

	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetAdminBySessionID(ctx context.Context, sessionID string) (*model.Admin, error)
}

// HouseStatsRepository - статистика казино в памяти процесса
type HouseStatsRepository interface {
	Update(bet, payout int)
	Snapshot() model.HouseStats
}

// SessionCacheRepository - короткоживущее состояние диалога с игроком
// (сейчас только ожидаемый ответ капчи) с TTL.
// Глобальные map-ы для этого запрещены
type SessionCacheRepository interface {
	SetCaptcha(telegramID int64, answer string)
	Captcha(telegramID int64) (string, bool)
	DeleteCaptcha(telegramID int64)
}
