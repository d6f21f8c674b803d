package service

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/model"
	"context"
	"time"
)

type GameService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	PayTable() []config.SymbolPayout
}

type PaymentService interface {
	Deposit(ctx context.Context, telegramID int64, stars int, paymentID string) (*model.Player, error)
	Packages() map[int]int
}

type WithdrawalService interface {
	Create(ctx context.Context, telegramID int64, amount int) (*model.Withdrawal, error)
	Approve(ctx context.Context, id int, adminID int64, note string) (*model.Withdrawal, error)
	Reject(ctx context.Context, id int, adminID int64, note string) (*model.Withdrawal, error)
	ListPending(ctx context.Context) ([]model.Withdrawal, error)
}

// ReferralService начисляет бонус рефереру после первого депозита приглашённого
type ReferralService interface {
	AwardDepositBonus(ctx context.Context, refereeID int64) error
}

type ContestService interface {
	Active(ctx context.Context) (*model.Contest, error)
	Create(ctx context.Context, title, description string, endDate time.Time) (*model.Contest, error)
	Join(ctx context.Context, telegramID int64) (*model.ContestParticipant, error)
	RecordReferral(ctx context.Context, telegramID int64) error
	Finish(ctx context.Context, contestID int) (*model.Contest, error)
	Standings(ctx context.Context, contestID int) ([]model.ContestParticipant, error)
}

type PlayerService interface {
	Register(ctx context.Context, reg model.PlayerRegistration) (*model.Player, error)
	Profile(ctx context.Context, telegramID int64) (*model.Player, error)
	NewCaptcha(ctx context.Context, telegramID int64) (string, error)
	VerifyCaptcha(ctx context.Context, telegramID int64, answer string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, admin *model.Admin) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type AdminService interface {
	Stats(ctx context.Context) (*model.AdminStats, error)
}
