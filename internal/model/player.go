package model

import "time"

// Player - игрок бота. Поле Stars — текущий расходуемый баланс,
// поля Total* — накопительные счётчики за всё время (только растут).
type Player struct {
	ID         int
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string

	Stars          int
	TotalDeposited int
	TotalWon       int
	TotalWithdrawn int

	// Реферальная система
	ReferrerID       int64 // 0 — пришёл без реферала
	TotalReferrals   int
	ReferralEarnings int
	FreeSpins        int

	IsBanned      bool
	CaptchaPassed bool
	CreatedAt     time.Time
}

// PlayerRegistration - данные регистрации игрока из чата
type PlayerRegistration struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
	ReferrerID int64 // 0 — пришёл без реферала
}

// Rank возвращает уровень игрока по сумме депозитов
func (p *Player) Rank() string {
	switch {
	case p.TotalDeposited >= 10000:
		return "VIP"
	case p.TotalDeposited >= 5000:
		return "Premium"
	case p.TotalDeposited >= 1000:
		return "Bronze"
	default:
		return "New"
	}
}
