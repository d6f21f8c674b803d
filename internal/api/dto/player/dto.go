package player

import "time"

type RegisterRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ReferrerID int64  `json:"referrer_id"` // 0 — пришёл без реферала
}

type PlayerResponse struct {
	TelegramID       int64     `json:"telegram_id"`
	Username         string    `json:"username"`
	Stars            int       `json:"stars"`
	TotalDeposited   int       `json:"total_deposited"`
	TotalWon         int       `json:"total_won"`
	TotalWithdrawn   int       `json:"total_withdrawn"`
	TotalReferrals   int       `json:"total_referrals"`
	ReferralEarnings int       `json:"referral_earnings"`
	FreeSpins        int       `json:"free_spins"`
	Rank             string    `json:"rank"`
	CaptchaPassed    bool      `json:"captcha_passed"`
	IsBanned         bool      `json:"is_banned"`
	CreatedAt        time.Time `json:"created_at"`
}

type CaptchaResponse struct {
	Question string `json:"question"` // Вопрос вида "a + b = ?"
}

type VerifyCaptchaRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Answer     string `json:"answer"`
}

type VerifyCaptchaResponse struct {
	Passed bool `json:"passed"`
}
