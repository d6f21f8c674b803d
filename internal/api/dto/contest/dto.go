package contest

import "time"

type CreateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EndDate     time.Time `json:"end_date"`
}

type JoinRequest struct {
	TelegramID int64 `json:"telegram_id"`
}

type ContestResponse struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	IsActive         bool      `json:"is_active"`
	Winners          []int64   `json:"winners,omitempty"` // Топ-3, если объявлены
	WinnersAnnounced bool      `json:"winners_announced"`
}

type ParticipantResponse struct {
	TelegramID         int64 `json:"telegram_id"`
	ReferralsCompleted int   `json:"referrals_completed"`
	ContestNumber      int   `json:"contest_number,omitempty"` // 0 — номер ещё не присвоен
	IsQualified        bool  `json:"is_qualified"`
}
