package withdrawal

import "time"

type CreateRequest struct {
	TelegramID int64 `json:"telegram_id"`
	Amount     int   `json:"amount"`
}

type ProcessRequest struct {
	Note string `json:"note"` // Комментарий администратора
}

type WithdrawalResponse struct {
	ID          int        `json:"id"`
	TelegramID  int64      `json:"telegram_id"`
	Amount      int        `json:"amount"`
	Status      string     `json:"status"`
	AdminNote   string     `json:"admin_note,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
