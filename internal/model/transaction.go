package model

import "time"

// TransactionType - закрытый набор типов транзакций.
// Валидируется на границе леджера, свободный текст не допускается.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"
	TransactionWin        TransactionType = "win"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// Valid проверяет, что тип входит в закрытый набор
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionPurchase, TransactionWin, TransactionWithdrawal:
		return true
	}
	return false
}

// Transaction - запись журнала транзакций (append-only)
type Transaction struct {
	ID          int
	TelegramID  int64
	Type        TransactionType
	Amount      int
	Description string
	PaymentID   string
	CreatedAt   time.Time
}
