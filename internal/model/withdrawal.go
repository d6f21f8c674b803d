package model

import "time"

// WithdrawalStatus - статус заявки на вывод.
// pending -> approved | rejected, терминальные статусы не меняются.
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// Withdrawal - заявка на вывод звёзд.
// Средства списываются с баланса в момент создания заявки (холд),
// при отклонении возвращаются обратно.
type Withdrawal struct {
	ID          int
	TelegramID  int64
	Amount      int
	Status      WithdrawalStatus
	AdminNote   string
	RequestedAt time.Time
	ProcessedAt *time.Time
	ProcessedBy int64
}
