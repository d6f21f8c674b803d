package model

import "time"

// SpinRequest - запрос на спин от игрока
type SpinRequest struct {
	TelegramID int64
	Bet        int
}

// SpinOutcome - результат работы контроллера выплат для одной ставки.
// Символы чисто декоративные: решение выигрыш/проигрыш принимается до их генерации.
type SpinOutcome struct {
	Win        bool
	Multiplier float64
	WinAmount  int
	Symbols    [3]string
}

// SpinResult - итог спина вместе с состоянием баланса после него
type SpinResult struct {
	Win           bool
	Multiplier    float64
	WinAmount     int
	Symbols       [3]string
	Bet           int
	FreeSpinUsed  bool
	Balance       int
	FreeSpinCount int
}

// SpinRecord - неизменяемая запись о спине для аудита.
// Создается один раз на спин и никогда не мутируется.
type SpinRecord struct {
	ID         int
	TelegramID int64
	BetAmount  int
	WinAmount  int
	IsWin      bool
	Multiplier float64
	Symbols    string
	CreatedAt  time.Time
}
