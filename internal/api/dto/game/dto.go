package game

type SpinRequest struct {
	TelegramID int64 `json:"telegram_id"` // ID игрока в Telegram
	Bet        int   `json:"bet"`         // Размер ставки (положительное целое, >0)
}

type SpinResponse struct {
	Win           bool      `json:"win"`             // Исход спина
	Multiplier    float64   `json:"multiplier"`      // Множитель выигрыша (0 при проигрыше)
	WinAmount     int       `json:"win_amount"`      // Выигрыш в звёздах
	Symbols       [3]string `json:"symbols"`         // Тройка символов для отображения
	Bet           int       `json:"bet"`             // Фактическая ставка
	FreeSpinUsed  bool      `json:"free_spin_used"`  // Спин был бесплатным
	Balance       int       `json:"balance"`         // Баланс после
	FreeSpinCount int       `json:"free_spin_count"` // Остаток фриспинов
}

type PayTableEntry struct {
	Symbol     string  `json:"symbol"`     // Символ алфавита
	Multiplier float64 `json:"multiplier"` // Базовый множитель символа
}
