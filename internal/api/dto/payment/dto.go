package payment

type DepositRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Stars      int    `json:"stars"`      // Ключ пакета звёзд
	PaymentID  string `json:"payment_id"` // ID платежа у провайдера
}

type DepositResponse struct {
	Balance        int    `json:"balance"`         // Баланс после зачисления
	TotalDeposited int    `json:"total_deposited"` // Накопленные депозиты
	Rank           string `json:"rank"`            // Уровень после депозита
}

type PackageEntry struct {
	Price int `json:"price"` // Цена в Telegram Stars
	Stars int `json:"stars"` // Зачисляемые звёзды
}
