package model

// GlobalStats - агрегаты по базе для админ-панели
type GlobalStats struct {
	TotalPlayers       int
	TotalDeposited     int
	TotalWithdrawn     int
	PendingWithdrawals int
}

// AdminStats - сводка для главного экрана админ-панели
type AdminStats struct {
	Global GlobalStats
	House  HouseStats
	Profit int // депозиты минус выводы
}

// HouseStats - накопленная статистика казино за время работы процесса
type HouseStats struct {
	TotalSpins  int
	TotalBet    int
	TotalPayout int
	RTP         float64 // (TotalPayout/TotalBet)*100
	WindowRTP   float64 // RTP в окне последних спинов
}
