package admin

type StatsResponse struct {
	TotalPlayers       int     `json:"total_players"`
	TotalDeposited     int     `json:"total_deposited"`
	TotalWithdrawn     int     `json:"total_withdrawn"`
	PendingWithdrawals int     `json:"pending_withdrawals"`
	Profit             int     `json:"profit"` // Депозиты минус выводы
	TotalSpins         int     `json:"total_spins"`
	TotalBet           int     `json:"total_bet"`
	TotalPayout        int     `json:"total_payout"`
	RTP                float64 `json:"rtp"`
	WindowRTP          float64 `json:"window_rtp"`
}
