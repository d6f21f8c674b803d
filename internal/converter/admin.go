package converter

import (
	dtoAdmin "starspin_backend/internal/api/dto/admin"
	dtoAuth "starspin_backend/internal/api/dto/auth"
	"starspin_backend/internal/model"
)

func ToAdminStatsResponse(s model.AdminStats) dtoAdmin.StatsResponse {
	return dtoAdmin.StatsResponse{
		TotalPlayers:       s.Global.TotalPlayers,
		TotalDeposited:     s.Global.TotalDeposited,
		TotalWithdrawn:     s.Global.TotalWithdrawn,
		PendingWithdrawals: s.Global.PendingWithdrawals,
		Profit:             s.Profit,
		TotalSpins:         s.House.TotalSpins,
		TotalBet:           s.House.TotalBet,
		TotalPayout:        s.House.TotalPayout,
		RTP:                s.House.RTP,
		WindowRTP:          s.House.WindowRTP,
	}
}

func RegisterRequestToAdminModel(req *dtoAuth.RegisterRequest) *model.Admin {
	return &model.Admin{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
