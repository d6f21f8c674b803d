package converter

import (
	"starspin_backend/internal/api/dto/player"
	"starspin_backend/internal/model"
)

func ToPlayerRegistration(req player.RegisterRequest) model.PlayerRegistration {
	return model.PlayerRegistration{
		TelegramID: req.TelegramID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ReferrerID: req.ReferrerID,
	}
}

func ToPlayerResponse(p model.Player) player.PlayerResponse {
	return player.PlayerResponse{
		TelegramID:       p.TelegramID,
		Username:         p.Username,
		Stars:            p.Stars,
		TotalDeposited:   p.TotalDeposited,
		TotalWon:         p.TotalWon,
		TotalWithdrawn:   p.TotalWithdrawn,
		TotalReferrals:   p.TotalReferrals,
		ReferralEarnings: p.ReferralEarnings,
		FreeSpins:        p.FreeSpins,
		Rank:             p.Rank(),
		CaptchaPassed:    p.CaptchaPassed,
		IsBanned:         p.IsBanned,
		CreatedAt:        p.CreatedAt,
	}
}
