package converter

import (
	"starspin_backend/internal/api/dto/game"
	"starspin_backend/internal/config"
	"starspin_backend/internal/model"
)

func ToSpinRequest(req game.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		TelegramID: req.TelegramID,
		Bet:        req.Bet,
	}
}

func ToSpinResponse(res model.SpinResult) game.SpinResponse {
	return game.SpinResponse{
		Win:           res.Win,
		Multiplier:    res.Multiplier,
		WinAmount:     res.WinAmount,
		Symbols:       res.Symbols,
		Bet:           res.Bet,
		FreeSpinUsed:  res.FreeSpinUsed,
		Balance:       res.Balance,
		FreeSpinCount: res.FreeSpinCount,
	}
}

func ToPayTableResponse(symbols []config.SymbolPayout) []game.PayTableEntry {
	result := make([]game.PayTableEntry, len(symbols))
	for i, s := range symbols {
		result[i] = game.PayTableEntry{
			Symbol:     s.Symbol,
			Multiplier: s.Multiplier,
		}
	}
	return result
}
