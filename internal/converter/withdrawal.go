package converter

import (
	"starspin_backend/internal/api/dto/withdrawal"
	"starspin_backend/internal/model"
)

func ToWithdrawalResponse(w model.Withdrawal) withdrawal.WithdrawalResponse {
	return withdrawal.WithdrawalResponse{
		ID:          w.ID,
		TelegramID:  w.TelegramID,
		Amount:      w.Amount,
		Status:      string(w.Status),
		AdminNote:   w.AdminNote,
		RequestedAt: w.RequestedAt,
		ProcessedAt: w.ProcessedAt,
	}
}

func ToWithdrawalsResponse(list []model.Withdrawal) []withdrawal.WithdrawalResponse {
	result := make([]withdrawal.WithdrawalResponse, len(list))
	for i, w := range list {
		result[i] = ToWithdrawalResponse(w)
	}
	return result
}
