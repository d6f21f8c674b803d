package withdrawal

import (
	"starspin_backend/internal/model"
	"context"
	"fmt"
	"time"
)

// Create создаёт заявку на вывод и сразу списывает сумму с баланса (холд).
// У игрока может быть не более одной ожидающей заявки.
// Списание в момент создания гарантирует, что конкурентный спин
// не увидит замороженные средства
func (s *serv) Create(ctx context.Context, telegramID int64, amount int) (*model.Withdrawal, error) {
	if amount < s.economyCfg.MinWithdrawal() {
		return nil, model.ErrBelowMinWithdrawal
	}

	var w *model.Withdrawal

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокировка строки игрока сериализует заявку со спинами
		player, err := s.playerRepo.GetByTelegramIDForUpdate(txCtx, telegramID)
		if err != nil {
			return err
		}
		if player.IsBanned {
			return model.ErrPlayerBanned
		}

		pending, err := s.withdrawalRepo.HasPending(txCtx, telegramID)
		if err != nil {
			return err
		}
		if pending {
			return model.ErrDuplicatePendingWithdrawal
		}

		if player.Stars < amount {
			return model.ErrInsufficientFunds
		}

		// Холд: сумма уходит с баланса при создании заявки
		if err := s.playerRepo.UpdateBalance(txCtx, telegramID, player.Stars-amount); err != nil {
			return fmt.Errorf("failed to hold withdrawal amount: %w", err)
		}

		w = &model.Withdrawal{
			TelegramID:  telegramID,
			Amount:      amount,
			Status:      model.WithdrawalPending,
			RequestedAt: time.Now(),
		}
		w.ID, err = s.withdrawalRepo.CreateWithdrawal(txCtx, w)
		if err != nil {
			return fmt.Errorf("failed to create withdrawal: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}
