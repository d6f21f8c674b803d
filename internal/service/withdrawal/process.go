package withdrawal

import (
	"starspin_backend/internal/model"
	"context"
	"fmt"
	"time"
)

// Approve подтверждает выплату: заявка переходит в approved,
// счётчик выведенного у игрока растёт на сумму заявки,
// в журнал пишется отрицательная withdrawal-транзакция.
// Баланс не трогается, он уменьшен ещё при создании заявки
func (s *serv) Approve(ctx context.Context, id int, adminID int64, note string) (*model.Withdrawal, error) {
	var w *model.Withdrawal

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		w, err = s.withdrawalRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if w.Status != model.WithdrawalPending {
			return model.ErrWithdrawalNotPending
		}

		player, err := s.playerRepo.GetByTelegramIDForUpdate(txCtx, w.TelegramID)
		if err != nil {
			return err
		}

		if err := s.playerRepo.UpdateTotals(txCtx, w.TelegramID,
			player.TotalDeposited, player.TotalWon, player.TotalWithdrawn+w.Amount); err != nil {
			return fmt.Errorf("failed to update totals: %w", err)
		}

		if err := s.withdrawalRepo.UpdateStatus(txCtx, id, model.WithdrawalApproved, adminID, note); err != nil {
			return err
		}

		_, err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
			TelegramID:  w.TelegramID,
			Type:        model.TransactionWithdrawal,
			Amount:      -w.Amount,
			Description: fmt.Sprintf("Вывод %d ⭐", w.Amount),
		})
		if err != nil {
			return fmt.Errorf("failed to create withdrawal transaction: %w", err)
		}

		now := time.Now()
		w.Status = model.WithdrawalApproved
		w.ProcessedAt = &now
		w.ProcessedBy = adminID
		w.AdminNote = note

		return nil
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}

// Reject отклоняет заявку и возвращает захолдированную сумму на баланс
func (s *serv) Reject(ctx context.Context, id int, adminID int64, note string) (*model.Withdrawal, error) {
	var w *model.Withdrawal

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		w, err = s.withdrawalRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if w.Status != model.WithdrawalPending {
			return model.ErrWithdrawalNotPending
		}

		player, err := s.playerRepo.GetByTelegramIDForUpdate(txCtx, w.TelegramID)
		if err != nil {
			return err
		}

		// Возврат холда
		if err := s.playerRepo.UpdateBalance(txCtx, w.TelegramID, player.Stars+w.Amount); err != nil {
			return fmt.Errorf("failed to refund withdrawal hold: %w", err)
		}

		if err := s.withdrawalRepo.UpdateStatus(txCtx, id, model.WithdrawalRejected, adminID, note); err != nil {
			return err
		}

		now := time.Now()
		w.Status = model.WithdrawalRejected
		w.ProcessedAt = &now
		w.ProcessedBy = adminID
		w.AdminNote = note

		return nil
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}
