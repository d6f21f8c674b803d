package payment

import (
	"starspin_backend/internal/model"
	"context"
	"fmt"
)

// Deposit зачисляет купленный пакет звёзд после успешной оплаты.
// Баланс и накопленный счётчик депозитов растут на сумму пакета,
// в журнал пишется purchase-транзакция с ID платежа.
// Первый депозит дополнительно начисляет бонус пригласившему
func (s *serv) Deposit(ctx context.Context, telegramID int64, stars int, paymentID string) (*model.Player, error) {
	// Депозит принимается только одним из известных пакетов
	credit, ok := s.economyCfg.StarPackages()[stars]
	if !ok {
		return nil, model.ErrUnknownPackage
	}

	var player *model.Player

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		p, err := s.playerRepo.GetByTelegramIDForUpdate(txCtx, telegramID)
		if err != nil {
			return err
		}
		if p.IsBanned {
			return model.ErrPlayerBanned
		}

		firstDeposit := p.TotalDeposited == 0

		// Зачисление на баланс и в накопительный счётчик
		p.Stars += credit
		p.TotalDeposited += credit
		if err := s.playerRepo.UpdateBalance(txCtx, telegramID, p.Stars); err != nil {
			return fmt.Errorf("failed to credit deposit: %w", err)
		}
		if err := s.playerRepo.UpdateTotals(txCtx, telegramID, p.TotalDeposited, p.TotalWon, p.TotalWithdrawn); err != nil {
			return fmt.Errorf("failed to update totals: %w", err)
		}

		// Запись о покупке в журнал транзакций
		_, err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
			TelegramID:  telegramID,
			Type:        model.TransactionPurchase,
			Amount:      credit,
			Description: fmt.Sprintf("Покупка %d ⭐", credit),
			PaymentID:   paymentID,
		})
		if err != nil {
			return fmt.Errorf("failed to create purchase transaction: %w", err)
		}

		// Реферальный бонус начисляется один раз, после первого депозита
		if firstDeposit {
			if err := s.referralServ.AwardDepositBonus(txCtx, telegramID); err != nil {
				return fmt.Errorf("failed to award referral bonus: %w", err)
			}
		}

		player = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return player, nil
}
