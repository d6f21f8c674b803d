package game

import (
	"starspin_backend/internal/model"
	"context"
	"fmt"
	"strings"
)

// Spin выполняет спин: списание ставки, решение контроллера, начисление
// выигрыша и записи в журналы — всё в одной транзакции под блокировкой
// строки игрока. Баланс после операции равен балансу до минус ставка
// плюс выигрыш (0 при проигрыше)
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	// Валидация ставки до вызова контроллера
	if req.Bet <= 0 {
		return nil, model.ErrInvalidWager
	}

	// Инициализируем структуру для хранения результата спина
	var res *model.SpinResult

	// Начало транзакции где выполняется процесс спина.
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокируем строку игрока: конкурентные спины и выводы одного
		// игрока выстраиваются в очередь, два спина не потратят один баланс
		player, err := s.playerRepo.GetByTelegramIDForUpdate(txCtx, req.TelegramID)
		if err != nil {
			return err
		}
		if player.IsBanned {
			return model.ErrPlayerBanned
		}

		bet := req.Bet
		freeSpin := false
		balance := player.Stars
		freeSpins := player.FreeSpins

		if freeSpins > 0 {
			// Режим фриспина: ставка не списывается,
			// номинал ставки — стоимость спина из конфигурации
			freeSpin = true
			bet = s.gameCfg.SpinCost()
			freeSpins--
			if err := s.playerRepo.UpdateFreeSpins(txCtx, req.TelegramID, freeSpins); err != nil {
				return fmt.Errorf("failed to update free spins: %w", err)
			}
		} else {
			// Платный спин: проверяем и списываем ставку
			if balance < bet {
				return model.ErrInsufficientFunds
			}
			balance -= bet
			if err := s.playerRepo.UpdateBalance(txCtx, req.TelegramID, balance); err != nil {
				return fmt.Errorf("failed to debit wager: %w", err)
			}
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		// Контроллер читает только живые счётчики игрока, не историю спинов
		outcome := s.engine.Play(bet, player.TotalDeposited, player.TotalWon)

		if outcome.Win {
			// Начисление выигрыша тому же игроку в той же операции
			balance += outcome.WinAmount
			if err := s.playerRepo.UpdateBalance(txCtx, req.TelegramID, balance); err != nil {
				return fmt.Errorf("failed to credit win: %w", err)
			}
			if err := s.playerRepo.UpdateTotals(txCtx, req.TelegramID,
				player.TotalDeposited, player.TotalWon+outcome.WinAmount, player.TotalWithdrawn); err != nil {
				return fmt.Errorf("failed to update totals: %w", err)
			}

			// Запись о выигрыше в журнал транзакций
			_, err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
				TelegramID:  req.TelegramID,
				Type:        model.TransactionWin,
				Amount:      outcome.WinAmount,
				Description: fmt.Sprintf("Выигрыш в спине: %d ⭐ (x%.2f)", outcome.WinAmount, outcome.Multiplier),
			})
			if err != nil {
				return fmt.Errorf("failed to create win transaction: %w", err)
			}
		}

		// Одна неизменяемая запись о спине
		_, err = s.spinRepo.CreateSpinRecord(txCtx, &model.SpinRecord{
			TelegramID: req.TelegramID,
			BetAmount:  bet,
			WinAmount:  outcome.WinAmount,
			IsWin:      outcome.Win,
			Multiplier: outcome.Multiplier,
			Symbols:    strings.Join(outcome.Symbols[:], ""),
		})
		if err != nil {
			return fmt.Errorf("failed to create spin record: %w", err)
		}

		res = &model.SpinResult{
			Win:           outcome.Win,
			Multiplier:    outcome.Multiplier,
			WinAmount:     outcome.WinAmount,
			Symbols:       outcome.Symbols,
			Bet:           bet,
			FreeSpinUsed:  freeSpin,
			Balance:       balance,
			FreeSpinCount: freeSpins,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику казино
	s.statsRepo.Update(res.Bet, res.WinAmount)

	return res, nil
}
