package player

import (
	"starspin_backend/internal/model"
	"context"
	"errors"
	"fmt"
)

// Register создаёт игрока при первом обращении.
// Повторная регистрация возвращает существующего игрока без изменений,
// реферальная привязка фиксируется только при создании
func (s *serv) Register(ctx context.Context, reg model.PlayerRegistration) (*model.Player, error) {
	var player *model.Player

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.playerRepo.GetByTelegramID(txCtx, reg.TelegramID)
		if err == nil {
			player = existing
			return nil
		}
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return err
		}

		referrerID := reg.ReferrerID
		// Сам себя пригласить нельзя
		if referrerID == reg.TelegramID {
			referrerID = 0
		}
		// Привязка только к существующему рефереру
		if referrerID != 0 {
			if _, err := s.playerRepo.GetByTelegramID(txCtx, referrerID); err != nil {
				if !errors.Is(err, model.ErrPlayerNotFound) {
					return err
				}
				referrerID = 0
			}
		}

		player = &model.Player{
			TelegramID: reg.TelegramID,
			Username:   reg.Username,
			FirstName:  reg.FirstName,
			LastName:   reg.LastName,
			ReferrerID: referrerID,
		}
		player.ID, err = s.playerRepo.CreatePlayer(txCtx, player)
		if err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return player, nil
}

// Profile - профиль игрока
func (s *serv) Profile(ctx context.Context, telegramID int64) (*model.Player, error) {
	return s.playerRepo.GetByTelegramID(ctx, telegramID)
}
