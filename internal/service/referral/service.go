package referral

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"
	"context"
	"errors"
	"fmt"
	"log"
)

type serv struct {
	economyCfg  config.EconomyConfig
	playerRepo  repository.PlayerRepository
	txRepo      repository.TransactionRepository
	contestServ service.ContestService
}

func NewReferralService(
	economyCfg config.EconomyConfig,
	playerRepo repository.PlayerRepository,
	txRepo repository.TransactionRepository,
	contestServ service.ContestService,
) service.ReferralService {
	return &serv{
		economyCfg:  economyCfg,
		playerRepo:  playerRepo,
		txRepo:      txRepo,
		contestServ: contestServ,
	}
}

// AwardDepositBonus начисляет бонус рефереру за первый депозит приглашённого
// и засчитывает реферала в активном конкурсе. Вызывается внутри транзакции
// депозита, поэтому собственной транзакции не открывает
func (s *serv) AwardDepositBonus(ctx context.Context, refereeID int64) error {
	referee, err := s.playerRepo.GetByTelegramID(ctx, refereeID)
	if err != nil {
		return err
	}

	// Пришёл без реферала
	if referee.ReferrerID == 0 {
		return nil
	}

	referrer, err := s.playerRepo.GetByTelegramIDForUpdate(ctx, referee.ReferrerID)
	if err != nil {
		// Реферер мог быть удалён, депозит из-за этого не откатываем
		if errors.Is(err, model.ErrPlayerNotFound) {
			log.Println("referral bonus skipped, referrer not found:", referee.ReferrerID)
			return nil
		}
		return err
	}

	bonus := s.economyCfg.ReferralBonus()

	// Бонус на баланс и в реферальную статистику
	if err := s.playerRepo.UpdateBalance(ctx, referrer.TelegramID, referrer.Stars+bonus); err != nil {
		return fmt.Errorf("failed to credit referral bonus: %w", err)
	}
	if err := s.playerRepo.UpdateReferralStats(ctx, referrer.TelegramID,
		referrer.TotalReferrals+1, referrer.ReferralEarnings+bonus); err != nil {
		return fmt.Errorf("failed to update referral stats: %w", err)
	}

	// Прогресс реферера в активном конкурсе, если он участвует
	if err := s.contestServ.RecordReferral(ctx, referrer.TelegramID); err != nil {
		return fmt.Errorf("failed to record contest referral: %w", err)
	}

	return nil
}
