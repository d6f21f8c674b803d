package contest

import (
	"starspin_backend/internal/model"
	"context"
	"errors"
	"time"
)

// Active возвращает текущий активный конкурс
func (s *serv) Active(ctx context.Context) (*model.Contest, error) {
	return s.contestRepo.GetActiveContest(ctx)
}

// Create открывает новый конкурс. Одновременно может идти только один
func (s *serv) Create(ctx context.Context, title, description string, endDate time.Time) (*model.Contest, error) {
	_, err := s.contestRepo.GetActiveContest(ctx)
	if err == nil {
		return nil, errors.New("active contest already exists")
	}
	if !errors.Is(err, model.ErrContestNotFound) {
		return nil, err
	}

	contest := &model.Contest{
		Title:       title,
		Description: description,
		StartDate:   time.Now(),
		EndDate:     endDate,
		IsActive:    true,
	}

	contest.ID, err = s.contestRepo.CreateContest(ctx, contest)
	if err != nil {
		return nil, err
	}

	return contest, nil
}

// Join регистрирует игрока в активном конкурсе.
// Повторная регистрация возвращает уже существующего участника
func (s *serv) Join(ctx context.Context, telegramID int64) (*model.ContestParticipant, error) {
	contest, err := s.contestRepo.GetActiveContest(ctx)
	if err != nil {
		return nil, err
	}

	// Участвовать могут только зарегистрированные игроки
	player, err := s.playerRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if player.IsBanned {
		return nil, model.ErrPlayerBanned
	}

	participant, err := s.contestRepo.GetParticipant(ctx, contest.ID, telegramID)
	if err != nil {
		return nil, err
	}
	if participant != nil {
		return participant, nil
	}

	participant = &model.ContestParticipant{
		TelegramID:   telegramID,
		ContestID:    contest.ID,
		RegisteredAt: time.Now(),
	}
	participant.ID, err = s.contestRepo.CreateParticipant(ctx, participant)
	if err != nil {
		return nil, err
	}

	return participant, nil
}

// RecordReferral засчитывает участнику активного конкурса одного реферала.
// При достижении порога участник квалифицируется и получает конкурсный номер.
// Если конкурса нет или игрок не участвует, вызов ничего не делает
func (s *serv) RecordReferral(ctx context.Context, telegramID int64) error {
	contest, err := s.contestRepo.GetActiveContest(ctx)
	if err != nil {
		if errors.Is(err, model.ErrContestNotFound) {
			return nil
		}
		return err
	}

	participant, err := s.contestRepo.GetParticipant(ctx, contest.ID, telegramID)
	if err != nil {
		return err
	}
	if participant == nil {
		return nil
	}

	participant.ReferralsCompleted++

	// Квалификация и выдача номера происходят один раз
	if !participant.IsQualified && participant.ReferralsCompleted >= s.economyCfg.ContestQualifyThreshold() {
		number, err := s.contestRepo.NextContestNumber(ctx, contest.ID)
		if err != nil {
			return err
		}
		now := time.Now()
		participant.IsQualified = true
		participant.ContestNumber = number
		participant.NumberAssignedAt = &now
	}

	return s.contestRepo.UpdateParticipant(ctx, participant)
}

// Finish закрывает конкурс и фиксирует трёх победителей.
// Победители — верх турнирной таблицы: больше рефералов выше,
// при равенстве выигрывает зарегистрировавшийся раньше
func (s *serv) Finish(ctx context.Context, contestID int) (*model.Contest, error) {
	var winners [3]int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		participants, err := s.contestRepo.ListParticipants(txCtx, contestID)
		if err != nil {
			return err
		}

		for i := 0; i < len(winners) && i < len(participants); i++ {
			winners[i] = participants[i].TelegramID
		}

		return s.contestRepo.FinishContest(txCtx, contestID, winners)
	})
	if err != nil {
		return nil, err
	}

	return &model.Contest{
		ID:               contestID,
		IsActive:         false,
		Winner1:          winners[0],
		Winner2:          winners[1],
		Winner3:          winners[2],
		WinnersAnnounced: true,
	}, nil
}

// Standings - турнирная таблица конкурса
func (s *serv) Standings(ctx context.Context, contestID int) ([]model.ContestParticipant, error) {
	return s.contestRepo.ListParticipants(ctx, contestID)
}
