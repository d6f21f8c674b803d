package admin

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"
	"context"
)

type serv struct {
	playerRepo     repository.PlayerRepository
	withdrawalRepo repository.WithdrawalRepository
	statsRepo      repository.HouseStatsRepository
}

func NewAdminService(
	playerRepo repository.PlayerRepository,
	withdrawalRepo repository.WithdrawalRepository,
	statsRepo repository.HouseStatsRepository,
) service.AdminService {
	return &serv{
		playerRepo:     playerRepo,
		withdrawalRepo: withdrawalRepo,
		statsRepo:      statsRepo,
	}
}

// Stats собирает сводку для главного экрана админ-панели
func (s *serv) Stats(ctx context.Context) (*model.AdminStats, error) {
	global, err := s.playerRepo.GlobalStats(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.withdrawalRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	global.PendingWithdrawals = len(pending)

	return &model.AdminStats{
		Global: *global,
		House:  s.statsRepo.Snapshot(),
		Profit: global.TotalDeposited - global.TotalWithdrawn,
	}, nil
}
