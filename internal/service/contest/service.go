package contest

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	economyCfg  config.EconomyConfig
	contestRepo repository.ContestRepository
	playerRepo  repository.PlayerRepository
	txManager   trm.Manager
}

func NewContestService(
	economyCfg config.EconomyConfig,
	contestRepo repository.ContestRepository,
	playerRepo repository.PlayerRepository,
	txManager trm.Manager,
) service.ContestService {
	return &serv{
		economyCfg:  economyCfg,
		contestRepo: contestRepo,
		playerRepo:  playerRepo,
		txManager:   txManager,
	}
}
