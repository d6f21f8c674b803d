package game

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	engine     *Engine
	gameCfg    config.GameConfig
	playerRepo repository.PlayerRepository
	spinRepo   repository.SpinRepository
	txRepo     repository.TransactionRepository
	statsRepo  repository.HouseStatsRepository
	txManager  trm.Manager
}

// NewGameService Создать сервис спинов
func NewGameService(
	gameCfg config.GameConfig,
	playerRepo repository.PlayerRepository,
	spinRepo repository.SpinRepository,
	txRepo repository.TransactionRepository,
	statsRepo repository.HouseStatsRepository,
	txManager trm.Manager,
	rnd Rand,
) service.GameService {
	return &serv{
		engine:     NewEngine(gameCfg, rnd),
		gameCfg:    gameCfg,
		playerRepo: playerRepo,
		spinRepo:   spinRepo,
		txRepo:     txRepo,
		statsRepo:  statsRepo,
		txManager:  txManager,
	}
}

// PayTable - статическая таблица выплат для показа игроку
func (s *serv) PayTable() []config.SymbolPayout {
	return s.gameCfg.Symbols()
}
