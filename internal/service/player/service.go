package player

import (
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	playerRepo   repository.PlayerRepository
	sessionCache repository.SessionCacheRepository
	txManager    trm.Manager
}

func NewPlayerService(
	playerRepo repository.PlayerRepository,
	sessionCache repository.SessionCacheRepository,
	txManager trm.Manager,
) service.PlayerService {
	return &serv{
		playerRepo:   playerRepo,
		sessionCache: sessionCache,
		txManager:    txManager,
	}
}
