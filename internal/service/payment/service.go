package payment

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	economyCfg   config.EconomyConfig
	playerRepo   repository.PlayerRepository
	txRepo       repository.TransactionRepository
	referralServ service.ReferralService
	txManager    trm.Manager
}

func NewPaymentService(
	economyCfg config.EconomyConfig,
	playerRepo repository.PlayerRepository,
	txRepo repository.TransactionRepository,
	referralServ service.ReferralService,
	txManager trm.Manager,
) service.PaymentService {
	return &serv{
		economyCfg:   economyCfg,
		playerRepo:   playerRepo,
		txRepo:       txRepo,
		referralServ: referralServ,
		txManager:    txManager,
	}
}

// Packages - доступные пакеты звёзд (цена в Telegram Stars -> зачисляемые звёзды)
func (s *serv) Packages() map[int]int {
	return s.economyCfg.StarPackages()
}
