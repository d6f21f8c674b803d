package withdrawal

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	economyCfg     config.EconomyConfig
	playerRepo     repository.PlayerRepository
	withdrawalRepo repository.WithdrawalRepository
	txRepo         repository.TransactionRepository
	txManager      trm.Manager
}

func NewWithdrawalService(
	economyCfg config.EconomyConfig,
	playerRepo repository.PlayerRepository,
	withdrawalRepo repository.WithdrawalRepository,
	txRepo repository.TransactionRepository,
	txManager trm.Manager,
) service.WithdrawalService {
	return &serv{
		economyCfg:     economyCfg,
		playerRepo:     playerRepo,
		withdrawalRepo: withdrawalRepo,
		txRepo:         txRepo,
		txManager:      txManager,
	}
}

// ListPending - все ожидающие заявки для админ-панели, старые первыми
func (s *serv) ListPending(ctx context.Context) ([]model.Withdrawal, error) {
	return s.withdrawalRepo.ListPending(ctx)
}
