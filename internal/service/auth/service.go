package auth

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager trm.Manager
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
}

func NewAuthService(
	txManager trm.Manager,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager: txManager,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
	}
}

// Генерация sessionID
func generateSessionID() string {
	return uuid.NewString()
}
