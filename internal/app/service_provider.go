package app

import (
	adminAPI "starspin_backend/internal/api/admin"
	authAPI "starspin_backend/internal/api/auth"
	contestAPI "starspin_backend/internal/api/contest"
	gameAPI "starspin_backend/internal/api/game"
	paymentAPI "starspin_backend/internal/api/payment"
	playerAPI "starspin_backend/internal/api/player"
	withdrawalAPI "starspin_backend/internal/api/withdrawal"
	"starspin_backend/internal/config"
	"starspin_backend/internal/config/env"
	"starspin_backend/internal/middleware"
	"starspin_backend/internal/repository"
	"starspin_backend/internal/repository/auth_repo"
	"starspin_backend/internal/repository/contest_repo"
	"starspin_backend/internal/repository/house_stats_repo"
	"starspin_backend/internal/repository/player_repo"
	"starspin_backend/internal/repository/session_cache"
	"starspin_backend/internal/repository/spin_repo"
	"starspin_backend/internal/repository/transaction_repo"
	"starspin_backend/internal/repository/withdrawal_repo"
	"starspin_backend/internal/service"
	"starspin_backend/internal/service/admin"
	"starspin_backend/internal/service/auth"
	"starspin_backend/internal/service/contest"
	"starspin_backend/internal/service/game"
	"starspin_backend/internal/service/payment"
	"starspin_backend/internal/service/player"
	"starspin_backend/internal/service/referral"
	"starspin_backend/internal/service/withdrawal"
	"context"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionCacheTTL = 10 * time.Minute

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager
	ctxGetter *trmpgx.CtxGetter

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Game bits
	gameCfg   config.GameConfig
	spinRepo  repository.SpinRepository
	statsRepo repository.HouseStatsRepository
	gameServ  service.GameService
	gameHand  *gameAPI.Handler

	// Player bits
	playerRepo   repository.PlayerRepository
	sessionCache repository.SessionCacheRepository
	playerServ   service.PlayerService
	playerHand   *playerAPI.Handler

	// Ledger bits
	txRepo repository.TransactionRepository

	// Payment and referral bits
	economyCfg   config.EconomyConfig
	paymentServ  service.PaymentService
	paymentHand  *paymentAPI.Handler
	referralServ service.ReferralService

	// Withdrawal bits
	withdrawalRepo repository.WithdrawalRepository
	withdrawalServ service.WithdrawalService
	withdrawalHand *withdrawalAPI.Handler

	// Contest bits
	contestRepo repository.ContestRepository
	contestServ service.ContestService
	contestHand *contestAPI.Handler

	// Admin and auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler
	adminServ service.AdminService
	adminHand *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

// CtxGetter позволяет репозиториям присоединяться к транзакции из контекста
func (sp *ServiceProvider) CtxGetter() *trmpgx.CtxGetter {
	if sp.ctxGetter == nil {
		sp.ctxGetter = trmpgx.DefaultCtxGetter
	}
	return sp.ctxGetter
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}

		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) EconomyCfg() config.EconomyConfig {
	if sp.economyCfg == nil {
		cfg, err := env.NewEconomyConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get economy config: " + err.Error())
		}
		sp.economyCfg = cfg
	}
	return sp.economyCfg
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) PlayerRepository(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) SpinRepository(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		sp.spinRepo = spin_repo.NewSpinRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) TransactionRepository(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = transaction_repo.NewTransactionRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.txRepo
}

func (sp *ServiceProvider) WithdrawalRepository(ctx context.Context) repository.WithdrawalRepository {
	if sp.withdrawalRepo == nil {
		sp.withdrawalRepo = withdrawal_repo.NewWithdrawalRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.withdrawalRepo
}

func (sp *ServiceProvider) ContestRepository(ctx context.Context) repository.ContestRepository {
	if sp.contestRepo == nil {
		sp.contestRepo = contest_repo.NewContestRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.contestRepo
}

func (sp *ServiceProvider) AuthRepository(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.authRepo
}

func (sp *ServiceProvider) HouseStatsRepository() repository.HouseStatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = house_stats_repo.NewHouseStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SessionCache() repository.SessionCacheRepository {
	if sp.sessionCache == nil {
		sp.sessionCache = session_cache.NewSessionCache(sessionCacheTTL)
	}
	return sp.sessionCache
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.GameCfg(),
			sp.PlayerRepository(ctx),
			sp.SpinRepository(ctx),
			sp.TransactionRepository(ctx),
			sp.HouseStatsRepository(),
			sp.TXManager(ctx),
			game.NewGlobalRand(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) ContestService(ctx context.Context) service.ContestService {
	if sp.contestServ == nil {
		sp.contestServ = contest.NewContestService(
			sp.EconomyCfg(),
			sp.ContestRepository(ctx),
			sp.PlayerRepository(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.contestServ
}

func (sp *ServiceProvider) ReferralService(ctx context.Context) service.ReferralService {
	if sp.referralServ == nil {
		sp.referralServ = referral.NewReferralService(
			sp.EconomyCfg(),
			sp.PlayerRepository(ctx),
			sp.TransactionRepository(ctx),
			sp.ContestService(ctx),
		)
	}
	return sp.referralServ
}

func (sp *ServiceProvider) PaymentService(ctx context.Context) service.PaymentService {
	if sp.paymentServ == nil {
		sp.paymentServ = payment.NewPaymentService(
			sp.EconomyCfg(),
			sp.PlayerRepository(ctx),
			sp.TransactionRepository(ctx),
			sp.ReferralService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.paymentServ
}

func (sp *ServiceProvider) WithdrawalService(ctx context.Context) service.WithdrawalService {
	if sp.withdrawalServ == nil {
		sp.withdrawalServ = withdrawal.NewWithdrawalService(
			sp.EconomyCfg(),
			sp.PlayerRepository(ctx),
			sp.WithdrawalRepository(ctx),
			sp.TransactionRepository(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.withdrawalServ
}

func (sp *ServiceProvider) PlayerService(ctx context.Context) service.PlayerService {
	if sp.playerServ == nil {
		sp.playerServ = player.NewPlayerService(
			sp.PlayerRepository(ctx),
			sp.SessionCache(),
			sp.TXManager(ctx),
		)
	}
	return sp.playerServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.AuthRepository(ctx),
			sp.JWTConfig(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = admin.NewAdminService(
			sp.PlayerRepository(ctx),
			sp.WithdrawalRepository(ctx),
			sp.HouseStatsRepository(),
		)
	}
	return sp.adminServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) PlayerHandler(ctx context.Context) *playerAPI.Handler {
	if sp.playerHand == nil {
		sp.playerHand = playerAPI.NewHandler(playerAPI.HandlerDeps{Serv: sp.PlayerService(ctx)})
	}
	return sp.playerHand
}

func (sp *ServiceProvider) PaymentHandler(ctx context.Context) *paymentAPI.Handler {
	if sp.paymentHand == nil {
		sp.paymentHand = paymentAPI.NewHandler(paymentAPI.HandlerDeps{Serv: sp.PaymentService(ctx)})
	}
	return sp.paymentHand
}

func (sp *ServiceProvider) WithdrawalHandler(ctx context.Context) *withdrawalAPI.Handler {
	if sp.withdrawalHand == nil {
		sp.withdrawalHand = withdrawalAPI.NewHandler(withdrawalAPI.HandlerDeps{Serv: sp.WithdrawalService(ctx)})
	}
	return sp.withdrawalHand
}

func (sp *ServiceProvider) ContestHandler(ctx context.Context) *contestAPI.Handler {
	if sp.contestHand == nil {
		sp.contestHand = contestAPI.NewHandler(contestAPI.HandlerDeps{Serv: sp.ContestService(ctx)})
	}
	return sp.contestHand
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{Serv: sp.AdminService(ctx)})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Post("/spin", gameHandler.Spin)
			rr.Get("/paytable", gameHandler.PayTable)
		})

		// Player endpoints
		playerHandler := sp.PlayerHandler(ctx)
		r.Route("/player", func(rr chi.Router) {
			rr.Post("/register", playerHandler.Register)
			rr.Get("/{telegramID}", playerHandler.Profile)
			rr.Post("/{telegramID}/captcha", playerHandler.NewCaptcha)
			rr.Post("/captcha/verify", playerHandler.VerifyCaptcha)
		})

		// Payment endpoints
		paymentHandler := sp.PaymentHandler(ctx)
		r.Route("/payment", func(rr chi.Router) {
			rr.Get("/packages", paymentHandler.Packages)
			rr.Post("/deposit", paymentHandler.Deposit)
		})

		// Withdrawal endpoints
		withdrawalHandler := sp.WithdrawalHandler(ctx)
		r.Route("/withdrawal", func(rr chi.Router) {
			rr.Post("/", withdrawalHandler.Create)
		})

		// Contest endpoints
		contestHandler := sp.ContestHandler(ctx)
		r.Route("/contest", func(rr chi.Router) {
			rr.Get("/active", contestHandler.Active)
			rr.Post("/join", contestHandler.Join)
			rr.Get("/{id}/standings", contestHandler.Standings)
		})

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Admin endpoints, доступ только с access токеном
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig().AccessTokenSecretKey()))
			rr.Get("/stats", adminHandler.Stats)
			rr.Get("/withdrawals", withdrawalHandler.ListPending)
			rr.Post("/withdrawals/{id}/approve", withdrawalHandler.Approve)
			rr.Post("/withdrawals/{id}/reject", withdrawalHandler.Reject)
			rr.Post("/contests", contestHandler.Create)
			rr.Post("/contests/{id}/finish", contestHandler.Finish)
		})

		sp.router = r
	}

	return sp.router
}
