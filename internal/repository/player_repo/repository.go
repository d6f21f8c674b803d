package player_repo

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table               = "players"
	colID               = "id"
	colTelegramID       = "telegram_id"
	colUsername         = "username"
	colFirstName        = "first_name"
	colLastName         = "last_name"
	colStars            = "stars"
	colTotalDeposited   = "total_deposited"
	colTotalWon         = "total_won"
	colTotalWithdrawn   = "total_withdrawn"
	colReferrerID       = "referrer_id"
	colTotalReferrals   = "total_referrals"
	colReferralEarnings = "referral_earnings"
	colFreeSpins        = "free_spins"
	colIsBanned         = "is_banned"
	colCaptchaPassed    = "captcha_passed"
	colCreatedAt        = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreatePlayer - создает нового игрока в БД.
// Возвращает ID созданного игрока
func (r *repo) CreatePlayer(ctx context.Context, player *model.Player) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colTelegramID, colUsername, colFirstName, colLastName, colStars, colReferrerID).
		Values(player.TelegramID, player.Username, player.FirstName, player.LastName, player.Stars, player.ReferrerID).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByTelegramID - возвращает модель игрока по его telegram ID.
// Если игрока нет — model.ErrPlayerNotFound
func (r *repo) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Player, error) {
	return r.get(ctx, telegramID, false)
}

// GetByTelegramIDForUpdate - то же, но строка блокируется до конца транзакции.
// Конкурентные операции одного игрока выстраиваются в очередь на этой блокировке
func (r *repo) GetByTelegramIDForUpdate(ctx context.Context, telegramID int64) (*model.Player, error) {
	return r.get(ctx, telegramID, true)
}

func (r *repo) get(ctx context.Context, telegramID int64, forUpdate bool) (*model.Player, error) {
	// Формируем запрос
	query := sq.Select(
		colID, colTelegramID, colUsername, colFirstName, colLastName,
		colStars, colTotalDeposited, colTotalWon, colTotalWithdrawn,
		colReferrerID, colTotalReferrals, colReferralEarnings, colFreeSpins,
		colIsBanned, colCaptchaPassed, colCreatedAt,
	).
		From(table).
		Where(sq.Eq{colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Player
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&p.ID, &p.TelegramID, &p.Username, &p.FirstName, &p.LastName,
		&p.Stars, &p.TotalDeposited, &p.TotalWon, &p.TotalWithdrawn,
		&p.ReferrerID, &p.TotalReferrals, &p.ReferralEarnings, &p.FreeSpins,
		&p.IsBanned, &p.CaptchaPassed, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return &p, nil
}

// UpdateBalance - записывает новый баланс игрока
func (r *repo) UpdateBalance(ctx context.Context, telegramID int64, stars int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStars, stars).
		Where(sq.Eq{colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// UpdateBalanceCAS - обновляет баланс только если он равен ожидаемому.
// При несовпадении возвращает model.ErrConcurrentModification — вызывающий
// обязан повторить операцию с чистого чтения
func (r *repo) UpdateBalanceCAS(ctx context.Context, telegramID int64, expected, stars int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStars, stars).
		Where(sq.Eq{colTelegramID: telegramID, colStars: expected}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrConcurrentModification
	}

	return nil
}

// UpdateTotals - записывает накопительные счётчики игрока.
// Значения абсолютные, берутся из снапшота под блокировкой строки
func (r *repo) UpdateTotals(ctx context.Context, telegramID int64, deposited, won, withdrawn int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTotalDeposited, deposited).
		Set(colTotalWon, won).
		Set(colTotalWithdrawn, withdrawn).
		Where(sq.Eq{colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// UpdateReferralStats - записывает реферальные счётчики игрока
func (r *repo) UpdateReferralStats(ctx context.Context, telegramID int64, totalReferrals, earnings int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTotalReferrals, totalReferrals).
		Set(colReferralEarnings, earnings).
		Where(sq.Eq{colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// UpdateFreeSpins - записывает количество бесплатных спинов
func (r *repo) UpdateFreeSpins(ctx context.Context, telegramID int64, count int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colFreeSpins, count).
		Where(sq.Eq{colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// SetCaptchaPassed - отмечает прохождение капчи
func (r *repo) SetCaptchaPassed(ctx context.Context, telegramID int64, passed bool) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colCaptchaPassed, passed).
		Where(sq.Eq{colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// GlobalStats - агрегаты по всем игрокам для админ-панели
func (r *repo) GlobalStats(ctx context.Context) (*model.GlobalStats, error) {
	sqlStr := "SELECT COUNT(*), COALESCE(SUM(" + colTotalDeposited + "), 0), COALESCE(SUM(" + colTotalWithdrawn + "), 0) FROM " + table

	var stats model.GlobalStats
	err := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr).Scan(
		&stats.TotalPlayers, &stats.TotalDeposited, &stats.TotalWithdrawn,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repo) exec(ctx context.Context, query sq.UpdateBuilder) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrPlayerNotFound
	}

	return nil
}
