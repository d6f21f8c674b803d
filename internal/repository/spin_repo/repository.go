package spin_repo

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "spin_records"
	colID         = "id"
	colTelegramID = "telegram_id"
	colBetAmount  = "bet_amount"
	colWinAmount  = "win_amount"
	colIsWin      = "is_win"
	colMultiplier = "multiplier"
	colSymbols    = "symbols"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateSpinRecord - добавляет запись о спине в журнал.
// Журнал append-only, записи никогда не обновляются и не удаляются
func (r *repo) CreateSpinRecord(ctx context.Context, record *model.SpinRecord) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colTelegramID, colBetAmount, colWinAmount, colIsWin, colMultiplier, colSymbols).
		Values(record.TelegramID, record.BetAmount, record.WinAmount, record.IsWin, record.Multiplier, record.Symbols).
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
