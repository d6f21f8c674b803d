package transaction_repo

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "transactions"
	colID          = "id"
	colTelegramID  = "telegram_id"
	colType        = "transaction_type"
	colAmount      = "amount"
	colDescription = "description"
	colPaymentID   = "telegram_payment_id"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateTransaction - добавляет транзакцию в журнал.
// Тип валидируется здесь: свободный текст в журнал не попадает
func (r *repo) CreateTransaction(ctx context.Context, tx *model.Transaction) (int, error) {
	if !tx.Type.Valid() {
		return 0, fmt.Errorf("invalid transaction type %q", tx.Type)
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colTelegramID, colType, colAmount, colDescription, colPaymentID).
		Values(tx.TelegramID, string(tx.Type), tx.Amount, tx.Description, tx.PaymentID).
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
