package withdrawal_repo

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "withdrawals"
	colID          = "id"
	colTelegramID  = "telegram_id"
	colAmount      = "amount"
	colStatus      = "status"
	colAdminNote   = "admin_note"
	colRequestedAt = "requested_at"
	colProcessedAt = "processed_at"
	colProcessedBy = "processed_by"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWithdrawalRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.WithdrawalRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateWithdrawal - создает заявку на вывод со статусом pending
func (r *repo) CreateWithdrawal(ctx context.Context, w *model.Withdrawal) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colTelegramID, colAmount, colStatus).
		Values(w.TelegramID, w.Amount, string(model.WithdrawalPending)).
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

// GetByIDForUpdate - читает заявку с блокировкой строки.
// Если заявки нет — model.ErrWithdrawalNotPending
func (r *repo) GetByIDForUpdate(ctx context.Context, id int) (*model.Withdrawal, error) {
	// Формируем запрос
	query := sq.Select(colID, colTelegramID, colAmount, colStatus, colAdminNote, colRequestedAt, colProcessedAt, colProcessedBy).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		w           model.Withdrawal
		status      string
		adminNote   *string
		processedAt *time.Time
		processedBy *int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&w.ID, &w.TelegramID, &w.Amount, &status, &adminNote, &w.RequestedAt, &processedAt, &processedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWithdrawalNotPending
		}
		return nil, err
	}

	w.Status = model.WithdrawalStatus(status)
	if adminNote != nil {
		w.AdminNote = *adminNote
	}
	w.ProcessedAt = processedAt
	if processedBy != nil {
		w.ProcessedBy = *processedBy
	}

	return &w, nil
}

// HasPending - есть ли у игрока ожидающая заявка.
// Не более одной заявки pending на игрока
func (r *repo) HasPending(ctx context.Context, telegramID int64) (bool, error) {
	// Формируем запрос
	query := sq.Select("1").
		From(table).
		Where(sq.Eq{colTelegramID: telegramID, colStatus: string(model.WithdrawalPending)}).
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// UpdateStatus - переводит заявку из pending в терминальный статус.
// Обновляются только pending-заявки, повторная обработка невозможна
func (r *repo) UpdateStatus(ctx context.Context, id int, status model.WithdrawalStatus, processedBy int64, note string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStatus, string(status)).
		Set(colProcessedAt, time.Now().UTC()).
		Set(colProcessedBy, processedBy).
		Set(colAdminNote, note).
		Where(sq.Eq{colID: id, colStatus: string(model.WithdrawalPending)}).
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
		return model.ErrWithdrawalNotPending
	}

	return nil
}

// ListPending - все ожидающие заявки, старые первыми
func (r *repo) ListPending(ctx context.Context) ([]model.Withdrawal, error) {
	// Формируем запрос
	query := sq.Select(colID, colTelegramID, colAmount, colRequestedAt).
		From(table).
		Where(sq.Eq{colStatus: string(model.WithdrawalPending)}).
		OrderBy(colRequestedAt + " ASC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Withdrawal
	for rows.Next() {
		w := model.Withdrawal{Status: model.WithdrawalPending}
		if err := rows.Scan(&w.ID, &w.TelegramID, &w.Amount, &w.RequestedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}

	return result, rows.Err()
}
