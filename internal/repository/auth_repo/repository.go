package auth_repo

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	adminsTable     = "admins"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"

	sessionsTable  = "admin_sessions"
	colSessionID   = "session_id"
	colAdminID     = "admin_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuthRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateAdmin - создает администратора в БД.
// Возвращает ID созданного администратора
func (r *repo) CreateAdmin(ctx context.Context, admin *model.Admin) (int, error) {
	// Формируем запрос
	query := sq.Insert(adminsTable).
		Columns(colName, colLogin, colPasswordHash).
		Values(admin.Name, admin.Login, admin.Password).
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

// GetAdminByLogin - возвращает администратора по логину
func (r *repo) GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colLogin, colPasswordHash).
		From(adminsTable).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var admin model.Admin
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&admin.ID, &admin.Name, &admin.Login, &admin.Password,
	)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// CreateSession - создает сессию администратора в БД
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := sq.Insert(sessionsTable).
		Columns(colSessionID, colAdminID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.AdminID, session.RefreshToken, session.ExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetRefreshTokenBySessionID - получить хэш refresh токена по session ID
func (r *repo) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	// Формируем запрос
	query := sq.Select(colRefreshHash).
		From(sessionsTable).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var refreshHash string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&refreshHash)
	if err != nil {
		return "", err
	}

	return refreshHash, nil
}

// DeleteSession - удаляет сессию из БД
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	// Формируем запрос
	query := sq.Delete(sessionsTable).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetAdminBySessionID - получить администратора по session ID
func (r *repo) GetAdminBySessionID(ctx context.Context, sessionID string) (*model.Admin, error) {
	sqlStr := "SELECT a." + colID + ", a." + colName + ", a." + colLogin + ", a." + colPasswordHash +
		" FROM " + adminsTable + " a JOIN " + sessionsTable + " s ON s." + colAdminID + " = a." + colID +
		" WHERE s." + colSessionID + " = $1"

	var admin model.Admin
	err := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, sessionID).Scan(
		&admin.ID, &admin.Name, &admin.Login, &admin.Password,
	)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}
