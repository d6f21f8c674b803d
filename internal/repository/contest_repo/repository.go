package contest_repo

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
	contestsTable        = "contests"
	colID                = "id"
	colTitle             = "title"
	colDescription       = "description"
	colStartDate         = "start_date"
	colEndDate           = "end_date"
	colIsActive          = "is_active"
	colWinner1           = "winner_1"
	colWinner2           = "winner_2"
	colWinner3           = "winner_3"
	colWinnersAnnounced  = "winners_announced"

	participantsTable     = "contest_participants"
	colTelegramID         = "telegram_id"
	colContestID          = "contest_id"
	colReferralsCompleted = "referrals_completed"
	colContestNumber      = "contest_number"
	colNumberAssignedAt   = "number_assigned_at"
	colRegisteredAt       = "registered_at"
	colIsQualified        = "is_qualified"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewContestRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.ContestRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateContest - создает новый конкурс
func (r *repo) CreateContest(ctx context.Context, contest *model.Contest) (int, error) {
	// Формируем запрос
	query := sq.Insert(contestsTable).
		Columns(colTitle, colDescription, colStartDate, colEndDate, colIsActive).
		Values(contest.Title, contest.Description, contest.StartDate, contest.EndDate, true).
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

// GetActiveContest - возвращает текущий активный конкурс.
// Если активного нет — model.ErrContestNotFound
func (r *repo) GetActiveContest(ctx context.Context) (*model.Contest, error) {
	// Формируем запрос
	query := sq.Select(colID, colTitle, colDescription, colStartDate, colEndDate, colIsActive, colWinnersAnnounced).
		From(contestsTable).
		Where(sq.Eq{colIsActive: true}).
		OrderBy(colStartDate + " DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c model.Contest
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&c.ID, &c.Title, &c.Description, &c.StartDate, &c.EndDate, &c.IsActive, &c.WinnersAnnounced,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrContestNotFound
		}
		return nil, err
	}

	return &c, nil
}

// FinishContest - завершает конкурс и фиксирует победителей
func (r *repo) FinishContest(ctx context.Context, id int, winners [3]int64) error {
	// Формируем запрос
	query := sq.Update(contestsTable).
		Set(colIsActive, false).
		Set(colWinner1, winners[0]).
		Set(colWinner2, winners[1]).
		Set(colWinner3, winners[2]).
		Set(colWinnersAnnounced, true).
		Where(sq.Eq{colID: id}).
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
		return model.ErrContestNotFound
	}

	return nil
}

// GetParticipant - возвращает участника конкурса, nil если не зарегистрирован
func (r *repo) GetParticipant(ctx context.Context, contestID int, telegramID int64) (*model.ContestParticipant, error) {
	// Формируем запрос
	query := sq.Select(colID, colTelegramID, colContestID, colReferralsCompleted, colContestNumber, colNumberAssignedAt, colRegisteredAt, colIsQualified).
		From(participantsTable).
		Where(sq.Eq{colContestID: contestID, colTelegramID: telegramID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		p                model.ContestParticipant
		contestNumber    *int
		numberAssignedAt *time.Time
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&p.ID, &p.TelegramID, &p.ContestID, &p.ReferralsCompleted, &contestNumber, &numberAssignedAt, &p.RegisteredAt, &p.IsQualified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if contestNumber != nil {
		p.ContestNumber = *contestNumber
	}
	p.NumberAssignedAt = numberAssignedAt

	return &p, nil
}

// CreateParticipant - регистрирует игрока в конкурсе
func (r *repo) CreateParticipant(ctx context.Context, p *model.ContestParticipant) (int, error) {
	// Формируем запрос
	query := sq.Insert(participantsTable).
		Columns(colTelegramID, colContestID, colReferralsCompleted).
		Values(p.TelegramID, p.ContestID, p.ReferralsCompleted).
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

// UpdateParticipant - записывает прогресс/квалификацию/номер участника
func (r *repo) UpdateParticipant(ctx context.Context, p *model.ContestParticipant) error {
	// Формируем запрос
	query := sq.Update(participantsTable).
		Set(colReferralsCompleted, p.ReferralsCompleted).
		Set(colIsQualified, p.IsQualified).
		Where(sq.Eq{colID: p.ID}).
		PlaceholderFormat(sq.Dollar)

	if p.ContestNumber > 0 {
		query = query.
			Set(colContestNumber, p.ContestNumber).
			Set(colNumberAssignedAt, p.NumberAssignedAt)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListParticipants - участники конкурса: больше рефералов выше,
// при равенстве — кто раньше зарегистрировался
func (r *repo) ListParticipants(ctx context.Context, contestID int) ([]model.ContestParticipant, error) {
	// Формируем запрос
	query := sq.Select(colID, colTelegramID, colContestID, colReferralsCompleted, colRegisteredAt, colIsQualified).
		From(participantsTable).
		Where(sq.Eq{colContestID: contestID}).
		OrderBy(colReferralsCompleted+" DESC", colRegisteredAt+" ASC").
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

	var result []model.ContestParticipant
	for rows.Next() {
		var p model.ContestParticipant
		if err := rows.Scan(&p.ID, &p.TelegramID, &p.ContestID, &p.ReferralsCompleted, &p.RegisteredAt, &p.IsQualified); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

// NextContestNumber - следующий свободный конкурсный номер
func (r *repo) NextContestNumber(ctx context.Context, contestID int) (int, error) {
	// Формируем запрос
	query := sq.Select("COALESCE(MAX(" + colContestNumber + "), 0) + 1").
		From(participantsTable).
		Where(sq.Eq{colContestID: contestID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var next int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&next)
	if err != nil {
		return 0, err
	}

	return next, nil
}
