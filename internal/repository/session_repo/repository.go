package session_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

const (
	table        = "slot_sessions"
	colID        = "session_id"
	colBalance   = "balance"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn - транзакция из контекста, если она открыта менеджером, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateSession - создает сессию в БД
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	sqlStr, args, err := createSessionQuery(session)
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetBalance - получение баланса сессии по её ID.
// Внутри транзакции строка блокируется до её завершения
func (r *repo) GetBalance(ctx context.Context, id string) (int, error) {
	sqlStr, args, err := getBalanceQuery(id)
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrSessionNotFound
		}
		return 0, err
	}

	return int(balance), nil
}

// UpdateBalance - обновляет баланс сессии
func (r *repo) UpdateBalance(ctx context.Context, id string, amount int) error {
	sqlStr, args, err := updateBalanceQuery(id, amount)
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrSessionNotFound
	}

	return nil
}

// DeleteSession - удаляет сессию из БД
func (r *repo) DeleteSession(ctx context.Context, id string) error {
	sqlStr, args, err := deleteSessionQuery(id)
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrSessionNotFound
	}

	return nil
}

func createSessionQuery(session *model.Session) (string, []any, error) {
	return sq.Insert(table).
		Columns(colID, colBalance, colCreatedAt).
		Values(session.ID, int64(session.Balance), session.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func getBalanceQuery(id string) (string, []any, error) {
	return sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func updateBalanceQuery(id string, amount int) (string, []any, error) {
	return sq.Update(table).
		Set(colBalance, int64(amount)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func deleteSessionQuery(id string) (string, []any, error) {
	return sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
