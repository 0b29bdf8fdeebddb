package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPostgresRepository(pool *pgxpool.Pool) *postgresRepository {
	return &postgresRepository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepository) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	const op = "repository.postgres.Get"

	q := r.sb.
		Select("value").
		From("client_settings").
		Where(sq.Eq{"client_id": clientID, "key": key})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var value []byte
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

func (r *postgresRepository) Set(ctx context.Context, clientID, key string, value []byte) error {
	const op = "repository.postgres.Set"

	q := r.sb.
		Insert("client_settings").
		Columns("client_id", "key", "value").
		Values(clientID, key, string(value)).
		Suffix("ON CONFLICT (client_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
