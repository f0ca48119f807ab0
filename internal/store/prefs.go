package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// prefsRepo implements PrefsRepo with the ent SQL builder.
type prefsRepo struct {
	drv *entsql.Driver
}

func (r *prefsRepo) Get(ctx context.Context, key string) (*Preference, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(colKey, colValue, colUpdatedAt).
		From(b.Table(prefsTable)).
		Where(entsql.EQ(colKey, key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query preference %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query preference %q: %w", key, err)
		}
		return nil, nil
	}

	var (
		p         Preference
		updatedAt sql.NullTime
	)
	if err := rows.Scan(&p.Key, &p.Value, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan preference %q: %w", key, err)
	}
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}

func (r *prefsRepo) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(prefsTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns(colKey),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}

func (r *prefsRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(prefsTable).
		Where(entsql.EQ(colKey, key)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}
