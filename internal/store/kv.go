package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// SQLiteKV implements KV on the kv table.
type SQLiteKV struct {
	drv *entsql.Driver
}

func (k *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	sel := builder.Select("value").
		From(entsql.Table(kvTable.Name)).
		Where(entsql.EQ("key", key))

	var (
		value string
		found bool
	)
	err := selectRows(ctx, k.drv, sel, func(rows *entsql.Rows) error {
		found = true
		return rows.Scan(&value)
	})
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, found, nil
}

func (k *SQLiteKV) Set(ctx context.Context, key, value string) error {
	query, args := builder.Insert(kvTable.Name).
		Columns(columnNames(kvColumns)...).
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := k.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (k *SQLiteKV) Remove(ctx context.Context, key string) error {
	query, args := builder.Delete(kvTable.Name).
		Where(entsql.EQ("key", key)).
		Query()
	if err := k.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
