package store

import (
	"context"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
)

// sequenceCounter hands out one increasing sequence shared by attempts and
// LLM request rows, so QueryOpts.After/Before page across both consistently.
// The mutex serializes within the process; RETURNING makes the increment
// atomic in the database. It uses raw SQL since the ent builders have no
// database-level atomic counter.
type sequenceCounter struct {
	mu sync.Mutex
	db *sqlx.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sqlx.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowxContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// apply adds the filters, newest-first ordering and limit shared by the
// sequenced tables.
func (o QueryOpts) apply(sel *entsql.Selector) *entsql.Selector {
	if o.After > 0 {
		sel.Where(entsql.GT("sequence", o.After))
	}
	if o.Before > 0 {
		sel.Where(entsql.LT("sequence", o.Before))
	}
	if !o.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", o.From.UTC()))
	}
	if !o.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", o.To.UTC()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if o.Limit > 0 {
		sel.Limit(o.Limit)
	}
	return sel
}

// selectRows runs sel and calls scan once per row.
func selectRows(ctx context.Context, drv *entsql.Driver, sel *entsql.Selector, scan func(*entsql.Rows) error) error {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := drv.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
