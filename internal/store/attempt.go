package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type attemptRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	if a.TakenAt.IsZero() {
		a.TakenAt = time.Now()
	}

	query, args := builder.Insert(attemptsTable.Name).
		Columns(columnNames(attemptsColumns[1:])...).
		Values(seqNum, a.TakenAt.UTC(), a.QuizID, a.Date, a.Mode, a.Score, a.Total).
		Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("attempt id: %w", err)
	}
	a.ID = id
	a.Sequence = seqNum
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	sel := opts.apply(builder.Select(columnNames(attemptsColumns)...).
		From(entsql.Table(attemptsTable.Name)))

	out, err := r.scan(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) ForDate(ctx context.Context, date string) ([]Attempt, error) {
	sel := builder.Select(columnNames(attemptsColumns)...).
		From(entsql.Table(attemptsTable.Name)).
		Where(entsql.EQ("date", date)).
		OrderBy(entsql.Desc("sequence"))

	out, err := r.scan(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query attempts for %s: %w", date, err)
	}
	return out, nil
}

func (r *attemptRepo) scan(ctx context.Context, sel *entsql.Selector) ([]Attempt, error) {
	var out []Attempt
	err := selectRows(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.Sequence, &a.TakenAt, &a.QuizID, &a.Date, &a.Mode, &a.Score, &a.Total); err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	return out, err
}
