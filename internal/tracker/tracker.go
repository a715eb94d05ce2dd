// Package tracker records per-day completion and the latest quiz score.
//
// State lives in a string key-value store: the key "<date>" holds "done"
// while the day is complete, and "score-<date>" holds the latest score as a
// decimal string.
package tracker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abhisek/hanzi/internal/schedule"
	"github.com/abhisek/hanzi/internal/store"
)

const (
	doneValue   = "done"
	scorePrefix = "score-"
)

// State is the completion state of one scheduled date.
type State struct {
	Date      string
	Completed bool
	LastScore *int
}

// Tracker reads and writes completion state.
type Tracker struct {
	kv store.KV
}

// New creates a Tracker over kv.
func New(kv store.KV) *Tracker {
	return &Tracker{kv: kv}
}

func checkDate(date string) error {
	if !schedule.ValidDate(date) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return nil
}

// MarkDone marks date as completed.
func (t *Tracker) MarkDone(ctx context.Context, date string) error {
	if err := checkDate(date); err != nil {
		return err
	}
	return t.kv.Set(ctx, date, doneValue)
}

// Unmark clears the completion flag of date.
func (t *Tracker) Unmark(ctx context.Context, date string) error {
	if err := checkDate(date); err != nil {
		return err
	}
	return t.kv.Remove(ctx, date)
}

// IsDone reports whether date is marked completed.
func (t *Tracker) IsDone(ctx context.Context, date string) (bool, error) {
	if err := checkDate(date); err != nil {
		return false, err
	}
	v, ok, err := t.kv.Get(ctx, date)
	if err != nil {
		return false, err
	}
	return ok && v == doneValue, nil
}

// SaveScore records score as the latest quiz score of date.
func (t *Tracker) SaveScore(ctx context.Context, date string, score int) error {
	if err := checkDate(date); err != nil {
		return err
	}
	return t.kv.Set(ctx, scorePrefix+date, strconv.Itoa(score))
}

// LastScore returns the latest quiz score of date. A stored value that is
// not a decimal integer is reported as absent.
func (t *Tracker) LastScore(ctx context.Context, date string) (int, bool, error) {
	if err := checkDate(date); err != nil {
		return 0, false, err
	}
	v, ok, err := t.kv.Get(ctx, scorePrefix+date)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// State returns the completion state of date.
func (t *Tracker) State(ctx context.Context, date string) (State, error) {
	done, err := t.IsDone(ctx, date)
	if err != nil {
		return State{}, err
	}
	st := State{Date: date, Completed: done}
	score, ok, err := t.LastScore(ctx, date)
	if err != nil {
		return State{}, err
	}
	if ok {
		st.LastScore = &score
	}
	return st, nil
}

// States returns the completion state of each date, in the given order.
func (t *Tracker) States(ctx context.Context, dates []string) ([]State, error) {
	out := make([]State, 0, len(dates))
	for _, d := range dates {
		st, err := t.State(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("state of %s: %w", d, err)
		}
		out = append(out, st)
	}
	return out, nil
}

// CompletedCount returns how many of dates are marked completed.
func (t *Tracker) CompletedCount(ctx context.Context, dates []string) (int, error) {
	n := 0
	for _, d := range dates {
		done, err := t.IsDone(ctx, d)
		if err != nil {
			return 0, err
		}
		if done {
			n++
		}
	}
	return n, nil
}
