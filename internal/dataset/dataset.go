// Package dataset loads the dictionary and schedule documents the
// application runs on.
package dataset

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/hanzi/internal/dictionary"
	"github.com/abhisek/hanzi/internal/schedule"
)

// Source names one of the documents a dataset is built from.
type Source string

const (
	SourceDictionary Source = "dictionary"
	SourceSchedule   Source = "schedule"
)

// LoadError reports that a source document could not be loaded.
type LoadError struct {
	Source Source
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Source, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Dataset is the resident data every quiz and flashcard is built from.
type Dataset struct {
	Dictionary *dictionary.Dictionary
	Schedule   *schedule.Schedule
}

// Paths locates the source documents.
type Paths struct {
	Dictionary string
	Schedule   string
}

// Load reads both documents concurrently. Both must load; the first failure
// is returned as a *LoadError.
func Load(ctx context.Context, paths Paths) (*Dataset, error) {
	var ds Dataset
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		d, err := dictionary.Load(paths.Dictionary)
		if err != nil {
			return &LoadError{Source: SourceDictionary, Path: paths.Dictionary, Err: err}
		}
		ds.Dictionary = d
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := schedule.Load(paths.Schedule)
		if err != nil {
			return &LoadError{Source: SourceSchedule, Path: paths.Schedule, Err: err}
		}
		ds.Schedule = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}
