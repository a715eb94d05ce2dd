// Package gloss fills in missing English glosses of dictionary phrases
// using an LLM provider.
package gloss

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/hanzi/internal/dictionary"
	"github.com/abhisek/hanzi/internal/llm"
)

// Report summarises one enrichment run.
type Report struct {
	// Characters is the number of headwords a request was made for.
	Characters int

	// Requested is the number of phrases that lacked a gloss.
	Requested int

	// Filled is the number of phrases that received one.
	Filled int

	// Failed lists the headwords whose request failed.
	Failed []string
}

// Enricher asks a provider for the glosses a dictionary is missing.
type Enricher struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates an Enricher. A nil logger discards log output.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Enricher {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{provider: provider, config: cfg, logger: logger}
}

// Pending returns, per headword, the phrases with no English gloss, along
// with the headwords in code point order.
func Pending(d *dictionary.Dictionary) ([]string, map[string][]dictionary.Phrase) {
	var chars []string
	pending := make(map[string][]dictionary.Phrase)
	for _, ch := range d.Characters() {
		e, _ := d.Lookup(ch)
		var missing []dictionary.Phrase
		for _, n := range dictionary.PhraseLengths {
			for _, p := range e.PhrasesOf(n) {
				if p.ForeignGloss == "" {
					missing = append(missing, p)
				}
			}
		}
		if len(missing) > 0 {
			chars = append(chars, ch)
			pending[ch] = missing
		}
	}
	return chars, pending
}

type glossOutput struct {
	Glosses []struct {
		Word string `json:"word"`
		En   string `json:"en"`
	} `json:"glosses"`
}

// Enrich returns a copy of d with the glosses the provider supplied. A
// failed request for one headword is logged and recorded in the report;
// only cancellation of ctx fails the run.
func (e *Enricher) Enrich(ctx context.Context, d *dictionary.Dictionary) (*dictionary.Dictionary, Report, error) {
	chars, pending := Pending(d)
	if e.config.Limit > 0 && len(chars) > e.config.Limit {
		chars = chars[:e.config.Limit]
	}

	var report Report
	report.Characters = len(chars)
	for _, ch := range chars {
		report.Requested += len(pending[ch])
	}

	results := make([]map[string]string, len(chars))
	failed := make([]bool, len(chars))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Concurrency)
	for i, ch := range chars {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			glosses, err := e.enrichOne(gctx, ch, pending[ch])
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				e.logger.Warn("gloss request failed", zap.String("character", ch), zap.Error(err))
				failed[i] = true
				return nil
			}
			results[i] = glosses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, report, err
	}
	if err := ctx.Err(); err != nil {
		return nil, report, err
	}

	entries := d.Entries()
	for i, ch := range chars {
		if failed[i] {
			report.Failed = append(report.Failed, ch)
			continue
		}
		entry := entries[ch]
		for n, list := range entry.Phrases {
			for j := range list {
				if list[j].ForeignGloss != "" {
					continue
				}
				if en, ok := results[i][list[j].Word]; ok {
					list[j].ForeignGloss = en
					report.Filled++
				}
			}
			entry.Phrases[n] = list
		}
		entries[ch] = entry
	}

	e.logger.Info("gloss enrichment finished",
		zap.Int("characters", report.Characters),
		zap.Int("requested", report.Requested),
		zap.Int("filled", report.Filled),
		zap.Int("failed", len(report.Failed)),
	)
	return dictionary.New(entries), report, nil
}

// enrichOne requests glosses for one headword's phrases. Glosses for words
// that were not asked for, and empty glosses, are dropped.
func (e *Enricher) enrichOne(ctx context.Context, ch string, phrases []dictionary.Phrase) (map[string]string, error) {
	ctx = llm.WithPurpose(ctx, "gloss")
	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(ch, phrases)},
		},
		Schema:      GlossSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gloss %s: %w", ch, err)
	}

	var out glossOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse gloss response for %s: %w", ch, err)
	}

	asked := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		asked[p.Word] = true
	}
	glosses := make(map[string]string, len(out.Glosses))
	for _, g := range out.Glosses {
		en := strings.TrimSpace(g.En)
		if asked[g.Word] && en != "" {
			glosses[g.Word] = en
		}
	}
	return glosses, nil
}
