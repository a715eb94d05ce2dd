// Package dictbuild converts a lexicon export into a dictionary document.
package dictbuild

import (
	"strings"

	"github.com/abhisek/hanzi/internal/dictionary"
)

// Stats counts what Build did with its input.
type Stats struct {
	Rows    int // rows read
	Kept    int // single-character rows applied
	Skipped int // multi-character or empty headwords
	Merged  int // headwords that already existed in the base dictionary
}

// Build keeps the single-character rows and maps their reading, radical
// and definition into entries. Blank values become the sentinel. When a
// headword repeats, the last row wins. Entries of base are carried over,
// and a rebuilt headword keeps its phrase lists. base may be nil.
func Build(rows []Row, base *dictionary.Dictionary) (*dictionary.Dictionary, Stats) {
	entries := base.Entries()
	existing := make(map[string]bool, len(entries))
	for ch := range entries {
		existing[ch] = true
	}

	stats := Stats{Rows: len(rows)}
	for _, row := range rows {
		ch := strings.TrimSpace(row[ColumnHeadword])
		if !dictionary.IsHeadword(ch) {
			stats.Skipped++
			continue
		}
		stats.Kept++
		if existing[ch] {
			stats.Merged++
			existing[ch] = false
		}

		entry := entries[ch]
		entry.Radical = field(row, ColumnRadical)
		entry.Reading = field(row, ColumnReading)
		entry.Definition = field(row, ColumnDefinition)
		entries[ch] = entry
	}
	return dictionary.New(entries), stats
}

func field(row Row, column string) string {
	if v := strings.TrimSpace(row[column]); v != "" {
		return v
	}
	return dictionary.Sentinel
}
