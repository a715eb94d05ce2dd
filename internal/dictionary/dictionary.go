package dictionary

import (
	"maps"
	"slices"
	"unicode/utf8"
)

// Sentinel is the placeholder shown for a field the dictionary does not carry.
const Sentinel = "—"

// PhraseLengths are the phrase lengths a dictionary entry may group phrases by.
var PhraseLengths = []int{2, 3, 4}

// Phrase is a multi-character word containing the headword.
type Phrase struct {
	Word         string `json:"word"`
	LocalGloss   string `json:"zh"`
	ForeignGloss string `json:"en,omitempty"`
}

// Entry is the metadata for one headword.
type Entry struct {
	Reading    string           `json:"bopomofo"`
	Radical    string           `json:"radical"`
	Definition string           `json:"definition"`
	Phrases    map[int][]Phrase `json:"phrases,omitempty"`
}

// PhrasesOf returns the phrases of the given length, in document order.
func (e Entry) PhrasesOf(length int) []Phrase {
	return e.Phrases[length]
}

// FirstPhrase returns the first phrase of the given length.
func (e Entry) FirstPhrase(length int) (Phrase, bool) {
	list := e.Phrases[length]
	if len(list) == 0 {
		return Phrase{}, false
	}
	return list[0], true
}

func (e Entry) clone() Entry {
	out := e
	if e.Phrases != nil {
		out.Phrases = make(map[int][]Phrase, len(e.Phrases))
		for n, list := range e.Phrases {
			out.Phrases[n] = slices.Clone(list)
		}
	}
	return out
}

// Present reports whether a field value carries information, treating the
// sentinel the same as an empty string.
func Present(value string) bool {
	return value != "" && value != Sentinel
}

// orSentinel substitutes the sentinel for an empty field.
func orSentinel(value string) string {
	if value == "" {
		return Sentinel
	}
	return value
}

// Dictionary is an immutable lookup from headword to entry.
type Dictionary struct {
	entries map[string]Entry
}

// New creates a Dictionary holding a copy of entries.
func New(entries map[string]Entry) *Dictionary {
	d := &Dictionary{entries: make(map[string]Entry, len(entries))}
	for ch, e := range entries {
		d.entries[ch] = e.clone()
	}
	return d
}

// Len returns the number of headwords.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Lookup returns the raw entry for a headword.
func (d *Dictionary) Lookup(ch string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[ch]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Entry returns the entry for ch with the sentinel substituted for every
// missing scalar field. A headword absent from the dictionary yields an entry
// made entirely of sentinels and no phrases.
func (d *Dictionary) Entry(ch string) Entry {
	e, _ := d.Lookup(ch)
	e.Reading = orSentinel(e.Reading)
	e.Radical = orSentinel(e.Radical)
	e.Definition = orSentinel(e.Definition)
	return e
}

// Characters returns all headwords sorted by code point.
func (d *Dictionary) Characters() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.entries))
}

// Entries returns a deep copy of all entries, for tools that derive a new
// dictionary from this one.
func (d *Dictionary) Entries() map[string]Entry {
	out := make(map[string]Entry, d.Len())
	if d == nil {
		return out
	}
	for ch, e := range d.entries {
		out[ch] = e.clone()
	}
	return out
}

// IsHeadword reports whether s is a single character.
func IsHeadword(s string) bool {
	return utf8.RuneCountInString(s) == 1
}
