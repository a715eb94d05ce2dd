package schedule

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the format of schedule dates.
const DateLayout = "2006-01-02"

// Schedule maps a date to the ordered list of characters due that day.
type Schedule struct {
	days map[string][]string
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// New builds a Schedule from a date → characters map. Character order and
// duplicates are preserved.
func New(days map[string][]string) (*Schedule, error) {
	s := &Schedule{days: make(map[string][]string, len(days))}
	for date, chars := range days {
		if !ValidDate(date) {
			return nil, fmt.Errorf("invalid schedule date %q", date)
		}
		s.days[date] = slices.Clone(chars)
	}
	return s, nil
}

// Format identifies a schedule document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the document format from a file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a schedule document.
func Decode(data []byte, format Format) (*Schedule, error) {
	var days map[string][]string
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &days)
	default:
		err = json.Unmarshal(data, &days)
	}
	if err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	return New(days)
}

// Load reads the schedule document at path.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	return Decode(data, FormatFor(path))
}

// Dates returns every scheduled date in ascending order.
func (s *Schedule) Dates() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.days))
}

// Day returns the characters due on date, or nil if nothing is scheduled.
func (s *Schedule) Day(date string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.days[date])
}

// Has reports whether date is scheduled.
func (s *Schedule) Has(date string) bool {
	if s == nil {
		return false
	}
	_, ok := s.days[date]
	return ok
}

// Len returns the number of scheduled dates.
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.days)
}

// Current returns the date to study on the day containing now: that date if
// scheduled, else the latest earlier date, else the first scheduled date.
func (s *Schedule) Current(now time.Time) (string, bool) {
	dates := s.Dates()
	if len(dates) == 0 {
		return "", false
	}
	today := now.Format(DateLayout)
	i, found := slices.BinarySearch(dates, today)
	switch {
	case found:
		return dates[i], true
	case i > 0:
		return dates[i-1], true
	default:
		return dates[0], true
	}
}

// Months groups the scheduled dates by YYYY-MM, both levels ascending.
func (s *Schedule) Months() []Month {
	var months []Month
	for _, date := range s.Dates() {
		key := date[:7]
		if len(months) == 0 || months[len(months)-1].Key != key {
			months = append(months, Month{Key: key})
		}
		months[len(months)-1].Dates = append(months[len(months)-1].Dates, date)
	}
	return months
}

// Month is one calendar month of scheduled dates.
type Month struct {
	Key   string
	Dates []string
}
