package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	doc := `{
		"2025-05-11": ["鋪", "童", "掌", "瓣"],
		"2025-05-10": ["掌", "瓣", "掌"]
	}`
	s, err := Decode([]byte(doc), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-05-10", "2025-05-11"}, s.Dates())
	assert.Equal(t, []string{"掌", "瓣", "掌"}, s.Day("2025-05-10"))
	assert.Nil(t, s.Day("2025-05-12"))
	assert.True(t, s.Has("2025-05-11"))
	assert.Equal(t, 2, s.Len())
}

func TestDecodeYAML(t *testing.T) {
	doc := "2025-05-10:\n  - 掌\n  - 瓣\n"
	s, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"掌", "瓣"}, s.Day("2025-05-10"))
}

func TestDecode_InvalidDate(t *testing.T) {
	_, err := Decode([]byte(`{"2025-13-01": ["掌"]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte(`{"tomorrow": ["掌"]}`), FormatJSON)
	assert.Error(t, err)
}

func TestLoad_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.yml")
	require.NoError(t, os.WriteFile(path, []byte("2025-05-10: [掌, 瓣]\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"掌", "瓣"}, s.Day("2025-05-10"))

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDay_ReturnsCopy(t *testing.T) {
	s, err := New(map[string][]string{"2025-05-10": {"掌", "瓣"}})
	require.NoError(t, err)

	day := s.Day("2025-05-10")
	day[0] = "X"
	assert.Equal(t, "掌", s.Day("2025-05-10")[0])
}

func TestCurrent(t *testing.T) {
	s, err := New(map[string][]string{
		"2025-05-10": {"掌"},
		"2025-05-12": {"瓣"},
	})
	require.NoError(t, err)

	at := func(date string) time.Time {
		tm, err := time.Parse(DateLayout, date)
		require.NoError(t, err)
		return tm
	}

	tests := []struct {
		now  string
		want string
	}{
		{"2025-05-10", "2025-05-10"},
		{"2025-05-11", "2025-05-10"},
		{"2025-05-20", "2025-05-12"},
		{"2025-01-01", "2025-05-10"},
	}
	for _, tt := range tests {
		got, ok := s.Current(at(tt.now))
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "now=%s", tt.now)
	}

	empty, err := New(nil)
	require.NoError(t, err)
	_, ok := empty.Current(time.Now())
	assert.False(t, ok)
}

func TestMonths(t *testing.T) {
	s, err := New(map[string][]string{
		"2025-06-01": {"a"},
		"2025-05-10": {"b"},
		"2025-05-11": {"c"},
	})
	require.NoError(t, err)

	months := s.Months()
	require.Len(t, months, 2)
	assert.Equal(t, "2025-05", months[0].Key)
	assert.Equal(t, []string{"2025-05-10", "2025-05-11"}, months[0].Dates)
	assert.Equal(t, "2025-06", months[1].Key)
}
