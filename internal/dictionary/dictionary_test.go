package dictionary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "掌": {
    "bopomofo": "ㄓㄤˇ",
    "radical": "手",
    "definition": "手心",
    "phrases": {
      "2": [{"word": "鼓掌", "zh": "拍手", "en": "applaud"}],
      "4": [{"word": "易如反掌", "zh": "非常容易"}]
    }
  },
  "瓣": {
    "bopomofo": "ㄅㄢˋ",
    "radical": "瓜",
    "definition": ""
  }
}`

func TestDecode(t *testing.T) {
	d, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"掌", "瓣"}, d.Characters())

	e, ok := d.Lookup("掌")
	require.True(t, ok)
	assert.Equal(t, "ㄓㄤˇ", e.Reading)
	p, ok := e.FirstPhrase(2)
	require.True(t, ok)
	assert.Equal(t, Phrase{Word: "鼓掌", LocalGloss: "拍手", ForeignGloss: "applaud"}, p)
	assert.Len(t, e.PhrasesOf(4), 1)
	assert.Empty(t, e.PhrasesOf(3))
}

func TestDecode_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"掌": `},
		{"not an object", `["掌"]`},
		{"bad phrase length", `{"掌": {"phrases": {"5": []}}}`},
		{"phrase without word", `{"掌": {"phrases": {"2": [{"zh": "拍手"}]}}}`},
		{"reading not a string", `{"掌": {"bopomofo": 3}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestEntry_SubstitutesSentinel(t *testing.T) {
	d, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	e := d.Entry("瓣")
	assert.Equal(t, "ㄅㄢˋ", e.Reading)
	assert.Equal(t, Sentinel, e.Definition)

	missing := d.Entry("龘")
	assert.Equal(t, Sentinel, missing.Reading)
	assert.Equal(t, Sentinel, missing.Radical)
	assert.Equal(t, Sentinel, missing.Definition)
	assert.Empty(t, missing.Phrases)
}

func TestDictionary_IsImmutable(t *testing.T) {
	src := map[string]Entry{
		"掌": {Reading: "ㄓㄤˇ", Phrases: map[int][]Phrase{2: {{Word: "鼓掌"}}}},
	}
	d := New(src)
	src["掌"].Phrases[2][0] = Phrase{Word: "changed"}

	e, _ := d.Lookup("掌")
	e.Phrases[2][0].Word = "also changed"

	again, _ := d.Lookup("掌")
	assert.Equal(t, "鼓掌", again.Phrases[2][0].Word)
}

func TestEncode_RoundTrip(t *testing.T) {
	d, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	assert.Contains(t, buf.String(), `"鼓掌"`)
	assert.NotContains(t, buf.String(), `\u`)

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.Entries(), back.Entries())
}

func TestPresent(t *testing.T) {
	assert.False(t, Present(""))
	assert.False(t, Present(Sentinel))
	assert.True(t, Present("手心"))
}

func TestNilDictionary(t *testing.T) {
	var d *Dictionary
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Characters())
	assert.Equal(t, Sentinel, d.Entry("掌").Reading)
}
