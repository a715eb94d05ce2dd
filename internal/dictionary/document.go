package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const documentSchemaURL = "schema://hanzi-dictionary.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// documentSchema describes the dictionary document: an object keyed by
// headword whose values carry the entry fields and phrase lists keyed "2".."4".
var documentSchema = map[string]any{
	"type": "object",
	"propertyNames": map[string]any{
		"minLength": 1,
	},
	"additionalProperties": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"bopomofo":   map[string]any{"type": "string"},
			"radical":    map[string]any{"type": "string"},
			"definition": map[string]any{"type": "string"},
			"phrases": map[string]any{
				"type": "object",
				"propertyNames": map[string]any{
					"enum": []any{"2", "3", "4"},
				},
				"additionalProperties": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"word"},
						"properties": map[string]any{
							"word": map[string]any{"type": "string", "minLength": 1},
							"zh":   map[string]any{"type": "string"},
							"en":   map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON values, not Go literals.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(documentSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(documentSchemaURL)
	})
	return compiledSchema, compileErr
}

// Validate checks a raw dictionary document against the document schema.
func Validate(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := schema()
	if err != nil {
		return fmt.Errorf("compile dictionary schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("dictionary document: %w", err)
	}
	return nil
}

// Decode reads and validates a dictionary document.
func Decode(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	return New(entries), nil
}

// Load reads the dictionary document at path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes the dictionary as an indented UTF-8 JSON document with keys
// in code point order.
func (d *Dictionary) Encode(w io.Writer) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.Entries()); err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes the dictionary document to path.
func (d *Dictionary) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
