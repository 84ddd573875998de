package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Currencies keeps the document order of the currencies object so "first
// currency" is well defined.
type Currencies []Currency

// UnmarshalJSON decodes {"ZAR": {"name": ...}, ...} preserving key order.
func (c *Currencies) UnmarshalJSON(data []byte) error {
	entries, err := decodeOrderedObject[Currency](data)
	if err != nil {
		return fmt.Errorf("currencies: %w", err)
	}
	out := make(Currencies, 0, len(entries))
	for _, e := range entries {
		cur := e.value
		cur.Code = e.key
		out = append(out, cur)
	}
	*c = out
	return nil
}

// Languages keeps the document order of the languages object.
type Languages []Language

// UnmarshalJSON decodes {"eng": "English", ...} preserving key order.
func (l *Languages) UnmarshalJSON(data []byte) error {
	entries, err := decodeOrderedObject[string](data)
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}
	out := make(Languages, 0, len(entries))
	for _, e := range entries {
		out = append(out, Language{Code: e.key, Name: e.value})
	}
	*l = out
	return nil
}

// Names returns the language names in document order.
func (l Languages) Names() []string {
	names := make([]string, 0, len(l))
	for _, lang := range l {
		names = append(names, lang.Name)
	}
	return names
}

type keyedValue[T any] struct {
	key   string
	value T
}

// decodeOrderedObject walks a JSON object token by token. JSON null decodes
// to no entries.
func decodeOrderedObject[T any](data []byte) ([]keyedValue[T], error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var out []keyedValue[T]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var value T
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out = append(out, keyedValue[T]{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}
