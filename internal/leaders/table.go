// Package leaders maps country display names to a leader profile. The
// mapping is data, not code: new countries are added to leaders.yaml or to a
// file named by LEADER_TABLE_PATH.
package leaders

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"idscope_backend/platform/sanitize"
	"idscope_backend/platform/validator"

	"gopkg.in/yaml.v3"
)

//go:embed leaders.yaml
var embeddedTable []byte

// Profile is the leader block appended after a successful country lookup.
type Profile struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type fileEntry struct {
	Country string `yaml:"country" validate:"required,notblank"`
	Name    string `yaml:"name" validate:"required,notblank"`
	Image   string `yaml:"image" validate:"required,url"`
}

type fileFallback struct {
	Name  string `yaml:"name" validate:"required,notblank"`
	Image string `yaml:"image" validate:"required,url"`
}

type file struct {
	Fallback fileFallback `yaml:"fallback"`
	Leaders  []fileEntry  `yaml:"leaders" validate:"dive"`
}

// Table is an immutable country -> leader mapping.
type Table struct {
	byCountry map[string]Profile
	fallback  Profile
}

// Embedded returns the table compiled into the binary.
func Embedded(val *validator.Validator) (*Table, error) {
	return Parse(embeddedTable, val)
}

// Load reads a table from path, or the embedded table when path is empty.
func Load(path string, val *validator.Validator) (*Table, error) {
	if path == "" {
		return Embedded(val)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read leader table: %w", err)
	}
	return Parse(data, val)
}

// Parse decodes and validates a YAML leader table.
func Parse(data []byte, val *validator.Validator) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode leader table: %w", err)
	}
	if err := val.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid leader table: %w", err)
	}

	t := &Table{
		byCountry: make(map[string]Profile, len(f.Leaders)),
		fallback:  Profile{Name: sanitize.Text(f.Fallback.Name), ImageURL: f.Fallback.Image},
	}
	for _, e := range f.Leaders {
		if _, dup := t.byCountry[e.Country]; dup {
			return nil, fmt.Errorf("invalid leader table: duplicate country %q", e.Country)
		}
		t.byCountry[e.Country] = Profile{Name: sanitize.Text(e.Name), ImageURL: e.Image}
	}
	return t, nil
}

// Lookup returns the leader for country, or the fallback profile for any
// country not in the table, Unknown included.
func (t *Table) Lookup(country string) Profile {
	if p, ok := t.byCountry[country]; ok {
		return p
	}
	return t.fallback
}

// Has reports whether country has its own entry.
func (t *Table) Has(country string) bool {
	_, ok := t.byCountry[country]
	return ok
}

// Countries lists the mapped countries in sorted order.
func (t *Table) Countries() []string {
	out := make([]string, 0, len(t.byCountry))
	for c := range t.byCountry {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
