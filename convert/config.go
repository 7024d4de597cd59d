// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk table layout:
//
//	conversions:
//	  km:
//	    m: {exponent: 3}
//	  h:
//	    s: {rate: 3600}
type fileConfig struct {
	Conversions map[string]map[string]rateConfig `yaml:"conversions"`
}

// rateConfig holds exactly one of Exponent or Rate.
type rateConfig struct {
	Exponent *int     `yaml:"exponent,omitempty"`
	Rate     *float64 `yaml:"rate,omitempty"`
}

// LoadTable reads a YAML table declaration from r. Unknown keys are
// rejected. An empty document yields an empty table.
//
// Errors: ErrBadConfig for malformed YAML or entries, plus the NewTable
// errors for invalid declarations.
func LoadTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg fileConfig
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	decls, err := cfg.declarations()
	if err != nil {
		return nil, err
	}

	return NewTable(decls...)
}

// LoadTableFile is LoadTable over the file at path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	defer f.Close()

	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// declarations flattens cfg in sorted order so that errors are reported
// deterministically.
func (cfg fileConfig) declarations() ([]Declaration, error) {
	var out []Declaration
	for _, from := range sortedKeys(cfg.Conversions) {
		targets := cfg.Conversions[from]
		for _, to := range sortedKeys(targets) {
			r, err := targets[to].rate()
			if err != nil {
				return nil, fmt.Errorf("%s->%s: %w", from, to, err)
			}
			out = append(out, Declaration{From: from, To: to, Rate: r})
		}
	}

	return out, nil
}

func (rc rateConfig) rate() (Rate, error) {
	switch {
	case rc.Exponent != nil && rc.Rate != nil:
		return nil, fmt.Errorf("%w: both exponent and rate set", ErrBadConfig)
	case rc.Exponent != nil:
		e := *rc.Exponent
		if e < MinExponent || e > MaxExponent {
			return nil, fmt.Errorf("%w: exponent %d out of [%d, %d]", ErrBadConfig, e, MinExponent, MaxExponent)
		}
		return ExponentRate(e), nil
	case rc.Rate != nil:
		return NewRealRate(*rc.Rate)
	default:
		return nil, fmt.Errorf("%w: one of exponent or rate is required", ErrBadConfig)
	}
}

// MarshalYAML writes t in the LoadTable layout.
func (t *Table) MarshalYAML() (any, error) {
	cfg := fileConfig{Conversions: make(map[string]map[string]rateConfig)}
	for _, d := range t.Declarations() {
		targets := cfg.Conversions[d.From]
		if targets == nil {
			targets = make(map[string]rateConfig)
			cfg.Conversions[d.From] = targets
		}
		var rc rateConfig
		switch r := d.Rate.(type) {
		case ExponentRate:
			e := int(r)
			rc.Exponent = &e
		default:
			f := r.Factor()
			rc.Rate = &f
		}
		targets[d.To] = rc
	}

	return cfg, nil
}

func sortedKeys[M ~map[string]E, E any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
