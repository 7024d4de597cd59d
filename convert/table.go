// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"slices"
	"strings"
)

// Declaration states that one From unit equals Rate applied to it in To
// units. Declarations are ordered: km→m says nothing about m→km.
type Declaration struct {
	From string
	To   string
	Rate Rate
}

// Inverse returns the declaration of the opposite direction.
func (d Declaration) Inverse() Declaration {
	return Declaration{From: d.To, To: d.From, Rate: d.Rate.Inverse()}
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s->%s %s", d.From, d.To, d.Rate)
}

// Both returns the declaration from→to with rate r and its inverse.
func Both(from, to string, r Rate) []Declaration {
	d := Declaration{From: from, To: to, Rate: r}

	return []Declaration{d, d.Inverse()}
}

type pair struct{ from, to string }

// Table is an immutable set of direct conversions. It is safe for
// concurrent use.
type Table struct {
	rates map[pair]Rate
}

// NewTable validates decls and builds a table.
//
// Errors:
//   - ErrEmptyUnit            if a From or To name is empty.
//   - ErrInvalidRate          if a rate is nil, zero, NaN or infinite.
//   - ErrDuplicateDeclaration if an ordered pair is declared twice.
func NewTable(decls ...Declaration) (*Table, error) {
	t := &Table{rates: make(map[pair]Rate, len(decls))}
	if err := t.add(decls); err != nil {
		return nil, err
	}

	return t, nil
}

// MustTable is NewTable for package-level literals; it panics on error.
func MustTable(decls ...Declaration) *Table {
	t, err := NewTable(decls...)
	if err != nil {
		panic(err)
	}

	return t
}

// With returns a copy of t extended by decls. t itself is unchanged.
func (t *Table) With(decls ...Declaration) (*Table, error) {
	out := &Table{rates: make(map[pair]Rate, len(t.rates)+len(decls))}
	for k, r := range t.rates {
		out.rates[k] = r
	}
	if err := out.add(decls); err != nil {
		return nil, err
	}

	return out, nil
}

func (t *Table) add(decls []Declaration) error {
	for _, d := range decls {
		if d.From == "" || d.To == "" {
			return fmt.Errorf("declaration %q->%q: %w", d.From, d.To, ErrEmptyUnit)
		}
		if err := validRate(d.Rate); err != nil {
			return fmt.Errorf("declaration %s->%s: %w", d.From, d.To, err)
		}
		k := pair{d.From, d.To}
		if _, dup := t.rates[k]; dup {
			return fmt.Errorf("declaration %s->%s: %w", d.From, d.To, ErrDuplicateDeclaration)
		}
		t.rates[k] = d.Rate
	}

	return nil
}

// Rate returns the direct rate from→to.
func (t *Table) Rate(from, to string) (Rate, bool) {
	r, ok := t.rates[pair{from, to}]

	return r, ok
}

// Has reports whether from→to is declared.
func (t *Table) Has(from, to string) bool {
	_, ok := t.rates[pair{from, to}]

	return ok
}

// Len returns the number of declarations.
func (t *Table) Len() int { return len(t.rates) }

// Units returns every unit name mentioned by t, sorted.
func (t *Table) Units() []string {
	seen := make(map[string]struct{}, 2*len(t.rates))
	for k := range t.rates {
		seen[k.from] = struct{}{}
		seen[k.to] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	slices.Sort(out)

	return out
}

// Declarations returns the table contents sorted by (From, To).
func (t *Table) Declarations() []Declaration {
	out := make([]Declaration, 0, len(t.rates))
	for k, r := range t.rates {
		out = append(out, Declaration{From: k.from, To: k.to, Rate: r})
	}
	slices.SortFunc(out, func(a, b Declaration) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}

		return strings.Compare(a.To, b.To)
	})

	return out
}
