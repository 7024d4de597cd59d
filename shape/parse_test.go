// SPDX-License-Identifier: MIT

package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitshape/shape"
)

// TestParse_Valid checks parsing, associativity and grouping.
func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want shape.Shape
	}{
		{"m", m},
		{"1", shape.Scalar()},
		{"m/s", shape.Quotient(m, s)},
		{"m/s*s", shape.Product(shape.Quotient(m, s), s)},
		{"(m/s)*s", shape.Product(shape.Quotient(m, s), s)},
		{"m/(s*s)", shape.Quotient(m, shape.Product(s, s))},
		{"  kg * m / ( s * s ) ", shape.Quotient(shape.Product(kg, m), shape.Product(s, s))},
		{"1/s", shape.Quotient(shape.Scalar(), s)},
		{"°C", shape.Atomic("°C")},
		{"m_2", shape.Atomic("m_2")},
		{"((m))", m},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := shape.Parse(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "Parse(%q) = %s; want %s", tc.in, got, tc.want)
		})
	}
}

// TestParse_Errors ensures malformed input surfaces ErrSyntax.
func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "m*", "*m", "(m", "m)", "1m", "2", "m s", "m+s", "()"} {
		t.Run(in, func(t *testing.T) {
			_, err := shape.Parse(in)
			assert.ErrorIs(t, err, shape.ErrSyntax)
		})
	}
}

// TestParse_RoundTrip verifies Parse(String(x)) == x for nested shapes.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []shape.Shape{
		shape.Scalar(),
		shape.Product(shape.Product(m, s), kg),
		shape.Product(m, shape.Product(s, kg)),
		shape.Quotient(shape.Quotient(m, s), s),
		shape.Quotient(m, shape.Quotient(s, s)),
		shape.Product(shape.Scalar(), shape.Quotient(shape.Scalar(), m)),
	}
	for _, in := range inputs {
		got, err := shape.Parse(in.String())
		require.NoError(t, err, in.String())
		assert.True(t, in.Equal(got), "round trip of %s gave %s", in, got)
	}
}

// TestMustParse_Panics ensures MustParse panics on bad input.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { shape.MustParse("m//s") })
	assert.NotPanics(t, func() { shape.MustParse("m/s") })
}
