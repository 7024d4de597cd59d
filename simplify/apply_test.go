// SPDX-License-Identifier: MIT

package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/simplify"
)

// TestOpApply_Matches checks every op against a shape it rewrites.
func TestOpApply_Matches(t *testing.T) {
	cases := []struct {
		name string
		op   simplify.Op
		in   string
		want string
	}{
		{"Commutative", simplify.Op{Kind: simplify.Commutative}, "m*s", "s*m"},
		{"Associative", simplify.Op{Kind: simplify.Associative}, "(m*s)*kg", "m*(s*kg)"},
		{"ReductionQuotient", simplify.Op{Kind: simplify.Reduction}, "(m/s)/(m/s)", "1"},
		{"ReductionProduct", simplify.Op{Kind: simplify.Reduction}, "(m/s)*s", "m"},
		{"ReductionLeft", simplify.Op{Kind: simplify.ReductionLeft}, "(s*m)/m", "s"},
		{"ReductionRight", simplify.Op{Kind: simplify.ReductionRight}, "(s*m)/s", "m"},
		{"ScalarQuotient", simplify.Op{Kind: simplify.Scalar}, "m/1", "m"},
		{"ScalarProduct", simplify.Op{Kind: simplify.Scalar}, "m*1", "m"},
		{"InnerLeftProduct", innerOp(simplify.InnerLeft, ops(simplify.Commutative)), "(m*s)*kg", "(s*m)*kg"},
		{"InnerRightQuotient", innerOp(simplify.InnerRight, ops(simplify.Reduction)), "kg/(m/m)", "kg/1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op.Apply(shape.MustParse(tc.in))
			require.NoError(t, err)
			want := shape.MustParse(tc.want)
			assert.True(t, want.Equal(got), "%s on %s = %s; want %s", tc.op, tc.in, got, want)
		})
	}
}

// TestOpApply_Mismatch ensures ops refuse shapes they cannot rewrite.
func TestOpApply_Mismatch(t *testing.T) {
	cases := []struct {
		name string
		op   simplify.Op
		in   string
	}{
		{"CommutativeOnQuotient", simplify.Op{Kind: simplify.Commutative}, "m/s"},
		{"AssociativeRightNested", simplify.Op{Kind: simplify.Associative}, "m*(s*kg)"},
		{"ReductionUnequal", simplify.Op{Kind: simplify.Reduction}, "m/s"},
		{"ReductionProductNoQuotient", simplify.Op{Kind: simplify.Reduction}, "m*s"},
		{"ReductionLeftWrongFactor", simplify.Op{Kind: simplify.ReductionLeft}, "(s*m)/s"},
		{"ReductionRightWrongFactor", simplify.Op{Kind: simplify.ReductionRight}, "(s*m)/m"},
		{"ScalarNoScalar", simplify.Op{Kind: simplify.Scalar}, "m/s"},
		{"ScalarLeftOperand", simplify.Op{Kind: simplify.Scalar}, "1*m"},
		{"InnerOnLeaf", innerOp(simplify.InnerLeft, ops(simplify.Commutative)), "m"},
		{"InnerSubFails", innerOp(simplify.InnerRight, ops(simplify.Commutative)), "m*(s/kg)"},
		{"OnScalar", simplify.Op{Kind: simplify.Reduction}, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.op.Apply(shape.MustParse(tc.in))
			assert.ErrorIs(t, err, simplify.ErrOpMismatch)
		})
	}
}

// TestApply_UnknownOp ensures undefined kinds surface ErrUnknownOp.
func TestApply_UnknownOp(t *testing.T) {
	_, err := simplify.Apply(meter, simplify.Script{{Kind: simplify.OpKind(99)}})
	assert.ErrorIs(t, err, simplify.ErrUnknownOp)
}

// TestApply_StopsAtFirstError verifies a script aborts on the failing step.
func TestApply_StopsAtFirstError(t *testing.T) {
	script := ops(simplify.Reduction, simplify.Commutative)
	_, err := simplify.Apply(shape.MustParse("(m/s)*s"), script)
	require.Error(t, err)
	assert.ErrorIs(t, err, simplify.ErrOpMismatch)
	assert.Contains(t, err.Error(), "commutative on m")
}

// TestApply_EmptyScript is the identity.
func TestApply_EmptyScript(t *testing.T) {
	in := shape.MustParse("m/(s*s)")
	got, err := simplify.Apply(in, nil)
	require.NoError(t, err)
	assert.True(t, in.Equal(got))
}
