// SPDX-License-Identifier: MIT

package simplify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/simplify"
)

// TestBatch_PreservesOrder checks that results line up with their inputs.
func TestBatch_PreservesOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	in := randomShapes(propertySamples / 10)
	for _, n := range []int{1, 4, 64} {
		got, err := simplify.Batch(context.Background(), in, simplify.WithConcurrency(n))
		require.NoError(t, err)
		require.Len(t, got, len(in))
		for i, s := range in {
			want := simplify.Simplify(s)
			assert.True(t, want.Canonical.Equal(got[i].Canonical), "n=%d #%d %s", n, i, s)
			assert.Equal(t, want.Script, got[i].Script, "n=%d #%d %s", n, i, s)
		}
	}
}

// TestBatch_Empty returns an empty, non-nil slice.
func TestBatch_Empty(t *testing.T) {
	defer goleak.VerifyNone(t)

	got, err := simplify.Batch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestBatch_Cancelled reports the context error and no results.
func TestBatch_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := simplify.Batch(ctx, []shape.Shape{shape.MustParse("(m/s)*s")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
