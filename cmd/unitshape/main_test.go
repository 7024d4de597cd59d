// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/unitshape/convert"
	"github.com/katalvlaran/unitshape/shape"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestSimplifyCmd_Text(t *testing.T) {
	out, err := run(t, "simplify", "-j", "1", "(m/s)*s", "s*(m/s)", "m/m")
	require.NoError(t, err)
	want := "(m/s)*s\tm\t[reduction]\n" +
		"s*(m/s)\tm\t[commutative, reduction]\n" +
		"m/m\t1\t[reduction]\n"
	assert.Equal(t, want, out)
}

func TestSimplifyCmd_YAML(t *testing.T) {
	out, err := run(t, "simplify", "-o", "yaml", "(s*m)/m")
	require.NoError(t, err)

	var rows []simplifyRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	want := []simplifyRow{{Input: "(s*m)/m", Canonical: "s", Script: "[reduction_left]"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyCmd_Errors(t *testing.T) {
	_, err := run(t, "simplify", "m*/s")
	assert.ErrorIs(t, err, shape.ErrSyntax)

	_, err = run(t, "simplify", "-j", "0", "m")
	assert.ErrorContains(t, err, "--jobs")

	_, err = run(t, "simplify")
	assert.Error(t, err, "at least one shape is required")
}

func TestConvertCmd(t *testing.T) {
	out, err := run(t, "convert", "1", "km", "m")
	require.NoError(t, err)
	assert.Equal(t, "1km = 1000m\n", out)

	out, err = run(t, "convert", "-o", "yaml", "36", "km/h", "m/s")
	require.NoError(t, err)
	var row convertRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &row))
	assert.Equal(t, "km/h", row.From)
	assert.Equal(t, "m/s", row.To)
	assert.InDelta(t, 10.0, row.Out, 1e-12)

	_, err = run(t, "convert", "1", "km", "mm")
	assert.ErrorIs(t, err, convert.ErrNoConversion)

	_, err = run(t, "convert", "abc", "km", "m")
	assert.ErrorContains(t, err, `value "abc"`)
}

func TestConvertCmd_TableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	doc := "conversions:\n  furlong:\n    m: {rate: 201.168}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := run(t, "convert", "--table", path, "2", "furlong", "m")
	require.NoError(t, err)
	assert.Equal(t, "2furlong = 402.336m\n", out)

	_, err = run(t, "convert", "--table", path, "1", "km", "m")
	assert.ErrorIs(t, err, convert.ErrNoConversion, "a table file replaces the built-in table")

	_, err = run(t, "convert", "--table", filepath.Join(t.TempDir(), "none.yaml"), "1", "km", "m")
	assert.ErrorIs(t, err, convert.ErrBadConfig)
}

func TestNormalizeCmd(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"normalize", "540"}, "-180deg\n"},
		{[]string{"normalize", "360"}, "0deg\n"},
		{[]string{"normalize", "--", "-400"}, "-40deg\n"},
		{[]string{"normalize", "--unit", "rad", "0"}, "0rad\n"},
	}
	for _, tc := range cases {
		out, err := run(t, tc.args...)
		require.NoError(t, err, "%v", tc.args)
		assert.Equal(t, tc.want, out, "%v", tc.args)
	}

	_, err := run(t, "normalize", "--unit", "grad", "10")
	assert.ErrorContains(t, err, "--unit")
}

func TestTableCmd(t *testing.T) {
	out, err := run(t, "table")
	require.NoError(t, err)
	assert.Contains(t, out, "km->m exponent(3)\n")
	assert.Contains(t, out, "h->s rate(3600)\n")

	out, err = run(t, "table", "-o", "yaml")
	require.NoError(t, err)
	back, err := convert.LoadTable(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Equal(t, convert.Standard().Len(), back.Len())
}

func TestRootCmd_BadOutput(t *testing.T) {
	_, err := run(t, "--output", "json", "table")
	assert.ErrorIs(t, err, errBadOutput)
}
