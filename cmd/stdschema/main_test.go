package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCheckFixtures(t *testing.T) (schema, good, bad string) {
	t.Helper()
	dir := t.TempDir()
	schema = filepath.Join(dir, "s.yaml")
	good = filepath.Join(dir, "good.json")
	bad = filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(schema, []byte("type: array\nitems: {type: number, max: 10}\n"), 0o644))
	require.NoError(t, os.WriteFile(good, []byte(`[1, 2.5]`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`[1, 11]`), 0o644))
	return schema, good, bad
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "stdschema version dev (contract v1)\n", out)
}

func TestCheck(t *testing.T) {
	schema, good, bad := writeCheckFixtures(t)

	out, err := run(t, "", "check", "--log-level", "error", "--schema", schema, good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.json: ok")

	out, err = run(t, "", "check", "--log-level", "error", "--schema", schema, good, bad)
	assert.ErrorIs(t, err, errIssuesFound)
	assert.Contains(t, out, "/1: must be less than or equal to 10 (too_big)")

	out, err = run(t, "", "check", "--log-level", "error", "--format", "json", "--schema", schema, bad)
	assert.ErrorIs(t, err, errIssuesFound)
	assert.Contains(t, out, `"too_big"`)
}

func TestCheck_Stdin(t *testing.T) {
	schema, _, _ := writeCheckFixtures(t)
	out, err := run(t, "[3]", "check", "--log-level", "error", "--schema", schema, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "-: ok")
}

func TestCheck_RequiresSchema(t *testing.T) {
	schema, good, _ := writeCheckFixtures(t)

	_, err := run(t, "", "check", "--log-level", "error", "--schema", schema, good)
	require.NoError(t, err)

	// flags from an earlier run do not carry over
	out, err := run(t, "", "check", good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "schema" not set`)
	assert.Empty(t, out)
}

func TestCheck_DefaultFormatIsText(t *testing.T) {
	schema, _, bad := writeCheckFixtures(t)

	_, _ = run(t, "", "check", "--log-level", "error", "--format", "json", "--schema", schema, bad)
	out, err := run(t, "", "check", "--log-level", "error", "--schema", schema, bad)
	assert.ErrorIs(t, err, errIssuesFound)
	assert.Contains(t, out, "bad.json: 1 issue(s)")
}
