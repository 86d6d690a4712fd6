package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/dsl"
)

// revalidate checks that a successful output validates again to the same value.
func revalidate[T any](t *testing.T, s stdschema.Schema[T], in any) {
	t.Helper()
	first := stdschema.Parse(s, in)
	require.Truef(t, first.OK(), "input %#v: %v", in, first.Issues)
	second := stdschema.Parse(s, first.Value)
	require.True(t, second.OK(), second.Issues)
	assert.Equal(t, first, second)
}

func TestRevalidation_IsStable(t *testing.T) {
	revalidate(t, dsl.Bool(), true)
	revalidate(t, dsl.Integer(dsl.IntegerOpts{Min: dsl.Ptr[int64](0)}), 4.0)
	revalidate(t, dsl.String(dsl.StringOpts{Max: dsl.Ptr(5)}), "hello")
	revalidate(t, dsl.Array(dsl.Integer()), []any{1, 2.0, int8(3)})
	revalidate(t, dsl.Date(), "2024-01-01")

	user := dsl.StrictObject(dsl.Shape{
		"name": dsl.SchemaOf(dsl.String()),
		"tags": dsl.SchemaOf(dsl.Array(dsl.String())),
		"nick": dsl.SchemaOf(dsl.Nullable(dsl.String())),
		"age":  dsl.SchemaOf(dsl.Nullable(dsl.Integer())),
		"meta": dsl.SchemaOf(dsl.StrictObject(dsl.Shape{"ok": dsl.SchemaOf(dsl.Bool())})),
	})
	revalidate(t, user, map[string]any{
		"name": "ann",
		"tags": []any{"x"},
		"nick": nil,
		"age":  7,
		"meta": map[string]any{"ok": true},
	})
}
