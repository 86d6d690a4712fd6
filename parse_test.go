package stdschema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/dsl"
)

// pendingSchema always answers with a deferred outcome.
func pendingSchema[T any]() stdschema.Schema[T] {
	return stdschema.Func("async-vendor", func(v any) stdschema.Outcome[T] {
		return stdschema.Defer(func() stdschema.Result[T] {
			var zero T
			return stdschema.Success(zero)
		})
	})
}

func recoverContractError(t *testing.T, fn func()) *stdschema.ContractError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	require.NotNil(t, got, "expected a panic")
	ce, ok := got.(*stdschema.ContractError)
	require.Truef(t, ok, "expected *ContractError, got %T", got)
	return ce
}

func TestParse_ReturnsImmediateResultUnchanged(t *testing.T) {
	want := stdschema.Failure[string](stdschema.Issue{Code: "custom", Message: "nope"})
	s := stdschema.Func("test", func(v any) stdschema.Outcome[string] { return want })

	got := stdschema.Parse(s, "x")
	assert.Equal(t, want, got)

	ok := stdschema.Func("test", func(v any) stdschema.Outcome[string] {
		return stdschema.Success(v.(string) + "!")
	})
	assert.Equal(t, "x!", stdschema.Parse(ok, "x").Value)
}

func TestParse_PendingIsContractViolation(t *testing.T) {
	for _, in := range []any{nil, 1, "x", []any{}, map[string]any{}} {
		ce := recoverContractError(t, func() { stdschema.Parse(pendingSchema[int](), in) })
		assert.ErrorIs(t, ce, stdschema.ErrAsyncUnsupported)
		assert.Equal(t, "async-vendor", ce.Vendor)
	}
}

func TestParse_NilOutcomeIsContractViolation(t *testing.T) {
	s := stdschema.Func("nil-vendor", func(v any) stdschema.Outcome[int] { return nil })
	ce := recoverContractError(t, func() { stdschema.Parse(s, 1) })
	assert.ErrorIs(t, ce, stdschema.ErrAsyncUnsupported)
}

func TestParse_ContractViolationCrossesNesting(t *testing.T) {
	nested := dsl.StrictObject(dsl.Shape{
		"items": dsl.SchemaOf(dsl.Array(dsl.Nullable(pendingSchema[string]()))),
	})
	ce := recoverContractError(t, func() {
		stdschema.Parse(nested, map[string]any{"items": []any{"a"}})
	})
	assert.ErrorIs(t, ce, stdschema.ErrAsyncUnsupported)

	// nil short-circuits before the pending child is reached
	res := stdschema.Parse(nested, map[string]any{"items": []any{nil}})
	assert.True(t, res.OK())
}

func TestTryParse_ConvertsContractViolation(t *testing.T) {
	res, err := stdschema.TryParse(pendingSchema[bool](), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, stdschema.ErrAsyncUnsupported))
	var ce *stdschema.ContractError
	assert.True(t, errors.As(err, &ce))
	assert.Empty(t, res.Issues)

	res, err = stdschema.TryParse(dsl.Bool(), true)
	require.NoError(t, err)
	assert.True(t, res.Value)
}

func TestTryParse_RepanicsForeignPanics(t *testing.T) {
	s := stdschema.Func("boom", func(v any) stdschema.Outcome[int] { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() { _, _ = stdschema.TryParse(s, 1) })
}

func TestSafeParse_And_Is(t *testing.T) {
	v, ok := stdschema.SafeParse(dsl.String(), "hi")
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	v, ok = stdschema.SafeParse(dsl.String(), 3)
	assert.False(t, ok)
	assert.Empty(t, v)

	assert.True(t, stdschema.Is(dsl.Bool(), false))
	assert.False(t, stdschema.Is(dsl.Bool(), "false"))
}

func TestResult_ExactlyOneOutcome(t *testing.T) {
	schemas := []stdschema.Schema[any]{
		dsl.SchemaOf(dsl.Bool()),
		dsl.SchemaOf(dsl.Number()),
		dsl.SchemaOf(dsl.Integer()),
		dsl.SchemaOf(dsl.String()),
		dsl.SchemaOf(dsl.Date()),
		dsl.SchemaOf(dsl.Array(dsl.Integer())),
		dsl.SchemaOf(dsl.Nullable(dsl.String())),
		dsl.SchemaOf(dsl.StrictObject(dsl.Shape{"a": dsl.SchemaOf(dsl.Bool())})),
	}
	inputs := []any{nil, true, 0, 1.5, "s", "2024-01-01", []any{1, "x"}, map[string]any{"a": true}, struct{}{}}
	for _, s := range schemas {
		for _, in := range inputs {
			res := stdschema.Parse(s, in)
			if res.OK() {
				assert.Empty(t, res.Issues)
				continue
			}
			assert.NotEmpty(t, res.Issues)
			assert.Nil(t, res.Value, "failure must not carry a value")
		}
	}
}

func TestFailure_NeverEmpty(t *testing.T) {
	res := stdschema.Failure[int]()
	assert.False(t, res.OK())
	assert.Len(t, res.Issues, 1)
	assert.Error(t, res.Err())
	assert.NoError(t, stdschema.Success(1).Err())
}

func TestBuiltins_ReportContractMetadata(t *testing.T) {
	p := dsl.Integer().Standard()
	assert.Equal(t, stdschema.Version, p.Version)
	assert.Equal(t, stdschema.Vendor, p.Vendor)
	assert.Equal(t, 1, p.Version)
	assert.Equal(t, "stdschema", dsl.SchemaOf(dsl.Date()).Standard().Vendor)
}

func TestOutcome_IsBoundToOutputType(t *testing.T) {
	var o any = stdschema.Success("x")
	_, ok := o.(stdschema.Outcome[string])
	assert.True(t, ok)
	_, ok = o.(stdschema.Outcome[int])
	assert.False(t, ok, "a Result[string] must not pass as Outcome[int]")

	var p any = stdschema.Defer(func() stdschema.Result[int] { return stdschema.Success(1) })
	_, ok = p.(stdschema.Outcome[string])
	assert.False(t, ok)
}
