package dsl

import (
	"fmt"
	"math"
	"unicode/utf8"

	stdschema "github.com/reoring/stdschema"
)

func typeIssue(expected string, got any) stdschema.Issue {
	return stdschema.Issue{
		Code:    stdschema.CodeInvalidType,
		Message: "expected " + expected,
		Params:  map[string]any{"expected": expected, "got": fmt.Sprintf("%T", got)},
	}
}

// ---------------- Bool ----------------

// Bool accepts Go bool values only.
func Bool() stdschema.Schema[bool] { return boolSchema{} }

type boolSchema struct{}

func (boolSchema) Standard() stdschema.Props[bool] {
	return props(func(v any) stdschema.Outcome[bool] {
		b, ok := v.(bool)
		if !ok {
			return stdschema.Failure[bool](typeIssue("boolean", v))
		}
		return stdschema.Success(b)
	})
}

// ---------------- Number ----------------

// Number accepts any finite Go number (or json.Number) within the inclusive
// bounds and yields it as float64.
func Number(opts ...NumberOpts) stdschema.Schema[float64] {
	opt := lastOpt(opts)
	return numberSchema{
		min: orFloat(opt.Min, defaultNumberMin),
		max: orFloat(opt.Max, defaultNumberMax),
	}
}

type numberSchema struct {
	min float64
	max float64
}

func (s numberSchema) Standard() stdschema.Props[float64] {
	return props(s.validate)
}

func (s numberSchema) validate(v any) stdschema.Outcome[float64] {
	n, ok := asNumeric(v)
	if !ok {
		return stdschema.Failure[float64](typeIssue("number", v))
	}
	if !n.finite() {
		return stdschema.Failure[float64](notFinite(n.f))
	}
	if n.f < s.min {
		return stdschema.Failure[float64](tooSmall(s.min, n.f))
	}
	if n.f > s.max {
		return stdschema.Failure[float64](tooBig(s.max, n.f))
	}
	return stdschema.Success(n.f)
}

// ---------------- Integer ----------------

// Integer accepts whole Go numbers (or json.Number) within the inclusive
// bounds and yields them as int64. Checks run in order: type, finiteness,
// integrality, lower bound, upper bound.
func Integer(opts ...IntegerOpts) stdschema.Schema[int64] {
	opt := lastOpt(opts)
	return integerSchema{
		min: orInt64(opt.Min, math.MinInt64),
		max: orInt64(opt.Max, math.MaxInt64),
	}
}

type integerSchema struct {
	min int64
	max int64
}

func (s integerSchema) Standard() stdschema.Props[int64] {
	return props(s.validate)
}

func (s integerSchema) validate(v any) stdschema.Outcome[int64] {
	n, ok := asNumeric(v)
	if !ok {
		return stdschema.Failure[int64](typeIssue("integer", v))
	}
	if !n.finite() {
		return stdschema.Failure[int64](notFinite(n.f))
	}
	if !n.whole() {
		return stdschema.Failure[int64](stdschema.Issue{
			Code:    stdschema.CodeNotInteger,
			Message: "expected integer, got fractional number",
			Params:  map[string]any{"got": n.f},
		})
	}
	i, out := n.int64Value()
	if out < 0 || (out == 0 && i < s.min) {
		return stdschema.Failure[int64](tooSmall(s.min, v))
	}
	if out > 0 || i > s.max {
		return stdschema.Failure[int64](tooBig(s.max, v))
	}
	return stdschema.Success(i)
}

func notFinite(f float64) stdschema.Issue {
	return stdschema.Issue{
		Code:    stdschema.CodeNotFinite,
		Message: "expected finite number",
		Params:  map[string]any{"got": f},
	}
}

func tooSmall[N int64 | float64](min N, got any) stdschema.Issue {
	return stdschema.Issue{
		Code:    stdschema.CodeTooSmall,
		Message: fmt.Sprintf("must be greater than or equal to %v", min),
		Params:  map[string]any{"min": min, "got": got},
	}
}

func tooBig[N int64 | float64](max N, got any) stdschema.Issue {
	return stdschema.Issue{
		Code:    stdschema.CodeTooBig,
		Message: fmt.Sprintf("must be less than or equal to %v", max),
		Params:  map[string]any{"max": max, "got": got},
	}
}

// ---------------- String ----------------

// String accepts Go strings whose length, counted in code points, lies within
// the optional inclusive bounds.
func String(opts ...StringOpts) stdschema.Schema[string] {
	opt := lastOpt(opts)
	return stringSchema{minLen: optInt(opt.Min), maxLen: optInt(opt.Max)}
}

// stringSchema uses -1 for an absent bound.
type stringSchema struct {
	minLen int
	maxLen int
}

func (s stringSchema) Standard() stdschema.Props[string] {
	return props(s.validate)
}

func (s stringSchema) validate(v any) stdschema.Outcome[string] {
	str, ok := v.(string)
	if !ok {
		return stdschema.Failure[string](typeIssue("string", v))
	}
	n := utf8.RuneCountInString(str)
	if s.minLen >= 0 && n < s.minLen {
		return stdschema.Failure[string](stdschema.Issue{
			Code:    stdschema.CodeTooShort,
			Message: fmt.Sprintf("must contain at least %d character(s)", s.minLen),
			Params:  map[string]any{"min": s.minLen, "got": n},
		})
	}
	if s.maxLen >= 0 && n > s.maxLen {
		return stdschema.Failure[string](stdschema.Issue{
			Code:    stdschema.CodeTooLong,
			Message: fmt.Sprintf("must contain at most %d character(s)", s.maxLen),
			Params:  map[string]any{"max": s.maxLen, "got": n},
		})
	}
	return stdschema.Success(str)
}
