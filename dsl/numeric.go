package dsl

import (
	"encoding/json"
	"math"
	"strconv"
)

// numeric is the common view of every Go number accepted as input.
type numeric struct {
	f     float64
	i     int64
	exact bool // i holds the value without loss
	above bool // an unsigned value beyond math.MaxInt64
}

// asNumeric classifies v. json.Number is accepted so values decoded with
// UseNumber validate without a conversion step.
func asNumeric(v any) (numeric, bool) {
	switch t := v.(type) {
	case int:
		return fromInt(int64(t)), true
	case int8:
		return fromInt(int64(t)), true
	case int16:
		return fromInt(int64(t)), true
	case int32:
		return fromInt(int64(t)), true
	case int64:
		return fromInt(t), true
	case uint:
		return fromUint(uint64(t)), true
	case uint8:
		return fromUint(uint64(t)), true
	case uint16:
		return fromUint(uint64(t)), true
	case uint32:
		return fromUint(uint64(t)), true
	case uint64:
		return fromUint(t), true
	case float32:
		return numeric{f: float64(t)}, true
	case float64:
		return numeric{f: t}, true
	case json.Number:
		if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return fromInt(n), true
		}
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return numeric{}, false
		}
		return numeric{f: f}, true
	}
	return numeric{}, false
}

func fromInt(n int64) numeric { return numeric{f: float64(n), i: n, exact: true} }

func fromUint(n uint64) numeric {
	if n > math.MaxInt64 {
		return numeric{f: float64(n), above: true}
	}
	return fromInt(int64(n))
}

func (n numeric) finite() bool { return !math.IsNaN(n.f) && !math.IsInf(n.f, 0) }

func (n numeric) whole() bool { return n.exact || n.above || math.Trunc(n.f) == n.f }

// two63 is 2^63 as a float64; whole floats in [-two63, two63) fit in int64.
const two63 = float64(1 << 63)

// int64Value converts a whole value. out is -1 below the int64 range, +1 above
// it, 0 when v holds the exact value.
func (n numeric) int64Value() (v int64, out int) {
	switch {
	case n.exact:
		return n.i, 0
	case n.above:
		return 0, 1
	case n.f < -two63:
		return 0, -1
	case n.f >= two63:
		return 0, 1
	default:
		return int64(n.f), 0
	}
}
