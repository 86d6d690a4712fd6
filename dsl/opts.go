package dsl

import "math"

// NumberOpts bounds Number. Nil bounds default to ±math.MaxFloat64.
type NumberOpts struct {
	Min *float64 `yaml:"min" mapstructure:"min"`
	Max *float64 `yaml:"max" mapstructure:"max"`
}

// IntegerOpts bounds Integer. Nil bounds default to the int64 extremes.
type IntegerOpts struct {
	Min *int64 `yaml:"min" mapstructure:"min"`
	Max *int64 `yaml:"max" mapstructure:"max"`
}

// StringOpts bounds the length of String in Unicode code points. Nil bounds
// leave that side unbounded.
type StringOpts struct {
	Min *int `yaml:"min" mapstructure:"min"`
	Max *int `yaml:"max" mapstructure:"max"`
}

// Ptr returns a pointer to v; handy for filling option bags inline.
func Ptr[T any](v T) *T { return &v }

// lastOpt picks the last option bag, mirroring the variadic-options convention
// used across the package.
func lastOpt[O any](opts []O) O {
	var opt O
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

func orFloat(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func orInt64(p *int64, def int64) int64 {
	if p == nil {
		return def
	}
	return *p
}

func optInt(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}

var (
	defaultNumberMin = -math.MaxFloat64
	defaultNumberMax = math.MaxFloat64
)
