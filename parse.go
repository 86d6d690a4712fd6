package stdschema

import (
	"errors"
	"fmt"
	"io"
)

// Parse runs s against v and returns the immediate Result unchanged.
//
// Parse is synchronous only. When the validate function returns anything but
// a Result (a Pending outcome, or nil) Parse panics with a *ContractError
// wrapping ErrAsyncUnsupported, from whatever depth of nested composites the
// schema sits at. Use TryParse to receive it as an error.
func Parse[T any](s Schema[T], v any) Result[T] {
	props := s.Standard()
	if props.Validate == nil {
		panic(&ContractError{Vendor: props.Vendor, Err: errors.New("stdschema: schema has no validate function")})
	}
	switch out := props.Validate(v).(type) {
	case Result[T]:
		return out
	case *Result[T]:
		if out != nil {
			return *out
		}
	}
	panic(&ContractError{Vendor: props.Vendor, Err: ErrAsyncUnsupported})
}

// TryParse behaves like Parse but converts a contract violation into an error.
// Any other panic is re-raised.
func TryParse[T any](s Schema[T], v any) (res Result[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			res, err = Result[T]{}, ce
		}
	}()
	return Parse(s, v), nil
}

// SafeParse parses v into T, returning (zero, false) on validation failure.
func SafeParse[T any](s Schema[T], v any) (T, bool) {
	res := Parse(s, v)
	if !res.OK() {
		var zero T
		return zero, false
	}
	return res.Value, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](s Schema[T], v any) bool { return Parse(s, v).OK() }

// ParseOpt bundles options for ParseFrom.
type ParseOpt struct {
	// MaxBytes caps the size of reader-backed sources; zero disables the cap.
	MaxBytes int64
}

// ParseFrom is the wire-facing entry point. It decodes src, then validates the
// decoded value with s. Decode failures surface as a single parse_error issue;
// validation failures as Issues; contract violations as *ContractError.
func ParseFrom[T any](s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxBytes > 0 {
		src = limitSource(src, opt.MaxBytes)
	}
	v, err := src.Decode()
	if err != nil {
		return zero, singleIssue(CodeParseError, fmt.Sprintf("%s: %v", src.Format(), err))
	}
	res, err := TryParse(s, v)
	if err != nil {
		return zero, err
	}
	if !res.OK() {
		return zero, res.Issues
	}
	return res.Value, nil
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Code: code, Message: msg}) }

// ErrTooLarge reports a source exceeding ParseOpt.MaxBytes.
var ErrTooLarge = errors.New("stdschema: max bytes exceeded")

type limitedSource struct {
	inner Source
	max   int64
}

// limitSource only applies to sources built by this package; they all read
// from an io.Reader that can be capped before decoding.
func limitSource(src Source, n int64) Source { return limitedSource{inner: src, max: n} }

func (l limitedSource) Format() string { return l.inner.Format() }

func (l limitedSource) Decode() (any, error) {
	var r io.Reader
	switch s := l.inner.(type) {
	case jsonSource:
		r = s.r
	case yamlSource:
		r = s.r
	default:
		return l.inner.Decode()
	}
	data, err := io.ReadAll(io.LimitReader(r, l.max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.max {
		return nil, ErrTooLarge
	}
	switch l.inner.(type) {
	case jsonSource:
		return JSONBytes(data).Decode()
	default:
		return YAMLBytes(data).Decode()
	}
}
