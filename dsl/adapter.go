package dsl

import (
	"reflect"

	stdschema "github.com/reoring/stdschema"
)

func props[T any](validate func(v any) stdschema.Outcome[T]) stdschema.Props[T] {
	return stdschema.Props[T]{Version: stdschema.Version, Vendor: stdschema.Vendor, Validate: validate}
}

// SchemaOf erases the output type of s so schemas with different outputs can
// share a Shape. Vendor, version and deferred outcomes pass through untouched,
// so Parse on the adapter still enforces the synchronous contract.
//
// A nil pointer output is erased to an untyped nil, so a null Nullable field
// in a StrictObject output compares equal to nil.
func SchemaOf[T any](s stdschema.Schema[T]) stdschema.Schema[any] {
	if already, ok := any(s).(stdschema.Schema[any]); ok {
		return already
	}
	return anyAdapter[T]{inner: s}
}

type anyAdapter[T any] struct {
	inner stdschema.Schema[T]
}

func (a anyAdapter[T]) Standard() stdschema.Props[any] {
	p := a.inner.Standard()
	out := stdschema.Props[any]{Version: p.Version, Vendor: p.Vendor}
	if p.Validate == nil {
		return out
	}
	out.Validate = func(v any) stdschema.Outcome[any] {
		switch o := p.Validate(v).(type) {
		case stdschema.Result[T]:
			return eraseResult(o)
		case *stdschema.Result[T]:
			if o != nil {
				return eraseResult(*o)
			}
		case stdschema.Pending[T]:
			return stdschema.Defer(func() stdschema.Result[any] { return eraseResult(o.Await()) })
		}
		return nil
	}
	return out
}

// Unwrap returns the typed schema behind the adapter.
func (a anyAdapter[T]) Unwrap() stdschema.Schema[T] { return a.inner }

func eraseResult[T any](r stdschema.Result[T]) stdschema.Result[any] {
	if !r.OK() {
		return stdschema.Result[any]{Issues: r.Issues}
	}
	if isNilPointer(r.Value) {
		return stdschema.Success[any](nil)
	}
	return stdschema.Success[any](r.Value)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
