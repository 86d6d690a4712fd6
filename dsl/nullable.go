package dsl

import (
	stdschema "github.com/reoring/stdschema"
)

// Nullable lets nil through as a nil *T and otherwise delegates to s. A
// non-nil *T input is dereferenced first so a previous output validates again.
// Through SchemaOf the nil *T becomes an untyped nil.
func Nullable[T any](s stdschema.Schema[T]) stdschema.Schema[*T] {
	return nullableSchema[T]{inner: s}
}

type nullableSchema[T any] struct {
	inner stdschema.Schema[T]
}

func (n nullableSchema[T]) Standard() stdschema.Props[*T] {
	return props(func(v any) stdschema.Outcome[*T] {
		switch p := v.(type) {
		case nil:
			return stdschema.Success[*T](nil)
		case *T:
			if p == nil {
				return stdschema.Success[*T](nil)
			}
			v = *p
		}
		res := stdschema.Parse(n.inner, v)
		if !res.OK() {
			return stdschema.Failure[*T](res.Issues...)
		}
		return stdschema.Success(&res.Value)
	})
}
