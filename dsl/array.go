package dsl

import (
	"reflect"

	stdschema "github.com/reoring/stdschema"
)

// Array validates every element of a slice or array with elem and yields the
// parsed elements in order. All elements are visited; each failing element
// contributes its issues prefixed with its index.
func Array[E any](elem stdschema.Schema[E]) stdschema.Schema[[]E] {
	return arraySchema[E]{elem: elem}
}

type arraySchema[E any] struct {
	elem stdschema.Schema[E]
}

func (a arraySchema[E]) Standard() stdschema.Props[[]E] {
	return props(a.validate)
}

func (a arraySchema[E]) validate(v any) stdschema.Outcome[[]E] {
	items, ok := sequence(v)
	if !ok {
		return stdschema.Failure[[]E](typeIssue("array", v))
	}
	out := make([]E, 0, items.Len())
	var iss stdschema.Issues
	for i := 0; i < items.Len(); i++ {
		res := stdschema.Parse(a.elem, items.Index(i).Interface())
		if !res.OK() {
			iss = append(iss, stdschema.PrependAll(stdschema.Index(i), res.Issues)...)
			continue
		}
		out = append(out, res.Value)
	}
	if len(iss) > 0 {
		return stdschema.Failure[[]E](iss...)
	}
	return stdschema.Success(out)
}

// sequence reports v as an indexable reflect.Value when it is a slice or an
// array. A nil slice is an empty sequence; strings are not sequences.
func sequence(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}
