package dsl

import (
	"reflect"

	stdschema "github.com/reoring/stdschema"
)

// InstanceOf accepts values whose dynamic type is T, or implements T when T is
// an interface type. It is the nominal check of the package: no conversion is
// attempted.
func InstanceOf[T any]() stdschema.Schema[T] {
	return instanceSchema[T]{name: reflect.TypeFor[T]().String()}
}

type instanceSchema[T any] struct {
	name string
}

func (s instanceSchema[T]) Standard() stdschema.Props[T] {
	return props(func(v any) stdschema.Outcome[T] {
		t, ok := v.(T)
		if !ok {
			return stdschema.Failure[T](stdschema.Issue{
				Code:    stdschema.CodeInvalidType,
				Message: "expected instance of " + s.name,
				Params:  map[string]any{"expected": s.name, "got": reflect.TypeOf(v)},
			})
		}
		return stdschema.Success(t)
	})
}
