// Package dsl provides the built-in validators for stdschema.
//
// Overview
//   - Primitives: Bool(), Number(NumberOpts), Integer(IntegerOpts), String(StringOpts), Date(), InstanceOf[T]().
//   - Composites: Array(elem), StrictObject(Shape), Nullable(s).
//   - SchemaOf(s): erase the output type of any Schema[T] so it can sit in a Shape.
//
// Every constructor returns a fresh immutable schema reporting version 1 and
// vendor "stdschema". Composites call stdschema.Parse on their children, so a
// child returning a Pending outcome panics with *stdschema.ContractError at
// whatever depth it sits.
//
// Option bags
//
// Bounds are pointers so each one can be left out independently; the last bag
// passed to a constructor wins.
//
//	age := dsl.Integer(dsl.IntegerOpts{Min: dsl.Ptr[int64](0), Max: dsl.Ptr[int64](150)})
//	name := dsl.String(dsl.StringOpts{Min: dsl.Ptr(1)})
//
// Error model
//
// Primitives return a single issue with an empty path. Array prefixes child
// issues with stdschema.Index(i), StrictObject with stdschema.Key(name). A
// composite with any failing part returns issues only, never a partial value.
//
// StrictObject reports issues in three groups: "unknown field" (code
// unknown_key), "is required" (code required), then field issues. Each group
// is sorted by key.
//
// Example
//
//	user := dsl.StrictObject(dsl.Shape{
//	    "id":       dsl.SchemaOf(dsl.String(dsl.StringOpts{Min: dsl.Ptr(1)})),
//	    "tags":     dsl.SchemaOf(dsl.Array(dsl.String())),
//	    "nickname": dsl.SchemaOf(dsl.Nullable(dsl.String())),
//	    "joined":   dsl.SchemaOf(dsl.Date()),
//	})
//	res := stdschema.Parse(user, map[string]any{"id": "u_1", "tags": []any{"a"}, "nickname": nil, "joined": "2024-01-01"})
//	_ = res.Value["joined"].(time.Time)
package dsl
