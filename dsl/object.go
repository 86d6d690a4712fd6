package dsl

import (
	"reflect"
	"sort"

	stdschema "github.com/reoring/stdschema"
)

// Shape maps field names to type-erased schemas (see SchemaOf).
type Shape map[string]stdschema.Schema[any]

const (
	msgUnknownField = "unknown field"
	msgRequired     = "is required"
)

// StrictObject validates a map with string keys against a fixed shape.
// Unknown keys are rejected, every shape key is required, and each present
// known field is validated once. Issues are reported as unknown fields, then
// missing fields, then field issues; each group is ordered by key so results
// are deterministic regardless of map iteration order.
func StrictObject(shape Shape) stdschema.Schema[map[string]any] {
	fields := make(map[string]stdschema.Schema[any], len(shape))
	for k, s := range shape {
		fields[k] = s
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return objectSchema{fields: fields, sortedKeys: keys}
}

type objectSchema struct {
	fields     map[string]stdschema.Schema[any]
	sortedKeys []string
}

func (o objectSchema) Standard() stdschema.Props[map[string]any] {
	return props(o.validate)
}

func (o objectSchema) validate(v any) stdschema.Outcome[map[string]any] {
	src, ok := asObject(v)
	if !ok {
		return stdschema.Failure[map[string]any](typeIssue("object", v))
	}
	inputKeys := make([]string, 0, len(src))
	for k := range src {
		inputKeys = append(inputKeys, k)
	}
	sort.Strings(inputKeys)

	var iss stdschema.Issues
	iss = append(iss, o.collectUnknown(inputKeys)...)
	iss = append(iss, o.collectMissing(src)...)

	out := make(map[string]any, len(o.fields))
	for _, k := range inputKeys {
		s, known := o.fields[k]
		if !known {
			continue
		}
		res := stdschema.Parse(s, src[k])
		if !res.OK() {
			iss = append(iss, stdschema.PrependAll(stdschema.Key(k), res.Issues)...)
			continue
		}
		out[k] = res.Value
	}
	if len(iss) > 0 {
		return stdschema.Failure[map[string]any](iss...)
	}
	return stdschema.Success(out)
}

// collectUnknown reports input keys absent from the shape; keys arrive sorted.
func (o objectSchema) collectUnknown(inputKeys []string) stdschema.Issues {
	var iss stdschema.Issues
	for _, k := range inputKeys {
		if _, known := o.fields[k]; known {
			continue
		}
		iss = append(iss, stdschema.Issue{
			Code:    stdschema.CodeUnknownKey,
			Message: msgUnknownField,
			Path:    stdschema.Path{stdschema.Key(k)},
		})
	}
	return iss
}

// collectMissing reports shape keys absent from the input.
func (o objectSchema) collectMissing(src map[string]any) stdschema.Issues {
	var iss stdschema.Issues
	for _, k := range o.sortedKeys {
		if _, present := src[k]; present {
			continue
		}
		iss = append(iss, stdschema.Issue{
			Code:    stdschema.CodeRequired,
			Message: msgRequired,
			Path:    stdschema.Path{stdschema.Key(k)},
		})
	}
	return iss
}

// asObject accepts map[string]any directly and any other map whose key kind
// is string through reflection. A nil map is an empty object.
func asObject(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
