// Package schemafile compiles declarative YAML or JSON schema definitions into
// stdschema schemas built from the dsl validators.
//
// A definition is a mapping with a `type` and type-specific keywords:
//
//	type: object
//	fields:
//	  name: {type: string, min: 1}
//	  age:  {type: integer, min: 0, max: 150}
//	  tags: {type: array, items: {ref: tag}}
//	  nick: {type: string, nullable: true}
//
// The document root is either a definition or a mapping with `schema` and
// `defs`; `ref: name` points at an entry of `defs`.
package schemafile

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/dsl"
)

// ErrInvalidDefinition is wrapped by every compile error.
var ErrInvalidDefinition = errors.New("schemafile: invalid definition")

// node is the structural part shared by every definition. Type-specific
// keywords are left in Rest and decoded once the type is known.
type node struct {
	Type     string         `mapstructure:"type"`
	Ref      string         `mapstructure:"ref"`
	Nullable bool           `mapstructure:"nullable"`
	Items    any            `mapstructure:"items"`
	Fields   map[string]any `mapstructure:"fields"`
	Rest     map[string]any `mapstructure:",remain"`
}

// LoadFile reads a definition file; the extension selects JSON (.json) or
// YAML (anything else).
func LoadFile(path string, opts Options) (stdschema.Schema[any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	src := stdschema.YAMLBytes(data)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		src = stdschema.JSONBytes(data)
	}
	return Load(src, opts)
}

// Load decodes src and compiles the document.
func Load(src stdschema.Source, opts Options) (stdschema.Schema[any], error) {
	doc, err := src.Decode()
	if err != nil {
		return nil, fmt.Errorf("schemafile: decode %s: %w", src.Format(), err)
	}
	return Compile(doc, opts)
}

// Compile builds a schema from an already decoded document.
func Compile(doc any, opts Options) (stdschema.Schema[any], error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root must be a mapping, got %T", ErrInvalidDefinition, doc)
	}
	c := &compiler{opts: opts, resolving: map[string]bool{}, built: map[string]stdschema.Schema[any]{}}
	if body, wrapped := root["schema"]; wrapped {
		defs, err := asMapping(root["defs"], "defs")
		if err != nil {
			return nil, err
		}
		c.defs = defs
		for k := range root {
			if k != "schema" && k != "defs" {
				return nil, fmt.Errorf("%w: unexpected top-level key %q", ErrInvalidDefinition, k)
			}
		}
		return c.compile(body, "schema")
	}
	return c.compile(root, "")
}

type compiler struct {
	opts      Options
	defs      map[string]any
	resolving map[string]bool
	built     map[string]stdschema.Schema[any]
}

func (c *compiler) compile(raw any, at string) (stdschema.Schema[any], error) {
	var n node
	if err := decode(raw, &n); err != nil {
		return nil, c.errorf(at, "%v", err)
	}
	if n.Ref != "" {
		if n.Type != "" || len(n.Rest) > 0 || n.Items != nil || n.Fields != nil {
			return nil, c.errorf(at, "ref cannot be combined with other keywords")
		}
		s, err := c.resolve(n.Ref, at)
		if err != nil {
			return nil, err
		}
		return c.wrapNullable(s, n.Nullable), nil
	}
	s, err := c.compileType(n, at)
	if err != nil {
		return nil, err
	}
	return c.wrapNullable(s, n.Nullable), nil
}

func (c *compiler) compileType(n node, at string) (stdschema.Schema[any], error) {
	if n.Type != TypeArray && n.Items != nil {
		return nil, c.errorf(at, "items is only valid for type %q", TypeArray)
	}
	if n.Type != TypeObject && n.Fields != nil {
		return nil, c.errorf(at, "fields is only valid for type %q", TypeObject)
	}
	switch n.Type {
	case TypeBoolean:
		return c.noKeywords(n, at, dsl.SchemaOf(dsl.Bool()))
	case TypeDate:
		return c.noKeywords(n, at, dsl.SchemaOf(dsl.Date()))
	case TypeNumber:
		var opt dsl.NumberOpts
		if err := decode(n.Rest, &opt); err != nil {
			return nil, c.errorf(at, "%v", err)
		}
		return dsl.SchemaOf(dsl.Number(opt)), nil
	case TypeInteger:
		var opt dsl.IntegerOpts
		if err := decode(n.Rest, &opt); err != nil {
			return nil, c.errorf(at, "%v", err)
		}
		return dsl.SchemaOf(dsl.Integer(opt)), nil
	case TypeString:
		var opt dsl.StringOpts
		if err := decode(n.Rest, &opt); err != nil {
			return nil, c.errorf(at, "%v", err)
		}
		return dsl.SchemaOf(dsl.String(opt)), nil
	case TypeArray:
		if n.Items == nil {
			return nil, c.errorf(at, "array requires items")
		}
		elem, err := c.compile(n.Items, join(at, "items"))
		if err != nil {
			return nil, err
		}
		return c.noKeywords(n, at, dsl.SchemaOf(dsl.Array(elem)))
	case TypeObject:
		shape := make(dsl.Shape, len(n.Fields))
		names := make([]string, 0, len(n.Fields))
		for name := range n.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fs, err := c.compile(n.Fields[name], join(join(at, "fields"), name))
			if err != nil {
				return nil, err
			}
			shape[name] = fs
		}
		return c.noKeywords(n, at, dsl.SchemaOf(dsl.StrictObject(shape)))
	case "":
		return nil, c.errorf(at, "missing type")
	}
	if s, ok := c.opts.Types[n.Type]; ok {
		return c.noKeywords(n, at, s)
	}
	return nil, c.errorf(at, "unknown type %q", n.Type)
}

func (c *compiler) noKeywords(n node, at string, s stdschema.Schema[any]) (stdschema.Schema[any], error) {
	if len(n.Rest) > 0 {
		keys := make([]string, 0, len(n.Rest))
		for k := range n.Rest {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, c.errorf(at, "unsupported keywords for type %q: %s", n.Type, strings.Join(keys, ", "))
	}
	return s, nil
}

func (c *compiler) wrapNullable(s stdschema.Schema[any], nullable bool) stdschema.Schema[any] {
	if !nullable {
		return s
	}
	return dsl.SchemaOf(dsl.Nullable(s))
}

func (c *compiler) errorf(at, format string, args ...any) error {
	if at == "" {
		at = "<root>"
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidDefinition, at, fmt.Sprintf(format, args...))
}

// decode maps raw into out, rejecting keys out does not declare.
func decode(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		ZeroFields:  true,
		DecodeHook:  mapstructure.DecodeHookFuncType(rejectFractional),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// rejectFractional stops mapstructure from truncating a float bound aimed at an
// integer option.
func rejectFractional(_ reflect.Type, to reflect.Type, data any) (any, error) {
	for to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	var f float64
	switch n := data.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	default:
		return data, nil
	}
	if math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, fmt.Errorf("expected integer, got %v", f)
	}
	return data, nil
}

func asMapping(v any, at string) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected mapping, got %T", ErrInvalidDefinition, at, v)
	}
	return m, nil
}

func join(at, seg string) string {
	if at == "" {
		return seg
	}
	return at + "." + seg
}
