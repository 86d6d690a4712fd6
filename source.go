package stdschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over wire inputs that decode into the generic value tree
// (map[string]any, []any, string, bool, int64, float64, time.Time, nil)
// understood by the built-in validators.
type Source interface {
	Decode() (any, error)
	// Format names the wire format ("json", "yaml") for diagnostics.
	Format() string
}

// ErrTrailingData reports extra content after the first JSON value.
var ErrTrailingData = errors.New("stdschema: trailing data after value")

// ErrEmptyDocument reports a source that contained no value at all.
var ErrEmptyDocument = errors.New("stdschema: empty document")

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// YAMLBytes wraps a byte slice as a YAML Source. Only the first document is read.
func YAMLBytes(b []byte) Source { return yamlSource{r: bytes.NewReader(b)} }

// YAMLReader wraps an io.Reader as a YAML Source.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

type jsonSource struct{ r io.Reader }

func (jsonSource) Format() string { return "json" }

func (s jsonSource) Decode() (any, error) {
	dec := json.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return normalizeJSON(v), nil
}

// normalizeJSON converts json.Number leaves to int64 when exact, float64 otherwise.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeJSON(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeJSON(e)
		}
		return t
	case json.Number:
		if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return f
		}
		return string(t)
	default:
		return v
	}
}

type yamlSource struct{ r io.Reader }

func (yamlSource) Format() string { return "yaml" }

func (s yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.NewDecoder(s.r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	return normalizeYAML(v), nil
}

// normalizeYAML maps yaml.v3 shapes onto the JSON value tree: non-string
// mapping keys are stringified and integers widen to int64.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	case int:
		return int64(t)
	default:
		return v
	}
}
