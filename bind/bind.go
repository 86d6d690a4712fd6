// Package bind copies validated object output into Go structs.
//
// StrictObject produces map[string]any. bind decodes such maps into a struct
// with mapstructure, matching keys against the `json` tag (or the field name)
// so the same struct can serve as a JSON DTO and as a validation target:
//
//	type User struct {
//	    Name string    `json:"name"`
//	    Age  int       `json:"age"`
//	    Nick *string   `json:"nickname"`
//	    Seen time.Time `json:"joined"`
//	}
//	u, err := bind.Parse[User](userSchema, input)
package bind

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	stdschema "github.com/reoring/stdschema"
)

// ErrBind wraps every failure to copy a validated value into the target.
var ErrBind = errors.New("bind: cannot decode into target")

// Options tunes decoding.
type Options struct {
	// TagName is the struct tag consulted for key names. Default "json".
	TagName string
	// AllowUnused tolerates object keys that have no matching field.
	AllowUnused bool
}

func (o Options) config(out any) *mapstructure.DecoderConfig {
	tag := o.TagName
	if tag == "" {
		tag = "json"
	}
	return &mapstructure.DecoderConfig{
		Result:      out,
		TagName:     tag,
		ErrorUnused: !o.AllowUnused,
		Squash:      true,
	}
}

// Into decodes a validated value into a new T. The last Options wins.
func Into[T any](v any, opts ...Options) (T, error) {
	var out T
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	dec, err := mapstructure.NewDecoder(opt.config(&out))
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBind, err)
	}
	if err := dec.Decode(v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrBind, err)
	}
	return out, nil
}

// Parse validates v with s and binds the output. Validation failures come back
// as stdschema.Issues; contract violations as *stdschema.ContractError.
func Parse[T any, V any](s stdschema.Schema[V], v any, opts ...Options) (T, error) {
	res, err := stdschema.TryParse(s, v)
	if err != nil {
		var zero T
		return zero, err
	}
	if !res.OK() {
		var zero T
		return zero, res.Issues
	}
	return Into[T](res.Value, opts...)
}

// From decodes src, validates it with s and binds the output.
func From[T any, V any](s stdschema.Schema[V], src stdschema.Source, opts ...Options) (T, error) {
	v, err := stdschema.ParseFrom(s, src)
	if err != nil {
		var zero T
		return zero, err
	}
	return Into[T](v, opts...)
}
