package stdschema

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalid     = "invalid"
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeUnknownKey  = "unknown_key"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodeNotFinite   = "not_finite"
	CodeNotInteger  = "not_integer"
	CodeInvalidDate = "invalid_date"
	CodeParseError  = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	// Path locates the offending value; empty for issues about the whole input.
	Path Path
	// Params carries structured parameters (e.g., {"min":1, "got":0}) for
	// observability.
	Params map[string]any
}

// issueJSON is the wire form of an Issue. Params are left out because they may
// carry arbitrary input values (NaN, reflect.Type) that JSON cannot encode.
type issueJSON struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// MarshalJSON renders the issue with its path as a JSON Pointer.
func (it Issue) MarshalJSON() ([]byte, error) {
	return json.Marshal(issueJSON{Code: it.Code, Path: it.Path.Pointer(), Message: it.Message})
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path: expected string
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path.Pointer(), it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrAsyncUnsupported is the cause of every contract violation raised when a
// validate function returns something other than an immediate Result.
var ErrAsyncUnsupported = errors.New("stdschema: asynchronous validation is not supported")

// ContractError reports a schema that broke the synchronous contract. It is a
// programmer error: Parse panics with it and TryParse returns it.
type ContractError struct {
	Vendor string
	Err    error
}

func (e *ContractError) Error() string {
	if e.Vendor == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (vendor %q)", e.Err, e.Vendor)
}

func (e *ContractError) Unwrap() error { return e.Err }
