package stdschema

// Version is the contract version reported by every built-in schema.
const Version = 1

// Vendor identifies schemas built by this module.
const Vendor = "stdschema"

// Schema is the uniform capability every provider exposes. Consumers depend
// only on Standard() and may mix schemas from different vendors freely.
type Schema[T any] interface {
	Standard() Props[T]
}

// Props carries the contract metadata together with the validate function.
type Props[T any] struct {
	Version  int
	Vendor   string
	Validate func(v any) Outcome[T]
}

// Outcome is what a validate function returns: either an immediate Result or
// a Pending placeholder. Only Result is supported by Parse. The marker takes T
// so a Result of another output type does not satisfy Outcome[T].
type Outcome[T any] interface {
	outcome(T)
}

// Result holds either a value (success) or a non-empty list of Issues.
type Result[T any] struct {
	Value  T
	Issues Issues
}

func (Result[T]) outcome(T) {}

// OK reports whether the result is a success.
func (r Result[T]) OK() bool { return len(r.Issues) == 0 }

// Err returns the Issues as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return r.Issues
}

// Success builds a successful Result.
func Success[T any](v T) Result[T] { return Result[T]{Value: v} }

// Failure builds a failed Result. The value is always the zero value so a
// failure never carries partial output.
func Failure[T any](iss ...Issue) Result[T] {
	if len(iss) == 0 {
		iss = []Issue{{Code: CodeInvalid, Message: "validation failed"}}
	}
	return Result[T]{Issues: AppendIssues(nil, iss...)}
}

// Pending is a deferred outcome. Providers with asynchronous validation
// return it; this module never produces one and Parse refuses to await it.
type Pending[T any] struct {
	wait func() Result[T]
}

func (Pending[T]) outcome(T) {}

// Defer wraps f as a Pending outcome.
func Defer[T any](f func() Result[T]) Pending[T] { return Pending[T]{wait: f} }

// Await blocks until the deferred result is available.
func (p Pending[T]) Await() Result[T] {
	if p.wait == nil {
		return Failure[T](Issue{Code: CodeInvalid, Message: "empty pending outcome"})
	}
	return p.wait()
}

// Func adapts a plain validate function into a Schema under the given vendor.
// It is the quickest way to plug a third-party validator into composites.
func Func[T any](vendor string, validate func(v any) Outcome[T]) Schema[T] {
	return funcSchema[T]{props: Props[T]{Version: Version, Vendor: vendor, Validate: validate}}
}

type funcSchema[T any] struct{ props Props[T] }

func (f funcSchema[T]) Standard() Props[T] { return f.props }
