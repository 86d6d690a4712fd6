// Package stdschema provides:
//
// - A uniform validation contract (Schema/Props/Outcome) shared by independent schema providers
// - A stable error model via Issues (structured Path, code, message)
// - A synchronous-only Parse entry point that rejects deferred (Pending) outcomes
// - Source decoding for JSON and YAML inputs (ParseFrom)
//
// Design policy:
// - Keep only the contract and the error model in the root package; built-in validators live under dsl/.
// - Place the file-based schema loader under schemafile/, struct binding under bind/, and the CLI under cmd/stdschema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.StrictObject(dsl.Shape{
//	    "name": dsl.SchemaOf(dsl.String(dsl.StringOpts{Min: dsl.Ptr(1)})),
//	    "age":  dsl.SchemaOf(dsl.Integer(dsl.IntegerOpts{Min: dsl.Ptr[int64](0)})),
//	})
//	res := stdschema.Parse(user, input)
//	if !res.OK() {
//	    for _, it := range res.Issues {
//	        fmt.Println(it.Path.Pointer(), it.Message)
//	    }
//	}
//
// Limitations:
//
// Composite validators recurse once per nesting level of the input. There is
// no depth guard; recursion is bounded only by the goroutine stack.
package stdschema
