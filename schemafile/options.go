package schemafile

import (
	stdschema "github.com/reoring/stdschema"
)

// Options controls how definitions are compiled into schemas.
type Options struct {
	// Types resolves `type:` names beyond the built-ins. Hosts register Go-only
	// validators here, typically dsl.SchemaOf(dsl.InstanceOf[T]()).
	Types map[string]stdschema.Schema[any]
}

// Built-in type names accepted in definitions.
const (
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeString  = "string"
	TypeDate    = "date"
	TypeArray   = "array"
	TypeObject  = "object"
)
