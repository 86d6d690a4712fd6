package schemafile

import (
	stdschema "github.com/reoring/stdschema"
)

// resolve compiles defs[name] once and caches it. A name currently being
// compiled is a cycle: eager construction cannot express recursive schemas.
func (c *compiler) resolve(name, at string) (stdschema.Schema[any], error) {
	if s, ok := c.built[name]; ok {
		return s, nil
	}
	raw, ok := c.defs[name]
	if !ok {
		return nil, c.errorf(at, "ref to unknown def %q", name)
	}
	if c.resolving[name] {
		return nil, c.errorf(at, "cyclic ref %q", name)
	}
	c.resolving[name] = true
	s, err := c.compile(raw, join("defs", name))
	delete(c.resolving, name)
	if err != nil {
		return nil, err
	}
	c.built[name] = s
	return s, nil
}
