package model

// Schema is the declarative description of a model, as loaded from an API
// document.
type Schema struct {
	Name        string
	Description string

	// Properties are ordered by wire name.
	Properties []Property

	// CollectionKey names the repeated payload property of list-shaped models.
	CollectionKey string
}

// Property is one wire field of a Schema.
type Property struct {
	WireName string

	// Type is one of "string", "integer", "number", "boolean", "object" or "any".
	// For repeated properties it is the element type.
	Type string

	// Format refines Type, e.g. "int64" for decimal strings or "date-time".
	Format string

	// Ref names another Schema when Type is "object".
	Ref string

	// Map marks objects keyed by arbitrary strings; Ref or Type then describe the
	// values.
	Map bool

	Repeated    bool
	Description string
}

// Property returns the property with the given wire name.
func (s *Schema) Property(wireName string) (Property, bool) {
	for _, p := range s.Properties {
		if p.WireName == wireName {
			return p, true
		}
	}
	return Property{}, false
}

// Refs returns the names of the schemas s refers to, in property order.
func (s *Schema) Refs() []string {
	var refs []string
	seen := map[string]bool{}
	for _, p := range s.Properties {
		if p.Ref != "" && !seen[p.Ref] {
			seen[p.Ref] = true
			refs = append(refs, p.Ref)
		}
	}
	return refs
}
