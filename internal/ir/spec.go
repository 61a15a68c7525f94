package ir

// PortDef declares one named, typed slot of a node type. Declaration order
// is significant: the first-matching-output lookups in this package resolve
// in declaration order.
type PortDef struct {
	Name string
	Type Datatype
}

// NodeSpec is the immutable schema shared by every node instance of a type.
//
// ContentType is DatatypeInvalid for node types without a literal content
// slot. A NodeSpec must never be mutated after it reaches a Graph.
type NodeSpec struct {
	Name        string
	Inputs      []PortDef
	Outputs     []PortDef
	ContentType Datatype
}

// HasContent reports whether instances of this spec carry literal content.
func (s *NodeSpec) HasContent() bool { return s.ContentType != DatatypeInvalid }

// InputType returns the declared datatype of the named input.
func (s *NodeSpec) InputType(name string) (Datatype, bool) {
	for _, p := range s.Inputs {
		if p.Name == name {
			return p.Type, true
		}
	}
	return DatatypeInvalid, false
}

// OutputType returns the declared datatype of the named output.
func (s *NodeSpec) OutputType(name string) (Datatype, bool) {
	for _, p := range s.Outputs {
		if p.Name == name {
			return p.Type, true
		}
	}
	return DatatypeInvalid, false
}

// Registry resolves node type names to their specs. It is supplied at
// session start and only ever read; the graph consults it once per node
// creation.
type Registry interface {
	SpecOf(name string) (*NodeSpec, bool)
}
