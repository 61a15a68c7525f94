// Package catalog holds the node schema database consulted by graphs at
// node-creation time. The builtin catalog covers the stock node set; hosts
// extend it with YAML catalog documents.
package catalog

import (
	"errors"
	"fmt"

	"xelogen/internal/ir"
)

var (
	ErrInvalidSpec   = errors.New("invalid node spec")
	ErrDuplicateSpec = errors.New("duplicate node spec")
)

// Catalog is an ordered, name-keyed collection of node specs. It implements
// ir.Registry. Registration order is preserved for listing.
type Catalog struct {
	specs map[string]*ir.NodeSpec
	names []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{specs: make(map[string]*ir.NodeSpec)}
}

// SpecOf resolves a node type name. It is the ir.Registry entry point.
func (c *Catalog) SpecOf(name string) (*ir.NodeSpec, bool) {
	spec, ok := c.specs[name]
	return spec, ok
}

// Names returns the registered node type names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Register validates and adds a spec. Port names must be unique per
// direction, every datatype must be valid, outputs must be scalar, and the
// content type (if any) must be a scalar data kind.
func (c *Catalog) Register(spec *ir.NodeSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if _, exists := c.specs[spec.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSpec, spec.Name)
	}
	if err := checkPorts(spec.Name, "input", spec.Inputs, true); err != nil {
		return err
	}
	if err := checkPorts(spec.Name, "output", spec.Outputs, false); err != nil {
		return err
	}
	if spec.ContentType != ir.DatatypeInvalid {
		if spec.ContentType.IsList() || spec.ContentType == ir.DatatypeImpulse {
			return fmt.Errorf("%w: %q content type %s is not a scalar data kind",
				ErrInvalidSpec, spec.Name, spec.ContentType)
		}
	}
	c.specs[spec.Name] = spec
	c.names = append(c.names, spec.Name)
	return nil
}

// MustRegister is Register for static catalogs whose specs cannot be wrong.
func (c *Catalog) MustRegister(spec *ir.NodeSpec) {
	if err := c.Register(spec); err != nil {
		panic(err)
	}
}

func checkPorts(specName, direction string, ports []ir.PortDef, allowList bool) error {
	seen := make(map[string]struct{}, len(ports))
	for _, p := range ports {
		if p.Name == "" {
			return fmt.Errorf("%w: %q has an unnamed %s", ErrInvalidSpec, specName, direction)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %q declares %s %q twice", ErrInvalidSpec, specName, direction, p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.Type == ir.DatatypeInvalid {
			return fmt.Errorf("%w: %q %s %q has no datatype", ErrInvalidSpec, specName, direction, p.Name)
		}
		if !allowList && p.Type.IsList() {
			return fmt.Errorf("%w: %q %s %q cannot be a list kind", ErrInvalidSpec, specName, direction, p.Name)
		}
	}
	return nil
}

// Builtin returns a catalog preloaded with the stock node set.
func Builtin() *Catalog {
	c := New()
	for _, spec := range []*ir.NodeSpec{
		{
			Name:    "RootSlot",
			Outputs: []ir.PortDef{{Name: "*", Type: ir.DatatypeSlot}},
		},
		{
			Name:    "NumChildren",
			Inputs:  []ir.PortDef{{Name: "slot", Type: ir.DatatypeSlot}},
			Outputs: []ir.PortDef{{Name: "*", Type: ir.DatatypeInt}},
		},
		{
			Name: "WriteDynVar<Int>",
			Inputs: []ir.PortDef{
				{Name: "write", Type: ir.DatatypeImpulseList},
				{Name: "slot", Type: ir.DatatypeSlot},
				{Name: "name", Type: ir.DatatypeString},
				{Name: "value", Type: ir.DatatypeInt},
			},
			Outputs: []ir.PortDef{
				{Name: "success", Type: ir.DatatypeImpulse},
				{Name: "fail", Type: ir.DatatypeImpulse},
			},
		},
		{
			Name:    "Pulse",
			Outputs: []ir.PortDef{{Name: "*", Type: ir.DatatypeImpulse}},
		},
		{
			Name:        "StringInput",
			Outputs:     []ir.PortDef{{Name: "*", Type: ir.DatatypeString}},
			ContentType: ir.DatatypeString,
		},
		{
			Name:        "IntInput",
			Outputs:     []ir.PortDef{{Name: "*", Type: ir.DatatypeInt}},
			ContentType: ir.DatatypeInt,
		},
		{
			Name:        "BoolInput",
			Outputs:     []ir.PortDef{{Name: "*", Type: ir.DatatypeBool}},
			ContentType: ir.DatatypeBool,
		},
		{
			Name:   "ImpulseDisplay",
			Inputs: []ir.PortDef{{Name: "impulse", Type: ir.DatatypeImpulseList}},
		},
		{
			Name:    "PlusOne<Int>",
			Inputs:  []ir.PortDef{{Name: "value", Type: ir.DatatypeInt}},
			Outputs: []ir.PortDef{{Name: "*", Type: ir.DatatypeInt}},
		},
		{
			Name:    "Plus<String>",
			Inputs:  []ir.PortDef{{Name: "values", Type: ir.DatatypeStringList}},
			Outputs: []ir.PortDef{{Name: "*", Type: ir.DatatypeString}},
		},
		{
			Name:    "Plus<Int>",
			Inputs:  []ir.PortDef{{Name: "values", Type: ir.DatatypeIntList}},
			Outputs: []ir.PortDef{{Name: "*", Type: ir.DatatypeInt}},
		},
		{
			Name: "If",
			Inputs: []ir.PortDef{
				{Name: "impulse", Type: ir.DatatypeImpulseList},
				{Name: "condition", Type: ir.DatatypeBool},
			},
			Outputs: []ir.PortDef{
				{Name: "true", Type: ir.DatatypeImpulse},
				{Name: "false", Type: ir.DatatypeImpulse},
			},
		},
	} {
		c.MustRegister(spec)
	}
	return c
}
