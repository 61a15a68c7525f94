package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"xelogen/internal/ir"
)

// catalogDoc is the YAML document shape for host-supplied node catalogs:
//
//	nodes:
//	  - name: Wobble<Float>
//	    inputs:
//	      - {name: value, type: Float}
//	    outputs:
//	      - {name: "*", type: Float}
//	    content: Float
type catalogDoc struct {
	Nodes []nodeDoc `yaml:"nodes"`
}

type nodeDoc struct {
	Name    string    `yaml:"name"`
	Inputs  []portDoc `yaml:"inputs"`
	Outputs []portDoc `yaml:"outputs"`
	Content string    `yaml:"content"`
}

type portDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Load reads a YAML catalog document and registers every spec it declares.
// Unknown document fields are rejected.
func (c *Catalog) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogDoc
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}
	for _, nd := range doc.Nodes {
		spec, err := nd.toSpec()
		if err != nil {
			return err
		}
		if err := c.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// LoadBytes is Load over an in-memory document.
func (c *Catalog) LoadBytes(data []byte) error {
	return c.Load(bytes.NewReader(data))
}

// LoadFile is Load over a catalog file on disk.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	if err := c.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (nd nodeDoc) toSpec() (*ir.NodeSpec, error) {
	spec := &ir.NodeSpec{Name: nd.Name}
	for _, p := range nd.Inputs {
		t, err := ir.ParseDatatype(p.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %q input %q: %v", ErrInvalidSpec, nd.Name, p.Name, err)
		}
		spec.Inputs = append(spec.Inputs, ir.PortDef{Name: p.Name, Type: t})
	}
	for _, p := range nd.Outputs {
		t, err := ir.ParseDatatype(p.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %q output %q: %v", ErrInvalidSpec, nd.Name, p.Name, err)
		}
		spec.Outputs = append(spec.Outputs, ir.PortDef{Name: p.Name, Type: t})
	}
	if nd.Content != "" {
		t, err := ir.ParseDatatype(nd.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %q content: %v", ErrInvalidSpec, nd.Name, err)
		}
		spec.ContentType = t
	}
	return spec, nil
}
