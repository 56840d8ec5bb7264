package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the YAML form of a causal DAG. Tiers are expanded with FromTiers
// first; Nodes and Edges are then added on top.
//
//	tiers:
//	  - [age, sex]
//	  - [bmi]
//	edges:
//	  - [bmi, outcome]
type Spec struct {
	Nodes []string   `yaml:"nodes"`
	Edges [][]string `yaml:"edges"`
	Tiers [][]string `yaml:"tiers"`
}

// Build turns the spec into a DAG.
func (s Spec) Build() (*DAG, error) {
	d := FromTiers(s.Tiers)
	for _, n := range s.Nodes {
		if err := d.AddNode(n); err != nil {
			return nil, err
		}
	}
	for i, e := range s.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("graph: edge %d: want [from, to], got %d names", i, len(e))
		}
		if err := d.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("graph: edge %d: %w", i, err)
		}
	}
	return d, nil
}

// ParseSpec decodes a YAML DAG spec and builds it.
func ParseSpec(b []byte) (*DAG, error) {
	var s Spec
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("graph: parse spec: %w", err)
	}
	return s.Build()
}

// LoadSpec reads and builds the YAML DAG spec at path.
func LoadSpec(path string) (*DAG, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSpec(b)
}
