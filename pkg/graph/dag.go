// Package graph provides the causal DAG over dataset column names.
//
// A DAG stores named nodes on top of a gonum directed graph. Node IDs follow
// insertion order, and every listing (nodes, edges, parents, topological
// order) is ordered by them. Identical construction therefore gives identical
// output.
//
// Cycles are not rejected when edges are added; they surface as ErrCycle
// from TopologicalSort.
package graph

import (
	"errors"
	"fmt"
	"slices"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

var (
	// ErrCycle is returned by TopologicalSort when the graph is not acyclic.
	ErrCycle = errors.New("graph: cycle detected")
	// ErrSelfLoop is returned when an edge would connect a node to itself.
	ErrSelfLoop = errors.New("graph: self loop")
	// ErrUnknownNode is returned when a lookup names a node that was never added.
	ErrUnknownNode = errors.New("graph: unknown node")
	// ErrEmptyName is returned when a node name is empty.
	ErrEmptyName = errors.New("graph: empty node name")
)

// Edge is a directed edge between two named nodes.
type Edge struct {
	From string
	To   string
}

// DAG is a directed graph over named nodes.
type DAG struct {
	g     *simple.DirectedGraph
	ids   map[string]int64
	names []string // indexed by node ID
}

// New returns an empty DAG.
func New() *DAG {
	return &DAG{g: simple.NewDirectedGraph(), ids: make(map[string]int64)}
}

// AddNode adds a node. Adding an existing node is a no-op.
func (d *DAG) AddNode(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	d.node(name)
	return nil
}

func (d *DAG) node(name string) int64 {
	if id, ok := d.ids[name]; ok {
		return id
	}
	id := int64(len(d.names))
	d.g.AddNode(simple.Node(id))
	d.ids[name] = id
	d.names = append(d.names, name)
	return id
}

// AddEdge adds the edge from -> to, adding missing nodes first.
func (d *DAG) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyName
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	u, v := d.node(from), d.node(to)
	d.g.SetEdge(d.g.NewEdge(simple.Node(u), simple.Node(v)))
	return nil
}

// HasNode reports whether name is a node of the graph.
func (d *DAG) HasNode(name string) bool {
	_, ok := d.ids[name]
	return ok
}

// HasEdge reports whether the edge from -> to exists.
func (d *DAG) HasEdge(from, to string) bool {
	u, ok := d.ids[from]
	if !ok {
		return false
	}
	v, ok := d.ids[to]
	if !ok {
		return false
	}
	return d.g.HasEdgeFromTo(u, v)
}

// Len returns the number of nodes.
func (d *DAG) Len() int { return len(d.names) }

// Nodes returns the node names in insertion order.
func (d *DAG) Nodes() []string { return slices.Clone(d.names) }

// Edges returns every edge ordered by source, then target, insertion order.
func (d *DAG) Edges() []Edge {
	var out []Edge
	for u, from := range d.names {
		for _, v := range d.sortedIDs(d.g.From(int64(u))) {
			out = append(out, Edge{From: from, To: d.names[v]})
		}
	}
	return out
}

// Predecessors returns the direct parents of name in insertion order.
func (d *DAG) Predecessors(name string) ([]string, error) {
	id, ok := d.ids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return d.namesOf(d.g.To(id)), nil
}

// Successors returns the direct children of name in insertion order.
func (d *DAG) Successors(name string) ([]string, error) {
	id, ok := d.ids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return d.namesOf(d.g.From(id)), nil
}

// TopologicalSort returns every node such that for each edge u -> v, u comes
// before v. Independent nodes are visited by node ID, so the order is the
// same on every call.
func (d *DAG) TopologicalSort() ([]string, error) {
	sorted, err := topo.SortStabilized(d.g, nil)
	if err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) {
			return nil, fmt.Errorf("%w: %s", ErrCycle, d.describeCycles(cycles))
		}
		return nil, err
	}
	out := make([]string, len(sorted))
	for i, n := range sorted {
		out[i] = d.names[n.ID()]
	}
	return out, nil
}

func (d *DAG) describeCycles(cycles topo.Unorderable) string {
	var groups [][]string
	for _, c := range cycles {
		ids := make([]int64, len(c))
		for i, n := range c {
			ids[i] = n.ID()
		}
		slices.Sort(ids)
		group := make([]string, len(ids))
		for i, id := range ids {
			group[i] = d.names[id]
		}
		groups = append(groups, group)
	}
	return fmt.Sprint(groups)
}

func (d *DAG) sortedIDs(it gonum.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)
	return ids
}

func (d *DAG) namesOf(it gonum.Nodes) []string {
	ids := d.sortedIDs(it)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = d.names[id]
	}
	return out
}
