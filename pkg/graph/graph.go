// Package graph provides small weighted-graph utilities over dense integer
// node ids: Dijkstra shortest paths and an exhaustive traveling-salesman
// search for graphs small enough to brute-force.
package graph

import "errors"

var (
	// ErrInvalidOrder is returned when a graph is created with no nodes.
	ErrInvalidOrder = errors.New("graph needs at least one node")

	// ErrNodeOutOfRange is returned when a node id is outside [0, Order).
	ErrNodeOutOfRange = errors.New("node id out of range")

	// ErrNegativeWeight is returned when an edge weight is negative.
	ErrNegativeWeight = errors.New("edge weight must be non-negative")

	// ErrNoPath is returned when the target is unreachable from the source.
	ErrNoPath = errors.New("no path between nodes")

	// ErrIncompleteGraph is returned by TravelingSalesman when some node
	// pair has no connecting edge.
	ErrIncompleteGraph = errors.New("tour requires a complete graph")

	// ErrTooManyNodes is returned by TravelingSalesman when the graph is too
	// large to search exhaustively.
	ErrTooManyNodes = errors.New("too many nodes for exhaustive search")
)

// Edge is a weighted connection to a node.
type Edge struct {
	To     int
	Weight float64
}

// Graph is a directed graph with non-negative edge weights. Nodes are the
// integers [0, Order); parallel edges are allowed and the algorithms use the
// cheapest one.
type Graph struct {
	adj   [][]Edge
	edges int
}

// New creates a graph with n nodes and no edges.
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrInvalidOrder
	}
	return &Graph{adj: make([][]Edge, n)}, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge adds a directed edge from one node to another.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if !g.contains(from) || !g.contains(to) {
		return ErrNodeOutOfRange
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	g.edges++
	return nil
}

// AddUndirected adds edges in both directions with the same weight.
func (g *Graph) AddUndirected(a, b int, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	return g.AddEdge(b, a, weight)
}

// Neighbors returns the outgoing edges of node. The slice is owned by the
// graph and must not be modified.
func (g *Graph) Neighbors(node int) []Edge {
	if !g.contains(node) {
		return nil
	}
	return g.adj[node]
}

func (g *Graph) contains(node int) bool {
	return node >= 0 && node < len(g.adj)
}
