package graph

import "math"

// maxTourNodes bounds the exhaustive search. With the start fixed, n nodes
// mean (n-1)! candidate tours; 12 nodes is already ~40M.
const maxTourNodes = 12

// Tour is a closed walk that visits every node exactly once. Nodes lists the
// visit order beginning at the start node; Distance includes the closing
// edge back to the start.
type Tour struct {
	Nodes    []int
	Distance float64
}

// TravelingSalesman finds the cheapest tour from start through every node
// and back, by trying every permutation. The graph must have an edge between
// every ordered pair of distinct nodes and at most maxTourNodes nodes.
func (g *Graph) TravelingSalesman(start int) (Tour, error) {
	n := len(g.adj)
	if !g.contains(start) {
		return Tour{}, ErrNodeOutOfRange
	}
	if n > maxTourNodes {
		return Tour{}, ErrTooManyNodes
	}

	w, err := g.weightMatrix()
	if err != nil {
		return Tour{}, err
	}
	if n == 1 {
		return Tour{Nodes: []int{start}, Distance: 0}, nil
	}

	rest := make([]int, 0, n-1)
	for node := 0; node < n; node++ {
		if node != start {
			rest = append(rest, node)
		}
	}

	best := math.Inf(1)
	var bestOrder []int

	permute(rest, 0, func(order []int) {
		cost := w[start][order[0]]
		for i := 1; i < len(order); i++ {
			cost += w[order[i-1]][order[i]]
		}
		cost += w[order[len(order)-1]][start]

		if cost < best {
			best = cost
			bestOrder = append(bestOrder[:0], order...)
		}
	})

	return Tour{
		Nodes:    append([]int{start}, bestOrder...),
		Distance: best,
	}, nil
}

// weightMatrix flattens the adjacency lists into a dense matrix, keeping the
// cheapest of any parallel edges. It fails if some ordered pair of distinct
// nodes has no edge.
func (g *Graph) weightMatrix() ([][]float64, error) {
	n := len(g.adj)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			w[i][j] = math.Inf(1)
		}
		w[i][i] = 0
	}

	for from, edges := range g.adj {
		for _, e := range edges {
			if e.Weight < w[from][e.To] {
				w[from][e.To] = e.Weight
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && math.IsInf(w[i][j], 1) {
				return nil, ErrIncompleteGraph
			}
		}
	}

	return w, nil
}

// permute visits every permutation of items by in-place swaps. The slice
// passed to visit is reused between calls.
func permute(items []int, k int, visit func([]int)) {
	if k == len(items) {
		visit(items)
		return
	}
	for i := k; i < len(items); i++ {
		items[k], items[i] = items[i], items[k]
		permute(items, k+1, visit)
		items[k], items[i] = items[i], items[k]
	}
}
