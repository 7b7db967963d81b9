package graph

import (
	"container/heap"
	"math"
)

// Path is a walk between two nodes and its total weight.
type Path struct {
	Nodes    []int
	Distance float64
}

// ShortestPath returns the cheapest path between two nodes. The node list
// includes both endpoints; for from == to it is the single node with
// distance zero.
func (g *Graph) ShortestPath(from, to int) (Path, error) {
	if !g.contains(to) {
		return Path{}, ErrNodeOutOfRange
	}

	dist, prev, err := g.ShortestPaths(from)
	if err != nil {
		return Path{}, err
	}
	if math.IsInf(dist[to], 1) {
		return Path{}, ErrNoPath
	}

	// Walk the predecessor chain backwards, then reverse in place.
	nodes := []int{to}
	for at := prev[to]; at >= 0; at = prev[at] {
		nodes = append(nodes, at)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Distance: dist[to]}, nil
}

// ShortestPaths runs Dijkstra from a single source. It returns the distance
// to every node and each node's predecessor on the cheapest path; an
// unreachable node has distance +Inf and predecessor -1. The frontier is
// ordered by tentative distance so the cheapest node settles first.
func (g *Graph) ShortestPaths(from int) (dist []float64, prev []int, err error) {
	if !g.contains(from) {
		return nil, nil, ErrNodeOutOfRange
	}

	n := len(g.adj)
	dist = make([]float64, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[from] = 0

	pq := frontier{{node: from, dist: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(frontierItem)
		if cur.dist > dist[cur.node] {
			continue // superseded by a cheaper entry
		}

		for _, e := range g.adj[cur.node] {
			if alt := cur.dist + e.Weight; alt < dist[e.To] {
				dist[e.To] = alt
				prev[e.To] = cur.node
				heap.Push(&pq, frontierItem{node: e.To, dist: alt})
			}
		}
	}

	return dist, prev, nil
}

type frontierItem struct {
	node int
	dist float64
}

// frontier is a min-heap of tentative distances.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
