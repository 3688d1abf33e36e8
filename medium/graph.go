package medium

import "fmt"

// Graph is a view of the partition adjacency relation over dense partition
// indices. The default view is directed parent→child in construction
// order; Undirected returns the symmetric closure.
type Graph struct {
	adj [][]int
}

// Graph materializes the adjacency view of the medium.
// Complexity: O(V + E).
func (m *Medium) Graph() *Graph {
	adj := make([][]int, len(m.Partitions))
	for i := range m.Partitions {
		adj[i] = append([]int(nil), m.Partitions[i].Adjacent...)
	}

	return &Graph{adj: adj}
}

// Order returns the number of partitions in the view.
func (g *Graph) Order() int { return len(g.adj) }

// Neighbors returns the successor list of partition i in edge-insertion
// order. The slice is shared; callers must not mutate it.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// HasEdge reports whether the directed edge u→v exists.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Undirected returns the symmetric closure: for every edge u→v the result
// carries both u→v and v→u, without duplicates.
// Complexity: O(V + E).
func (g *Graph) Undirected() *Graph {
	u := &Graph{adj: make([][]int, len(g.adj))}
	for from, succs := range g.adj {
		for _, to := range succs {
			if !u.HasEdge(from, to) {
				u.adj[from] = append(u.adj[from], to)
			}
			if !u.HasEdge(to, from) {
				u.adj[to] = append(u.adj[to], from)
			}
		}
	}

	return u
}

// Reachable performs a breadth-first traversal from start and returns the
// visited partition indices in visit order (start first). Returns
// ErrPartitionIndex when start is out of range.
// Complexity: O(V + E), Memory: O(V).
func (g *Graph) Reachable(start int) ([]int, error) {
	if start < 0 || start >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d of %d", ErrPartitionIndex, start, len(g.adj))
	}

	visited := make([]bool, len(g.adj))
	visited[start] = true
	order := []int{start}
	for qi := 0; qi < len(order); qi++ {
		for _, nbr := range g.adj[order[qi]] {
			if !visited[nbr] {
				visited[nbr] = true
				order = append(order, nbr)
			}
		}
	}

	return order, nil
}

// Connected reports whether every partition is reachable from partition 0
// over the symmetric closure. Graphs with at most one partition are
// connected vacuously.
// Complexity: O(V + E).
func (g *Graph) Connected() bool {
	if len(g.adj) <= 1 {
		return true
	}
	order, err := g.Undirected().Reachable(0)
	if err != nil {
		return false
	}

	return len(order) == len(g.adj)
}
