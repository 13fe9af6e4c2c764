package roadmap

import (
	"container/heap"
	"fmt"
	"math"
)

// Distances returns the least total weight from source to every vertex.
// Unreachable vertices map to +Inf.
func Distances(g *Graph, source string) (map[string]float64, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	return g.dijkstra(source), nil
}

// ExactHeuristic returns h(v) = least weight from v to the nearest goal,
// computed once by Dijkstra over the reversed graph. Vertices that cannot
// reach a goal get +Inf.
func ExactHeuristic(g *Graph, goals ...string) (func(string) float64, error) {
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	for _, id := range goals {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, id)
		}
	}
	dist := g.reversed().dijkstra(goals...)
	return func(v string) float64 {
		if d, ok := dist[v]; ok {
			return d
		}
		return math.Inf(1)
	}, nil
}

// dijkstra runs a multi-source lazy-deletion Dijkstra.
func (g *Graph) dijkstra(sources ...string) map[string]float64 {
	dist := make(map[string]float64, len(g.order))
	for _, v := range g.order {
		dist[v] = math.Inf(1)
	}
	visited := make(map[string]bool, len(g.order))
	pq := make(distPQ, 0, len(g.order))
	for _, s := range sources {
		dist[s] = 0
		heap.Push(&pq, distItem{id: s})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(distItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		for _, e := range g.adjacency[item.id] {
			if nd := item.dist + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				heap.Push(&pq, distItem{id: e.To, dist: nd})
			}
		}
	}
	return dist
}

type distItem struct {
	id   string
	dist float64
}

// distPQ is a min-heap of distItem.
type distPQ []distItem

func (pq distPQ) Len() int           { return len(pq) }
func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x any)        { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
