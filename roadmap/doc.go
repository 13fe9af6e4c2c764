// Package roadmap adapts a weighted road network to the search engine.
//
// What:
//
//   - Graph is a small adjacency-list graph with string vertex IDs,
//     float64 edge weights and optional planar positions per vertex.
//   - Problem implements search.Problem[string, Edge]: actions are the
//     outgoing edges of a vertex and the step cost is the edge weight.
//   - Distances runs Dijkstra from one source; ExactHeuristic runs it
//     backwards from the goals and yields the perfect A* estimate.
//
// Why:
//
//   - Mazes exercise uniform-cost moves; road networks exercise arbitrary
//     non-negative costs, multiple goals and heuristic quality.
//
// Heuristics:
//
//   - Zero (default): A* degenerates to uniform-cost search.
//   - StraightLine: Euclidean distance between vertex positions. Admissible
//     only when every edge weight is at least the distance it spans.
//   - ExactHeuristic: true remaining cost. Consistent by construction.
//
// Complexity:
//
//   - AddEdge: O(1) amortized. Neighbors: O(deg).
//   - Distances, ExactHeuristic: O((V+E) log V).
//
// Errors:
//
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed,
//     ErrNegativeWeight, ErrNoGoal, ErrNoPosition.
package roadmap
