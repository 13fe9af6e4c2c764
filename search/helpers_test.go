package search_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// edge is one directed arc of a graphProblem.
type edge struct {
	to   string
	cost float64
}

// graphProblem is an explicit directed graph; actions are target IDs.
type graphProblem struct {
	start string
	goals search.Goals[string]
	adj   map[string][]edge
	h     map[string]float64
}

func newGraphProblem(start string, goals ...string) *graphProblem {
	return &graphProblem{
		start: start,
		goals: search.NewGoals(goals...),
		adj:   make(map[string][]edge),
		h:     make(map[string]float64),
	}
}

func (g *graphProblem) link(from, to string, cost float64) *graphProblem {
	g.adj[from] = append(g.adj[from], edge{to: to, cost: cost})
	return g
}

func (g *graphProblem) both(a, b string, cost float64) *graphProblem {
	return g.link(a, b, cost).link(b, a, cost)
}

func (g *graphProblem) InitialState() string { return g.start }

func (g *graphProblem) Actions(s string) []string {
	out := make([]string, 0, len(g.adj[s]))
	for _, e := range g.adj[s] {
		out = append(out, e.to)
	}
	return out
}

func (g *graphProblem) Result(s, a string) (string, error) {
	for _, e := range g.adj[s] {
		if e.to == a {
			return a, nil
		}
	}
	return s, fmt.Errorf("%w: no arc %s→%s", search.ErrInvalidAction, s, a)
}

func (g *graphProblem) StepCost(s, a, _ string) float64 {
	for _, e := range g.adj[s] {
		if e.to == a {
			return e.cost
		}
	}
	return math.Inf(1)
}

func (g *graphProblem) GoalTest(s string) bool { return g.goals.Contains(s) }

func (g *graphProblem) Heuristic(s string) float64 { return g.h[s] }

// randomGraph builds a directed graph on n vertices with up to k distinct
// out-arcs per vertex. unit forces every cost to 1.
func randomGraph(rng *rand.Rand, n, k int, unit bool) *graphProblem {
	id := func(i int) string { return fmt.Sprintf("v%d", i) }
	g := newGraphProblem(id(0), id(n-1))
	for i := 0; i < n; i++ {
		seen := map[int]bool{i: true}
		for j := 0; j < k; j++ {
			t := rng.Intn(n)
			if seen[t] {
				continue
			}
			seen[t] = true
			cost := 1.0
			if !unit {
				cost = float64(1 + rng.Intn(9))
			}
			g.link(id(i), id(t), cost)
		}
	}
	return g
}

// bellmanFord returns the minimum cost from g.start to every vertex by
// exhaustive relaxation, independent of the search engine.
func bellmanFord(g *graphProblem) map[string]float64 {
	dist := map[string]float64{g.start: 0}
	for changed := true; changed; {
		changed = false
		for u, arcs := range g.adj {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, e := range arcs {
				if dv, ok := dist[e.to]; !ok || du+e.cost < dv {
					dist[e.to] = du + e.cost
					changed = true
				}
			}
		}
	}
	return dist
}

// bestGoal returns the minimum of dist over goals, and whether any goal is reachable.
func bestGoal(g *graphProblem, dist map[string]float64) (float64, bool) {
	best, ok := math.Inf(1), false
	for s := range g.goals {
		if d, reached := dist[s]; reached && d < best {
			best, ok = d, true
		}
	}
	return best, ok
}

// requireValidPath checks a solved result against the problem it came from.
func requireValidPath[S comparable, A any](t *testing.T, p search.Problem[S, A], res search.Result[S, A]) {
	t.Helper()
	require.Equal(t, search.Solved, res.Outcome)
	require.NotEmpty(t, res.Path)
	require.Equal(t, p.InitialState(), res.Path[0])
	require.True(t, p.GoalTest(res.Path[len(res.Path)-1]))
	require.Len(t, res.Path, res.Solution.Depth()+1)
	require.Len(t, res.Actions, len(res.Path)-1)

	cost := 0.0
	for i, a := range res.Actions {
		next, err := p.Result(res.Path[i], a)
		require.NoError(t, err)
		require.Equal(t, res.Path[i+1], next)
		cost += p.StepCost(res.Path[i], a, next)
	}
	require.InDelta(t, cost, res.PathCost, 1e-9)
}
