// Package lvsearch is a best-first graph-search toolkit: one generic
// driver, three frontier disciplines and ready-made problem adapters for
// mazes and road networks.
//
// What is inside?
//
//	search/   Node arena, Problem contract, Queue/Stack/PriorityQueue,
//	          GraphSearch driver, BFS/DFS/AStar helpers, hooks and bounds
//	maze/     tile grids (ASCII or discretized pictures) as search problems
//	raster/   PNG/BMP loading and picture → tile-grid discretization
//	render/   console and image rendering of solved paths
//	roadmap/  weighted road networks, Dijkstra and exact A* heuristics
//	config/   HCL run configuration for the mazesolve command
//	cmd/mazesolve  solve a maze picture or text file from the shell
//
// Why one driver?
//
//   - The frontier alone decides the strategy: a Queue gives breadth-first
//     search, a Stack depth-first search, a PriorityQueue ordered by g+h
//     gives A*. Cycle handling, path reconstruction and statistics are
//     written once.
//   - Problems are plain interfaces over comparable states, so any domain
//     plugs in without touching the engine.
//
// Quick ASCII example:
//
//	S . #
//	. . #        A* with 8-way moves:  (0,0) (1,1) (2,2)
//	. . G
//
//	go install github.com/katalvlaran/lvsearch/cmd/mazesolve@latest
package lvsearch
