// Package config loads a mazesolve run configuration from HCL.
//
// A configuration file holds up to four blocks, all optional:
//
//	maze {
//	  image         = "maze.png"   # or: text = "maze.txt"
//	  tile_size     = 10
//	  connectivity  = "8"          # "4" or "8"
//	  heuristic     = "euclidean"  # euclidean | manhattan | octile | zero
//	  axis_cost     = 1
//	  diagonal_cost = 1.414
//	}
//	search {
//	  algorithms     = ["bfs", "dfs", "astar"]
//	  max_expansions = 0
//	}
//	output {
//	  dir     = "output"
//	  console = true
//	}
//	log {
//	  level  = "info"
//	  format = "text"
//	}
//
// Attributes are HCL expressions evaluated against:
//
//   - env.<NAME>  the process environment, as strings;
//   - lower, upper, format, coalesce  from the cty standard library.
//
// Relative maze.image and maze.text paths are resolved against the
// directory of the configuration file. Missing attributes keep the values
// of Default.
package config
