// Package gridpath finds minimum-cost paths across rectangular boards and
// carves the boards to search.
//
// 🚀 What is gridpath?
//
//	A small engine with a deterministic core:
//		• Grid: open, weighted (cost 9) and wall cells with a start and an end
//		• Frontier: generic min-heap with first-in-first-out ties
//		• Search: uniform-cost search exposed as Dijkstra and Bellman-Ford
//		• Maze: weight and wall passes, one-hole wall lines, recursive
//		  division and randomized DFS corridors, with animation records
//
// ✨ Guarantees
//
//   - Same board ⇒ same path, same explored order, same cost
//   - "No path" is a result (NoSolution), never an error
//   - Start and end are never walled by any generator
//   - Recursive division keeps every passable cell reachable, wherever
//     start and end sit
//
// Packages:
//
//	grid/        — board model, ASCII layouts, reachability, gonum export
//	frontier/    — priority queue used by the search
//	search/      — engine, result types, algorithm selection
//	maze/        — generators and animation records
//	config/      — .env, environment and YAML settings for the command
//	cmd/gridpath — demo: carve, solve, print
//
// Quick ASCII example:
//
//	A9B        A9B
//	...   ⇒    ***     cost 4: the detour beats the weighted cell
//
//	go run ./cmd/gridpath
package gridpath
