// Package search finds minimum-cost paths across a grid.Grid.
//
// What:
//
//   - Uniform-cost search from Grid.Start to Grid.End over passable cells,
//     where entering a cell costs grid.OpenCost or grid.WeightCost.
//   - Two named variants, Dijkstra and BellmanFordSearch, backed by one
//     engine; Run selects by Algorithm ("DS" / "BF").
//   - Results are data: *Solution carries the path, explored order and cost;
//     *NoSolution carries only the explored order.
//
// How:
//
//   - A frontier.Frontier holds (priority, node) entries; equal priorities pop
//     in insertion order, so exploration order is fully reproducible.
//   - Lazy decrease-key: a cheaper discovery pushes a fresh entry and the old
//     one is skipped when popped, because its cell is already explored.
//   - Relaxation is strict (<). On success the neighbour node's parent and
//     edge cost are overwritten, while its action keeps its first value.
//   - The end check runs after the popped cell is appended to the explored
//     list, so a Solution's explored order always ends with Grid.End.
//
// Complexity:
//
//   - Time:  O(C log C), C = W×H.
//   - Space: O(C).
//
// Errors (sentinel):
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrUnknownAlgorithm  for an unregistered Algorithm.
//   - ErrExpansionLimit    when WithMaxExpansions is exceeded.
//   - grid errors (wrapped) if the grid's endpoint invariants are broken.
//
// Example usage:
//
//	res, err := search.Dijkstra(g, search.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res.Cost(), res.Path())
//	}
package search
