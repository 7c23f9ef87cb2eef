// Package grid holds the board that the search and maze packages share.
//
// What:
//
//   - Grid is a fixed Width×Height board of cells, each Open (cost 1),
//     Weighted (cost 9) or Wall (impassable), with distinct Start and End.
//   - GetNeighbours yields passable orthogonal neighbours in Up, Down, Left,
//     Right order; GetCost returns the cost of entering a cell.
//   - Arena hands out one mutable Node per Position for a single search run.
//   - Parse / String round-trip the ASCII alphabet: '.' open, '9' weighted,
//     '#' wall, 'A' start, 'B' end.
//   - Reachable / ConnectedComponents analyse passable regions.
//   - WeightedGraph exports to gonum for use with its graph algorithms.
//
// Complexity:
//
//   - Cell queries: O(1).
//   - Reachable, ConnectedComponents, WeightedGraph: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or empty layout.
//   - ErrNonRectangular: layout rows differ in length.
//   - ErrOutOfBounds: a queried Position lies outside the board. Never clamped.
//   - ErrWallEndpoint, ErrSameEndpoints: endpoint invariants violated.
//   - ErrMissingEndpoint, ErrUnknownSymbol: malformed layout.
//   - ErrUnknownState: a seeded or written CellState outside Open, Weighted
//     and Wall.
package grid
