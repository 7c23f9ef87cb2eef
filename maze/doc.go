// Package maze decorates and carves grid.Grid boards for the search package.
//
// What:
//
//   - WeightPass / WallPass: every cell other than start and end turns
//     Weighted (or Wall) with probability Density (default 0.2). Weighting
//     touches Open cells only; walling covers Open and Weighted cells.
//   - DrawLine: carve one even-indexed wall line with a single odd-indexed
//     hole across a region; the building block of RecursiveDivision.
//   - RecursiveDivision: split chambers with alternating lines until they
//     are too small, keeping every passable cell mutually reachable.
//   - RandomizedDFS: recursive-backtracker corridors on the even lattice.
//   - Clear: reset the board.
//
// Animation:
//
// Operations hand their changed cells to an optional Animator as one Batch,
// in the order the cells were decorated or carved. The generator never
// waits for or reads from the animator; nothing in the records affects
// searching.
//
// Determinism:
//
// A Generator built WithSeed(s) reproduces every board exactly. Decoration
// passes give each row its own derived stream, so WithWorkers changes speed
// only, never the outcome.
//
// Errors (sentinel):
//
//   - ErrNilGrid            if the grid pointer is nil.
//   - ErrInvalidCarveRegion from DrawLine when no wall or hole fits; a base
//     case for RecursiveDivision, never returned by it.
//   - ErrBadDensity, ErrBadWorkers, ErrNilRand, ErrNilLogger: option panics.
package maze
