// Package costgrid holds the immutable rectangular grid of non-negative
// traversal costs consumed by the run-constrained search in package runpath.
//
// What:
//
//   - Grid wraps a dense, row-major []int of per-cell costs.
//   - Position addresses a cell by (X, Y); X grows to the right, Y downwards.
//   - Parse reads the textual digit format: one row per line, one decimal
//     digit per cell, all rows the same length.
//
// Why:
//
//   - Heat-loss / terrain maps where entering a cell has a price.
//   - A single shared read-only grid can serve any number of concurrent
//     queries without locking.
//
// Complexity:
//
//   - New, Parse:         O(W×H) time and memory (input is deep-copied).
//   - Cost, InBounds:     O(1).
//
// Errors:
//
//   - ErrInvalidGrid: empty input, ragged rows, negative or non-digit cells.
//   - ErrOutOfBounds: a queried position lies outside [0,W)×[0,H).
package costgrid
