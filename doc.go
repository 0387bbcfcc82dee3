// Package tileswap is the arrangement & completion engine of a tile-swap
// puzzle: a source image is sliced into a grid of tiles, tiles are
// scrambled, and the player reorders them by pairwise swaps until the
// puzzle's completion rule holds.
//
// 🧩 What is tileswap?
//
//	A small, deterministic, in-memory engine that brings together:
//		• Grid descriptors: row-major index ↔ (column,row) bookkeeping
//		• Scrambling: guaranteed-derangement shuffles & restricted
//		  single-column shuffles, reproducible from a seed
//		• Board state: the swap mutation protocol plus progress counters
//		• Completion rules: classic full-permutation solving and
//		  indirection-table ("educational") row correspondence
//
// ✨ Why choose tileswap?
//
//   - Host-agnostic – no rendering, no I/O, no persistence; a pure library
//     consumed by whatever UI owns the tiles
//   - Reproducible – every shuffle is driven by an explicit seed policy,
//     so a bug report's board can be replayed exactly
//   - Fail-fast – integration mistakes (bad indices, bad mappings) surface
//     as sentinel errors, never as silently corrupted permutations
//
// Everything is organized under three subpackages:
//
//	grid/    — immutable grid dimensions & index arithmetic
//	shuffle/ — the Arrangement permutation type and its generators
//	board/   — mutable board state, swaps, and completion evaluation
//
// Quick ASCII example (2-column paired puzzle, 3 rows):
//
//	prompt │ answer          prompt │ answer
//	   0   │   1                0   │   5
//	   2   │   3       →        2   │   3
//	   4   │   5                4   │   1
//
// the left column stays anchored; only the answer column scrambles, and a
// mapping may declare rows 0 and 2 logically interchangeable.
//
// Dive into README.md and the per-package example tests for full scenarios.
//
//	go get github.com/vasqo/tileswap
package tileswap
