// Package board provides the mutable state of a tile-swap puzzle in play:
// the current arrangement, the swap mutation protocol, and the
// variant-dispatched completion evaluation.
//
// What
//
//   - Board: grid descriptor, puzzle variant, current arrangement, the
//     canonical solved reference (always the identity arrangement), a swap
//     counter, and an optional educational mapping.
//   - Swap(posA, posB): the single mutation primitive — exchange two
//     positions and bump the counter. Equal positions are a no-op;
//     out-of-range positions fail fast with ErrPositionOutOfRange.
//   - Reset / Reshuffle: return to the solved reference, or regenerate a
//     fresh scramble for the stored grid and variant.
//   - IsComplete: the completion predicate, dispatched on variant:
//   - Classic — the arrangement equals identity.
//   - PairedColumns without mapping — every row holds its own prompt
//     and answer tiles.
//   - PairedColumns with mapping — the two tiles facing each other in
//     every row belong to the same logical group, resolved through the
//     mapping by each tile's original row. Answers from different
//     physical rows are accepted when the mapping declares their rows
//     equivalent (e.g. two input pairs of a commutative identity).
//   - Progress queries: CorrectPositionCount, CompletionRatio, RowCorrect,
//     SwapCount, and a defensive copy of the live arrangement.
//   - WithOnComplete: an optional one-shot hook fired by the swap that
//     completes the board; re-armed by Reset and Reshuffle.
//
// Why
//
//   - The engine pushes nothing: completion is a cheap pure query the UI
//     re-runs after every swap, and the one-shot hook exists purely so a
//     host can centralize its "you won" handling.
//   - Replacing the grid, the image, or the variant is not a mutation;
//     hosts discard the Board and construct a new one.
//
// Concurrency
//
//	A Board is exclusively owned by one controller. Operations are
//	synchronous, unconditionally terminating, and provide no reentrancy
//	guarantees; hosts with concurrent input sources must serialize calls
//	at the boundary.
//
// Complexity (N = tiles, R = rows)
//
//   - Swap, Reset: O(1) mutation (+O(N) on Reset's copy).
//   - Reshuffle: O(N).
//   - IsComplete: O(R) for paired variants, O(N) for Classic.
//
// Usage
//
//	d, _ := grid.New(2, 3)
//	b, err := board.New(d,
//	    board.WithVariant(shuffle.PairedColumns),
//	    board.WithMapping(board.Mapping{7, 4, 7}),
//	    board.WithSeed(42),
//	    board.WithOnComplete(func(swaps int) { fmt.Println("solved in", swaps) }),
//	)
//	if err != nil {
//	    // handle grid.ErrBadDimensions, shuffle.ErrNeedTwoColumns,
//	    // ErrMappingLength or ErrMappingVariant
//	}
//	_ = b.Swap(1, 5)
//	if b.IsComplete() { ... }
//
// Errors
//
//   - ErrPositionOutOfRange  if Swap receives an index outside [0,N).
//   - ErrMappingLength       if a mapping's length differs from Rows.
//   - ErrMappingVariant      if a mapping is supplied for Classic.
//   - grid.ErrBadDimensions / shuffle errors propagate from construction.
package board
