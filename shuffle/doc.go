// Package shuffle provides the Arrangement permutation type and the
// scramble generators of the tile-swap engine.
//
// What
//
//   - Arrangement: a permutation of [0,N) where arrangement[pos] names the
//     original tile currently occupying position pos. Helpers cover
//     identity construction, cloning, permutation-integrity checks, fixed
//     point counting, and mismatch listing.
//   - Generate: variant-dispatched scrambling over a grid.Descriptor:
//   - Classic — a full derangement: zero fixed points, so no tile ever
//     starts on its own solved position. A randomized forced-partner
//     swap pass is verified over the whole array; a failed verification
//     discards the attempt and retries from a fresh identity.
//   - PairedColumns — only the answer column (column index 1) is
//     scrambled by an ordinary Fisher–Yates shuffle (fixed points
//     allowed); every other position keeps its identity tile, so the
//     prompt column stays visually anchored.
//   - Deterministic RNG policy: seed 0 maps to a stable default seed, an
//     explicit seed or *rand.Rand can be injected, and retry attempts are
//     decorrelated through a SplitMix64-style seed derivation.
//
// Why
//
//   - The derangement guarantee is the classic puzzle's fairness rule: a
//     freshly scrambled board must not hand the player pre-solved cells.
//   - Determinism makes scrambles replayable: the exact board from a bug
//     report or a daily-challenge seed can be regenerated byte-for-byte.
//
// Determinism
//
//	math/rand.Rand is NOT goroutine-safe; do not share one across
//	goroutines. Same seed ⇒ identical arrangement on every platform.
//
// Complexity (N = Columns×Rows)
//
//   - Time:   O(N) per generation attempt; the verification retry loop
//     is a safety valve and is not expected to trigger.
//   - Memory: O(N) for the returned arrangement.
//
// Usage
//
//	d, _ := grid.New(3, 3)
//	arr, err := shuffle.Generate(d, shuffle.Classic, shuffle.WithSeed(42))
//	if err != nil {
//	    // handle ErrOptionViolation, ErrNeedTwoColumns,
//	    // ErrUnknownVariant or ErrRetriesExhausted
//	}
//
// Options
//
//   - DefaultOptions(): shuffling on, seed 0 (stable default stream),
//     retry cap at a generous safety-valve value.
//   - WithSeed(s):       derive the RNG deterministically from s.
//   - WithRand(r):       inject a caller-owned *rand.Rand (overrides seed).
//   - WithoutShuffle():  return the identity arrangement unconditionally.
//   - WithMaxRetries(n): override the derangement retry cap (n ≥ 1).
//
// Errors
//
//   - ErrUnknownVariant    if the variant tag is not a declared constant.
//   - ErrNeedTwoColumns    if PairedColumns is requested on a 1-column grid.
//   - ErrOptionViolation   if an invalid Option was supplied.
//   - ErrRetriesExhausted  if the retry cap is hit — a fatal internal
//     invariant violation (a derangement always exists for N ≥ 2), never
//     a recoverable condition.
package shuffle
