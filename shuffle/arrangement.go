package shuffle

// Arrangement is the permutation describing which tile currently sits at
// which grid position: arrangement[pos] is the identity of the original
// tile occupying pos. A well-formed Arrangement is always a permutation
// of [0, len) — no duplicates, no gaps.
type Arrangement []int

// Identity returns the solved arrangement [0,1,...,n-1]. For n ≤ 0 it
// returns an empty (non-nil) arrangement.
// Complexity: O(n).
func Identity(n int) Arrangement {
	if n < 0 {
		n = 0
	}
	a := make(Arrangement, n)
	for i := 0; i < n; i++ {
		a[i] = i
	}

	return a
}

// Clone returns an independent copy of a.
// Complexity: O(n).
func (a Arrangement) Clone() Arrangement {
	out := make(Arrangement, len(a))
	copy(out, a)

	return out
}

// IsPermutation reports whether a contains each value of [0,len(a))
// exactly once. Every arrangement produced by this package satisfies it;
// the check exists for hosts that deserialize or hand-build arrangements.
// Complexity: O(n) time, O(n) memory.
func (a Arrangement) IsPermutation() bool {
	seen := make([]bool, len(a))
	for _, tile := range a {
		if tile < 0 || tile >= len(a) || seen[tile] {
			return false
		}
		seen[tile] = true
	}

	return true
}

// FixedPoints counts positions already holding their own tile
// (a[i] == i). A derangement has zero fixed points.
// Complexity: O(n).
func (a Arrangement) FixedPoints() int {
	var count int
	for i, tile := range a {
		if tile == i {
			count++
		}
	}

	return count
}

// IsIdentity reports whether a is fully solved (a[i] == i everywhere).
// Complexity: O(n).
func (a Arrangement) IsIdentity() bool {
	return a.FixedPoints() == len(a)
}

// Mismatches returns the positions not holding their own tile, in
// ascending order. Hosts use it to highlight unsolved cells.
// Complexity: O(n).
func (a Arrangement) Mismatches() []int {
	var out []int
	for i, tile := range a {
		if tile != i {
			out = append(out, i)
		}
	}

	return out
}
