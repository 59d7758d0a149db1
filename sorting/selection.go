package sorting

// Selection sorts s in non-decreasing order, in place.
//
// For each position i it scans s[i+1:] for the index of the minimum and
// swaps that element into i. The swap is unconditional (a self-swap when s[i]
// is already the minimum). Not stable.
//
// Complexity: O(n²) comparisons on every input, O(n) swaps, O(1) memory.
func Selection(s []int) {
	n := len(s)
	var i, j, minIdx int
	for i = 0; i < n; i++ {
		minIdx = i
		for j = i + 1; j < n; j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		s[minIdx], s[i] = s[i], s[minIdx]
	}
}
