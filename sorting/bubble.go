package sorting

// Bubble sorts s in non-decreasing order, in place.
//
// It makes exactly n passes, each comparing all n-1 adjacent pairs and
// swapping the out-of-order ones. There is deliberately no early exit, so a
// sorted input costs as much as a shuffled one.
//
// Complexity: O(n²) on every input, O(1) memory.
func Bubble(s []int) {
	n := len(s)
	var pass, j int
	for pass = 0; pass < n; pass++ {
		for j = 0; j < n-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}
