package sorting

// Insertion sorts s in non-decreasing order, in place.
//
// Algorithm Outline:
//  1. For i = 1..n-1, the prefix s[0:i] is already sorted.
//  2. Walk s[i] left by adjacent swaps while its left neighbour is greater.
//
// Equal elements never pass each other, so the sort is stable.
//
// Complexity:
//
//	Time   = O(n²) worst/average, O(n) on sorted input
//	Memory = O(1)
func Insertion(s []int) {
	var i, j int
	for i = 1; i < len(s); i++ {
		// j is the left neighbour of the element being sunk into place.
		for j = i - 1; j >= 0 && s[j] > s[j+1]; j-- {
			s[j], s[j+1] = s[j+1], s[j]
		}
	}
}
