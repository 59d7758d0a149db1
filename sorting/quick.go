package sorting

// Quick sorts s in non-decreasing order, in place, by recursive partitioning.
//
// Algorithm Outline (for the subrange [low, high]):
//  1. low >= high: nothing to do.
//  2. pivot = s[low]; left = low+1; right = high.
//  3. Advance left while left <= right and s[left] <= pivot.
//     Retreat right while s[right] >= pivot and right >= left.
//  4. If right < left the range is partitioned; otherwise swap s[left] and
//     s[right] and repeat from 3.
//  5. Swap s[low] with s[right]: the pivot is now in its final position.
//  6. Recurse on [low, right-1] and [right+1, high].
//
// The pivot is always the first element of the subrange. Sorted or
// reverse-sorted input therefore hits the O(n²) worst case with recursion
// depth n; average input is O(n log n).
//
// Complexity:
//
//	Time   = O(n log n) average, O(n²) worst
//	Memory = O(log n) average stack, O(n) worst
func Quick(s []int) {
	quickRange(s, 0, len(s)-1)
}

// quickRange sorts s[low:high+1]. The two recursive calls touch disjoint subranges.
func quickRange(s []int, low, high int) {
	if low >= high {
		return
	}
	p := partition(s, low, high)
	quickRange(s, low, p-1)
	quickRange(s, p+1, high)
}

// partition places s[low] at its final index within [low, high] and returns that index.
// Elements left of it are <= pivot, elements right of it are >= pivot.
func partition(s []int, low, high int) int {
	pivot := s[low]
	left, right := low+1, high
	for {
		for left <= right && s[left] <= pivot {
			left++
		}
		for right >= left && s[right] >= pivot {
			right--
		}
		if right < left {
			break
		}
		s[left], s[right] = s[right], s[left]
	}
	s[low], s[right] = s[right], s[low]

	return right
}
