// Package search implements deterministic substring search with full
// occurrence reporting, used by the post and comment search operations.
package search

import "strings"

// Find returns the 0-based start offset of every occurrence of needle in
// haystack, in ascending order. Matching is case-insensitive and occurrences
// may overlap. An empty needle, or a needle longer than the haystack, yields
// no matches.
//
// The scan is Knuth-Morris-Pratt: O(len(haystack)+len(needle)) with a
// precomputed prefix function, since it runs once per stored item per
// search request.
func Find(haystack, needle string) []int {
	h := strings.ToLower(haystack)
	n := strings.ToLower(needle)
	if len(n) == 0 || len(n) > len(h) {
		return nil
	}

	lps := prefixFunction(n)
	var offsets []int

	j := 0
	for i := 0; i < len(h); i++ {
		for j > 0 && h[i] != n[j] {
			j = lps[j-1]
		}
		if h[i] == n[j] {
			j++
		}
		if j == len(n) {
			offsets = append(offsets, i-len(n)+1)
			// continue from the longest proper border so overlapping
			// occurrences are reported too
			j = lps[j-1]
		}
	}
	return offsets
}

// prefixFunction computes the KMP failure table: lps[i] is the length of the
// longest proper prefix of p[:i+1] that is also a suffix of it.
func prefixFunction(p string) []int {
	lps := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = lps[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		lps[i] = k
	}
	return lps
}
