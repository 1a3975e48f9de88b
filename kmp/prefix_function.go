package kmp

// PrefixFunction returns π for s: π[i] is the length of the longest proper
// prefix of s[0..i] that is also a suffix of s[0..i].
func PrefixFunction(s string) []int {
	return PrefixFunctionOf([]byte(s))
}

// PrefixFunctionOf computes π in amortized O(len(s)) by walking the fallback
// chain π[j-1] of the previous position.
func PrefixFunctionOf[T comparable](s []T) []int {
	n := len(s)
	pi := make([]int, n)
	for i := 1; i < n; i++ {
		j := pi[i-1]
		for j > 0 && s[i] != s[j] {
			j = pi[j-1]
		}
		if s[i] == s[j] {
			j++
		}
		pi[i] = j
	}
	return pi
}
