// Package payloads holds the functions the microbench CLI measures. They are
// ordinary callables with known complexity; nothing here is part of the
// harness.
package payloads

import (
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SumSlice adds every element. O(n).
func SumSlice(data []int) int {
	sum := 0
	for _, v := range data {
		sum += v
	}
	return sum
}

// FibRecursive computes the n-th Fibonacci number the exponential way.
func FibRecursive(n int) int {
	if n <= 1 {
		return n
	}
	return FibRecursive(n-1) + FibRecursive(n-2)
}

// FibIterative computes the n-th Fibonacci number in O(n).
func FibIterative(n int) int {
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// BubbleSort returns a sorted copy of data. O(n²). The input is never modified,
// so repeated calls on the same slice do the same amount of work.
func BubbleSort(data []int) []int {
	out := slices.Clone(data)
	for i := 0; i < len(out); i++ {
		swapped := false
		for j := 0; j < len(out)-1-i; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out
}

// StdSort returns a sorted copy of data using slices.Sort.
func StdSort(data []int) []int {
	out := slices.Clone(data)
	slices.Sort(out)
	return out
}

// HashXX hashes data with xxHash64.
func HashXX(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// HashFNV hashes data with FNV-1a 64.
func HashFNV(data []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}

// NaiveIndex returns the first index of needle in haystack, or -1.
// Worst case O(n·m).
func NaiveIndex(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// StdIndex is strings.Index, kept as a named payload for symmetry.
func StdIndex(haystack, needle string) int {
	return strings.Index(haystack, needle)
}

// Search bundles a haystack and needle so string search fits a unary
// benchmark signature.
type Search struct {
	Haystack string
	Needle   string
}

// NaiveSearch adapts NaiveIndex to a Search argument.
func NaiveSearch(s Search) int { return NaiveIndex(s.Haystack, s.Needle) }

// StdSearch adapts StdIndex to a Search argument.
func StdSearch(s Search) int { return StdIndex(s.Haystack, s.Needle) }

// Ints returns n pseudo-random ints in [0, 1_000_000). The same seed always
// yields the same slice.
func Ints(n int, seed uint64) []int {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(1_000_000)
	}
	return out
}

// Bytes returns n deterministic pseudo-random bytes.
func Bytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, ^seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.UintN(256))
	}
	return out
}

// WorstCaseSearch builds a haystack of n 'a's followed by "b" and the needle
// "aaaab", which makes the naive scan compare almost every window in full.
func WorstCaseSearch(n int) Search {
	return Search{
		Haystack: strings.Repeat("a", n) + "b",
		Needle:   "aaaab",
	}
}
