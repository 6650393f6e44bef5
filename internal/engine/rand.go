package engine

// RandSource supplies randomness to the randomized strategies. It is the
// subset of *math/rand.Rand the engine needs; tests substitute scripted
// sources for deterministic runs.
type RandSource interface {
	// Intn returns a non-negative pseudo-random int in [0, n).
	// It panics if n <= 0.
	Intn(n int) int
}

// shuffle applies a Fisher-Yates shuffle over n elements using src.
func shuffle(src RandSource, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}
