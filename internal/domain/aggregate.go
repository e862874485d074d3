package domain

// mean returns the arithmetic mean of xs. Callers guarantee len(xs) > 0.
func mean(xs []float64) float64 {
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// argmax returns the index of the largest value, preferring the earliest index
// on ties. Callers guarantee len(xs) > 0.
func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}
