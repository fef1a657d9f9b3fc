package framework

// NonDominatedSort performs fast non-dominated sorting on the rows of the
// objective matrix F. The returned fronts partition the row indices: front 0
// holds the rows dominated by nobody, front k the rows dominated only by
// members of fronts < k. A positive stopAtRanked stops the sort once the
// cumulative front size reaches it, so fronts past the splitting point need
// not be computed.
func NonDominatedSort(F [][]float64, stopAtRanked int) [][]int {
	var fronts [][]int
	dominated := make(map[int][]int)
	domCount := make([]int, len(F))

	// Calculate domination for each row
	for i := 0; i < len(F); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(F); j++ {
			if i != j {
				if Dominates(F[i], F[j]) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(F[j], F[i]) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	currentFront := []int{}
	for i := 0; i < len(F); i++ {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}
	fronts = append(fronts, currentFront)
	ranked := len(currentFront)

	// Find subsequent fronts
	for len(currentFront) > 0 {
		if stopAtRanked > 0 && ranked >= stopAtRanked {
			break
		}
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
			ranked += len(nextFront)
		}
		currentFront = nextFront
	}

	return fronts
}

// Dominates checks if point a dominates point b, assuming minimization.
func Dominates(a, b []float64) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}
