package algorithms

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// duplicateEpsilon bounds the per-objective difference under which two rows
// count as the same point in objective space.
const duplicateEpsilon = 1e-24

// CrowdingDistance estimates, for every row of a single front's objective
// sub-matrix F, how isolated that row is in objective space. Boundary rows
// of any objective score +Inf. Rows duplicating an earlier row score 0 so
// that truncation drops them first; the first occurrence keeps the computed
// score. The result is aligned to F's row order.
func CrowdingDistance(F [][]float64) []float64 {
	crowding := make([]float64, len(F))

	// With up to two rows everyone is a boundary point.
	if len(F) <= 2 {
		for i := range crowding {
			crowding[i] = math.Inf(1)
		}
		return crowding
	}

	unique := uniqueRows(F)
	numObjectives := len(F[0])

	dist := make([]float64, len(unique))
	col := make([]float64, len(unique))
	order := make([]int, len(unique))

	for m := 0; m < numObjectives; m++ {
		for i, idx := range unique {
			col[i] = F[idx][m]
		}

		// A constant objective contributes no diversity signal.
		norm := floats.Max(col) - floats.Min(col)
		if norm == 0 {
			continue
		}

		// Stable sort keeps tie handling deterministic.
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return col[order[a]] < col[order[b]]
		})

		for pos, i := range order {
			prev, next := math.Inf(-1), math.Inf(1)
			if pos > 0 {
				prev = col[order[pos-1]]
			}
			if pos < len(order)-1 {
				next = col[order[pos+1]]
			}
			dist[i] += (col[i]-prev)/norm + (next-col[i])/norm
		}
	}

	for i, idx := range unique {
		crowding[idx] = dist[i] / float64(numObjectives)
	}
	return crowding
}

// uniqueRows returns the indices of the first occurrence of every distinct
// row. A row is a duplicate when every objective is within duplicateEpsilon
// of an earlier unique row.
func uniqueRows(F [][]float64) []int {
	unique := make([]int, 0, len(F))
	for i, row := range F {
		isDuplicate := false
		for _, u := range unique {
			if maxAbsDiff(row, F[u]) < duplicateEpsilon {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			unique = append(unique, i)
		}
	}
	return unique
}

func maxAbsDiff(a, b []float64) float64 {
	diff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > diff {
			diff = d
		}
	}
	return diff
}
