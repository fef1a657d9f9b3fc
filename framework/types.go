package framework

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Individual couples a candidate's objective values with the survival
// metadata assigned during environmental selection. All objectives are
// minimized.
type Individual struct {
	// Index is the row of this individual in the population's objective matrix.
	Index int
	// Value holds the objective values, one entry per objective.
	Value ObjectiveSpacePoint

	// Rank is the index of the non-dominated front the individual belongs
	// to, 0 being the best.
	Rank int
	// Crowding is the crowding distance of the individual within its front.
	// It is only meaningful relative to individuals of the same front.
	Crowding float64
}

// Population is an ordered collection of individuals.
type Population []*Individual

// NewPopulation wraps an objective matrix into a population, one individual
// per row. Row order determines the stable index of each individual.
func NewPopulation(F [][]float64) Population {
	pop := make(Population, len(F))
	for i, row := range F {
		pop[i] = &Individual{
			Index: i,
			Value: row,
		}
	}
	return pop
}

// ObjectiveMatrix returns the objective values of the population, one row
// per individual in population order.
func (p Population) ObjectiveMatrix() [][]float64 {
	F := make([][]float64, len(p))
	for i, ind := range p {
		F[i] = ind.Value
	}
	return F
}

// Subset returns the individuals at the given indices, preserving the given
// order. The returned population shares the underlying individuals.
func (p Population) Subset(indices []int) Population {
	sub := make(Population, len(indices))
	for i, idx := range indices {
		sub[i] = p[idx]
	}
	return sub
}

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	// Evaluate maps a decision vector to a point in the objective space.
	Evaluate(x []float64) ObjectiveSpacePoint

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// FrontSorter partitions the rows of an objective matrix into ordered
// non-dominated fronts, returned as row-index sets. Implementations must be
// deterministic given F. A positive stopAtRanked allows the sorter to stop
// opening new fronts once that many rows have been ranked.
type FrontSorter func(F [][]float64, stopAtRanked int) [][]int
