package algorithms

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/multiobjective/framework"
)

const (
	Name = "RankAndCrowding"
)

// RankAndCrowdingConfig configures the selector.
type RankAndCrowdingConfig struct {
	// Seed feeds the tie-break RNG so that selection is reproducible.
	Seed uint64
	// Parallel computes the crowding distance of each front concurrently.
	// Fronts are disjoint, so the results are identical to the sequential
	// path.
	Parallel bool
	// Sorter is the non-dominated sorting collaborator. Defaults to
	// framework.NonDominatedSort.
	Sorter framework.FrontSorter
}

// RankAndCrowding implements elitist environmental selection: whole fronts
// survive in rank order until the budget runs out, and the splitting front
// is truncated by descending crowding distance with a randomized tie-break.
type RankAndCrowding struct {
	sorter   framework.FrontSorter
	rng      *rand.Rand
	parallel bool
}

// NewRankAndCrowding creates a selector from the given configuration.
func NewRankAndCrowding(cfg RankAndCrowdingConfig) *RankAndCrowding {
	sorter := cfg.Sorter
	if sorter == nil {
		sorter = framework.NonDominatedSort
	}
	return &RankAndCrowding{
		sorter:   sorter,
		rng:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		parallel: cfg.Parallel,
	}
}

// Name retrieves the selector name
func (r *RankAndCrowding) Name() string {
	return Name
}

// Select reduces pop to min(nSurvive, len(pop)) individuals. Every visited
// individual, surviving or not, gets its Rank and Crowding set. The returned
// population shares the underlying individuals with pop and is ordered by
// front, then by selection order within the splitting front. The context
// only carries the logger; the computation is synchronous.
func (r *RankAndCrowding) Select(ctx context.Context, pop framework.Population, nSurvive int) (framework.Population, error) {
	logger := klog.FromContext(ctx)

	F := pop.ObjectiveMatrix()
	if err := validateObjectives(F); err != nil {
		return nil, err
	}
	if nSurvive < 1 {
		return nil, fmt.Errorf("want nSurvive >= 1, got %d", nSurvive)
	}
	if nSurvive > len(F) {
		nSurvive = len(F)
	}

	fronts := r.sorter(F, nSurvive)
	logger.V(5).Info("ranked population for survival",
		"popSize", len(F), "fronts", len(fronts), "nSurvive", nSurvive)

	crowdings, err := r.crowdingPerFront(ctx, F, fronts)
	if err != nil {
		return nil, err
	}

	survivors := make([]int, 0, nSurvive)
	for k, front := range fronts {
		crowding := crowdings[k]
		for j, i := range front {
			pop[i].Rank = k
			pop[i].Crowding = crowding[j]
		}

		if len(survivors)+len(front) <= nSurvive {
			// The whole front fits.
			survivors = append(survivors, front...)
		} else {
			// Splitting front: keep the most isolated members.
			order := r.randomizedArgsortDescending(crowding)
			for _, j := range order[:nSurvive-len(survivors)] {
				survivors = append(survivors, front[j])
			}
		}

		if len(survivors) >= nSurvive {
			break
		}
	}

	logger.V(5).Info("survival selection complete",
		"survivors", len(survivors), "visitedFronts", len(fronts))

	return pop.Subset(survivors), nil
}

// crowdingPerFront computes the crowding distances of every front, either
// sequentially or with one goroutine per front.
func (r *RankAndCrowding) crowdingPerFront(ctx context.Context, F [][]float64, fronts [][]int) ([][]float64, error) {
	crowdings := make([][]float64, len(fronts))

	if !r.parallel {
		for k, front := range fronts {
			crowdings[k] = CrowdingDistance(subMatrix(F, front))
		}
		return crowdings, nil
	}

	g, _ := errgroup.WithContext(ctx)
	for k, front := range fronts {
		g.Go(func() error {
			crowdings[k] = CrowdingDistance(subMatrix(F, front))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return crowdings, nil
}

// randomizedArgsortDescending orders front positions by descending crowding
// score. Positions are shuffled before the stable sort so that ties carry no
// positional bias.
func (r *RankAndCrowding) randomizedArgsortDescending(crowding []float64) []int {
	order := r.rng.Perm(len(crowding))
	sort.SliceStable(order, func(a, b int) bool {
		return crowding[order[a]] > crowding[order[b]]
	})
	return order
}

// validateObjectives rejects malformed objective matrices at the boundary
// rather than coercing them.
func validateObjectives(F [][]float64) error {
	if len(F) == 0 {
		return fmt.Errorf("empty objective matrix")
	}
	numObjectives := len(F[0])
	if numObjectives == 0 {
		return fmt.Errorf("objective matrix has no columns")
	}
	for i, row := range F {
		if len(row) != numObjectives {
			return fmt.Errorf("row %d has %d objectives, want %d", i, len(row), numObjectives)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("non-finite objective value %v at row %d, column %d", v, i, j)
			}
		}
	}
	return nil
}

// subMatrix selects the given rows of F. Rows are shared, not copied.
func subMatrix(F [][]float64, indices []int) [][]float64 {
	sub := make([][]float64, len(indices))
	for i, idx := range indices {
		sub[i] = F[idx]
	}
	return sub
}
