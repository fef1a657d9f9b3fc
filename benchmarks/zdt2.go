package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/multiobjective/framework"
)

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string {
	return "ZDT2"
}

func (p *ZDT2) Evaluate(x []float64) framework.ObjectiveSpacePoint {
	return framework.ObjectiveSpacePoint{p.f1(x), p.f2(x)}
}

func (p *ZDT2) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT2) f2(x []float64) float64 {
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	// Note: ZDT2 uses (1 - (x1/g)^2) instead of sqrt
	return g * (1.0 - math.Pow(x[0]/g, 2))
}

// Sample evaluates popSize uniformly random decision vectors and returns the
// resulting objective matrix, one row per vector.
func (p *ZDT2) Sample(rng *rand.Rand, popSize int) [][]float64 {
	F := make([][]float64, popSize)
	for i := range F {
		x := make([]float64, p.numVars)
		for j := range x {
			x[j] = rng.Float64()
		}
		F[i] = p.Evaluate(x)
	}
	return F
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - x*x,
		}
	}
	return points
}
