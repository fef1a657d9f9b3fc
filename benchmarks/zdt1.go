package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/multiobjective/framework"
)

const (
	Name = "ZDT1"
)

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{
		numVars,
	}
}

func (p *ZDT1) Name() string {
	return Name
}

// Evaluate maps a decision vector in [0,1]^numVars to the objective space.
func (p *ZDT1) Evaluate(x []float64) framework.ObjectiveSpacePoint {
	return framework.ObjectiveSpacePoint{p.f1(x), p.f2(x)}
}

func (p *ZDT1) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT1) f2(x []float64) float64 {
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g * (1.0 - math.Sqrt(x[0]/g))
}

// Sample evaluates popSize uniformly random decision vectors and returns the
// resulting objective matrix, one row per vector.
func (p *ZDT1) Sample(rng *rand.Rand, popSize int) [][]float64 {
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

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - math.Sqrt(x),
		}
	}
	return points
}
