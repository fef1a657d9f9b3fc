package algorithms_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mihai-snyk/multiobjective/algorithms"
)

func TestCrowdingDistanceSmallFronts(t *testing.T) {
	cases := [][][]float64{
		{{1, 2}},
		{{1, 2}, {2, 1}},
		{{1, 2}, {1, 2}}, // identical rows still count as boundary points
	}

	for _, F := range cases {
		crowding := algorithms.CrowdingDistance(F)
		if len(crowding) != len(F) {
			t.Fatalf("expected %d scores, got %d", len(F), len(crowding))
		}
		for i, c := range crowding {
			if !math.IsInf(c, 1) {
				t.Errorf("front of size %d: expected +Inf at row %d, got %v", len(F), i, c)
			}
		}
	}
}

func TestCrowdingDistanceSingleFront(t *testing.T) {
	F := [][]float64{
		{1, 5},
		{2, 4},
		{3, 3},
		{4, 2},
		{5, 1},
	}

	crowding := algorithms.CrowdingDistance(F)

	if !math.IsInf(crowding[0], 1) || !math.IsInf(crowding[4], 1) {
		t.Errorf("extreme rows must score +Inf, got %v and %v", crowding[0], crowding[4])
	}
	// Middle rows sit symmetrically: each neighbor gap is 1/4 of the range
	// in both objectives, averaged over 2 objectives.
	for _, i := range []int{1, 2, 3} {
		if math.Abs(crowding[i]-0.5) > 1e-12 {
			t.Errorf("row %d: expected crowding 0.5, got %v", i, crowding[i])
		}
	}
}

func TestCrowdingDistanceNonNegative(t *testing.T) {
	F := [][]float64{
		{1, 9},
		{2, 7},
		{2, 7},
		{4, 4},
		{8, 2},
		{9, 1},
	}

	for i, c := range algorithms.CrowdingDistance(F) {
		if c < 0 {
			t.Errorf("row %d: negative crowding %v", i, c)
		}
	}
}

func TestCrowdingDistanceDuplicateRows(t *testing.T) {
	F := [][]float64{
		{1, 2},
		{1, 2},
		{0, 3},
		{2, 1},
	}

	crowding := algorithms.CrowdingDistance(F)

	if crowding[1] != 0 {
		t.Errorf("duplicate copy must score exactly 0, got %v", crowding[1])
	}
	// The first occurrence keeps the computed score of the point.
	if math.Abs(crowding[0]-1.0) > 1e-12 {
		t.Errorf("representative row: expected crowding 1.0, got %v", crowding[0])
	}
	if !math.IsInf(crowding[2], 1) || !math.IsInf(crowding[3], 1) {
		t.Errorf("boundary rows must score +Inf, got %v and %v", crowding[2], crowding[3])
	}
}

func TestCrowdingDistanceTwoIdenticalOneDistinct(t *testing.T) {
	F := [][]float64{
		{1, 1},
		{1, 1},
		{0, 0},
	}

	crowding := algorithms.CrowdingDistance(F)

	if crowding[1] != 0 {
		t.Errorf("duplicate copy must score exactly 0, got %v", crowding[1])
	}
	if !math.IsInf(crowding[0], 1) {
		t.Errorf("representative of the duplicated point is a boundary, expected +Inf, got %v", crowding[0])
	}
	if !math.IsInf(crowding[2], 1) {
		t.Errorf("distinct row is a boundary in every column, expected +Inf, got %v", crowding[2])
	}
}

func TestCrowdingDistanceConstantObjective(t *testing.T) {
	F := [][]float64{
		{1, 7},
		{2, 7},
		{3, 7},
		{4, 7},
	}

	crowding := algorithms.CrowdingDistance(F)

	if !math.IsInf(crowding[0], 1) || !math.IsInf(crowding[3], 1) {
		t.Errorf("boundary rows must score +Inf, got %v and %v", crowding[0], crowding[3])
	}
	// The constant column contributes nothing, so only the first objective
	// counts: (1/3 + 1/3) / 2 objectives.
	for _, i := range []int{1, 2} {
		if math.Abs(crowding[i]-1.0/3.0) > 1e-12 {
			t.Errorf("row %d: expected crowding 1/3, got %v", i, crowding[i])
		}
	}
}

func TestCrowdingDistanceIdempotent(t *testing.T) {
	F := [][]float64{
		{1, 5},
		{2, 4},
		{3, 3},
		{4, 2},
		{5, 1},
	}

	first := algorithms.CrowdingDistance(F)
	second := algorithms.CrowdingDistance(F)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("crowding distance is not idempotent (-first +second):\n%s", diff)
	}
}
