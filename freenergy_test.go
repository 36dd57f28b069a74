package evb

import (
	"fmt"
	"math"
	"testing"
)

//stubDensity lets the profiler be tested against deterministic
//densities instead of a real estimator.
type stubDensity func(float64) float64

func (s stubDensity) Evaluate(x float64) float64 {
	return s(x)
}

//stubEstimator hands out a fixed density regardless of the samples.
type stubEstimator struct {
	d DensityFunction
}

func (s stubEstimator) Fit(samples []float64) (DensityFunction, error) {
	return s.d, nil
}

//A flat density carries no energetic structure: after the baseline
//shift every grid point must be exactly zero.
func TestFreeEnergyFlat(Te *testing.T) {
	flat := stubDensity(func(x float64) float64 { return 0.2 })
	bins, energy, err := FreeEnergy(flat, 50)
	if err != nil {
		Te.Error(err)
	}
	if len(bins) != 50 || bins[0] != 0 || bins[len(bins)-1] != 1 {
		Te.Errorf("bad grid: %d points over [%v,%v]", len(bins), bins[0], bins[len(bins)-1])
	}
	for i, e := range energy {
		if e != 0 {
			Te.Errorf("flat density gave nonzero energy %v at bin %d", e, i)
		}
	}
}

//An exponential density gives a linear profile, with the minimum pinned
//to exactly zero at the high-density end.
func TestFreeEnergyExponential(Te *testing.T) {
	d := stubDensity(func(x float64) float64 { return math.Exp(-x) })
	_, energy, err := FreeEnergy(d, 100)
	if err != nil {
		Te.Error(err)
	}
	if energy[0] != 0 {
		Te.Errorf("minimum not shifted to zero: energy[0] = %v", energy[0])
	}
	min := energy[0]
	for t := 1; t < len(energy); t++ {
		if energy[t] <= energy[t-1] {
			Te.Errorf("profile not increasing at bin %d", t)
		}
		if energy[t] < min {
			min = energy[t]
		}
	}
	//-kT ln(e^-1) = kT at x=1, relative to x=0
	want := BoltzmannKcal * Temperature
	if math.Abs(energy[len(energy)-1]-want) > 1e-12 {
		Te.Errorf("energy at x=1: got %v, want %v", energy[len(energy)-1], want)
	}
	fmt.Println("kT at 300 K in kcal/mol:", want)
}

//A density hitting zero anywhere on the grid must surface as a
//DensityDomainError naming the coordinate, not as a NaN in the profile.
func TestFreeEnergyDomainError(Te *testing.T) {
	d := stubDensity(func(x float64) float64 {
		if x > 0.5 {
			return 0
		}
		return 1
	})
	_, _, err := FreeEnergy(d, 20)
	if err == nil {
		Te.Fatal("expected a DensityDomainError")
	}
	derr, ok := err.(*DensityDomainError)
	if !ok {
		Te.Fatalf("wrong error type: %T", err)
	}
	if derr.Coord <= 0.5 {
		Te.Errorf("error blames coordinate %v, which is in the valid region", derr.Coord)
	}
	fmt.Println("expected failure:", err.Error())
}

//Every grid point inside the +-0.04 dead zone contributes exactly zero
//before the shift. With sub-unity densities everywhere else, the zero
//of the dead zone is also the global minimum, so the shift is a no-op
//and the dead zone must sit at exactly zero afterwards too.
func TestFreeEnergyDiffDeadZone(Te *testing.T) {
	half := stubDensity(func(x float64) float64 { return 0.5 })
	bins, energy, err := FreeEnergyDiff(half, half, 100)
	if err != nil {
		Te.Error(err)
	}
	if len(bins) != 200 || bins[0] != -1 || bins[len(bins)-1] != 1 {
		Te.Errorf("bad grid: %d points over [%v,%v]", len(bins), bins[0], bins[len(bins)-1])
	}
	var inZone int
	for i, x := range bins {
		if x >= -0.04 && x <= 0.04 {
			inZone++
			if energy[i] != 0 {
				Te.Errorf("dead zone energy at x=%v is %v, want exactly 0", x, energy[i])
			}
		} else if energy[i] <= 0 {
			Te.Errorf("half-density energy at x=%v is %v, should be positive", x, energy[i])
		}
	}
	if inZone == 0 {
		Te.Error("grid has no points inside the dead zone; the test checks nothing")
	}
	fmt.Println("grid points inside the dead zone:", inZone)
}

//The shifted minimum is exactly zero for both modes.
func TestFreeEnergyMinimumIsZero(Te *testing.T) {
	d := stubDensity(func(x float64) float64 { return 0.1 + x*x })
	_, energy, err := FreeEnergy(d, 64)
	if err != nil {
		Te.Error(err)
	}
	min := math.Inf(1)
	for _, e := range energy {
		if e < min {
			min = e
		}
	}
	if min != 0 {
		Te.Errorf("single mode minimum: got %v, want exactly 0", min)
	}
	_, energy, err = FreeEnergyDiff(d, d, 64)
	if err != nil {
		Te.Error(err)
	}
	min = math.Inf(1)
	for _, e := range energy {
		if e < min {
			min = e
		}
	}
	if min != 0 {
		Te.Errorf("difference mode minimum: got %v, want exactly 0", min)
	}
}

func TestFreeEnergyProfileModes(Te *testing.T) {
	civecs := [][]float64{
		{0.9, 0.3, 0.1},
		{0.8, 0.5, 0.2},
		{0.7, 0.6, 0.1},
	}
	T, err := NewTrajectory([]int{0, 1000, 2000}, civecs, []int{1, 1, 2})
	if err != nil {
		Te.Fatal(err)
	}
	est := stubEstimator{d: stubDensity(func(x float64) float64 { return 0.3 })}
	bins, energy, err := T.FreeEnergyProfile(SingleEnergy, 10, est)
	if err != nil {
		Te.Error(err)
	}
	if len(bins) != 10 || len(energy) != 10 {
		Te.Errorf("single mode sizes: %d %d", len(bins), len(energy))
	}
	bins, energy, err = T.FreeEnergyProfile(DifferenceEnergy, 10, est)
	if err != nil {
		Te.Error(err)
	}
	if len(bins) != 20 || len(energy) != 20 {
		Te.Errorf("difference mode sizes: %d %d", len(bins), len(energy))
	}
	if _, _, err = T.FreeEnergyProfile(Density, 10, est); err == nil {
		Te.Error("Density mode should not produce a free energy profile")
	}
	bins, p1, p2, err := T.Densities(10, est)
	if err != nil {
		Te.Error(err)
	}
	if len(bins) != 10 || len(p1) != 10 || len(p2) != 10 {
		Te.Errorf("density sizes: %d %d %d", len(bins), len(p1), len(p2))
	}
}
