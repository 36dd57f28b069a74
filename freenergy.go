/*
 * freenergy.go, part of goEVB.
 *
 * Copyright 2026 Daniel W. Silva <dwschem{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package evb

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//Mode selects what to derive from the amplitude distributions. Keeping
//it a single tagged value (rather than two booleans) makes "both free
//energy modes at once" unrepresentable.
type Mode int

const (
	//Density: the probability densities themselves, over [0,1].
	Density Mode = iota
	//SingleEnergy: free energy over the squared dominant amplitude.
	SingleEnergy
	//DifferenceEnergy: free energy over the difference between the
	//squared dominant and squared secondary amplitudes.
	DifferenceEnergy
)

func (m Mode) String() string {
	switch m {
	case Density:
		return "density"
	case SingleEnergy:
		return "free energy"
	case DifferenceEnergy:
		return "free energy difference"
	}
	return fmt.Sprintf("unknown mode %d", int(m))
}

const (
	//Temperature is the simulation temperature, in K.
	Temperature = 300.0
	boltzmannSI = 1.3806488e-23 //J/K
	jPerKcalMol = 6.9477e-21    //1 kcal/mol = 6.9477e-21 J
	//BoltzmannKcal is the Boltzmann constant in kcal/(mol K).
	BoltzmannKcal = boltzmannSI / jPerKcalMol
	//deadZone is the half-width of the region around zero excluded
	//from the difference profile. There the two difference densities
	//nearly coincide and sample counts are low, so the logarithm is
	//numerically unstable.
	deadZone = 0.04
)

//FreeEnergy maps a density fitted to the squared dominant amplitudes
//into a free energy profile, -kT ln p(x), over nbins evenly spaced
//points spanning [0,1], the domain of a squared amplitude. The profile
//is shifted so its global minimum is exactly zero; the shift is
//monotone and preserves all relative energies. A density evaluating to
//zero or below at any grid point yields a DensityDomainError.
func FreeEnergy(density DensityFunction, nbins int) (bins, energy []float64, err error) {
	bins = floats.Span(make([]float64, nbins), 0, 1)
	energy = make([]float64, nbins)
	for i, x := range bins {
		energy[i], err = boltzmann(density, x)
		if err != nil {
			return nil, nil, errDecorate(err, "FreeEnergy")
		}
	}
	shiftMinToZero(energy)
	return bins, energy, nil
}

//FreeEnergyDiff maps a pair of densities, fitted to the difference
//between the squared dominant and secondary amplitudes and to the
//negated difference, into a free energy profile over 2*nbins evenly
//spaced points spanning [-1,1]. Points below -0.04 use the negated
//density, points above 0.04 the direct one, and the dead zone in
//between is set to zero before the profile is shifted so that its
//global minimum is exactly zero.
func FreeEnergyDiff(direct, negated DensityFunction, nbins int) (bins, energy []float64, err error) {
	bins = floats.Span(make([]float64, 2*nbins), -1, 1)
	energy = make([]float64, 2*nbins)
	for i, x := range bins {
		switch {
		case x < -deadZone:
			energy[i], err = boltzmann(negated, x)
		case x > deadZone:
			energy[i], err = boltzmann(direct, x)
		default:
			energy[i] = 0.0
		}
		if err != nil {
			return nil, nil, errDecorate(err, "FreeEnergyDiff")
		}
	}
	shiftMinToZero(energy)
	return bins, energy, nil
}

func boltzmann(density DensityFunction, x float64) (float64, error) {
	p := density.Evaluate(x)
	if p <= 0 {
		return 0, &DensityDomainError{Coord: x, Density: p}
	}
	return -BoltzmannKcal * Temperature * math.Log(p), nil
}

func shiftMinToZero(energy []float64) {
	floats.AddConst(-floats.Min(energy), energy)
}

//Densities fits one density to each of the two amplitude sample sets
//and evaluates both over nbins points spanning [0,1]. This is what the
//Density mode plots.
func (T *Trajectory) Densities(nbins int, est DensityEstimator) (bins, p1, p2 []float64, err error) {
	first, second, err := T.AmplitudeSamples()
	if err != nil {
		return nil, nil, nil, errDecorate(err, "Densities")
	}
	d1, err := est.Fit(first)
	if err != nil {
		return nil, nil, nil, err
	}
	d2, err := est.Fit(second)
	if err != nil {
		return nil, nil, nil, err
	}
	bins = floats.Span(make([]float64, nbins), 0, 1)
	p1 = make([]float64, nbins)
	p2 = make([]float64, nbins)
	for i, x := range bins {
		p1[i] = d1.Evaluate(x)
		p2[i] = d2.Evaluate(x)
	}
	return bins, p1, p2, nil
}

//FreeEnergyProfile extracts the amplitude samples of the trajectory,
//fits the density (or pair of densities) the mode calls for with the
//given estimator, and returns the free energy profile. The mode must
//be SingleEnergy or DifferenceEnergy; for the raw densities use
//Densities instead.
func (T *Trajectory) FreeEnergyProfile(mode Mode, nbins int, est DensityEstimator) (bins, energy []float64, err error) {
	first, second, err := T.AmplitudeSamples()
	if err != nil {
		return nil, nil, errDecorate(err, "FreeEnergyProfile")
	}
	switch mode {
	case SingleEnergy:
		d, err := est.Fit(first)
		if err != nil {
			return nil, nil, err
		}
		return FreeEnergy(d, nbins)
	case DifferenceEnergy:
		diff := make([]float64, len(first))
		neg := make([]float64, len(first))
		floats.SubTo(diff, first, second)
		for i, v := range diff {
			neg[i] = -v
		}
		direct, err := est.Fit(diff)
		if err != nil {
			return nil, nil, err
		}
		negated, err := est.Fit(neg)
		if err != nil {
			return nil, nil, err
		}
		return FreeEnergyDiff(direct, negated, nbins)
	}
	return nil, nil, fmt.Errorf("goEVB: mode %v does not produce a free energy profile", mode)
}
