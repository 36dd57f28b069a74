/*
 * kde.go, part of goEVB.
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

//Package kde is a Gaussian kernel density estimator. It is the
//production plug for the evb.DensityEstimator capability: the analysis
//core only ever sees the fitted density through that interface, so a
//different estimator (or a stub, in tests) can be substituted without
//touching the core.
package kde

import (
	"fmt"
	"math"

	evb "github.com/dwschem/goevb"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

//KDE is a density fitted to a sample set with a Gaussian kernel and
//Scott's-rule bandwidth, sigma * n^(-1/5), the same default the
//reference analysis used. It is immutable after Fit, so any number of
//goroutines may call Evaluate on it.
type KDE struct {
	samples []float64
	bw      float64
	kernel  distuv.Normal
}

//Fit builds a KDE from the given samples. The samples are copied, so
//the caller may keep mutating its slice. Fit fails on an empty sample
//set and on zero-spread samples: with bandwidth zero the estimate
//degenerates into a comb of delta functions, which no downstream
//consumer can use.
func Fit(samples []float64) (*KDE, error) {
	n := len(samples)
	if n == 0 {
		return nil, fmt.Errorf("goEVB/kde: can't fit a density to an empty sample set")
	}
	sigma := stat.StdDev(samples, nil)
	if sigma == 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("goEVB/kde: samples have no spread, bandwidth would be zero")
	}
	k := new(KDE)
	k.samples = make([]float64, n)
	copy(k.samples, samples)
	k.bw = sigma * math.Pow(float64(n), -1.0/5.0)
	k.kernel = distuv.Normal{Mu: 0, Sigma: 1}
	return k, nil
}

//Evaluate returns the estimated probability density at x.
func (k *KDE) Evaluate(x float64) float64 {
	var sum float64
	for _, xi := range k.samples {
		sum += k.kernel.Prob((x - xi) / k.bw)
	}
	return sum / (float64(len(k.samples)) * k.bw)
}

//Bandwidth returns the kernel bandwidth chosen at fit time.
func (k *KDE) Bandwidth() float64 {
	return k.bw
}

//Estimator adapts Fit to the evb.DensityEstimator interface.
type Estimator struct{}

func (Estimator) Fit(samples []float64) (evb.DensityFunction, error) {
	k, err := Fit(samples)
	if err != nil {
		return nil, err
	}
	return k, nil
}
