/*
 * interfaces.go, part of goEVB.
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

//DensityFunction is a fitted, immutable probability density. Evaluate
//returns the estimated density at x. Implementations must be safe for
//concurrent calls to Evaluate, as a fitted density is never mutated.
type DensityFunction interface {
	Evaluate(x float64) float64
}

//DensityEstimator fits a probability density to a finite sample set.
//The package does not care about the kernel or bandwidth choice of the
//implementation, only about this contract. The kde subpackage provides
//a Gaussian implementation; tests substitute deterministic stubs.
type DensityEstimator interface {
	Fit(samples []float64) (DensityFunction, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information when the error is passed up. Each call returns the current "decoration" slice of strings. If passed an empty string, it just returns the current value without adding anything.
}
