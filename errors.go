/*
 * errors.go, part of goEVB.
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

import "fmt"

//All the errors here are unrecoverable: there is no meaningful partial
//result for a malformed or statistically degenerate trajectory, and the
//computation is deterministic, so retrying with the same input just
//reproduces the same error. They are detected eagerly, before or during
//the single analysis pass.

//errDecorate is a helper function that asserts that the error
//implements Error and decorates it with the caller's name before
//returning it. Used with anything else, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//InsufficientStatesError signals a CI vector with fewer than two
//amplitude coefficients. With a single state there is no secondary
//amplitude, and silently reporting it as zero would poison the sample
//sets fed to density estimation.
type InsufficientStatesError struct {
	Frame   int //frame index in the trajectory, or -1 for a bare vector
	NStates int
	deco    []string
}

func (err *InsufficientStatesError) Error() string {
	if err.Frame < 0 {
		return fmt.Sprintf("goEVB: CI vector has %d states, need at least 2", err.NStates)
	}
	return fmt.Sprintf("goEVB: CI vector for frame %d has %d states, need at least 2", err.Frame, err.NStates)
}

//Decorate adds new information to the error
func (err *InsufficientStatesError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//EmptyTrajectoryError signals that zero frames were supplied.
type EmptyTrajectoryError struct {
	deco []string
}

func (err *EmptyTrajectoryError) Error() string {
	return "goEVB: trajectory contains no frames"
}

//Decorate adds new information to the error
func (err *EmptyTrajectoryError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//MismatchedLengthError signals that the three frame-aligned input
//sequences (timesteps, CI vectors, reaction centers) differ in length.
//The collaborator producing them guarantees index alignment, so a
//mismatch means the input is not a trajectory at all.
type MismatchedLengthError struct {
	Timesteps int
	CIVectors int
	Centers   int
	deco      []string
}

func (err *MismatchedLengthError) Error() string {
	return fmt.Sprintf("goEVB: misaligned trajectory data: %d timesteps, %d CI vectors, %d reaction centers",
		err.Timesteps, err.CIVectors, err.Centers)
}

//Decorate adds new information to the error
func (err *MismatchedLengthError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//DensityDomainError signals a fitted density evaluating to zero or a
//negative value at a grid coordinate that requires a logarithm. This is
//numerically possible at the tails of an estimator; propagating the
//resulting NaN/Inf into the profile would be worse than failing.
type DensityDomainError struct {
	Coord   float64
	Density float64
	deco    []string
}

func (err *DensityDomainError) Error() string {
	return fmt.Sprintf("goEVB: density is %g at coordinate %g, can't take the logarithm", err.Density, err.Coord)
}

//Decorate adds new information to the error
func (err *DensityDomainError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
