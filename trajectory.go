/*
 * trajectory.go, part of goEVB.
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

//Trajectory holds the per-frame records of one MS-EVB run: the
//simulation timestep, the CI amplitude vector and the reaction center
//identifier of each frame. The three sequences are aligned by frame
//index, not by timestep value. A Trajectory is not mutated after
//construction.
type Trajectory struct {
	timesteps []int
	civecs    [][]float64
	centers   []int
}

//NewTrajectory validates that the three frame-aligned sequences have
//the same nonzero length and returns the trajectory built from them.
//The slices are kept, not copied: the caller hands over ownership.
func NewTrajectory(timesteps []int, civecs [][]float64, centers []int) (*Trajectory, error) {
	if len(timesteps) != len(civecs) || len(timesteps) != len(centers) {
		return nil, &MismatchedLengthError{Timesteps: len(timesteps), CIVectors: len(civecs), Centers: len(centers)}
	}
	if len(timesteps) == 0 {
		return nil, &EmptyTrajectoryError{}
	}
	T := new(Trajectory)
	T.timesteps = timesteps
	T.civecs = civecs
	T.centers = centers
	return T, nil
}

//Len returns the number of frames in the trajectory.
func (T *Trajectory) Len() int {
	return len(T.timesteps)
}

//Timestep returns the simulation timestep of the ith frame.
func (T *Trajectory) Timestep(i int) int {
	return T.timesteps[i]
}

//Center returns the reaction center identifier of the ith frame.
func (T *Trajectory) Center(i int) int {
	return T.centers[i]
}

//TimesPs returns the frame times in picoseconds, assuming a 1 fs
//timestep, as the RAPTOR outputs we process use. If dst is given and
//long enough, the result is stored there, otherwise a new slice is
//allocated.
func (T *Trajectory) TimesPs(dst ...[]float64) []float64 {
	var r []float64
	if len(dst) > 0 && len(dst[0]) >= len(T.timesteps) {
		r = dst[0][0:len(T.timesteps)]
	} else {
		r = make([]float64, len(T.timesteps))
	}
	for i, v := range T.timesteps {
		r[i] = float64(v) / 1000.0
	}
	return r
}

//AmplitudeSamples extracts, frame by frame, the squared dominant and
//squared second-dominant CI amplitudes, returning the two aligned
//sample slices later fed to density estimation. If any frame has fewer
//than two states it returns an InsufficientStatesError identifying the
//frame, and no partial result.
func (T *Trajectory) AmplitudeSamples() (first, second []float64, err error) {
	first = make([]float64, T.Len())
	second = make([]float64, T.Len())
	for i, v := range T.civecs {
		first[i], second[i], err = DominantPair(v)
		if err != nil {
			err.(*InsufficientStatesError).Frame = i
			return nil, nil, errDecorate(err, "AmplitudeSamples")
		}
	}
	return first, second, nil
}

//HopFunction classifies the proton-transfer events of the trajectory
//and returns the cumulative hop function, one entry per frame.
func (T *Trajectory) HopFunction() []int {
	return HopFunction(T.centers)
}
