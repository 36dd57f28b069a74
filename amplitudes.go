/*
 * amplitudes.go, part of goEVB.
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

import "math"

//DominantPair returns the squared dominant and squared second-dominant
//amplitude of one frame's CI vector, in a single pass. A value tied
//with the current maximum shifts the old maximum into the second slot
//instead of being rejected, so a CI vector with a duplicated dominant
//amplitude reports that amplitude in both slots. The running maxima
//start at -Inf, not zero: with fewer than two states the secondary slot
//would stay unset, and squaring it must not silently produce a sample,
//so that case returns an InsufficientStatesError instead.
func DominantPair(amplitudes []float64) (float64, float64, error) {
	if len(amplitudes) < 2 {
		return 0, 0, &InsufficientStatesError{Frame: -1, NStates: len(amplitudes)}
	}
	m1 := math.Inf(-1)
	m2 := math.Inf(-1)
	for _, x := range amplitudes {
		if x >= m1 {
			m2 = m1
			m1 = x
		} else if x > m2 {
			m2 = x
		}
	}
	return m1 * m1, m2 * m2, nil
}
