/*
 * doc.go, part of goEVB.
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

/*Package evb analyzes trajectories from multi-state empirical valence bond
(MS-EVB) molecular dynamics simulations of proton transfer.

Every frame of such a trajectory carries a CI vector (one amplitude
coefficient per candidate bonding topology) and the identity of the
reaction center, the molecule hosting the transferring proton on that
frame. From those two per-frame records the package derives the
quantities discussed in the MS-EVB3 paper:


	**goEVB Capabilities**


    Extracts the squared dominant and second-dominant CI amplitudes
	frame by frame.

    Classifies proton-transfer events into forward and backward hops
	and accumulates them into the hop function h(t), so that
	oscillation between two sites nets to zero while sustained
	directional transfer does not.

    Maps kernel-density estimates of the amplitude distributions into
	free energy profiles through the Boltzmann relation, either over
	the dominant amplitude alone or over the difference between the
	two largest amplitudes.

Density estimation itself is not implemented here: the package consumes
any estimator satisfying the DensityEstimator interface (the kde
subpackage provides a Gaussian one). Reading RAPTOR evb.out files is
done by the raptor subpackage, and plotting by evbplot.

All computations are pure, sequential transforms of their input slices.
Nothing in this package does I/O or keeps state between calls, so
independent trajectories can be analyzed concurrently without
coordination.
*/
package evb
