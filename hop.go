/*
 * hop.go, part of goEVB.
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

//noDonor seeds the donor stack so the first forward hop can push a real
//center without ever matching. Reaction center identifiers must be
//non-negative.
const noDonor = -1

//donorStack is the append-only record of prior donors. It is never
//popped: backward hops read the top without modifying it. Note that it
//is not a visited-state set, and must not be replaced by one, since
//membership of anything below the top plays no role in classification.
type donorStack struct {
	ids []int
}

func newDonorStack() *donorStack {
	return &donorStack{ids: []int{noDonor}}
}

func (d *donorStack) push(id int) {
	d.ids = append(d.ids, id)
}

func (d *donorStack) top() int {
	return d.ids[len(d.ids)-1]
}

//HopFunction evaluates the hop function of the MS-EVB3 paper over a
//sequence of reaction center identifiers:
//
//	h(t) = h(t-1) + dh(t)
//	h(0) = 0
//
//	        (  0, if the center did not change
//	dh(t) = {  1, if the proton hopped to a new acceptor
//	        ( -1, if the proton hopped back to the last donor
//
//A forward hop pushes the previous center onto the donor stack; a
//backward hop is a return to the top of that stack and leaves it
//untouched. Oscillation between two sites therefore nets to zero,
//while sustained directional transfer accumulates, so h(T-1) measures
//net displacement rather than raw event count.
//
//The backward check compares against the single most recent donor
//only. A transfer that skips back two or more sites in the donor chain
//counts as a forward hop and pushes a spurious donor. That is how the
//hop function is defined in the reference analysis, and it is kept
//here deliberately; see TestHopDeepReturn, which pins the behavior.
//
//The function is total: any center sequence yields one output per
//entry, and a single-frame sequence yields [0].
func HopFunction(centers []int) []int {
	h := make([]int, len(centers))
	donors := newDonorStack()
	for i := 1; i < len(centers); i++ {
		pcenter := centers[i-1]
		ccenter := centers[i]
		var dh int
		switch {
		case ccenter == pcenter:
			//no hop occurred
			dh = 0
		case ccenter == donors.top():
			//the current center is the previous donor: we hopped backwards
			dh = -1
		default:
			//the center changed and is not the previous donor: forward hop
			dh = 1
			donors.push(pcenter)
		}
		h[i] = h[i-1] + dh
	}
	return h
}
