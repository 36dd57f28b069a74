/*
 * hha.go, part of goEVB.
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

//Package hha evaluates Henderson-Hasselbalch speciation for a diprotic
//acid. Mass balance and the two acid equilibria give, with h = [H3O+]:
//
//	H2A fraction = h*h / ( h*h + h*Ka1 + Ka1*Ka2 )
//	HA- fraction = h*Ka1 / ( h*h + h*Ka1 + Ka1*Ka2 )
//	A2- fraction = Ka1*Ka2 / ( h*h + h*Ka1 + Ka1*Ka2 )
//
//The default constants are for carbonic acid/bicarbonate. This is a
//standalone closed-form calculation; it shares nothing with the
//trajectory analysis.
package hha

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

//Carbonic acid and bicarbonate dissociation constants.
const (
	PKa1 = 3.45
	PKa2 = 10.329
	Ka1  = 3.54e-4
	Ka2  = 4.69e-11
)

//Fractions returns the equilibrium fractions of the fully protonated,
//singly deprotonated and doubly deprotonated species at the given pH.
func Fractions(ph, ka1, ka2 float64) (h2a, ha, a float64) {
	h3o := math.Pow(10, -ph)
	den := h3o*h3o + h3o*ka1 + ka1*ka2
	return h3o * h3o / den, h3o * ka1 / den, ka1 * ka2 / den
}

//Curve holds the three speciation fractions over a pH grid.
type Curve struct {
	PH  []float64
	H2A []float64
	HA  []float64
	A   []float64
}

//Speciation evaluates the fractions over pH 0 to 14 in steps of 0.1,
//with any extra pH values (typically the pKa's) spliced in sorted.
func Speciation(ka1, ka2 float64, extra ...float64) *Curve {
	ph := floats.Span(make([]float64, 141), 0, 14)
	ph = append(ph, extra...)
	sort.Float64s(ph)
	c := new(Curve)
	c.PH = ph
	c.H2A = make([]float64, len(ph))
	c.HA = make([]float64, len(ph))
	c.A = make([]float64, len(ph))
	for i, v := range ph {
		c.H2A[i], c.HA[i], c.A[i] = Fractions(v, ka1, ka2)
	}
	return c
}

//Carbonic returns the speciation curve of carbonic acid, with both
//pKa's included in the grid.
func Carbonic() *Curve {
	return Speciation(Ka1, Ka2, PKa1, PKa2)
}

//TablePHs returns the pH values the summary table reports: the whole
//numbers 1 to 14 with the carbonic pKa's spliced in.
func TablePHs() []float64 {
	phs := []float64{1, 2, 3, PKa1, 4, 5, 6, 7, 8, 9, 10, PKa2, 11, 12, 13, 14}
	return phs
}

//WriteTable writes the speciation fractions at the given pH values as
//a fixed-width table. The column names are those of the carbonic acid
//system.
func WriteTable(w io.Writer, ka1, ka2 float64, phs []float64) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   pH   H2CO3    HCO3^-  CO3^{2-}")
	for _, ph := range phs {
		h2a, ha, a := Fractions(ph, ka1, ka2)
		fmt.Fprintf(w, "%6.3f %8.6f %8.6f %8.6f\n", ph, h2a, ha, a)
	}
	fmt.Fprintln(w)
}
