/*
 * civecpdf, part of goEVB.
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

//civecpdf plots the probability density of the CI coefficients of a
//RAPTOR evb.out file, following the concept proposed in the MS-EVB3
//paper, or, on request, the free energy profile derived from it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	evb "github.com/dwschem/goevb"
	"github.com/dwschem/goevb/evbplot"
	"github.com/dwschem/goevb/kde"
	"github.com/dwschem/goevb/raptor"
)

func main() {
	bins := flag.Int("b", 200, "number of bins for the coordinate grid")
	genfe := flag.Bool("f", false, "plot the free energy profile of the largest squared MS-EVB amplitude")
	genfed := flag.Bool("fd", false, "plot the free energy profile of the difference between the two largest squared amplitudes")
	out := flag.String("o", "civec.png", "output PNG file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: civecpdf [flags] evb.out\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *genfe && *genfed {
		log.Fatal("civecpdf: -f and -fd are mutually exclusive")
	}
	mode := evb.Density
	switch {
	case *genfe:
		mode = evb.SingleEnergy
	case *genfed:
		mode = evb.DifferenceEnergy
	}

	rec, err := raptor.Read(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	traj, err := rec.Trajectory()
	if err != nil {
		log.Fatal(err)
	}
	est := kde.Estimator{}
	switch mode {
	case evb.Density:
		grid, p1, p2, err := traj.Densities(*bins, est)
		if err != nil {
			log.Fatal(err)
		}
		lim := &evbplot.Limits{Xmin: 0, Xmax: 0.85, Ymin: 0, Ymax: 8}
		if err := evbplot.Densities(grid, p1, p2, *out, lim); err != nil {
			log.Fatal(err)
		}
	case evb.SingleEnergy:
		grid, energy, err := traj.FreeEnergyProfile(mode, *bins, est)
		if err != nil {
			log.Fatal(err)
		}
		lim := &evbplot.Limits{Xmin: 0.35, Xmax: 0.85, Ymin: 0, Ymax: 3}
		if err := evbplot.FreeEnergy(grid, energy, "c1^2", *out, lim); err != nil {
			log.Fatal(err)
		}
	case evb.DifferenceEnergy:
		grid, energy, err := traj.FreeEnergyProfile(mode, *bins, est)
		if err != nil {
			log.Fatal(err)
		}
		lim := &evbplot.Limits{Xmin: -0.80, Xmax: 0.80, Ymin: 0, Ymax: 3}
		if err := evbplot.FreeEnergy(grid, energy, "c1^2-c2^2", *out, lim); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println("wrote", *out)
}
