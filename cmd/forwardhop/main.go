/*
 * forwardhop, part of goEVB.
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

//forwardhop plots the cumulative proton hop function of a RAPTOR
//evb.out file. Tested for the case of a dissolved proton, e.g. H3O+
//in a box of water.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dwschem/goevb/evbplot"
	"github.com/dwschem/goevb/raptor"
)

func main() {
	out := flag.String("o", "hop.png", "output PNG file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: forwardhop [flags] evb.out\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	rec, err := raptor.Read(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	traj, err := rec.Trajectory()
	if err != nil {
		log.Fatal(err)
	}
	h := traj.HopFunction()
	if err := evbplot.Hop(traj.TimesPs(), h, *out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("net displacement after %d frames: %d hops\n", traj.Len(), h[len(h)-1])
	fmt.Println("wrote", *out)
}
