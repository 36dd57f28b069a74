/*
 * hha, part of goEVB.
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

//hha prints and plots the Henderson-Hasselbalch speciation of the
//carbonic acid/bicarbonate/carbonate system.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dwschem/goevb/evbplot"
	"github.com/dwschem/goevb/hha"
)

func main() {
	out := flag.String("o", "speciation.png", "output PNG file")
	tableOnly := flag.Bool("t", false, "print the table only, don't plot")
	flag.Parse()

	hha.WriteTable(os.Stdout, hha.Ka1, hha.Ka2, hha.TablePHs())
	if *tableOnly {
		return
	}
	c := hha.Carbonic()
	err := evbplot.Speciation(c.PH, [][]float64{c.H2A, c.HA, c.A}, *out, hha.PKa1, hha.PKa2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", *out)
}
