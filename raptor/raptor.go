/*
 * raptor.go, part of goEVB.
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

//Package raptor reads the evb.out summary files written by RAPTOR
//MS-EVB simulations into the frame-aligned sequences the evb package
//consumes. The file is a series of per-timestep blocks. A block starts
//with a "TIMESTEP n" line and contains, among other sections we skip, a
//REACTION_CENTER section whose first data row ends in the molecule id
//hosting the proton, and a CI_VECTOR section listing the amplitude
//coefficients as whitespace-separated floats, possibly wrapped over
//several lines and ended by a blank line or the next section keyword.
//
//Files compressed with gzip (.gz), zstd (.zst, .zstd) or flate
//(.flate) are decompressed transparently, chosen by filename suffix.
package raptor

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	evb "github.com/dwschem/goevb"
	"github.com/klauspost/compress/zstd"
)

//Records holds the three frame-aligned sequences collected from one
//evb.out file, one entry per timestep block, in file order.
type Records struct {
	Timesteps []int
	CIVectors [][]float64
	Centers   []int
}

//Trajectory validates the collected records and wraps them in an
//evb.Trajectory.
func (R *Records) Trajectory() (*evb.Trajectory, error) {
	return evb.NewTrajectory(R.Timesteps, R.CIVectors, R.Centers)
}

//Read opens an evb.out file, decompressing by filename suffix if
//needed, and collects its records.
func Read(name string) (*Records, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	buf := bufio.NewReader(f)
	var in io.Reader
	switch {
	case strings.HasSuffix(name, ".gz"):
		g, err := gzip.NewReader(buf)
		if err != nil {
			return nil, Error{WrongFormat + ": " + err.Error(), name, []string{"Read"}, true}
		}
		defer g.Close()
		in = g
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		z, err := zstd.NewReader(buf)
		if err != nil {
			return nil, Error{WrongFormat + ": " + err.Error(), name, []string{"Read"}, true}
		}
		defer z.Close()
		in = z
	case strings.HasSuffix(name, ".flate"):
		fl := flate.NewReader(buf)
		defer fl.Close()
		in = fl
	default:
		in = buf
	}
	return parse(in, name)
}

//one timestep block being assembled
type block struct {
	ts     int
	center int
	civec  []float64
}

func (R *Records) flush(b *block, filename string) error {
	if b.center < 0 {
		return Error{fmt.Sprintf("%s: block for timestep %d has no REACTION_CENTER section", WrongFormat, b.ts), filename, []string{"flush"}, true}
	}
	if len(b.civec) == 0 {
		return Error{fmt.Sprintf("%s: block for timestep %d has no CI_VECTOR section", WrongFormat, b.ts), filename, []string{"flush"}, true}
	}
	R.Timesteps = append(R.Timesteps, b.ts)
	R.Centers = append(R.Centers, b.center)
	R.CIVectors = append(R.CIVectors, b.civec)
	return nil
}

func parse(in io.Reader, filename string) (*Records, error) {
	R := new(Records)
	cur := &block{center: -1}
	started := false
	inCI := false
	wantCenter := false
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			inCI = false
			wantCenter = false
			continue
		}
		fields := strings.Fields(line)
		switch {
		case fields[0] == "TIMESTEP":
			if started {
				if err := R.flush(cur, filename); err != nil {
					return nil, err
				}
			}
			if len(fields) < 2 {
				return nil, Error{WrongFormat + ": TIMESTEP line without a value", filename, []string{"parse"}, true}
			}
			ts, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: can't read timestep from '%s': %s", WrongFormat, line, err.Error()), filename, []string{"parse"}, true}
			}
			cur = &block{ts: ts, center: -1}
			started = true
			inCI = false
			wantCenter = false
		case fields[0] == "REACTION_CENTER":
			wantCenter = true
			inCI = false
		case fields[0] == "CI_VECTOR":
			inCI = true
			wantCenter = false
		case wantCenter:
			//first data row of the section; the molecule id is the last field
			id, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: can't read reaction center from '%s': %s", WrongFormat, line, err.Error()), filename, []string{"parse"}, true}
			}
			cur.center = id
			wantCenter = false //only the first complex is collected
		case inCI:
			for i, v := range fields {
				x, err := strconv.ParseFloat(v, 64)
				if err != nil {
					if i == 0 {
						//not coefficients but the next section's keyword
						inCI = false
						break
					}
					return nil, Error{fmt.Sprintf("%s: bad CI coefficient '%s': %s", WrongFormat, v, err.Error()), filename, []string{"parse"}, true}
				}
				cur.civec = append(cur.civec, x)
			}
		}
		//anything else is a section we don't collect
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{ReadError + ": " + err.Error(), filename, []string{"parse"}, true}
	}
	if !started {
		return nil, Error{NoFrames, filename, []string{"parse"}, true}
	}
	if err := R.flush(cur, filename); err != nil {
		return nil, err
	}
	return R, nil
}

//Errors

//Error is the general structure for evb.out reading errors. It
//fulfills evb.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("evb.out file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing read was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	ReadError    = "Error reading file"
	WrongFormat  = "Wrong format in the evb.out file or block"
	NoFrames     = "No timestep blocks found"
)
