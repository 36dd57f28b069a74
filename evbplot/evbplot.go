/*
 * evbplot.go, part of goEVB.
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

//Package evbplot draws the figures of the MS-EVB analysis: hop
//functions, CI amplitude densities, free energy profiles and acid
//speciation curves, saved as PNG. Styling is process-wide
//configuration, set once with SetStyle at program start and read-only
//afterwards; nothing in the analysis packages touches it.
package evbplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Style holds the process-wide plot styling.
type Style struct {
	FontSize  vg.Length
	LineWidth vg.Length
	Width     vg.Length
	Height    vg.Length
}

//DefaultStyle returns the styling used when SetStyle is never called.
func DefaultStyle() Style {
	return Style{
		FontSize:  vg.Points(14),
		LineWidth: vg.Points(3),
		Width:     14 * vg.Centimeter,
		Height:    10 * vg.Centimeter,
	}
}

var current = DefaultStyle()

//SetStyle installs s as the process-wide styling. Call it once, at
//program start, before any plotting.
func SetStyle(s Style) {
	current = s
}

//Limits fixes the axis ranges of a plot. Fields left NaN-free are
//applied verbatim; pass nothing to let the plot autoscale.
type Limits struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

var (
	blue  = color.RGBA{B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 200, A: 255}
	black = color.RGBA{A: 255}
)

func newPlot(xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Label.TextStyle.Font.Size = current.FontSize
	p.Y.Label.TextStyle.Font.Size = current.FontSize
	p.X.Tick.Label.Font.Size = current.FontSize
	p.Y.Tick.Label.Font.Size = current.FontSize
	p.Add(plotter.NewGrid())
	return p
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("goEVB/evbplot: %d x values against %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

func addLine(p *plot.Plot, x, y []float64, col color.Color) error {
	pts, err := xys(x, y)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = current.LineWidth
	l.LineStyle.Color = col
	p.Add(l)
	return nil
}

func apply(p *plot.Plot, lim ...*Limits) {
	if len(lim) == 0 || lim[0] == nil {
		return
	}
	p.X.Min = lim[0].Xmin
	p.X.Max = lim[0].Xmax
	p.Y.Min = lim[0].Ymin
	p.Y.Max = lim[0].Ymax
}

//Hop plots the cumulative hop function against time in picoseconds and
//saves it to name. The axes are anchored at the origin, as in the
//reference figure.
func Hop(timePs []float64, h []int, name string) error {
	p := newPlot("time (ps)", "Forward Hop")
	y := make([]float64, len(h))
	for i, v := range h {
		y[i] = float64(v)
	}
	if err := addLine(p, timePs, y, blue); err != nil {
		return err
	}
	if len(timePs) > 0 {
		p.X.Min = 0
		p.X.Max = timePs[len(timePs)-1]
		p.Y.Min = 0
		if last := y[len(y)-1]; last > 0 {
			p.Y.Max = last
		}
	}
	return p.Save(current.Width, current.Height, name)
}

//Densities plots the dominant (blue) and secondary (red) amplitude
//probability densities over the bins and saves them to name.
func Densities(bins, p1, p2 []float64, name string, lim ...*Limits) error {
	p := newPlot("ci^2", "Probability Density")
	if err := addLine(p, bins, p1, blue); err != nil {
		return err
	}
	if err := addLine(p, bins, p2, red); err != nil {
		return err
	}
	apply(p, lim...)
	return p.Save(current.Width, current.Height, name)
}

//FreeEnergy plots a free energy profile over its coordinate grid and
//saves it to name. The xlabel names the coordinate, c1^2 or c1^2-c2^2
//depending on the mode that produced the profile.
func FreeEnergy(bins, energy []float64, xlabel, name string, lim ...*Limits) error {
	p := newPlot(xlabel, "Free Energy (kcal/mol)")
	if err := addLine(p, bins, energy, blue); err != nil {
		return err
	}
	apply(p, lim...)
	return p.Save(current.Width, current.Height, name)
}

//Speciation plots up to three acid speciation fraction curves (blue,
//green, red) against pH, with a dashed vertical marker at each given
//pKa, and saves the figure to name.
func Speciation(ph []float64, fractions [][]float64, name string, pkas ...float64) error {
	p := newPlot("pH", "Fraction of species")
	cols := []color.Color{blue, green, red}
	for i, f := range fractions {
		if err := addLine(p, ph, f, cols[i%len(cols)]); err != nil {
			return err
		}
	}
	for _, pka := range pkas {
		pts := plotter.XYs{{X: pka, Y: 0}, {X: pka, Y: 1}}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = black
		l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(l)
	}
	p.Y.Min = 0
	p.Y.Max = 1.1
	return p.Save(current.Width, current.Height, name)
}
