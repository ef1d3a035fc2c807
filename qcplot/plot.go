/*
 * plot.go, part of qcio
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package qcplot draws quick-look plots of qcio data: natural-orbital
//occupation spectra and profiles through volumetric grids. Plots go to PNG
//files; this is meant for eyeballing a calculation, not for print.
package qcplot

import (
	"fmt"

	"github.com/rmera/qcio"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Occupations draws the occupation-number spectrum of an orbital set, e.g. the
//occupations returned by qcio.DeriveNaturals, as a scatter over the orbital
//index. The plot is saved as plotname.png.
func Occupations(occs []float64, title, plotname string) error {
	if len(occs) == 0 {
		return fmt.Errorf("qcplot: no occupations to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Orbital index"
	p.Y.Label.Text = "Occupation"
	pts := make(plotter.XYs, len(occs))
	for i, v := range occs {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(plotter.NewGrid(), s)
	return p.Save(14*vg.Centimeter, 9*vg.Centimeter, plotname+".png")
}

//GridProfile draws the volumetric values along one axis of a cube grid,
//passing through the centers of the other two. axis is 0, 1 or 2. The x
//coordinate is the distance along the axis in bohr, from the grid origin.
//The plot is saved as plotname.png.
func GridProfile(cube *qcio.Cube, axis int, title, plotname string) error {
	if cube == nil {
		return fmt.Errorf("qcplot: given a nil cube")
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("qcplot: axis must be 0, 1 or 2, got %d", axis)
	}
	nx, ny, nz := cube.Shape()
	shape := []int{nx, ny, nz}
	//the spacing between grid points along the axis
	step, err := qcio.Volume(mat.NewDense(1, 3, cube.Axes().RawRowView(axis)))
	if err != nil {
		return err
	}
	fixed := make([]int, 0, 2)
	for i, n := range shape {
		if i != axis {
			fixed = append(fixed, n/2)
		}
	}
	pts := make(plotter.XYs, shape[axis])
	for i := 0; i < shape[axis]; i++ {
		at := make([]int, 3)
		at[axis] = i
		f := 0
		for j := range at {
			if j != axis {
				at[j] = fixed[f]
				f++
			}
		}
		pts[i].X = float64(i) * step
		pts[i].Y = cube.Data().At(at[0], at[1], at[2])
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance along axis (bohr)"
	p.Y.Label.Text = "Value"
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), l)
	return p.Save(14*vg.Centimeter, 9*vg.Centimeter, plotname+".png")
}
