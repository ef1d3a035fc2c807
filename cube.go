/*
 * cube.go, part of qcio
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

package qcio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Tensor3 is a dense rank-3 real array, the element type of the cube_data
//attribute. Data is laid out with the last index varying fastest, as in cube
//files.
type Tensor3 struct {
	nx, ny, nz int
	data       []float64
}

//NewTensor3 builds a rank-3 array with the given shape. data may be nil, in
//which case a zero-filled array is allocated; otherwise its length must match
//the shape.
func NewTensor3(nx, ny, nz int, data []float64) (*Tensor3, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, &InvalidArgument{message: fmt.Sprintf("NewTensor3: non-positive shape (%d, %d, %d)", nx, ny, nz)}
	}
	if data == nil {
		data = make([]float64, nx*ny*nz)
	}
	if len(data) != nx*ny*nz {
		return nil, &InvalidArgument{message: fmt.Sprintf("NewTensor3: %d values for shape (%d, %d, %d)", len(data), nx, ny, nz)}
	}
	return &Tensor3{nx: nx, ny: ny, nz: nz, data: data}, nil
}

//Dims returns the shape of the array.
func (T *Tensor3) Dims() (int, int, int) {
	return T.nx, T.ny, T.nz
}

//At returns the element at (i, j, k). Panics if out of range, as this
//is a fundamental accessor and an out-of-range index means the caller
//is just wrong.
func (T *Tensor3) At(i, j, k int) float64 {
	return T.data[T.offset(i, j, k)]
}

//Set assigns the element at (i, j, k). Panics if out of range.
func (T *Tensor3) Set(i, j, k int, v float64) {
	T.data[T.offset(i, j, k)] = v
}

func (T *Tensor3) offset(i, j, k int) int {
	if i < 0 || i >= T.nx || j < 0 || j >= T.ny || k < 0 || k >= T.nz {
		panic("qcio: Tensor3 index out of range")
	}
	return (i*T.ny+j)*T.nz + k
}

//Raw returns the underlying slice, last index fastest. Changes to it are
//reflected in the tensor.
func (T *Tensor3) Raw() []float64 {
	return T.data
}

//Cube holds the volumetric data of a cube (or similar) file: the origin of
//the axes frame, a (3, 3) matrix whose rows are the spacings between
//neighboring grid points along each axis, and the gridded data themselves.
//Built once and then read; the shape invariants are enforced at construction.
type Cube struct {
	origin []float64
	axes   *mat.Dense
	data   *Tensor3
}

//NewCube builds a Cube, checking shapes: origin of length 3, axes (3, 3),
//non-nil data.
func NewCube(origin []float64, axes *mat.Dense, data *Tensor3) (*Cube, error) {
	if len(origin) != 3 {
		return nil, &TypeMismatch{Attrs: []string{"origin"}, message: fmt.Sprintf("must have length 3, got %d", len(origin))}
	}
	if axes == nil {
		return nil, &TypeMismatch{Attrs: []string{"axes"}, message: "must be a (3, 3) matrix"}
	}
	if r, c := axes.Dims(); r != 3 || c != 3 {
		return nil, &TypeMismatch{Attrs: []string{"axes"}, message: fmt.Sprintf("wrong shape (%d, %d)", r, c)}
	}
	if data == nil {
		return nil, &TypeMismatch{Attrs: []string{"cube_data"}, message: "must be a rank-3 real array (*Tensor3)"}
	}
	return &Cube{origin: origin, axes: axes, data: data}, nil
}

func (C *Cube) Origin() []float64 { return C.origin }

func (C *Cube) Axes() *mat.Dense { return C.axes }

func (C *Cube) Data() *Tensor3 { return C.data }

//Shape returns the shape of the rectangular grid.
func (C *Cube) Shape() (int, int, int) {
	return C.data.Dims()
}

//Cube assembles a Cube record from the origin, axes and cube_data attributes.
//It reports false unless all three are present.
func (D *QCData) Cube() (*Cube, bool) {
	origin, ok1 := D.Origin()
	axes, ok2 := D.Axes()
	data, ok3 := D.CubeData()
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}
	c, err := NewCube(origin, axes, data)
	if err != nil {
		return nil, false //can't happen with container-validated attributes
	}
	return c, true
}

//CubeRead reads a Gaussian cube file into a container with the title,
//numbers, pseudo_numbers, origin, axes and cube_data attributes. Cube files
//are already in atomic units so no conversion happens. The atomic coordinates
//in the file are discarded with a warning, as a container holding volumetric
//data does not take a molecular geometry (see the package documentation).
func CubeRead(filename string) (*QCData, error) {
	lit, err := NewLineIterator(filename)
	if err != nil {
		return nil, err
	}
	defer lit.Close()
	title, err := lit.Next()
	if err != nil {
		return nil, lit.Error("missing title line")
	}
	if _, err = lit.Next(); err != nil { //second comment line, ignored
		return nil, lit.Error("truncated header")
	}
	natom, origin, err := cubeHeaderLine(lit)
	if err != nil {
		return nil, err
	}
	dsets := false
	if natom < 0 {
		//negative atom counts flag per-point data-set ids after the atom block
		natom = -natom
		dsets = true
	}
	shape := make([]int, 3)
	axes := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		n, vec, err := cubeHeaderLine(lit)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, lit.Error(fmt.Sprintf("non-positive number of grid points along axis %d", i))
		}
		shape[i] = n
		axes.SetRow(i, vec)
	}
	numbers := make([]int, natom)
	pseudo := make([]float64, natom)
	for i := 0; i < natom; i++ {
		line, err := lit.Next()
		if err != nil {
			return nil, lit.Error("truncated atom block")
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, lit.Error(fmt.Sprintf("malformed atom line: %q", strings.TrimSpace(line)))
		}
		if numbers[i], err = strconv.Atoi(fields[0]); err != nil {
			return nil, lit.Error("malformed atomic number: " + fields[0])
		}
		if pseudo[i], err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, lit.Error("malformed core charge: " + fields[1])
		}
		//fields 2-4 are the atomic coordinates
	}
	lit.Warn("atomic coordinates in the cube file are discarded")
	if dsets {
		//Peek at the next line: if it is the data-set id block we skip it,
		//otherwise we push it back for the grid reader.
		line, err := lit.Next()
		if err != nil {
			return nil, lit.Error("truncated file")
		}
		if ints, err2 := parseInts(line); err2 == nil && len(ints) > 0 && ints[0] == len(ints)-1 {
			lit.Warn("ignoring per-point data-set ids")
		} else {
			lit.Back(line)
		}
	}
	npoint := shape[0] * shape[1] * shape[2]
	data := make([]float64, 0, npoint)
	for len(data) < npoint {
		line, err := lit.Next()
		if err != nil {
			return nil, lit.Error(fmt.Sprintf("truncated grid data: %d of %d values read", len(data), npoint))
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, lit.Error("malformed grid value: " + field)
			}
			data = append(data, v)
		}
	}
	if len(data) > npoint {
		return nil, lit.Error(fmt.Sprintf("too many grid values: %d for %d points", len(data), npoint))
	}
	tensor, err := NewTensor3(shape[0], shape[1], shape[2], data)
	if err != nil {
		return nil, errDecorate(err, "CubeRead")
	}
	D, err := New(map[string]interface{}{
		"title":          strings.TrimSpace(title),
		"numbers":        numbers,
		"pseudo_numbers": pseudo,
		"origin":         origin,
		"axes":           axes,
		"cube_data":      tensor,
	})
	if err != nil {
		return nil, errDecorate(err, "CubeRead")
	}
	return D, nil
}

//cubeHeaderLine parses one "count + 3-vector" header line.
func cubeHeaderLine(lit *LineIterator) (int, []float64, error) {
	line, err := lit.Next()
	if err != nil {
		return 0, nil, lit.Error("truncated header")
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, nil, lit.Error(fmt.Sprintf("malformed header line: %q", strings.TrimSpace(line)))
	}
	if len(fields) > 4 {
		lit.Warn("ignoring extra fields in header line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, lit.Error("malformed count: " + fields[0])
	}
	vec := make([]float64, 3)
	for i, f := range fields[1:4] {
		if vec[i], err = strconv.ParseFloat(f, 64); err != nil {
			return 0, nil, lit.Error("malformed vector component: " + f)
		}
	}
	return n, vec, nil
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	return ints, nil
}

//CubeWrite writes the volumetric attributes of a container as a Gaussian
//cube file. numbers, origin, axes and cube_data must be present;
//pseudo_numbers falls back to the atomic numbers when absent. Since a
//container with cube_data holds no geometry, the atom positions are written
//as zeros. A name ending in .gz gets compressed output.
func CubeWrite(filename string, D *QCData) error {
	numbers, ok := D.Numbers()
	if !ok {
		return &InvalidArgument{message: "CubeWrite: the container has no numbers attribute"}
	}
	cube, ok := D.Cube()
	if !ok {
		return &InvalidArgument{message: "CubeWrite: the container has no volumetric data"}
	}
	pseudo, ok := D.PseudoNumbers()
	if !ok {
		pseudo = make([]float64, len(numbers))
		for i, n := range numbers {
			pseudo[i] = float64(n)
		}
	}
	title, _ := D.Title()
	out, err := createOutput(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	w := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(out, format, args...)
		}
	}
	w("%s\n", title)
	w("OUTER LOOP: X, MIDDLE LOOP: Y, INNER LOOP: Z\n")
	origin := cube.Origin()
	w("%5d%12.6f%12.6f%12.6f\n", len(numbers), origin[0], origin[1], origin[2])
	nx, ny, nz := cube.Shape()
	axes := cube.Axes()
	for i, n := range []int{nx, ny, nz} {
		w("%5d%12.6f%12.6f%12.6f\n", n, axes.At(i, 0), axes.At(i, 1), axes.At(i, 2))
	}
	for i, z := range numbers {
		w("%5d%12.6f%12.6f%12.6f%12.6f\n", z, pseudo[i], 0.0, 0.0, 0.0)
	}
	raw := cube.Data().Raw()
	for i, v := range raw {
		w("%13.5E", v)
		if (i+1)%6 == 0 || i == len(raw)-1 {
			w("\n")
		}
	}
	if err != nil {
		return err
	}
	return out.Close()
}

//ioCloser lets CubeWrite and XYZWrite close a possibly-gzipped output once
//at the end and once, harmlessly, in the deferred call.
type ioCloser struct {
	io.Writer
	closers []io.Closer
	closed  bool
}

func (c *ioCloser) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	var err error
	for _, cl := range c.closers {
		if e := cl.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
