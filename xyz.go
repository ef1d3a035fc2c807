/*
 * xyz.go, part of qcio
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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//XYZRead reads an XYZ file into a container with the numbers, coordinates and
//title attributes. XYZ distances are in angstrom and get converted to bohr.
//Element columns may carry symbols or plain atomic numbers. Only the first
//geometry of a multi-geometry file is read; the rest is ignored with a
//warning.
func XYZRead(filename string) (*QCData, error) {
	lit, err := NewLineIterator(filename)
	if err != nil {
		return nil, err
	}
	defer lit.Close()
	line, err := lit.Next()
	if err != nil {
		return nil, lit.Error("missing atom-count line")
	}
	natom, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natom <= 0 {
		return nil, lit.Error("malformed atom count: " + strings.TrimSpace(line))
	}
	title, err := lit.Next()
	if err != nil {
		return nil, lit.Error("missing title line")
	}
	numbers := make([]int, natom)
	coords := mat.NewDense(natom, 3, nil)
	for i := 0; i < natom; i++ {
		line, err := lit.Next()
		if err != nil {
			return nil, lit.Error(fmt.Sprintf("truncated geometry: %d of %d atoms read", i, natom))
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, lit.Error(fmt.Sprintf("malformed atom line: %q", strings.TrimSpace(line)))
		}
		if z, err := strconv.Atoi(fields[0]); err == nil {
			numbers[i] = z
		} else if numbers[i], err = AtomicNumber(fields[0]); err != nil {
			return nil, lit.Error(err.Error())
		}
		for j, f := range fields[1:4] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, lit.Error("malformed coordinate: " + f)
			}
			coords.Set(i, j, v*Angstrom)
		}
	}
	//A second geometry would start with another atom-count line; we don't
	//read it, but we leave it in place and tell the caller.
	if line, err := lit.Next(); err == nil {
		lit.Back(line)
		if strings.TrimSpace(line) != "" {
			lit.Warn("only the first geometry of a multi-geometry file is read")
		}
	}
	D, err := New(map[string]interface{}{
		"title":       strings.TrimSpace(title),
		"numbers":     numbers,
		"coordinates": coords,
	})
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return D, nil
}

//XYZWrite writes the geometry of a container as an XYZ file, converting the
//coordinates from bohr to angstrom. numbers and coordinates must be present.
//A name ending in .gz gets compressed output.
func XYZWrite(filename string, D *QCData) error {
	numbers, ok := D.Numbers()
	if !ok {
		return &InvalidArgument{message: "XYZWrite: the container has no numbers attribute"}
	}
	coords, ok := D.Coordinates()
	if !ok {
		return &InvalidArgument{message: "XYZWrite: the container has no coordinates attribute"}
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
	w("%d\n%s\n", len(numbers), title)
	for i, z := range numbers {
		symbol, serr := Symbol(z)
		if serr != nil {
			return errDecorate(serr, "XYZWrite")
		}
		w("%-3s%15.10f%15.10f%15.10f\n", symbol,
			coords.At(i, 0)/Angstrom, coords.At(i, 1)/Angstrom, coords.At(i, 2)/Angstrom)
	}
	if err != nil {
		return err
	}
	return out.Close()
}
