/*
 * handy.go, part of qcio
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
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Volume computes the generalized volume spanned by 1 to 3 cell vectors, given
//as the rows of cellvecs: the length of one vector, the area of the
//parallelogram of two (the norm of their cross product), or the signed volume
//of the parallelepiped of three (the determinant). Any other number of rows,
//or rows of length other than 3, is an InvalidArgument.
func Volume(cellvecs *mat.Dense) (float64, error) {
	r, c := cellvecs.Dims()
	if c != 3 || r < 1 || r > 3 {
		return 0, &InvalidArgument{message: fmt.Sprintf("Volume: cellvecs must have shape (x, 3) with x in 1..3, got (%d, %d)", r, c)}
	}
	switch r {
	case 1:
		return floats.Norm(cellvecs.RawRowView(0), 2), nil
	case 2:
		a := cellvecs.RawRowView(0)
		b := cellvecs.RawRowView(1)
		cross := []float64{
			a[1]*b[2] - a[2]*b[1],
			a[2]*b[0] - a[0]*b[2],
			a[0]*b[1] - a[1]*b[0],
		}
		return floats.Norm(cross, 2), nil
	}
	return mat.Det(cellvecs), nil
}

var strToBool = map[string]bool{
	"y": true, "yes": true, "t": true, "true": true, "on": true, "1": true,
	"n": false, "no": false, "f": false, "false": false, "off": false, "0": false,
}

//StrToBool interprets a string as a boolean, the way configuration files and
//quantum-chemistry input decks spell them. The lookup is case-insensitive over
//the fixed token set y/yes/t/true/on/1 and n/no/f/false/off/0; anything else
//is an InvalidArgument.
func StrToBool(value string) (bool, error) {
	b, ok := strToBool[strings.ToLower(value)]
	if !ok {
		return false, &InvalidArgument{message: fmt.Sprintf("%q cannot be converted to a boolean", value)}
	}
	return b, nil
}
