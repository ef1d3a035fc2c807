/*
 * plot_test.go, part of qcio
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

package qcplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/qcio"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestOccupations(t *testing.T) {
	occs := []float64{1.99, 1.97, 1.52, 0.48, 0.03, 0.01}
	name := filepath.Join(t.TempDir(), "occs")
	require.NoError(t, Occupations(occs, "natural occupations", name))
	info, err := os.Stat(name + ".png")
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	require.Error(t, Occupations(nil, "empty", name))
}

func TestGridProfile(t *testing.T) {
	const n = 11
	data := make([]float64, n*n*n)
	tensor, err := qcio.NewTensor3(n, n, n, data)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				r := math.Sqrt(float64((i-5)*(i-5) + (j-5)*(j-5) + (k-5)*(k-5)))
				tensor.Set(i, j, k, math.Exp(-r))
			}
		}
	}
	axes := mat.NewDense(3, 3, []float64{0.3, 0, 0, 0, 0.3, 0, 0, 0, 0.3})
	cube, err := qcio.NewCube([]float64{-1.5, -1.5, -1.5}, axes, tensor)
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "profile")
	require.NoError(t, GridProfile(cube, 2, "density along z", name))
	info, err := os.Stat(name + ".png")
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	require.Error(t, GridProfile(nil, 0, "nil", name))
	require.Error(t, GridProfile(cube, 3, "bad axis", name))
}
