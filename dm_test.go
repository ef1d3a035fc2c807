/*
 * dm_test.go, part of qcio
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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//refDM is an independent, naive accumulation of C*diag(occ)*C^T used as the
//reference the library code must reproduce.
func refDM(coeffs *mat.Dense, occs []float64) *mat.Dense {
	nb, no := coeffs.Dims()
	dm := mat.NewDense(nb, nb, nil)
	for p := 0; p < nb; p++ {
		for q := 0; q < nb; q++ {
			var sum float64
			for i := 0; i < no; i++ {
				sum += occs[i] * coeffs.At(p, i) * coeffs.At(q, i)
			}
			dm.Set(p, q, sum)
		}
	}
	return dm
}

//hadamard4 has orthonormal columns, so it doubles as a set of orbital
//coefficients over an orthonormal basis.
func hadamard4() *mat.Dense {
	h := 0.5
	return mat.NewDense(4, 4, []float64{
		h, h, h, h,
		h, -h, h, -h,
		h, h, -h, -h,
		h, -h, -h, h,
	})
}

func TestEmptyDMs(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	require.Nil(t, m.GetDMFull())
	require.Nil(t, m.GetDMSpin())
}

func TestDMStoredAndReconstructed(t *testing.T) {
	coeffs := hadamard4()
	occA := []float64{1, 1, 1, 1}
	occB := []float64{1, 1, 1, 0}
	alpha, err := NewOrbitals(coeffs, occA, nil)
	require.NoError(t, err)
	beta, err := NewOrbitals(coeffs, occB, nil)
	require.NoError(t, err)

	refFull := refDM(coeffs, occA)
	refFull.Add(refFull, refDM(coeffs, occB))
	refSpin := refDM(coeffs, occA)
	refSpin.Sub(refSpin, refDM(coeffs, occB))

	m, err := New(map[string]interface{}{
		"orb_alpha":   alpha,
		"orb_beta":    beta,
		"dm_full_scf": refFull,
		"dm_spin_scf": refSpin,
	})
	require.NoError(t, err)

	//the stored matrices win over reconstruction
	require.Same(t, refFull, m.GetDMFull())
	require.Same(t, refSpin, m.GetDMSpin())

	//removing them forces reconstruction from the orbitals, which must
	//reproduce the originals
	m.Del("dm_full_scf")
	m.Del("dm_spin_scf")
	full := m.GetDMFull()
	require.NotNil(t, full)
	require.True(t, mat.EqualApprox(refFull, full, 1e-7))
	spin := m.GetDMSpin()
	require.NotNil(t, spin)
	require.True(t, mat.EqualApprox(refSpin, spin, 1e-7))

	//reconstruction is cached until the data it came from changes
	require.True(t, m.Has("dm_full"))
	require.Same(t, full, m.GetDMFull())
	m.Del("dm_full")
	full2 := m.GetDMFull()
	require.NotSame(t, full, full2)
	require.True(t, mat.EqualApprox(refFull, full2, 1e-7))

	//changing a spin channel drops the caches
	err = m.Set("orb_beta", alpha)
	require.NoError(t, err)
	require.False(t, m.Has("dm_full"))
	require.False(t, m.Has("dm_spin"))
	zero := m.GetDMSpin() //alpha minus alpha
	require.True(t, mat.EqualApprox(mat.NewDense(4, 4, nil), zero, 1e-12))
}

func TestDMCacheAndBasisChange(t *testing.T) {
	small := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	alpha2, err := NewOrbitals(small, []float64{1, 0}, nil)
	require.NoError(t, err)
	m, err := New(map[string]interface{}{"orb_alpha": alpha2})
	require.NoError(t, err)
	require.NotNil(t, m.GetDMFull()) //populates the cache
	require.True(t, m.Has("dm_full"))

	//switching to orbitals on a larger basis must be accepted: the cached
	//reconstruction belongs to the old orbitals and cannot veto the change
	big := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	alpha3, err := NewOrbitals(big, []float64{1, 1, 0}, nil)
	require.NoError(t, err)
	require.NoError(t, m.Set("orb_alpha", alpha3))
	require.False(t, m.Has("dm_full"))
	full := m.GetDMFull()
	require.NotNil(t, full)
	r, c := full.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	//same for storing a density matrix over a cache slot of another size
	m2 := &QCData{}
	require.NoError(t, m2.Set("dm_full", mat.NewDense(2, 2, nil)))
	require.NoError(t, m2.Set("dm_full_scf", mat.NewDense(3, 3, nil)))
	require.False(t, m2.Has("dm_full"))
}

func TestDMRestricted(t *testing.T) {
	s := 1 / math.Sqrt2
	coeffs := mat.NewDense(2, 2, []float64{s, s, s, -s})
	alpha, err := NewOrbitals(coeffs, []float64{1, 0}, nil)
	require.NoError(t, err)
	m, err := New(map[string]interface{}{"orb_alpha": alpha})
	require.NoError(t, err)

	full := m.GetDMFull()
	require.NotNil(t, full)
	//closed shell: twice the alpha contribution, here trace 2
	require.InDelta(t, 2.0, mat.Trace(full), 1e-12)
	//no beta channel, no spin density
	require.Nil(t, m.GetDMSpin())
}

func TestDMTraces(t *testing.T) {
	coeffs := hadamard4()
	alpha, err := NewOrbitals(coeffs, []float64{1, 1, 1, 1}, nil)
	require.NoError(t, err)
	beta, err := NewOrbitals(coeffs, []float64{1, 1, 1, 0}, nil)
	require.NoError(t, err)
	m, err := New(map[string]interface{}{"orb_alpha": alpha, "orb_beta": beta})
	require.NoError(t, err)

	//with an orthonormal basis Tr(DM) counts electrons
	require.InDelta(t, 7.0, mat.Trace(m.GetDMFull()), 1e-10)
	require.InDelta(t, 1.0, mat.Trace(m.GetDMSpin()), 1e-10)
}

func TestDMTracesWithOverlap(t *testing.T) {
	overlap := mat.NewDense(2, 2, []float64{1, 0.5, 0.5, 1})
	//columns are overlap-orthonormal
	a := 1 / math.Sqrt(3)
	coeffs := mat.NewDense(2, 2, []float64{a, 1, a, -1})
	alpha, err := NewOrbitals(coeffs, []float64{1, 1}, nil)
	require.NoError(t, err)
	beta, err := NewOrbitals(coeffs, []float64{1, 0}, nil)
	require.NoError(t, err)
	m, err := New(map[string]interface{}{
		"orb_alpha": alpha,
		"orb_beta":  beta,
		"olp":       overlap,
	})
	require.NoError(t, err)

	var p mat.Dense
	p.Mul(overlap, m.GetDMFull())
	require.InDelta(t, 3.0, mat.Trace(&p), 1e-10)
	p.Mul(overlap, m.GetDMSpin())
	require.InDelta(t, 1.0, mat.Trace(&p), 1e-10)
}

func TestBuildDMErrors(t *testing.T) {
	var ia *InvalidArgument
	_, err := BuildDM(DMFull, nil, nil)
	require.True(t, errors.As(err, &ia))

	coeffs := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	alpha, err := NewOrbitals(coeffs, []float64{1, 0}, nil)
	require.NoError(t, err)
	_, err = BuildDM(DMSpin, alpha, nil)
	require.True(t, errors.As(err, &ia))

	other := mat.NewDense(3, 3, nil)
	beta := &Orbitals{Coeffs: other, Occs: []float64{0, 0, 0}}
	_, err = BuildDM(DMFull, alpha, beta)
	require.True(t, errors.As(err, &ia))
}
