/*
 * naturals.go, part of qcio
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Default thresholds for CheckDM.
const (
	DefaultOccEps = 1e-4
	DefaultOccMax = 1.0
)

//DeriveNaturals computes the natural orbitals of a density matrix: the
//coefficients and occupations that solve the generalized symmetric eigenvalue
//problem (S^T*DM*S)v = lambda*S*v, with the overlap matrix S as the metric.
//The problem is reduced to a standard one through the symmetric
//orthogonalization S^(-1/2), itself built by eigendecomposition of S.
//Eigenpairs come out in the ascending-eigenvalue order of the underlying
//solver and are not reordered. The returned coefficients are S-orthonormal.
//Both matrices must be real symmetric of the same square dimension, and the
//overlap must be positive definite.
func DeriveNaturals(dm, overlap *mat.Dense) (*mat.Dense, []float64, error) {
	n, c := dm.Dims()
	if n != c {
		return nil, nil, &InvalidArgument{message: "DeriveNaturals: density matrix must be square"}
	}
	if or, oc := overlap.Dims(); or != oc || or != n {
		return nil, nil, &InvalidArgument{message: "DeriveNaturals: overlap doesn't match the density matrix"}
	}
	//Transform the density matrix to Fock-like form, S^T*DM*S.
	tmp := mat.NewDense(n, n, nil)
	tmp.Mul(overlap.T(), dm)
	sds := mat.NewDense(n, n, nil)
	sds.Mul(tmp, overlap)
	var seig mat.EigenSym
	if !seig.Factorize(symmetrize(overlap), true) {
		return nil, nil, &InvalidArgument{message: "DeriveNaturals: overlap eigendecomposition failed"}
	}
	svals := seig.Values(nil)
	if svals[0] <= 0 {
		return nil, nil, &InvalidArgument{message: "DeriveNaturals: overlap matrix is not positive definite"}
	}
	var u mat.Dense
	seig.VectorsTo(&u)
	invsqrt := make([]float64, n)
	for i, v := range svals {
		invsqrt[i] = 1 / math.Sqrt(v)
	}
	//X = S^(-1/2) = U*s^(-1/2)*U^T
	us := mat.NewDense(n, n, nil)
	us.Mul(&u, mat.NewDiagDense(n, invsqrt))
	x := mat.NewDense(n, n, nil)
	x.Mul(us, u.T())
	//X*(S^T*DM*S)*X shares eigenvalues with the generalized problem.
	xs := mat.NewDense(n, n, nil)
	xs.Mul(x, sds)
	std := mat.NewDense(n, n, nil)
	std.Mul(xs, x)
	var eig mat.EigenSym
	if !eig.Factorize(symmetrize(std), true) {
		return nil, nil, &InvalidArgument{message: "DeriveNaturals: eigendecomposition failed"}
	}
	occs := eig.Values(nil)
	var y mat.Dense
	eig.VectorsTo(&y)
	coeffs := mat.NewDense(n, n, nil)
	coeffs.Mul(x, &y)
	return coeffs, occs, nil
}

//CheckDM validates that a density matrix has natural occupations in the
//physically sensible range: none below -eps, none above occMax+eps. occMax is
//1 for spin-resolved density matrices and 2 for spin-summed ones. It returns
//nil when the matrix passes, and otherwise a *ValueRange carrying how far the
//worst occupation lies outside the allowed range.
func CheckDM(dm, overlap *mat.Dense, eps, occMax float64) error {
	_, occs, err := DeriveNaturals(dm, overlap)
	if err != nil {
		return errDecorate(err, "CheckDM")
	}
	if min := floats.Min(occs); min < -eps {
		return &ValueRange{Value: min,
			message: "the density matrix has eigenvalues considerably smaller than zero"}
	}
	if max := floats.Max(occs); max > occMax+eps {
		return &ValueRange{Value: max - occMax,
			message: "the density matrix has eigenvalues considerably larger than the max occupation"}
	}
	return nil
}

//symmetrize folds a nearly-symmetric matrix into a SymDense, averaging the
//off-diagonal pairs so round-off in the products above can't upset Factorize.
func symmetrize(m *mat.Dense) *mat.SymDense {
	n, _ := m.Dims()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, m.At(i, i))
		for j := i + 1; j < n; j++ {
			s.SetSym(i, j, 0.5*(m.At(i, j)+m.At(j, i)))
		}
	}
	return s
}
