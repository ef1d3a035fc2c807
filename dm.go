/*
 * dm.go, part of qcio
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
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Orbitals is one spin channel of a molecular-orbital expansion: a column per
//orbital in Coeffs, an occupation number per orbital, and optionally the
//orbital energies. Consistency among the fields is enforced when an Orbitals
//is given to a QCData container.
type Orbitals struct {
	Coeffs   *mat.Dense //(nbasis, norb)
	Occs     []float64  //(norb,)
	Energies []float64  //(norb,), may be nil
}

//NewOrbitals builds an orbital set, checking that the fields agree on the
//number of orbitals. energies may be nil.
func NewOrbitals(coeffs *mat.Dense, occs, energies []float64) (*Orbitals, error) {
	if coeffs == nil || occs == nil {
		return nil, &InvalidArgument{message: "NewOrbitals: nil coefficients or occupations"}
	}
	_, no := coeffs.Dims()
	if len(occs) != no {
		return nil, &InvalidArgument{message: fmt.Sprintf("NewOrbitals: %d orbitals but %d occupations", no, len(occs))}
	}
	if energies != nil && len(energies) != no {
		return nil, &InvalidArgument{message: fmt.Sprintf("NewOrbitals: %d orbitals but %d energies", no, len(energies))}
	}
	return &Orbitals{Coeffs: coeffs, Occs: occs, Energies: energies}, nil
}

//NBasis returns the number of basis functions the orbitals are expanded on.
func (O *Orbitals) NBasis() int {
	r, _ := O.Coeffs.Dims()
	return r
}

//NOrb returns the number of orbitals in the set.
func (O *Orbitals) NOrb() int {
	_, c := O.Coeffs.Dims()
	return c
}

//DMFlavor selects which density matrix BuildDM accumulates.
type DMFlavor int

const (
	//DMFull is the spin-summed density matrix, alpha plus beta.
	DMFull DMFlavor = iota
	//DMSpin is the spin density matrix, alpha minus beta.
	DMSpin
)

//BuildDM reconstructs a density matrix from orbital sets by weighted
//outer-product accumulation, DM[p,q] = sum_i occ_i*C[p,i]*C[q,i], carried out
//per spin channel. With a nil beta the description is taken as restricted
//closed-shell: both channels share coefficients and occupations, so the full
//matrix is twice the alpha contribution; the spin flavor then needs both
//channels and a nil beta is an InvalidArgument.
func BuildDM(flavor DMFlavor, alpha, beta *Orbitals) (*mat.Dense, error) {
	if alpha == nil || alpha.Coeffs == nil {
		return nil, &InvalidArgument{message: "BuildDM: need at least an alpha orbital set"}
	}
	if _, no := alpha.Coeffs.Dims(); len(alpha.Occs) != no {
		return nil, &InvalidArgument{message: "BuildDM: alpha occupations don't match the orbitals"}
	}
	da := dmChannel(alpha)
	if beta == nil {
		if flavor == DMSpin {
			return nil, &InvalidArgument{message: "BuildDM: the spin density matrix needs both spin channels"}
		}
		da.Scale(2, da)
		return da, nil
	}
	if _, no := beta.Coeffs.Dims(); len(beta.Occs) != no {
		return nil, &InvalidArgument{message: "BuildDM: beta occupations don't match the orbitals"}
	}
	if alpha.NBasis() != beta.NBasis() {
		return nil, &InvalidArgument{message: "BuildDM: mismatched basis dimensions between spin channels"}
	}
	db := dmChannel(beta)
	if flavor == DMSpin {
		da.Sub(da, db)
	} else {
		da.Add(da, db)
	}
	return da, nil
}

//dmChannel computes C*diag(occ)*C^T for one spin channel.
func dmChannel(o *Orbitals) *mat.Dense {
	nb, no := o.Coeffs.Dims()
	scaled := mat.NewDense(nb, no, nil)
	for i := 0; i < no; i++ {
		occ := o.Occs[i]
		for p := 0; p < nb; p++ {
			scaled.Set(p, i, o.Coeffs.At(p, i)*occ)
		}
	}
	dm := mat.NewDense(nb, nb, nil)
	dm.Mul(scaled, o.Coeffs.T())
	return dm
}

//GetDMFull returns the spin-summed density matrix. An explicitly stored one
//(any dm_full_<method> attribute, e.g. dm_full_scf) wins; failing that a
//previously reconstructed matrix is returned from the dm_full cache slot, and
//failing that too, the matrix is rebuilt from the stored orbitals and cached.
//It returns nil, not an error, when the container holds neither a density
//matrix nor orbital data.
func (D *QCData) GetDMFull() *mat.Dense {
	return D.getDM("dm_full", DMFull)
}

//GetDMSpin is the spin-density counterpart of GetDMFull. Reconstruction needs
//both spin channels; a restricted (alpha-only) container yields nil.
func (D *QCData) GetDMSpin() *mat.Dense {
	return D.getDM("dm_spin", DMSpin)
}

func (D *QCData) getDM(slot string, flavor DMFlavor) *mat.Dense {
	//stored matrices, in key order so ties resolve deterministically
	var stored []string
	for k := range D.attrs {
		if strings.HasPrefix(k, slot+"_") {
			stored = append(stored, k)
		}
	}
	if len(stored) > 0 {
		sort.Strings(stored)
		return D.attrs[stored[0]].(*mat.Dense)
	}
	if m, ok := D.attrs[slot].(*mat.Dense); ok {
		return m
	}
	alpha, aok := D.OrbAlpha()
	if !aok {
		return nil
	}
	beta, bok := D.OrbBeta()
	if flavor == DMSpin && !bok {
		return nil
	}
	if !bok {
		beta = nil
	}
	dm, err := BuildDM(flavor, alpha, beta)
	if err != nil {
		return nil
	}
	if D.attrs == nil {
		D.attrs = make(map[string]interface{})
	}
	D.attrs[slot] = dm
	return dm
}
