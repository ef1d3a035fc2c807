/*
 * qcdata.go, part of qcio
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
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//QCData is the data container the file-format readers fill and the writers
//consume. It holds an arbitrary subset of the recognized molecular attributes,
//each validated against its shape/element-type contract, plus consistency
//across attributes, on every construction and mutation. All quantities are in
//atomic units.
//
//The recognized attributes are:
//	coordinates    (natom, 3) real matrix, *mat.Dense. [][]float64 and
//	               [][]int rows are also accepted and promoted.
//	numbers        (natom,) atomic numbers, []int. A []float64 is accepted
//	               when every entry is integral.
//	pseudo_numbers (natom,) effective core charges, []float64. []int is
//	               accepted and promoted.
//	charge, energy scalar float64 (int accepted and promoted).
//	multiplicity   scalar int.
//	title          string.
//	origin         (3,) real vector: origin of a volumetric grid.
//	axes           (3, 3) real matrix: grid spacing vectors, one per row.
//	cube_data      rank-3 real array, *Tensor3.
//	olp            (nbasis, nbasis) overlap matrix, *mat.Dense.
//	orb_alpha      *Orbitals: alpha (or restricted) orbital set.
//	orb_beta       *Orbitals: beta orbital set.
//	dm_full_*      (nbasis, nbasis) stored spin-summed density matrices,
//	               e.g. dm_full_scf; likewise dm_spin_* for spin densities.
//
//The keys dm_full and dm_spin (without a method suffix) are used by GetDMFull
//and GetDMSpin to cache reconstructed matrices; they may also be set directly.
//
//A QCData is not safe for concurrent use.
type QCData struct {
	attrs map[string]interface{}
}

//New builds a container from a map of attribute names to values. All the
//given attributes are validated together, including the constraints that span
//more than one attribute, so an inconsistent pair is caught no matter in what
//order the map iterates. On any violation it returns a *TypeMismatch naming
//the offending key(s), and no container.
func New(attrs map[string]interface{}) (*QCData, error) {
	D := &QCData{attrs: make(map[string]interface{}, len(attrs))}
	for key, val := range attrs {
		clean, err := validateAttr(key, val)
		if err != nil {
			return nil, errDecorate(err, "New")
		}
		D.attrs[key] = clean
	}
	if err := validateCross(D.attrs); err != nil {
		return nil, errDecorate(err, "New")
	}
	return D, nil
}

//Set assigns one attribute, validating it and its consistency with the
//attributes already present. On failure the container is left untouched.
func (D *QCData) Set(key string, value interface{}) error {
	if D.attrs == nil {
		D.attrs = make(map[string]interface{})
	}
	clean, err := validateAttr(key, value)
	if err != nil {
		return errDecorate(err, "Set")
	}
	//The merged map mirrors the state the container will end up in: cached
	//reconstructions this assignment drops don't get a say in the
	//consistency check.
	merged := make(map[string]interface{}, len(D.attrs)+1)
	for k, v := range D.attrs {
		merged[k] = v
	}
	invalidate(merged, key)
	merged[key] = clean
	if err := validateCross(merged); err != nil {
		return errDecorate(err, "Set")
	}
	D.invalidate(key)
	D.attrs[key] = clean
	return nil
}

//Del removes an attribute, returning the container to the "not present" state
//for that key. Deleting an absent attribute is a no-op. Derived quantities
//that depended on the attribute are recomputed on their next access.
func (D *QCData) Del(key string) {
	if _, ok := D.attrs[key]; !ok {
		return
	}
	delete(D.attrs, key)
	D.invalidate(key)
}

//Has reports whether the attribute is present.
func (D *QCData) Has(key string) bool {
	_, ok := D.attrs[key]
	return ok
}

//Get returns the raw stored value for an attribute and whether it is present.
func (D *QCData) Get(key string) (interface{}, bool) {
	v, ok := D.attrs[key]
	return v, ok
}

//Keys returns the sorted names of the attributes present.
func (D *QCData) Keys() []string {
	keys := make([]string, 0, len(D.attrs))
	for k := range D.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

//invalidate drops the cached density-matrix slots that depend on key.
func (D *QCData) invalidate(key string) {
	invalidate(D.attrs, key)
}

func invalidate(attrs map[string]interface{}, key string) {
	if key == "orb_alpha" || key == "orb_beta" || strings.HasPrefix(key, "dm_full") {
		delete(attrs, "dm_full")
	}
	if key == "orb_alpha" || key == "orb_beta" || strings.HasPrefix(key, "dm_spin") {
		delete(attrs, "dm_spin")
	}
}

//Typed accessors. Each returns the attribute and whether it is present.

func (D *QCData) Coordinates() (*mat.Dense, bool) {
	v, ok := D.attrs["coordinates"].(*mat.Dense)
	return v, ok
}

func (D *QCData) Numbers() ([]int, bool) {
	v, ok := D.attrs["numbers"].([]int)
	return v, ok
}

func (D *QCData) PseudoNumbers() ([]float64, bool) {
	v, ok := D.attrs["pseudo_numbers"].([]float64)
	return v, ok
}

func (D *QCData) Origin() ([]float64, bool) {
	v, ok := D.attrs["origin"].([]float64)
	return v, ok
}

func (D *QCData) Axes() (*mat.Dense, bool) {
	v, ok := D.attrs["axes"].(*mat.Dense)
	return v, ok
}

func (D *QCData) CubeData() (*Tensor3, bool) {
	v, ok := D.attrs["cube_data"].(*Tensor3)
	return v, ok
}

func (D *QCData) Overlap() (*mat.Dense, bool) {
	v, ok := D.attrs["olp"].(*mat.Dense)
	return v, ok
}

func (D *QCData) OrbAlpha() (*Orbitals, bool) {
	v, ok := D.attrs["orb_alpha"].(*Orbitals)
	return v, ok
}

func (D *QCData) OrbBeta() (*Orbitals, bool) {
	v, ok := D.attrs["orb_beta"].(*Orbitals)
	return v, ok
}

func (D *QCData) Charge() (float64, bool) {
	v, ok := D.attrs["charge"].(float64)
	return v, ok
}

func (D *QCData) Energy() (float64, bool) {
	v, ok := D.attrs["energy"].(float64)
	return v, ok
}

func (D *QCData) Multiplicity() (int, bool) {
	v, ok := D.attrs["multiplicity"].(int)
	return v, ok
}

func (D *QCData) Title() (string, bool) {
	v, ok := D.attrs["title"].(string)
	return v, ok
}

//NAtom returns the number of atoms, taken from whichever of coordinates,
//numbers or pseudo_numbers is present (they are kept consistent).
func (D *QCData) NAtom() (int, bool) {
	if c, ok := D.Coordinates(); ok {
		r, _ := c.Dims()
		return r, true
	}
	if n, ok := D.Numbers(); ok {
		return len(n), true
	}
	if p, ok := D.PseudoNumbers(); ok {
		return len(p), true
	}
	return 0, false
}

//Validation

//validateAttr checks a single attribute against its contract and returns the
//value to store, applying only the documented promotions (int input for
//real-valued attributes, integral floats for integer-valued ones).
func validateAttr(key string, val interface{}) (interface{}, error) {
	switch {
	case key == "coordinates":
		return realMatrix(key, val, -1, 3)
	case key == "numbers":
		return intVector(key, val, -1)
	case key == "pseudo_numbers":
		return realVector(key, val, -1)
	case key == "origin":
		return realVector(key, val, 3)
	case key == "axes":
		return realMatrix(key, val, 3, 3)
	case key == "cube_data":
		t, ok := val.(*Tensor3)
		if !ok || t == nil {
			return nil, &TypeMismatch{Attrs: []string{key}, message: "must be a rank-3 real array (*Tensor3)"}
		}
		return t, nil
	case key == "olp" || strings.HasPrefix(key, "dm_full") || strings.HasPrefix(key, "dm_spin"):
		return squareMatrix(key, val)
	case key == "orb_alpha" || key == "orb_beta":
		return orbitalSet(key, val)
	case key == "charge" || key == "energy":
		return scalarFloat(key, val)
	case key == "multiplicity":
		n, ok := val.(int)
		if !ok {
			return nil, &TypeMismatch{Attrs: []string{key}, message: "must be an integer scalar"}
		}
		return n, nil
	case key == "title":
		s, ok := val.(string)
		if !ok {
			return nil, &TypeMismatch{Attrs: []string{key}, message: "must be a string"}
		}
		return s, nil
	}
	return nil, &TypeMismatch{Attrs: []string{key}, message: "unrecognized attribute"}
}

//validateCross checks the constraints that span more than one attribute.
//All the attributes in attrs are assumed individually valid already.
func validateCross(attrs map[string]interface{}) error {
	natom := -1
	natomKey := ""
	atoms := func(key string, n int) error {
		if natom < 0 {
			natom, natomKey = n, key
			return nil
		}
		if n != natom {
			return &TypeMismatch{Attrs: []string{natomKey, key},
				message: fmt.Sprintf("inconsistent atom counts (%d vs %d)", natom, n)}
		}
		return nil
	}
	if c, ok := attrs["coordinates"].(*mat.Dense); ok {
		r, _ := c.Dims()
		if err := atoms("coordinates", r); err != nil {
			return err
		}
	}
	if n, ok := attrs["numbers"].([]int); ok {
		if err := atoms("numbers", len(n)); err != nil {
			return err
		}
	}
	if p, ok := attrs["pseudo_numbers"].([]float64); ok {
		if err := atoms("pseudo_numbers", len(p)); err != nil {
			return err
		}
	}
	//A molecular geometry and a volumetric grid cannot live in the same
	//container. See the package documentation.
	if _, ok := attrs["cube_data"]; ok {
		if _, ok := attrs["coordinates"]; ok {
			return &TypeMismatch{Attrs: []string{"coordinates", "cube_data"},
				message: "cannot be given together"}
		}
	}
	//Everything expressed on the basis set must agree on its size.
	nbasis := -1
	nbasisKey := ""
	basis := func(key string, n int) error {
		if nbasis < 0 {
			nbasis, nbasisKey = n, key
			return nil
		}
		if n != nbasis {
			return &TypeMismatch{Attrs: []string{nbasisKey, key},
				message: fmt.Sprintf("inconsistent basis dimensions (%d vs %d)", nbasis, n)}
		}
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch {
		case key == "olp" || strings.HasPrefix(key, "dm_full") || strings.HasPrefix(key, "dm_spin"):
			m := attrs[key].(*mat.Dense)
			r, _ := m.Dims()
			if err := basis(key, r); err != nil {
				return err
			}
		case key == "orb_alpha" || key == "orb_beta":
			o := attrs[key].(*Orbitals)
			if err := basis(key, o.NBasis()); err != nil {
				return err
			}
		}
	}
	return nil
}

//realMatrix accepts a *mat.Dense, or [][]float64 / [][]int rows which get
//copied into a new one. rows/cols below zero mean "any size".
func realMatrix(key string, val interface{}, rows, cols int) (*mat.Dense, error) {
	var m *mat.Dense
	switch v := val.(type) {
	case *mat.Dense:
		m = v
	case [][]float64:
		var err error
		m, err = denseFromRows(key, v)
		if err != nil {
			return nil, err
		}
	case [][]int:
		conv := make([][]float64, len(v))
		for i, row := range v {
			conv[i] = make([]float64, len(row))
			for j, x := range row {
				conv[i][j] = float64(x)
			}
		}
		var err error
		m, err = denseFromRows(key, conv)
		if err != nil {
			return nil, err
		}
	default:
		return nil, &TypeMismatch{Attrs: []string{key}, message: "must be a real-valued matrix"}
	}
	r, c := m.Dims()
	if (rows >= 0 && r != rows) || (cols >= 0 && c != cols) {
		return nil, &TypeMismatch{Attrs: []string{key},
			message: fmt.Sprintf("wrong shape (%d, %d)", r, c)}
	}
	return m, nil
}

func denseFromRows(key string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &TypeMismatch{Attrs: []string{key}, message: "empty matrix"}
	}
	c := len(rows[0])
	m := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		if len(row) != c {
			return nil, &TypeMismatch{Attrs: []string{key}, message: "ragged rows"}
		}
		m.SetRow(i, row)
	}
	return m, nil
}

func squareMatrix(key string, val interface{}) (*mat.Dense, error) {
	m, err := realMatrix(key, val, -1, -1)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	if r != c {
		return nil, &TypeMismatch{Attrs: []string{key},
			message: fmt.Sprintf("must be square, got (%d, %d)", r, c)}
	}
	return m, nil
}

//realVector accepts []float64, or []int which gets promoted. length below
//zero means "any length".
func realVector(key string, val interface{}, length int) ([]float64, error) {
	var v []float64
	switch x := val.(type) {
	case []float64:
		v = x
	case []int:
		v = make([]float64, len(x))
		for i, n := range x {
			v[i] = float64(n)
		}
	default:
		return nil, &TypeMismatch{Attrs: []string{key}, message: "must be a real-valued vector"}
	}
	if length >= 0 && len(v) != length {
		return nil, &TypeMismatch{Attrs: []string{key},
			message: fmt.Sprintf("must have length %d, got %d", length, len(v))}
	}
	return v, nil
}

//intVector accepts []int, or []float64 whose entries are all integral.
//Anything with a fractional part is rejected, never truncated.
func intVector(key string, val interface{}, length int) ([]int, error) {
	var v []int
	switch x := val.(type) {
	case []int:
		v = x
	case []float64:
		v = make([]int, len(x))
		for i, f := range x {
			if f != math.Trunc(f) {
				return nil, &TypeMismatch{Attrs: []string{key},
					message: fmt.Sprintf("must be integer-valued, got %v", f)}
			}
			v[i] = int(f)
		}
	default:
		return nil, &TypeMismatch{Attrs: []string{key}, message: "must be an integer-valued vector"}
	}
	if length >= 0 && len(v) != length {
		return nil, &TypeMismatch{Attrs: []string{key},
			message: fmt.Sprintf("must have length %d, got %d", length, len(v))}
	}
	return v, nil
}

func scalarFloat(key string, val interface{}) (float64, error) {
	switch x := val.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, &TypeMismatch{Attrs: []string{key}, message: "must be a real scalar"}
}

func orbitalSet(key string, val interface{}) (*Orbitals, error) {
	o, ok := val.(*Orbitals)
	if !ok || o == nil || o.Coeffs == nil {
		return nil, &TypeMismatch{Attrs: []string{key}, message: "must be a non-nil *Orbitals"}
	}
	_, no := o.Coeffs.Dims()
	if len(o.Occs) != no {
		return nil, &TypeMismatch{Attrs: []string{key},
			message: fmt.Sprintf("%d orbitals but %d occupations", no, len(o.Occs))}
	}
	if o.Energies != nil && len(o.Energies) != no {
		return nil, &TypeMismatch{Attrs: []string{key},
			message: fmt.Sprintf("%d orbitals but %d energies", no, len(o.Energies))}
	}
	return o, nil
}
