/*
 * atomicdata.go, part of qcio
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

import "strings"

//A map from element symbols to atomic numbers. The first 5 periods are
//present, which should cover anything a quantum-chemistry ground-state
//calculation is likely to contain, plus the more common heavier elements.
var symbol2Number = map[string]int{
	"H": 1, "He": 2,
	"Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Sc": 21, "Ti": 22, "V": 23, "Cr": 24, "Mn": 25,
	"Fe": 26, "Co": 27, "Ni": 28, "Cu": 29, "Zn": 30, "Ga": 31, "Ge": 32,
	"As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Tc": 43,
	"Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50,
	"Sb": 51, "Te": 52, "I": 53, "Xe": 54,
	"Cs": 55, "Ba": 56, "Pt": 78, "Au": 79, "Hg": 80, "Pb": 82,
}

var number2Symbol = map[int]string{}

func init() {
	for k, v := range symbol2Number {
		number2Symbol[v] = k
	}
}

//AtomicNumber returns the atomic number for an element symbol.
//The lookup tolerates all-caps symbols from sloppy input files
//("CL", "FE"), which some programs write.
func AtomicNumber(symbol string) (int, error) {
	if z, ok := symbol2Number[symbol]; ok {
		return z, nil
	}
	if len(symbol) > 1 {
		symbol = strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
	}
	z, ok := symbol2Number[symbol]
	if !ok {
		return 0, &InvalidArgument{message: "unknown element symbol " + symbol}
	}
	return z, nil
}

//Symbol returns the element symbol for an atomic number.
func Symbol(number int) (string, error) {
	s, ok := number2Symbol[number]
	if !ok {
		return "", &InvalidArgument{message: "no element symbol for the given atomic number"}
	}
	return s, nil
}
