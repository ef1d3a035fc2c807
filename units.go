/*
 * units.go, part of qcio
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

//This provides conversion factors between common units and the atomic-unit
//system used internally by the library. Multiply by the constant to convert
//to atomic units, divide to convert back:
//	distance := 5 * qcio.Angstrom  //5 A in bohr
//	fmt.Println(distance / qcio.Angstrom) //back to A

//CODATA 2018 values for the physical constants everything below derives from.
const (
	bohrRadius   = 0.529177210903e-10 //m
	auOfTime     = 2.4188843265857e-17
	hartreeEv    = 27.211386245988 //Hartree-electron volt relationship
	hartreeJoule = 4.3597447222071e-18
	electronMass = 9.1093837015e-31 //kg
	avogadro     = 6.02214076e23
	calorie      = 4.184 //J, thermochemical
)

//Conversion factors to atomic units.
const (
	Meter        = 1 / bohrRadius
	Angstrom     = 1e-10 * Meter
	Nanometer    = 1e-9 * Meter //used by Gromacs gro files
	ElectronVolt = 1 / hartreeEv
	Second       = 1 / auOfTime
	Picosecond   = 1e-12 * Second
	//atomic mass unit (not the atomic unit of mass!)
	Amu     = 1e-3 / (electronMass * avogadro)
	CalMol  = calorie / avogadro / hartreeJoule
	KCalMol = 1e3 * CalMol
	KJMol   = 1e3 / avogadro / hartreeJoule
)

//Angle conversions.
const (
	Deg2Rad = 0.0174533
	Rad2Deg = 1 / 0.0174533
)
