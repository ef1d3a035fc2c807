/*
 * doc.go, part of qcio
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

/*Package qcio reads, writes and holds quantum-chemistry data. At its center
is the QCData container: a bag of optional, named molecular attributes
(geometry, atomic numbers, volumetric grids, orbital expansions, density
matrices) where every attribute is validated against its shape and
element-type contract, and against the other attributes present, on each
construction and mutation. Everything is kept in atomic units; the package
also provides the conversion factors to get in and out of them.

On top of the container, the package derives what it can from what is stored:
full and spin density matrices are reconstructed from orbital coefficients
and occupations when not stored explicitly (and cached until the data they
came from changes), natural orbitals come from a metric-aware
eigendecomposition of a density matrix, and CheckDM gates density matrices on
their occupations being physically sensible.

File formats (currently XYZ geometries and Gaussian cube volumetric files,
gzipped or not) read into and write from the container; the LineIterator
cursor they are built on tracks line numbers for error reporting and allows
one-line lookahead, and is available for format readers living outside this
package.

A container holds either a molecular geometry or a volumetric grid, not both:
giving coordinates and cube_data together is rejected. The two have always
been separate use cases here, so the combination has no defined meaning.

Note that this library uses gonum (gonum.org/v1/gonum/mat) matrices at its
API, so anything producing or consuming those can interoperate with it
directly.
*/
package qcio
