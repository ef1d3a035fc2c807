/*
 * files.go, part of qcio
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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//formatOf maps a file name to its format key: the extension without the dot,
//looking through a trailing .gz.
func formatOf(filename string) string {
	name := strings.TrimSuffix(filename, ".gz")
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

//ReadFile reads a file into a QCData container, dispatching on the file
//extension (a trailing .gz means transparent decompression and is not part of
//the format). Unrecognized extensions give an *UnsupportedFormat error.
func ReadFile(filename string) (*QCData, error) {
	switch format := formatOf(filename); format {
	case "cube":
		return CubeRead(filename)
	case "xyz":
		return XYZRead(filename)
	default:
		return nil, &UnsupportedFormat{Format: format, filename: filename}
	}
}

//WriteFile writes a container to a file, dispatching on the extension the
//same way ReadFile does.
func WriteFile(filename string, D *QCData) error {
	switch format := formatOf(filename); format {
	case "cube":
		return CubeWrite(filename, D)
	case "xyz":
		return XYZWrite(filename, D)
	default:
		return &UnsupportedFormat{Format: format, filename: filename}
	}
}

//createOutput creates filename for writing, stacking a gzip layer on it when
//the name ends in .gz.
func createOutput(filename string) (*ioCloser, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, ".gz") {
		return &ioCloser{Writer: f, closers: []io.Closer{f}}, nil
	}
	gz := gzip.NewWriter(f)
	return &ioCloser{Writer: gz, closers: []io.Closer{gz, f}}, nil
}
