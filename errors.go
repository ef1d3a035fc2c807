/*
 * errors.go, part of qcio
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
)

// Error is the interface for errors that all types in this library implement.
// The Decorate method allows the caller to add information to an error as it is passed
// up the calling stack, without changing its type or wrapping it around something else.
// If passed an empty string, Decorate just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

//errDecorate asserts that err implements qcio.Error and decorates it with the
//caller's name before returning it. It panics if used with any other error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//TypeMismatch is returned when an attribute given to the QCData container
//violates its shape, element-type or cross-attribute consistency contract,
//or when an attribute key is not recognized at all.
type TypeMismatch struct {
	Attrs   []string //the offending attribute key(s)
	message string
	deco    []string
}

func (err *TypeMismatch) Error() string {
	if len(err.Attrs) > 0 {
		return fmt.Sprintf("qcio: attribute %s: %s", strings.Join(err.Attrs, ", "), err.message)
	}
	return "qcio: " + err.message
}

func (err *TypeMismatch) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileFormatError is returned when the content of a file being read violates the
//expected structure for its format. It is fatal for the read in progress, and
//carries the file name and the line at which reading failed.
type FileFormatError struct {
	filename string
	lineno   int
	message  string
	deco     []string
}

func (err *FileFormatError) Error() string {
	return fmt.Sprintf("%s:%d %s", err.filename, err.lineno, err.message)
}

func (err *FileFormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the name of the file that could not be read.
func (err *FileFormatError) FileName() string { return err.filename }

//LineNo returns the line at which reading failed.
func (err *FileFormatError) LineNo() int { return err.lineno }

//FileFormatWarning signals questionable but recoverable content found while
//reading a file. It is tagged like FileFormatError but it is not fatal:
//readers log it and continue with a best-effort interpretation.
type FileFormatWarning struct {
	filename string
	lineno   int
	message  string
	deco     []string
}

func (err *FileFormatWarning) Error() string {
	return fmt.Sprintf("%s:%d %s", err.filename, err.lineno, err.message)
}

func (err *FileFormatWarning) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//ValueRange is returned when a numeric result lies outside its physically
//valid bounds, e.g. natural-orbital occupations below zero or above the
//maximum occupation.
type ValueRange struct {
	Value   float64 //the offending value
	message string
	deco    []string
}

func (err *ValueRange) Error() string {
	return fmt.Sprintf("qcio: %s (error=%e)", err.message, err.Value)
}

func (err *ValueRange) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//InvalidArgument is returned by pure numeric and parsing helpers when given
//malformed input.
type InvalidArgument struct {
	message string
	deco    []string
}

func (err *InvalidArgument) Error() string {
	return "qcio: " + err.message
}

func (err *InvalidArgument) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//UnsupportedFormat is returned when a file name does not map to any of the
//formats this library can read or write.
type UnsupportedFormat struct {
	Format   string //the extension that could not be dispatched
	filename string
	deco     []string
}

func (err *UnsupportedFormat) Error() string {
	return fmt.Sprintf("qcio: %s: unsupported file format %q", err.filename, err.Format)
}

func (err *UnsupportedFormat) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
