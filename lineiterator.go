/*
 * lineiterator.go, part of qcio
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
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//warnlog receives the non-fatal file-format warnings. Callers that want them
//somewhere other than stderr can redirect it with WarnOutput.
var warnlog = log.New(os.Stderr, "qcio: ", 0)

//WarnOutput redirects the file-format warnings to w.
func WarnOutput(w io.Writer) {
	warnlog.SetOutput(w)
}

//LineIterator reads a text file line by line for the format readers, keeping
//track of the line number for error reporting and letting the caller push a
//line back for one-line lookahead. Files ending in .gz are decompressed
//transparently. The iterator owns its file handle: callers acquire it with
//NewLineIterator and must release it with Close, normally in a deferred call
//so the handle goes away on error paths too. A closed iterator cannot be
//read again.
type LineIterator struct {
	filename string
	f        *os.File
	gz       *gzip.Reader
	buf      *bufio.Reader
	lineno   int
	stack    []string
	closed   bool
}

//NewLineIterator opens filename for reading.
func NewLineIterator(filename string) (*LineIterator, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	L := &LineIterator{filename: filename, f: f}
	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		L.gz, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &FileFormatError{filename: filename, message: "not a valid gzip file: " + err.Error()}
		}
		r = L.gz
	}
	L.buf = bufio.NewReader(r)
	return L, nil
}

//Next returns the next line, taking the top of the push-back stack first, and
//increases the line counter by one. The line keeps its trailing newline, if
//it had one. At the end of the file it returns io.EOF; on a closed iterator,
//a *FileFormatError.
func (L *LineIterator) Next() (string, error) {
	if L.closed {
		return "", &FileFormatError{filename: L.filename, lineno: L.lineno, message: "read on a closed file"}
	}
	if n := len(L.stack); n > 0 {
		line := L.stack[n-1]
		L.stack = L.stack[:n-1]
		L.lineno++
		return line, nil
	}
	line, err := L.buf.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" { //last line without a newline
			L.lineno++
			return line, nil
		}
		return "", err
	}
	L.lineno++
	return line, nil
}

//Back pushes a line back onto the lookahead stack and decreases the line
//counter, so a reader can peek at a line and un-consume it.
func (L *LineIterator) Back(line string) {
	L.stack = append(L.stack, line)
	L.lineno--
}

//Error builds a fatal *FileFormatError tagged with the current file name and
//line number.
func (L *LineIterator) Error(msg string) error {
	return &FileFormatError{filename: L.filename, lineno: L.lineno, message: msg}
}

//Warn reports a non-fatal problem at the current position. The warning is
//logged and reading goes on; the caller picks the fallback interpretation.
func (L *LineIterator) Warn(msg string) {
	w := &FileFormatWarning{filename: L.filename, lineno: L.lineno, message: msg}
	warnlog.Println(w.Error())
}

//FileName returns the name of the file being read.
func (L *LineIterator) FileName() string { return L.filename }

//LineNo returns the number of lines consumed so far.
func (L *LineIterator) LineNo() int { return L.lineno }

//Close releases the underlying file handle. Further reads fail.
func (L *LineIterator) Close() error {
	if L.closed {
		return nil
	}
	L.closed = true
	if L.gz != nil {
		L.gz.Close()
	}
	return L.f.Close()
}
