/*
 * lineiterator_test.go, part of qcio
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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLineIterator(t *testing.T) {
	path := writeTestFile(t, "three.txt", "first\nsecond\nthird\n")
	li, err := NewLineIterator(path)
	require.NoError(t, err)
	defer li.Close()
	require.Equal(t, 0, li.LineNo())

	line, err := li.Next()
	require.NoError(t, err)
	require.Equal(t, "first\n", line)
	require.Equal(t, 1, li.LineNo())

	line, err = li.Next()
	require.NoError(t, err)
	require.Equal(t, "second\n", line)

	//push back and read again, the counter must retrace
	li.Back(line)
	require.Equal(t, 1, li.LineNo())
	again, err := li.Next()
	require.NoError(t, err)
	require.Equal(t, line, again)
	require.Equal(t, 2, li.LineNo())

	_, err = li.Next()
	require.NoError(t, err)
	_, err = li.Next()
	require.Equal(t, io.EOF, err)
}

func TestLineIteratorNoFinalNewline(t *testing.T) {
	path := writeTestFile(t, "nonl.txt", "only line")
	li, err := NewLineIterator(path)
	require.NoError(t, err)
	defer li.Close()
	line, err := li.Next()
	require.NoError(t, err)
	require.Equal(t, "only line", line)
	require.Equal(t, 1, li.LineNo())
	_, err = li.Next()
	require.Equal(t, io.EOF, err)
}

func TestLineIteratorStack(t *testing.T) {
	path := writeTestFile(t, "stack.txt", "a\nb\n")
	li, err := NewLineIterator(path)
	require.NoError(t, err)
	defer li.Close()
	a, _ := li.Next()
	b, _ := li.Next()
	li.Back(b)
	li.Back(a)
	require.Equal(t, 0, li.LineNo())
	//last pushed comes out first
	got, err := li.Next()
	require.NoError(t, err)
	require.Equal(t, a, got)
	got, err = li.Next()
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestLineIteratorError(t *testing.T) {
	path := writeTestFile(t, "err.txt", "one\ntwo\n")
	li, err := NewLineIterator(path)
	require.NoError(t, err)
	defer li.Close()
	li.Next()
	li.Next()
	ferr := li.Error("something is off")
	var ffe *FileFormatError
	require.True(t, errors.As(ferr, &ffe))
	require.Equal(t, path+":2 something is off", ferr.Error())
	require.Equal(t, path, ffe.FileName())
	require.Equal(t, 2, ffe.LineNo())
}

func TestLineIteratorWarn(t *testing.T) {
	path := writeTestFile(t, "warn.txt", "one\n")
	var buf bytes.Buffer
	WarnOutput(&buf)
	defer WarnOutput(os.Stderr)
	li, err := NewLineIterator(path)
	require.NoError(t, err)
	defer li.Close()
	li.Next()
	li.Warn("suspicious but tolerable")
	require.Contains(t, buf.String(), "suspicious but tolerable")
	require.Contains(t, buf.String(), ":1")
}

func TestLineIteratorGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comp.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("compressed one\ncompressed two\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	li, err := NewLineIterator(path)
	require.NoError(t, err)
	defer li.Close()
	line, err := li.Next()
	require.NoError(t, err)
	require.Equal(t, "compressed one\n", line)
	line, err = li.Next()
	require.NoError(t, err)
	require.Equal(t, "compressed two\n", line)
	_, err = li.Next()
	require.Equal(t, io.EOF, err)
}

func TestLineIteratorBadGzip(t *testing.T) {
	path := writeTestFile(t, "fake.txt.gz", "this is not gzip at all")
	_, err := NewLineIterator(path)
	var ffe *FileFormatError
	require.True(t, errors.As(err, &ffe))
	require.True(t, strings.Contains(err.Error(), "gzip"))
}

func TestLineIteratorClosed(t *testing.T) {
	path := writeTestFile(t, "closed.txt", "one\n")
	li, err := NewLineIterator(path)
	require.NoError(t, err)
	require.NoError(t, li.Close())
	require.NoError(t, li.Close()) //idempotent
	_, err = li.Next()
	var ffe *FileFormatError
	require.True(t, errors.As(err, &ffe))
}
