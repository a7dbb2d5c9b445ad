/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package table

import (
	"FsqlFrontEnd/internal/util"
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

const Separator = ","

// Scanner streams a table file: the header line first, then one data row
// per call to Next.
type Scanner struct {
	path   string
	file   *os.File
	reader *bufio.Reader
	header []string
	lineNo int
}

// Open opens the table at path and reads its header. The caller must Close
// the returned Scanner.
func Open(path string) (*Scanner, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, util.NewInvalidTable(err, "table directory or table name is incorrect: %s", path)
	}

	s := &Scanner{
		path:   path,
		file:   file,
		reader: bufio.NewReader(file),
	}

	line, ok, err := s.readLine()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if !ok {
		_ = file.Close()
		return nil, util.NewInvalidTable(nil, "table %s has no header line", path)
	}
	s.header = SplitLine(line)
	log.Tracef("Opened table %s with columns %v", path, s.header)

	return s, nil
}

func (s *Scanner) Path() string {
	return s.path
}

// Header returns the column names. The slice must not be modified.
func (s *Scanner) Header() []string {
	return s.header
}

// Next returns the next data row. ok is false once the file is exhausted.
// Blank lines are skipped.
func (s *Scanner) Next() ([]string, bool, error) {
	for {
		line, ok, err := s.readLine()
		if err != nil || !ok {
			return nil, false, err
		}
		if line == "" {
			continue
		}
		return SplitLine(line), true, nil
	}
}

func (s *Scanner) Close() error {
	return s.file.Close()
}

// readLine returns one line without its terminator. The last line of the
// file may lack the trailing newline.
func (s *Scanner) readLine() (string, bool, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, util.NewGenericError(err, "failed to read line %d of table %s", s.lineNo+1, s.path)
	}
	if err != nil && line == "" {
		return "", false, nil
	}
	s.lineNo++
	return strings.TrimRight(line, "\r\n"), true, nil
}

// Index returns the position of column in the header, or -1.
func Index(header []string, column string) int {
	for i, name := range header {
		if name == column {
			return i
		}
	}
	return -1
}

func SplitLine(line string) []string {
	return strings.Split(line, Separator)
}

// CheckFields fails if a field would change the row layout once joined.
func CheckFields(fields []string) error {
	for _, f := range fields {
		if strings.ContainsAny(f, Separator+"\r\n") {
			return util.NewInvalidSyntax("value %q contains a comma or line break", f)
		}
	}
	return nil
}

func JoinFields(fields []string) string {
	return strings.Join(fields, Separator)
}
