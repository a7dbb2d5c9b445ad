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

package operation

import (
	"FsqlFrontEnd/internal/table"
	"FsqlFrontEnd/internal/util"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Insert struct {
	Path    string
	Columns []string
	Rows    [][]string
}

func (op *Insert) Name() string  { return "INSERT" }
func (op *Insert) Table() string { return op.Path }

// Execute appends every row, or none: the column list and all row lengths
// are checked before the table is written.
func (op *Insert) Execute() (*Result, error) {
	scanner, err := table.Open(op.Path)
	if err != nil {
		return nil, err
	}
	header := scanner.Header()
	if err := scanner.Close(); err != nil {
		return nil, util.NewGenericError(err, "failed to read table %s", op.Path)
	}

	if !sameColumns(header, op.Columns) {
		return nil, util.NewInvalidColumn("columns (%s) are not valid for the table, expected (%s)",
			strings.Join(op.Columns, ", "), strings.Join(header, ", "))
	}
	for i, row := range op.Rows {
		if len(row) != len(header) {
			return nil, util.NewInvalidColumn("row %d has %d values but the table has %d columns",
				i+1, len(row), len(header))
		}
	}

	if err := table.Append(op.Path, op.Rows); err != nil {
		return nil, err
	}
	log.Debugf("Inserted %d row(s) into %s", len(op.Rows), op.Path)

	return &Result{Message: fmt.Sprintf("insert completed: %d row(s)", len(op.Rows))}, nil
}
