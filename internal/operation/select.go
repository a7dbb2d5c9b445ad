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
	"FsqlFrontEnd/internal/condition"
	"FsqlFrontEnd/internal/table"
	"FsqlFrontEnd/internal/util"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

type Select struct {
	Path    string
	Columns []string
	Where   condition.Condition
	// OrderBy is empty when the rows keep their table order.
	OrderBy   string
	Ascending bool
}

func (op *Select) Name() string  { return "SELECT" }
func (op *Select) Table() string { return op.Path }

// Execute collects the matching rows. ORDER BY compares the raw text of the
// column, so numbers sort lexically ("10" before "9").
func (op *Select) Execute() (*Result, error) {
	scanner, err := table.Open(op.Path)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	header := scanner.Header()
	columns, indexes, err := op.projection(header)
	if err != nil {
		return nil, err
	}

	orderIdx := -1
	if op.OrderBy != "" {
		orderIdx = table.Index(header, op.OrderBy)
		if orderIdx == -1 {
			return nil, util.NewInvalidColumn("ORDER BY column %q does not exist in the table", op.OrderBy)
		}
	}

	var matched [][]string
	for {
		row, ok, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		hit, err := op.Where.Evaluate(header, row)
		if err != nil {
			return nil, err
		}
		if !hit {
			continue
		}
		if len(row) != len(header) {
			return nil, util.NewInvalidColumn("row has %d fields but the table header has %d",
				len(row), len(header))
		}
		matched = append(matched, row)
	}

	if orderIdx != -1 {
		sort.SliceStable(matched, func(i, j int) bool {
			if op.Ascending {
				return matched[i][orderIdx] < matched[j][orderIdx]
			}
			return matched[i][orderIdx] > matched[j][orderIdx]
		})
	}

	rows := make([][]string, 0, len(matched))
	for _, row := range matched {
		projected := make([]string, len(indexes))
		for i, idx := range indexes {
			projected[i] = row[idx]
		}
		rows = append(rows, projected)
	}
	log.Debugf("Selected %d row(s) from %s", len(rows), op.Path)

	return &Result{
		Message: fmt.Sprintf("select completed: %d row(s)", len(rows)),
		Columns: columns,
		Rows:    rows,
	}, nil
}

// projection resolves the requested columns against the header before any
// row is read.
func (op *Select) projection(header []string) ([]string, []int, error) {
	if isAllColumns(op.Columns) {
		indexes := make([]int, len(header))
		for i := range header {
			indexes[i] = i
		}
		return append([]string(nil), header...), indexes, nil
	}

	indexes := make([]int, len(op.Columns))
	for i, name := range op.Columns {
		idx := table.Index(header, name)
		if idx == -1 {
			return nil, nil, util.NewInvalidColumn("column %q in the instruction does not exist in the table", name)
		}
		indexes[i] = idx
	}
	return op.Columns, indexes, nil
}
