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

// Result is what an operation reports back to the front end. Columns and
// Rows are only set by Select.
type Result struct {
	Message string
	Columns []string
	Rows    [][]string
}

// Operation is one parsed instruction bound to a table file. An Operation
// runs once; it is not modified by Execute.
type Operation interface {
	// Name is the instruction keyword, e.g. "SELECT".
	Name() string
	// Table is the resolved path of the table file.
	Table() string
	Execute() (*Result, error)
}

// AllColumns is the projection selecting every column in table order.
const AllColumns = "*"

func isAllColumns(columns []string) bool {
	return len(columns) == 1 && columns[0] == AllColumns
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
