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
	"fmt"
)

type Delete struct {
	Path  string
	Where condition.Condition
}

func (op *Delete) Name() string  { return "DELETE" }
func (op *Delete) Table() string { return op.Path }

func (op *Delete) Execute() (*Result, error) {
	stats, err := table.Rewrite(op.Path, func(header []string, row []string) (table.Action, []string, error) {
		matched, err := op.Where.Evaluate(header, row)
		if err != nil {
			return table.Keep, nil, err
		}
		if matched {
			return table.Drop, nil, nil
		}
		return table.Keep, nil, nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{Message: fmt.Sprintf("delete completed: %d row(s)", stats.Dropped)}, nil
}
