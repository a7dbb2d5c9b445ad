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

	log "github.com/sirupsen/logrus"
)

type Assignment struct {
	Column string
	Value  string
}

type Update struct {
	Path        string
	Assignments []Assignment
	Where       condition.Condition
}

func (op *Update) Name() string  { return "UPDATE" }
func (op *Update) Table() string { return op.Path }

// Execute rewrites matching rows. Assignments to columns missing from the
// table are ignored; for a column assigned twice the last value wins.
func (op *Update) Execute() (*Result, error) {
	values := make(map[string]string, len(op.Assignments))
	for _, a := range op.Assignments {
		values[a.Column] = a.Value
	}

	warned := false
	stats, err := table.Rewrite(op.Path, func(header []string, row []string) (table.Action, []string, error) {
		matched, err := op.Where.Evaluate(header, row)
		if err != nil {
			return table.Keep, nil, err
		}
		if !matched {
			return table.Keep, nil, nil
		}
		if len(row) != len(header) {
			return table.Keep, nil, util.NewInvalidColumn("row has %d fields but the table header has %d",
				len(row), len(header))
		}

		if !warned {
			warned = true
			for _, a := range op.Assignments {
				if table.Index(header, a.Column) == -1 {
					log.Debugf("Column %q does not exist in %s, assignment ignored", a.Column, op.Path)
				}
			}
		}

		updated := make([]string, len(row))
		for i, name := range header {
			if v, ok := values[name]; ok {
				updated[i] = v
			} else {
				updated[i] = row[i]
			}
		}
		return table.Replace, updated, nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{Message: fmt.Sprintf("update completed: %d row(s)", stats.Replaced)}, nil
}
