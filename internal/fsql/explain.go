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

package fsql

import (
	"FsqlFrontEnd/internal/condition"
	"FsqlFrontEnd/internal/operation"
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// Explain parses instruction and prints the resulting operation as a tree.
// No table is read or written.
func Explain(w io.Writer, tableDir string, instruction string) error {
	op, err := newParser(tableDir).Parse(instruction)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, OperationTree(op).String())
	return err
}

func OperationTree(op operation.Operation) treeprint.Tree {
	tree := treeprint.NewWithRoot(op.Name())
	tree.AddMetaNode("table", op.Table())

	switch op := op.(type) {
	case *operation.Insert:
		tree.AddMetaNode("columns", strings.Join(op.Columns, ", "))
		values := tree.AddMetaBranch(len(op.Rows), "values")
		for _, row := range op.Rows {
			values.AddNode("(" + strings.Join(row, ", ") + ")")
		}
	case *operation.Delete:
		addConditionBranch(tree, op.Where)
	case *operation.Update:
		set := tree.AddBranch("set")
		for _, a := range op.Assignments {
			set.AddNode(a.Column + " = " + a.Value)
		}
		addConditionBranch(tree, op.Where)
	case *operation.Select:
		tree.AddMetaNode("columns", strings.Join(op.Columns, ", "))
		addConditionBranch(tree, op.Where)
		if op.OrderBy != "" {
			direction := "ASC"
			if !op.Ascending {
				direction = "DESC"
			}
			tree.AddMetaNode("order by", op.OrderBy+" "+direction)
		}
	}

	return tree
}

// addConditionBranch adds the WHERE tree, labelled with the columns it
// reads.
func addConditionBranch(tree treeprint.Tree, where condition.Condition) {
	var branch treeprint.Tree
	if columns := condition.Columns(where); len(columns) > 0 {
		branch = tree.AddMetaBranch(strings.Join(columns, ", "), "where")
	} else {
		branch = tree.AddBranch("where")
	}
	addCondition(branch, where)
}

func addCondition(parent treeprint.Tree, c condition.Condition) {
	switch c := c.(type) {
	case *condition.And:
		branch := parent.AddBranch("AND")
		addCondition(branch, c.Left)
		addCondition(branch, c.Right)
	case *condition.Or:
		branch := parent.AddBranch("OR")
		addCondition(branch, c.Left)
		addCondition(branch, c.Right)
	case *condition.Not:
		addCondition(parent.AddBranch("NOT"), c.Inner)
	default:
		parent.AddNode(c.String())
	}
}
