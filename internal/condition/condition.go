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

package condition

import (
	"FsqlFrontEnd/internal/table"
	"FsqlFrontEnd/internal/util"
	"fmt"
)

// Condition is a boolean expression evaluated against one table row.
// Implementations are immutable once built.
type Condition interface {
	// Evaluate resolves the condition for row, whose fields are aligned
	// with header.
	Evaluate(header []string, row []string) (bool, error)
	String() string
}

type Predicate struct {
	Column  string
	Op      Operator
	Literal Value
}

type And struct {
	Left  Condition
	Right Condition
}

type Or struct {
	Left  Condition
	Right Condition
}

type Not struct {
	Inner Condition
}

// AlwaysTrue matches every row. It stands for an absent WHERE clause.
type AlwaysTrue struct{}

func NewPredicate(column string, op Operator, literal string) *Predicate {
	return &Predicate{Column: column, Op: op, Literal: ParseValue(literal)}
}

func (p *Predicate) Evaluate(header []string, row []string) (bool, error) {
	idx := table.Index(header, p.Column)
	if idx == -1 {
		return false, util.NewInvalidColumn("column %q used in the condition does not exist in the table", p.Column)
	}
	if idx >= len(row) {
		return false, util.NewInvalidColumn("row has %d fields but the table header has %d", len(row), len(header))
	}

	cell := ParseValue(row[idx])
	cmp, err := cell.Compare(p.Literal)
	if err != nil {
		return false, &util.QueryError{
			Kind:    util.KindInvalidColumn,
			Message: fmt.Sprintf("type mismatch on column %q: value %q is %s but the condition expects %s", p.Column, row[idx], cell.Tag, p.Literal.Tag),
			Err:     err,
		}
	}
	return p.Op.holds(cmp), nil
}

func (p *Predicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Column, p.Op, p.Literal)
}

// Both sides are always evaluated.
func (a *And) Evaluate(header []string, row []string) (bool, error) {
	left, err := a.Left.Evaluate(header, row)
	if err != nil {
		return false, err
	}
	right, err := a.Right.Evaluate(header, row)
	if err != nil {
		return false, err
	}
	return left && right, nil
}

func (a *And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

func (o *Or) Evaluate(header []string, row []string) (bool, error) {
	left, err := o.Left.Evaluate(header, row)
	if err != nil {
		return false, err
	}
	right, err := o.Right.Evaluate(header, row)
	if err != nil {
		return false, err
	}
	return left || right, nil
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", o.Left, o.Right)
}

func (n *Not) Evaluate(header []string, row []string) (bool, error) {
	inner, err := n.Inner.Evaluate(header, row)
	if err != nil {
		return false, err
	}
	return !inner, nil
}

func (n *Not) String() string {
	return "NOT " + n.Inner.String()
}

func (AlwaysTrue) Evaluate([]string, []string) (bool, error) {
	return true, nil
}

func (AlwaysTrue) String() string {
	return "TRUE"
}

// Columns lists the distinct columns referenced by c, in order of first
// appearance.
func Columns(c Condition) []string {
	var cols []string
	seen := make(map[string]bool)

	var walk func(Condition)
	walk = func(c Condition) {
		switch node := c.(type) {
		case *Predicate:
			if !seen[node.Column] {
				seen[node.Column] = true
				cols = append(cols, node.Column)
			}
		case *And:
			walk(node.Left)
			walk(node.Right)
		case *Or:
			walk(node.Left)
			walk(node.Right)
		case *Not:
			walk(node.Inner)
		}
	}
	walk(c)

	return cols
}
