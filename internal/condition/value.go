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
	"fmt"
	"strconv"
)

type Tag int

const (
	TagInteger Tag = iota
	TagWord
)

func (t Tag) String() string {
	if t == TagInteger {
		return "integer"
	}
	return "word"
}

// Value is a scalar taken from a table cell or a literal. Only the field
// matching Tag is meaningful.
type Value struct {
	Tag  Tag
	Int  int64
	Word string
}

func Integer(i int64) Value {
	return Value{Tag: TagInteger, Int: i}
}

func Word(s string) Value {
	return Value{Tag: TagWord, Word: s}
}

// ParseValue infers the tag of raw: Integer if the whole text is a base-10
// 64-bit integer, Word otherwise.
func ParseValue(raw string) Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Integer(i)
	}
	return Word(raw)
}

// Compare returns -1, 0 or 1. Values of different tags are not comparable.
func (v Value) Compare(other Value) (int, error) {
	if v.Tag != other.Tag {
		return 0, fmt.Errorf("cannot compare %s with %s", v.Tag, other.Tag)
	}

	switch v.Tag {
	case TagInteger:
		switch {
		case v.Int < other.Int:
			return -1, nil
		case v.Int > other.Int:
			return 1, nil
		}
		return 0, nil
	default:
		switch {
		case v.Word < other.Word:
			return -1, nil
		case v.Word > other.Word:
			return 1, nil
		}
		return 0, nil
	}
}

func (v Value) String() string {
	if v.Tag == TagInteger {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Word
}

type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
)

func ParseOperator(s string) (Operator, bool) {
	switch op := Operator(s); op {
	case OpEqual, OpNotEqual, OpLess, OpGreater, OpLessEqual, OpGreaterEqual:
		return op, true
	}
	return "", false
}

// holds reports whether a comparison result satisfies the operator.
func (op Operator) holds(cmp int) bool {
	switch op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpLess:
		return cmp < 0
	case OpGreater:
		return cmp > 0
	case OpLessEqual:
		return cmp <= 0
	case OpGreaterEqual:
		return cmp >= 0
	}
	return false
}
