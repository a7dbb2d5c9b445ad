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

package parser

import (
	"FsqlFrontEnd/internal/condition"
	"FsqlFrontEnd/internal/util"
	"strings"
)

// parseCondition reads conjuncts joined by AND/OR, left to right without
// precedence:
//
//	condition := conjunct { (AND | OR) conjunct }
//	conjunct  := [NOT] ( "(" condition ")" | column operator literal )
//
// With nested set it stops at the ')' closing the group its caller opened;
// otherwise it stops when the tokens run out or at ORDER.
func parseCondition(c *cursor, nested bool) (condition.Condition, error) {
	left, err := parseConjunct(c)
	if err != nil {
		return nil, err
	}

	for {
		if c.closes > 0 {
			if !nested {
				return nil, c.errorf("unmatched ')' in condition")
			}
			c.closes--
			return left, nil
		}

		tok, ok := c.peek()
		if !ok || c.at("ORDER") {
			if nested {
				return nil, c.errorf("missing ')' in condition")
			}
			return left, nil
		}

		op := strings.ToUpper(tok)
		if op != "AND" && op != "OR" {
			return nil, c.errorf("invalid conditional operator %q", tok)
		}
		c.advance()

		right, err := parseConjunct(c)
		if err != nil {
			return nil, err
		}
		if op == "AND" {
			left = &condition.And{Left: left, Right: right}
		} else {
			left = &condition.Or{Left: left, Right: right}
		}
	}
}

func parseConjunct(c *cursor) (condition.Condition, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, c.errorf("incomplete condition")
	}

	if strings.EqualFold(tok, "NOT") {
		c.advance()
		inner, err := parseConjunct(c)
		if err != nil {
			return nil, err
		}
		return &condition.Not{Inner: inner}, nil
	}

	if strings.HasPrefix(tok, "(") {
		c.consumeOpen()
		return parseCondition(c, true)
	}

	return parsePredicate(c)
}

// parsePredicate reads "column operator literal". Closing parens at the end
// of the literal, or in standalone tokens right after it, are recorded on
// the cursor for the enclosing groups.
func parsePredicate(c *cursor) (condition.Condition, error) {
	column, _ := c.next()
	if strings.ContainsAny(column, "()") {
		return nil, c.errorf("invalid column name %q in condition", column)
	}

	rawOp, ok := c.next()
	if !ok {
		return nil, c.errorf("incomplete condition after %q", column)
	}
	op, ok := condition.ParseOperator(rawOp)
	if !ok {
		return nil, c.errorf("unknown operator %q in condition, valid operators are: =, !=, <, >, <=, >=", rawOp)
	}

	literal, ok := c.next()
	if !ok {
		return nil, c.errorf("missing value after %s %s", column, rawOp)
	}
	literal, closes := trimClosingParens(literal)
	if literal == "" {
		return nil, c.errorf("missing value after %s %s", column, rawOp)
	}
	for {
		tok, ok := c.peek()
		if !ok || strings.Trim(tok, ")") != "" {
			break
		}
		closes += len(tok)
		c.advance()
	}
	c.closes += closes

	return condition.NewPredicate(column, op, util.StripQuotes(literal)), nil
}

func trimClosingParens(raw string) (string, int) {
	trimmed := strings.TrimRight(raw, ")")
	return trimmed, len(raw) - len(trimmed)
}
