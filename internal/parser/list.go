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
	"FsqlFrontEnd/internal/util"
	"strings"
)

// readList reads a parenthesized list such as "(id, name)" spread over the
// tokens from one containing '(' to one containing ')'. A token holding both
// parens is a complete list.
func readList(c *cursor, what string) ([]string, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, c.errorf("missing %s", what)
	}
	if !strings.Contains(tok, "(") {
		return nil, c.errorf("invalid syntax for %s, expected '(' but found %q", what, tok)
	}

	var items []string
	for {
		tok, ok := c.next()
		if !ok {
			return nil, c.errorf("missing ')' closing %s", what)
		}
		values, closed := listItems(tok)
		items = append(items, values...)
		if closed {
			break
		}
	}

	if len(items) == 0 {
		return nil, c.errorf("empty %s", what)
	}
	return items, nil
}

// listItems strips the paren and comma decoration of one list token and
// returns the values it holds, unquoted, and whether it closes the list.
// Decoration inside quotes is kept.
func listItems(tok string) ([]string, bool) {
	var items []string
	closed := false
	var cur strings.Builder
	quoted := false
	var quote byte

	flush := func() {
		if cur.Len() > 0 || quoted {
			items = append(items, cur.String())
		}
		cur.Reset()
		quoted = false
	}

	for i := 0; i < len(tok); i++ {
		b := tok[i]
		switch {
		case quote != 0:
			if b == quote {
				quote = 0
			} else {
				cur.WriteByte(b)
			}
		case util.IsQuote(b) && cur.Len() == 0 && !quoted:
			quote = b
			quoted = true
		case b == '(':
		case b == ')':
			closed = true
		case b == ',':
			flush()
		default:
			cur.WriteByte(b)
		}
	}
	flush()

	return items, closed
}
