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
	"FsqlFrontEnd/internal/operation"
	"strings"
)

// parseSelect parses:
//
//	SELECT col, ... FROM table [WHERE condition] [ORDER BY col [ASC|DESC]]
func (p *Parser) parseSelect(c *cursor) (operation.Operation, error) {
	var columns []string
	for !c.done() && !c.at("FROM") {
		tok, _ := c.next()
		columns = append(columns, tok)
	}
	if len(columns) == 0 {
		return nil, c.errorf("missing column list")
	}

	if err := c.expect("FROM"); err != nil {
		return nil, err
	}

	path, err := p.tablePath(c)
	if err != nil {
		return nil, err
	}

	where, err := p.parseWhere(c, false)
	if err != nil {
		return nil, err
	}

	op := &operation.Select{Path: path, Columns: columns, Where: where, Ascending: true}

	if c.at("ORDER") {
		c.advance()
		if err := c.expect("BY"); err != nil {
			return nil, err
		}
		column, ok := c.next()
		if !ok {
			return nil, c.errorf("missing column after ORDER BY")
		}
		op.OrderBy = column

		if tok, ok := c.peek(); ok {
			switch strings.ToUpper(tok) {
			case "ASC":
				c.advance()
			case "DESC":
				op.Ascending = false
				c.advance()
			}
		}
	}

	if err := expectEnd(c); err != nil {
		return nil, err
	}

	return op, nil
}
