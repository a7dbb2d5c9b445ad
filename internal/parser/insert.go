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
)

// parseInsert parses:
//
//	INSERT INTO table (col, ...) VALUES (val, ...) [(val, ...) ...]
func (p *Parser) parseInsert(c *cursor) (operation.Operation, error) {
	if err := c.expect("INTO"); err != nil {
		return nil, err
	}

	path, err := p.tablePath(c)
	if err != nil {
		return nil, err
	}

	columns, err := readList(c, "the column list")
	if err != nil {
		return nil, err
	}

	if err := c.expect("VALUES"); err != nil {
		return nil, err
	}
	if c.done() {
		return nil, c.errorf("missing values after VALUES")
	}

	var rows [][]string
	for !c.done() {
		values, err := readList(c, "the value list")
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			if err := checkValue(c, v); err != nil {
				return nil, err
			}
		}
		if len(values) != len(columns) {
			return nil, c.errorf("value list %d has %d values for %d columns", len(rows)+1, len(values), len(columns))
		}
		rows = append(rows, values)
	}

	return &operation.Insert{Path: path, Columns: columns, Rows: rows}, nil
}
