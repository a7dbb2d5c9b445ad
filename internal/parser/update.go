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

// parseUpdate parses:
//
//	UPDATE table SET col = val [col = val ...] WHERE condition
//
// The WHERE clause is required.
func (p *Parser) parseUpdate(c *cursor) (operation.Operation, error) {
	path, err := p.tablePath(c)
	if err != nil {
		return nil, err
	}

	if err := c.expect("SET"); err != nil {
		return nil, err
	}

	var raw []string
	for !c.done() && !c.at("WHERE") {
		tok, _ := c.next()
		raw = append(raw, tok)
	}
	if len(raw) == 0 {
		return nil, c.errorf("missing assignments after SET")
	}

	assignments, err := parseAssignments(strings.Join(raw, " "))
	if err != nil {
		return nil, c.errorf("%v", err)
	}
	for _, a := range assignments {
		if err := checkValue(c, a.Value); err != nil {
			return nil, err
		}
	}

	where, err := p.parseWhere(c, true)
	if err != nil {
		return nil, err
	}
	if err := expectEnd(c); err != nil {
		return nil, err
	}

	return &operation.Update{Path: path, Assignments: assignments, Where: where}, nil
}
