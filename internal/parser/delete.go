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

// parseDelete parses:
//
//	DELETE FROM table [WHERE condition]
func (p *Parser) parseDelete(c *cursor) (operation.Operation, error) {
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
	if err := expectEnd(c); err != nil {
		return nil, err
	}

	return &operation.Delete{Path: path, Where: where}, nil
}
