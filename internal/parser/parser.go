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
	"FsqlFrontEnd/internal/operation"
	"FsqlFrontEnd/internal/table"
	"FsqlFrontEnd/internal/util"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Parser turns instruction strings into operations on tables stored under
// TableDir. A Parser holds no per-command state and may be reused.
type Parser struct {
	TableDir string
	// Extension is appended to table names to form file names.
	Extension string
}

func New(tableDir string) *Parser {
	return &Parser{TableDir: tableDir, Extension: util.DefaultTableExtension}
}

// Parse parses command against the tables in tableDir using the default
// table extension.
func Parse(tableDir string, command string) (operation.Operation, error) {
	return New(tableDir).Parse(command)
}

func (p *Parser) Parse(command string) (operation.Operation, error) {
	command = strings.TrimSpace(command)
	command = strings.TrimSpace(strings.TrimSuffix(command, ";"))

	tokens := tokenize(command)
	if len(tokens) == 0 {
		return nil, util.NewInvalidSyntax("empty instruction. Valid instructions are: INSERT, DELETE, UPDATE, SELECT")
	}
	log.Tracef("Tokens: %q", tokens)

	c := newCursor(tokens)
	instr := strings.ToUpper(tokens[0])
	c.instr = instr
	c.advance()

	switch instr {
	case "INSERT":
		return p.parseInsert(c)
	case "DELETE":
		return p.parseDelete(c)
	case "UPDATE":
		return p.parseUpdate(c)
	case "SELECT":
		return p.parseSelect(c)
	default:
		return nil, util.NewInvalidSyntax("invalid instruction %q. Valid instructions are: INSERT, DELETE, UPDATE, SELECT", tokens[0])
	}
}

// tablePath consumes a table name and resolves it to a file path.
func (p *Parser) tablePath(c *cursor) (string, error) {
	name, ok := c.next()
	if !ok {
		return "", c.errorf("missing table name")
	}
	if strings.ContainsAny(name, "()") || isKeyword(name) {
		return "", c.errorf("missing table name before %q", name)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", util.NewInvalidTable(nil, "invalid table name %q", name)
	}
	return filepath.Join(p.TableDir, name+p.Extension), nil
}

// parseWhere parses an optional "WHERE <condition>" clause. A missing
// clause is AlwaysTrue unless required is set.
func (p *Parser) parseWhere(c *cursor, required bool) (condition.Condition, error) {
	if !c.at("WHERE") {
		if required {
			return nil, c.errorf("missing WHERE")
		}
		return condition.AlwaysTrue{}, nil
	}
	c.advance()

	if c.done() {
		return nil, c.errorf("missing condition after WHERE")
	}
	return parseCondition(c, false)
}

// checkValue rejects a value that would split a field once written. Table
// fields are stored without escaping.
func checkValue(c *cursor, value string) error {
	if strings.ContainsAny(value, table.Separator+"\r\n") {
		return c.errorf("value %q contains a comma or line break", value)
	}
	return nil
}

// expectEnd fails if tokens remain after a complete instruction.
func expectEnd(c *cursor) error {
	if tok, ok := c.peek(); ok {
		return c.errorf("unexpected %q", tok)
	}
	return nil
}

var keywords = map[string]bool{
	"INSERT": true, "INTO": true, "VALUES": true,
	"DELETE": true, "FROM": true, "WHERE": true,
	"UPDATE": true, "SET": true,
	"SELECT": true, "ORDER": true, "BY": true, "ASC": true, "DESC": true,
	"AND": true, "OR": true, "NOT": true,
}

func isKeyword(tok string) bool {
	return keywords[strings.ToUpper(tok)]
}
