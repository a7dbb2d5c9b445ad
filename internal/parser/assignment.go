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
	"FsqlFrontEnd/internal/util"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type assignmentList struct {
	Assignments []*assignmentExpr `parser:"@@+"`
}

type assignmentExpr struct {
	Column string `parser:"@(Word | Quoted)"`
	Value  string `parser:"'=' @(Word | Quoted)"`
}

var assignmentLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Quoted", Pattern: `'[^']*'|"[^"]*"`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Word", Pattern: `[^=\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var assignmentParser = participle.MustBuild[assignmentList](
	participle.Lexer(assignmentLexer),
	participle.Elide("Whitespace"),
)

// parseAssignments parses the SET clause of an UPDATE, e.g.
// `name = 'Ana Maria' age=30`.
func parseAssignments(raw string) ([]operation.Assignment, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("missing assignments after SET")
	}

	list, err := assignmentParser.ParseString("", raw)
	if err != nil {
		return nil, fmt.Errorf("bad assignments %q: %w", raw, err)
	}

	result := make([]operation.Assignment, 0, len(list.Assignments))
	for _, expr := range list.Assignments {
		result = append(result, operation.Assignment{
			Column: util.StripQuotes(expr.Column),
			Value:  util.StripQuotes(expr.Value),
		})
	}
	return result, nil
}
