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
	"fmt"
	"strings"
	"unicode"
)

// tokenize splits command on whitespace. Commas outside parentheses
// separate tokens like whitespace does; inside parentheses they stay
// attached to the tokens and are split later by readList. A quote starting
// a token (or following '(', ',' or '=') runs to the matching quote.
func tokenize(command string) []string {
	var tokens []string
	var cur strings.Builder
	var quote rune
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	prev := rune(0)
	for _, r := range command {
		switch {
		case quote != 0:
			cur.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case (r == '\'' || r == '"') && (cur.Len() == 0 || prev == '(' || prev == ',' || prev == '='):
			quote = r
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		case r == ',' && depth == 0:
			flush()
		default:
			if r == '(' {
				depth++
			} else if r == ')' && depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()

	return tokens
}

// cursor walks the tokens of one command. Parsing subroutines share it by
// pointer and advance it as they consume tokens.
type cursor struct {
	tokens []string
	pos    int
	// closes counts ')' read off the end of the last literal and not yet
	// matched by an enclosing parenthesized condition.
	closes int
	// instr names the instruction being parsed, for error messages.
	instr string
}

func newCursor(tokens []string) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) peek() (string, bool) {
	if c.done() {
		return "", false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (string, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

func (c *cursor) advance() {
	c.pos++
}

// at reports whether the current token is keyword, ignoring case.
func (c *cursor) at(keyword string) bool {
	tok, ok := c.peek()
	return ok && strings.EqualFold(tok, keyword)
}

// expect consumes keyword or fails.
func (c *cursor) expect(keyword string) error {
	tok, ok := c.next()
	if !ok {
		return c.errorf("missing %s", keyword)
	}
	if !strings.EqualFold(tok, keyword) {
		return c.errorf("expected %s, found %q", keyword, tok)
	}
	return nil
}

// consumeOpen removes the '(' starting the current token. A token that was
// only "(" is skipped entirely.
func (c *cursor) consumeOpen() {
	tok := c.tokens[c.pos][1:]
	if tok == "" {
		c.advance()
		return
	}
	c.tokens[c.pos] = tok
}

func (c *cursor) errorf(format string, a ...any) error {
	return util.NewInvalidSyntax("invalid syntax for instruction (%s): %s", c.instr, fmt.Sprintf(format, a...))
}
