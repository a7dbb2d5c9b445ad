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

package fsql

import (
	"FsqlFrontEnd/internal/operation"
	"FsqlFrontEnd/internal/parser"
	"FsqlFrontEnd/internal/util"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

func currentConfig() *util.Config {
	if config != nil {
		return config
	}
	return &util.Config{TableExtension: util.DefaultTableExtension, Output: util.OutputCsv}
}

func newParser(tableDir string) *parser.Parser {
	p := parser.New(tableDir)
	if ext := currentConfig().TableExtension; ext != "" {
		p.Extension = ext
	}
	return p
}

// Run parses instruction, executes it against the tables in tableDir and
// writes the result to w.
func Run(w io.Writer, tableDir string, instruction string) error {
	op, err := newParser(tableDir).Parse(instruction)
	if err != nil {
		return err
	}
	log.Debugf("Executing %s on %s", op.Name(), op.Table())

	result, err := op.Execute()
	if err != nil {
		return err
	}
	log.Debug(result.Message)

	return Render(w, op, result, currentConfig().Output)
}

func PrintConfig(w io.Writer) error {
	out, err := yaml.Marshal(currentConfig())
	if err != nil {
		return util.NewGenericError(err, "failed to marshal configuration: %s", err)
	}
	_, err = fmt.Fprint(w, string(out))
	return err
}

func isSelect(op operation.Operation) bool {
	_, ok := op.(*operation.Select)
	return ok
}
