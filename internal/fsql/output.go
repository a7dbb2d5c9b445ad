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
	"FsqlFrontEnd/internal/table"
	"FsqlFrontEnd/internal/util"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"
)

// Render writes result in the given output format. Only a SELECT has rows;
// the other instructions print their completion message.
func Render(w io.Writer, op operation.Operation, result *operation.Result, format string) error {
	if format == util.OutputAuto {
		if util.IsStdoutTerminal() {
			format = util.OutputTable
		} else {
			format = util.OutputCsv
		}
	}

	if !isSelect(op) {
		if format == util.OutputJson {
			out, err := sjson.Set(`{}`, "message", result.Message)
			if err != nil {
				return util.NewGenericError(err, "failed to build JSON output: %s", err)
			}
			_, err = fmt.Fprintln(w, out)
			return err
		}
		_, err := fmt.Fprintln(w, result.Message)
		return err
	}

	switch format {
	case util.OutputTable:
		util.PrintTable(w, result.Columns, result.Rows)
		return nil
	case util.OutputJson:
		out, err := rowsToJson(result.Columns, result.Rows)
		if err != nil {
			return util.NewGenericError(err, "failed to build JSON output: %s", err)
		}
		_, err = fmt.Fprintln(w, out)
		return err
	default:
		return writeCsv(w, result.Columns, result.Rows)
	}
}

func writeCsv(w io.Writer, columns []string, rows [][]string) error {
	var sb strings.Builder
	sb.WriteString(table.JoinFields(columns))
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(table.JoinFields(row))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// rowsToJson builds an array with one object per row. Keys keep the column
// order of the projection and every value is a string.
func rowsToJson(columns []string, rows [][]string) (string, error) {
	out := `[]`
	for i, row := range rows {
		obj := `{}`
		for j, column := range columns {
			var err error
			obj, err = sjson.Set(obj, escapeJsonPath(column), row[j])
			if err != nil {
				return "", err
			}
		}

		var err error
		out, err = sjson.SetRaw(out, fmt.Sprintf("%d", i), obj)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

var jsonPathEscaper = strings.NewReplacer(
	`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`, `:`, `\:`,
)

// escapeJsonPath makes a column name usable as a literal sjson key.
func escapeJsonPath(column string) string {
	return jsonPathEscaper.Replace(column)
}
