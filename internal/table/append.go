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

package table

import (
	"FsqlFrontEnd/internal/util"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Append adds rows to the end of the table at path with a single write.
// A newline is inserted first if the file does not end with one.
func Append(path string, rows [][]string) error {
	for _, row := range rows {
		if err := CheckFields(row); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return util.NewInvalidTable(err, "table directory or table name is incorrect: %s", path)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return util.NewGenericError(err, "failed to edit table %s", path)
	}

	var b strings.Builder
	if info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := file.ReadAt(last, info.Size()-1); err != nil {
			return util.NewGenericError(err, "failed to edit table %s", path)
		}
		if last[0] != '\n' {
			b.WriteByte('\n')
		}
	}
	for _, row := range rows {
		b.WriteString(JoinFields(row))
		b.WriteByte('\n')
	}

	if _, err := file.WriteString(b.String()); err != nil {
		return util.NewGenericError(err, "failed to edit table %s", path)
	}
	log.Debugf("Appended %d row(s) to table %s", len(rows), path)

	return nil
}
