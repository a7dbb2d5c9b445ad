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
	"bufio"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

type Action int

const (
	Keep Action = iota
	Replace
	Drop
)

// Transform decides what happens to one row. The returned fields are only
// used with Replace.
type Transform func(header []string, row []string) (Action, []string, error)

type RewriteStats struct {
	Kept     int
	Replaced int
	Dropped  int
}

// Rewrite streams the table at path through transform into a temporary
// file in the same directory and renames it over the original. If any step
// fails before the rename the original table is left untouched.
func Rewrite(path string, transform Transform) (*RewriteStats, error) {
	scanner, err := Open(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		_ = scanner.Close()
		return nil, util.NewInvalidTable(err, "table directory or table name is incorrect: %s", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		_ = scanner.Close()
		return nil, util.NewGenericError(err, "failed to create temporary file for table %s", path)
	}
	tmpPath := tmp.Name()
	log.Tracef("Rewriting table %s through %s", scanner.Path(), tmpPath)

	stats, err := writeRows(tmp, scanner, transform)
	_ = scanner.Close()
	if err == nil {
		err = tmp.Chmod(info.Mode().Perm())
		if err != nil {
			err = util.NewGenericError(err, "failed to set permissions of temporary file %s", tmpPath)
		}
	}
	if err == nil {
		if err = tmp.Sync(); err != nil {
			err = util.NewGenericError(err, "failed to flush temporary file %s", tmpPath)
		}
	}
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = util.NewGenericError(closeErr, "failed to close temporary file %s", tmpPath)
	}
	if err != nil {
		_ = util.RemoveFileIfExists(tmpPath)
		return nil, err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = util.RemoveFileIfExists(tmpPath)
		return nil, util.NewGenericError(err, "failed to replace table %s", path)
	}
	log.Debugf("Rewrote table %s: %d kept, %d replaced, %d dropped",
		path, stats.Kept, stats.Replaced, stats.Dropped)

	return stats, nil
}

func writeRows(tmp *os.File, scanner *Scanner, transform Transform) (*RewriteStats, error) {
	stats := &RewriteStats{}
	header := scanner.Header()
	w := bufio.NewWriter(tmp)

	if err := writeLine(w, header); err != nil {
		return nil, util.NewGenericError(err, "failed to write temporary file %s", tmp.Name())
	}

	for {
		row, ok, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		action, replacement, err := transform(header, row)
		if err != nil {
			return nil, err
		}

		switch action {
		case Drop:
			stats.Dropped++
			continue
		case Replace:
			if err := CheckFields(replacement); err != nil {
				return nil, err
			}
			stats.Replaced++
			row = replacement
		default:
			stats.Kept++
		}

		if err := writeLine(w, row); err != nil {
			return nil, util.NewGenericError(err, "failed to write temporary file %s", tmp.Name())
		}
	}

	if err := w.Flush(); err != nil {
		return nil, util.NewGenericError(err, "failed to write temporary file %s", tmp.Name())
	}
	return stats, nil
}

func writeLine(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(JoinFields(fields)); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
