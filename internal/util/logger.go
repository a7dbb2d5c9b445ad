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

package util

import (
	"fmt"
	"os"
	"strings"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func ParseLogLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return log.TraceLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func CheckLogLevel(level string) error {
	_, err := ParseLogLevel(level)
	return err
}

// InitLogger configures the global logrus logger. Logs go to stderr unless
// a log file is configured, in which case they are rotated by lumberjack.
func InitLogger(cfg *LogConfig) error {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return &CmdError{
			Code:    ErrorCmdArg,
			Message: fmt.Sprintf("Invalid log level %q. Valid log levels are: trace, debug, info, warn, error.", cfg.Level),
		}
	}

	log.SetLevel(level)
	log.SetReportCaller(level >= log.TraceLevel)

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&nested.Formatter{HideKeys: true})
		return nil
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	})
	log.SetFormatter(&nested.Formatter{HideKeys: true, NoColors: true})
	return nil
}
