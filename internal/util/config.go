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
	"errors"
	"fmt"
	"io/fs"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	TableExtension string    `mapstructure:"TableExtension" yaml:"TableExtension"`
	Output         string    `mapstructure:"Output" yaml:"Output"`
	Log            LogConfig `mapstructure:"Log" yaml:"Log"`
}

type LogConfig struct {
	Level      string `mapstructure:"Level" yaml:"Level"`
	File       string `mapstructure:"File" yaml:"File"`
	MaxSize    int    `mapstructure:"MaxSize" yaml:"MaxSize"` // megabytes
	MaxBackups int    `mapstructure:"MaxBackups" yaml:"MaxBackups"`
	MaxAge     int    `mapstructure:"MaxAge" yaml:"MaxAge"` // days
}

const (
	OutputCsv   = "csv"
	OutputTable = "table"
	OutputJson  = "json"
	OutputAuto  = "auto"
)

var (
	DefaultConfigPath     = "/etc/fsql/config.yaml"
	DefaultTableExtension = ".csv"
)

// Command line flags overriding config keys
var configFlags = map[string]string{
	"ext":       "TableExtension",
	"output":    "Output",
	"log-level": "Log.Level",
	"log-file":  "Log.File",
}

// LoadConfig merges defaults, the config file at path, FSQL_* environment
// variables and changed flags, in increasing priority. A missing file at
// DefaultConfigPath is not an error.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaultConfig(v)

	v.SetEnvPrefix("FSQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range configFlags {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if path != DefaultConfigPath || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			log.Tracef("Config file %s not found, using defaults", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("TableExtension", DefaultTableExtension)
	v.SetDefault("Output", OutputCsv)

	v.SetDefault("Log.Level", "warn")
	v.SetDefault("Log.File", "")
	v.SetDefault("Log.MaxSize", 10)
	v.SetDefault("Log.MaxBackups", 3)
	v.SetDefault("Log.MaxAge", 28)
}

func validateConfig(cfg *Config) error {
	switch cfg.Output {
	case OutputCsv, OutputTable, OutputJson, OutputAuto:
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Output)
	}

	if cfg.TableExtension != "" && !strings.HasPrefix(cfg.TableExtension, ".") {
		return fmt.Errorf("table extension must start with '.': %s", cfg.TableExtension)
	}
	if strings.ContainsAny(cfg.TableExtension, `/\`) {
		return fmt.Errorf("table extension must not contain a path separator: %s", cfg.TableExtension)
	}

	if err := CheckLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	if cfg.Log.MaxSize < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAge < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}

	return nil
}
