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
	"FsqlFrontEnd/internal/util"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	FlagConfigFilePath string
	FlagLogLevel       string
	FlagLogFile        string
	FlagOutput         string
	FlagExtension      string
	FlagJson           bool

	// Set by PersistentPreRunE before any RunE
	config *util.Config

	RootCmd = &cobra.Command{
		Use:   "fsql [flags] TABLE_DIR INSTRUCTION",
		Short: "Run an SQL-like instruction against comma separated table files",
		Long: `Run one INSERT, DELETE, UPDATE or SELECT instruction against the tables
stored under TABLE_DIR. A table named "people" is the file people.csv
(see --ext) whose first line is the header.

Examples:
  fsql ./data "SELECT id, name FROM people WHERE age > 30 ORDER BY name DESC"
  fsql ./data "INSERT INTO people (id, name, age) VALUES (7, Ana, 41)"
  fsql ./data "UPDATE people SET age = 42 WHERE id = 7"
  fsql ./data "DELETE FROM people WHERE NOT (age >= 18)"`,
		Version:           util.Version(),
		Args:              cobra.ExactArgs(2),
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	explainCmd = &cobra.Command{
		Use:   "explain TABLE_DIR INSTRUCTION",
		Short: "Parse an instruction and print it as a tree without running it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Explain(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintConfig(cmd.OutOrStdout())
		},
	}
)

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := util.LoadConfig(FlagConfigFilePath, cmd.Flags())
	if err != nil {
		return &util.CmdError{Code: util.ErrorCmdArg, Message: fmt.Sprintf("Invalid configuration: %s.", err)}
	}
	if FlagJson {
		cfg.Output = util.OutputJson
	}
	if err := util.InitLogger(&cfg.Log); err != nil {
		return err
	}

	config = cfg
	return nil
}

func ParseCmdArgs() {
	util.RunEWrapperForLeafCommand(RootCmd)
	util.RunAndHandleExit(RootCmd)
}

func init() {
	RootCmd.SetVersionTemplate(util.VersionTemplate())
	RootCmd.AddCommand(explainCmd, configCmd)

	RootCmd.PersistentFlags().StringVarP(&FlagConfigFilePath, "config", "C", util.DefaultConfigPath,
		"Path to configuration file")
	RootCmd.PersistentFlags().StringVarP(&FlagLogLevel, "log-level", "l", "",
		"Log level: trace, debug, info, warn, error (default warn)")
	RootCmd.PersistentFlags().StringVar(&FlagLogFile, "log-file", "",
		"Write logs to this file instead of stderr")
	RootCmd.PersistentFlags().StringVarP(&FlagOutput, "output", "o", "",
		"Output format of SELECT: csv, table, json, auto (default csv)")
	RootCmd.PersistentFlags().BoolVar(&FlagJson, "json", false,
		"Output in JSON, same as --output json")
	RootCmd.PersistentFlags().StringVar(&FlagExtension, "ext", "",
		"File extension of table files (default .csv)")
}
