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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunEWrapperForLeafCommand silences cobra's own error and usage output on
// every leaf command, so errors returned from RunE are only reported by
// RunAndHandleExit.
func RunEWrapperForLeafCommand(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		RunEWrapperForLeafCommand(sub)
	}

	if cmd.RunE == nil {
		return
	}
	runE := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return runE(cmd, args)
	}
}

// ExitCodeOf maps err to the process exit code.
func ExitCodeOf(err error) CraneCmdError {
	if err == nil {
		return ErrorSuccess
	}

	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return queryErr.Kind.ExitCode()
	}
	var cmdErr *CmdError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	// cobra reports unknown flags and bad arguments as plain errors
	return ErrorCmdArg
}

// RunAndHandleExit executes cmd and terminates the process with the exit
// code matching the returned error.
func RunAndHandleExit(cmd *cobra.Command) {
	err := cmd.Execute()
	if err == nil {
		os.Exit(ErrorSuccess)
	}

	log.Debugf("Command failed (%s): %v", KindOf(err), err)

	var cmdErr *CmdError
	var queryErr *QueryError
	switch {
	case errors.As(err, &queryErr):
		fmt.Fprintln(os.Stderr, queryErr.Error())
	case errors.As(err, &cmdErr):
		if cmdErr.Message != "" {
			fmt.Fprintln(os.Stderr, cmdErr.Message)
		}
	}
	os.Exit(ExitCodeOf(err))
}
