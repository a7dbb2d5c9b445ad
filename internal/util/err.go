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
)

type CraneCmdError = int

// Exit codes of fsql
const (
	ErrorSuccess       CraneCmdError = 0
	ErrorGeneric       CraneCmdError = 1
	ErrorCmdArg        CraneCmdError = 2
	ErrorInvalidTable  CraneCmdError = 3
	ErrorInvalidColumn CraneCmdError = 4
	ErrorInvalidSyntax CraneCmdError = 5
)

// CmdError is returned from cobra RunE functions. Message is printed
// as-is to stderr when not empty.
type CmdError struct {
	Code    CraneCmdError
	Message string
}

func (e *CmdError) Error() string {
	return e.Message
}

type ErrorKind int

const (
	KindError ErrorKind = iota
	KindInvalidTable
	KindInvalidColumn
	KindInvalidSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidTable:
		return "INVALID_TABLE"
	case KindInvalidColumn:
		return "INVALID_COLUMN"
	case KindInvalidSyntax:
		return "INVALID_SYNTAX"
	default:
		return "ERROR"
	}
}

// ExitCode maps a query error kind to the process exit code.
func (k ErrorKind) ExitCode() CraneCmdError {
	switch k {
	case KindInvalidTable:
		return ErrorInvalidTable
	case KindInvalidColumn:
		return ErrorInvalidColumn
	case KindInvalidSyntax:
		return ErrorInvalidSyntax
	default:
		return ErrorGeneric
	}
}

// QueryError is the error type of every query step. Err holds the
// underlying cause, if any, and is not part of the rendered message.
type QueryError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func NewInvalidTable(err error, format string, a ...any) *QueryError {
	return &QueryError{Kind: KindInvalidTable, Message: fmt.Sprintf(format, a...), Err: err}
}

func NewInvalidColumn(format string, a ...any) *QueryError {
	return &QueryError{Kind: KindInvalidColumn, Message: fmt.Sprintf(format, a...)}
}

func NewInvalidSyntax(format string, a ...any) *QueryError {
	return &QueryError{Kind: KindInvalidSyntax, Message: fmt.Sprintf(format, a...)}
}

func NewGenericError(err error, format string, a ...any) *QueryError {
	return &QueryError{Kind: KindError, Message: fmt.Sprintf(format, a...), Err: err}
}

// KindOf returns the kind of a QueryError found in err's chain.
// Errors of any other type are reported as KindError.
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindError
}
