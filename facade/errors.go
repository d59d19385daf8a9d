// SPDX-License-Identifier: MIT
// Package facade parses single-line Cmd[Arg] commands and dispatches them
// to Subgroup/MasterGroup queries, formatting every result (or failure) as
// a plain string so a caller can wire stdin/stdout without depending on
// the group-analysis types directly.
package facade

import "errors"

var (
	// ErrParse is returned when a command string does not match the
	// Cmd[Arg] shape (no brackets, mismatched brackets, or whitespace
	// around the brackets).
	ErrParse = errors.New("facade: command does not match Cmd[Arg] shape")

	// ErrUnknownCommand is returned when Cmd is not one of the fixed
	// dictionary entries.
	ErrUnknownCommand = errors.New("facade: unknown command")

	// ErrUnknownGroup is returned when Arg does not name a group the
	// Service knows about.
	ErrUnknownGroup = errors.New("facade: unknown group")

	// ErrNotImplemented is returned by Service.Run for a dictionary command
	// that has no dispatch case; every current dictionary command has one.
	ErrNotImplemented = errors.New("facade: not implemented")

	// ErrInternal wraps any execution fault that is not one of the above,
	// distinct kinds.
	ErrInternal = errors.New("facade: internal error")
)
