/*
 * interfaces.go, part of asmap.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chem

import (
	"fmt"
	"strings"
)

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the caller to the decoration slice. An empty string just returns the current value.
}

//CError is the concrete error type used by the readers and the bond code.
type CError struct {
	msg      string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *CError) Error() string {
	if err.filename == "" {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.filename, err.msg)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//FileName returns the name of the file where the error happened, if any.
func (err *CError) FileName() string { return err.filename }

//Critical is true for errors that leave the read data unusable.
func (err *CError) Critical() bool { return err.critical }

//Trace returns the decoration, innermost caller first.
func (err *CError) Trace() string { return strings.Join(err.deco, " <- ") }

func newError(filename, caller, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), filename: filename, deco: []string{caller}, critical: true}
}

//errDecorate adds caller to the decoration of err if err implements Error,
//and returns err.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
