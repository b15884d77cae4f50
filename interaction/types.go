/*
 * types.go, part of asmap.
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

package interaction

import (
	"fmt"
	"strings"
)

//Type is the kind of a perceived interaction.
type Type int

const (
	HBond Type = iota
	ChargeAidedHBond
	NonIdealHBond
	HalogenBond
	PiStack
	TStack
	SaltBridge
	CationPi
	Clash
	Contact
)

var typeNames = [...]string{
	HBond:            "hbond",
	ChargeAidedHBond: "charge-aided-hbond",
	NonIdealHBond:    "nonideal-hbond",
	HalogenBond:      "halogen-bond",
	PiStack:          "pi-stack",
	TStack:           "t-stack",
	SaltBridge:       "salt-bridge",
	CationPi:         "cation-pi",
	Clash:            "clash",
	Contact:          "contact",
}

func (T Type) String() string {
	if T < 0 || int(T) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(T))
	}
	return typeNames[T]
}

//Class groups interaction types the way they are reported.
type Class string

const (
	ClassHBond    Class = "hbond"
	ClassHalogen  Class = "halogen"
	ClassStacking Class = "stacking"
	ClassSBridge  Class = "sbridge"
	ClassCationPi Class = "cation-pi"
	ClassClash    Class = "clashcontact"
	ClassContact  Class = "contact"
)

//DefaultClasses is the order in which the classes are reported.
var DefaultClasses = []Class{ClassHBond, ClassHalogen, ClassStacking, ClassSBridge, ClassCationPi, ClassClash, ClassContact}

//Has returns true if interactions of type t belong to the class.
func (C Class) Has(t Type) bool {
	switch C {
	case ClassHBond:
		return t == HBond || t == ChargeAidedHBond || t == NonIdealHBond
	case ClassHalogen:
		return t == HalogenBond
	case ClassStacking:
		return t == PiStack || t == TStack
	case ClassSBridge:
		return t == SaltBridge
	case ClassCationPi:
		return t == CationPi
	case ClassClash:
		return t == Clash
	case ClassContact:
		return t == Contact
	}
	return false
}

//ClassOf returns the class an interaction type belongs to.
func ClassOf(t Type) Class {
	for _, c := range DefaultClasses {
		if c.Has(t) {
			return c
		}
	}
	return ""
}

//ParseClass returns the class with the given name.
func ParseClass(s string) (Class, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range DefaultClasses {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown interaction class %q", s)
}
