/*
 * container.go, part of asmap.
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

//Package interaction perceives the non-covalent interactions between a
//protein and a ligand from their geometry, and keeps them as hints in a
//Container that can be queried with predicates.
package interaction

import (
	"errors"

	chem "github.com/activesite/asmap"
)

//ErrInvalidActiveSite is returned when the protein or the ligand have no atoms.
var ErrInvalidActiveSite = errors.New("cannot initialize active site")

//Component tells which molecule of the active site a fragment belongs to.
type Component int

const (
	ProteinComponent Component = iota
	LigandComponent
)

//Hint is one perceived interaction between a protein fragment and a ligand
//fragment. Fragments are lists of atom indexes in their molecules.
type Hint struct {
	Type     Type
	Protein  []int
	Ligand   []int
	Distance float64
}

//Fragment returns the atom indexes of the hint on the given component.
func (H *Hint) Fragment(c Component) []int {
	if c == LigandComponent {
		return H.Ligand
	}
	return H.Protein
}

//Inter is always true: only protein-ligand interactions are perceived.
func (H *Hint) Inter() bool {
	return len(H.Protein) > 0 && len(H.Ligand) > 0
}

//Container holds an active site and the interactions perceived in it.
type Container struct {
	Title   string
	Protein *chem.Molecule
	Ligand  *chem.Molecule
	hints   []*Hint
}

//NewContainer builds an active site from a protein and a ligand.
func NewContainer(protein, ligand *chem.Molecule) (*Container, error) {
	if protein.Len() == 0 || ligand.Len() == 0 {
		return nil, ErrInvalidActiveSite
	}
	return &Container{Title: ligand.Title, Protein: protein, Ligand: ligand}, nil
}

//Molecule returns the protein or the ligand.
func (C *Container) Molecule(c Component) *chem.Molecule {
	if c == LigandComponent {
		return C.Ligand
	}
	return C.Protein
}

//Add appends a hint to the container.
func (C *Container) Add(h *Hint) {
	C.hints = append(C.hints, h)
}

//NumInteractions returns the number of hints in the container.
func (C *Container) NumInteractions() int {
	return len(C.hints)
}

//Predicate selects hints.
type Predicate func(*Hint) bool

//HasInteraction returns true if any hint satisfies p.
func (C *Container) HasInteraction(p Predicate) bool {
	for _, h := range C.hints {
		if p(h) {
			return true
		}
	}
	return false
}

//Interactions returns the hints that satisfy p, in perception order.
//A nil p selects all of them.
func (C *Container) Interactions(p Predicate) []*Hint {
	ret := make([]*Hint, 0, 8)
	for _, h := range C.hints {
		if p == nil || p(h) {
			ret = append(ret, h)
		}
	}
	return ret
}

//HasAtom selects hints where the atom with index idx of the component c
//takes part.
func HasAtom(c Component, idx int) Predicate {
	return func(h *Hint) bool {
		for _, i := range h.Fragment(c) {
			if i == idx {
				return true
			}
		}
		return false
	}
}

//IsType selects hints of type t.
func IsType(t Type) Predicate {
	return func(h *Hint) bool { return h.Type == t }
}

//IsClass selects hints whose type belongs to class c.
func IsClass(c Class) Predicate {
	return func(h *Hint) bool { return c.Has(h.Type) }
}

//IsInter selects inter-molecular hints.
func IsInter() Predicate {
	return func(h *Hint) bool { return h.Inter() }
}

//And selects hints that satisfy all the predicates.
func And(ps ...Predicate) Predicate {
	return func(h *Hint) bool {
		for _, p := range ps {
			if !p(h) {
				return false
			}
		}
		return true
	}
}
