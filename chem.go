/*
 * chem.go, part of asmap.
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

	"gonum.org/v1/gonum/spatial/r3"
)

//Atom contains the information read for each atom, coordinates included.
type Atom struct {
	Name      string
	ID        int //serial number in the file
	Index     int //position in the molecule
	MolName   string
	MolID     int
	ICode     string //insertion code
	Chain     string
	Symbol    string
	Charge    int //formal charge
	Occupancy float64
	Bfactor   float64
	Het       bool // is hetatm in the pdb file?
	Coord     r3.Vec
	Bonds     []*Bond
}

//Copy returns a copy of the Atom object. Bonds are not copied.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	N.Bonds = nil
	return &N
}

//Heavy returns true if the atom is not a hydrogen.
func (A *Atom) Heavy() bool {
	return A.Symbol != "H" && A.Symbol != "D"
}

//HeavyBonds returns the number of bonds of A to non-hydrogen atoms.
func (A *Atom) HeavyBonds() int {
	n := 0
	for _, b := range A.Bonds {
		if b.Cross(A).Heavy() {
			n++
		}
	}
	return n
}

//Neighbors returns the atoms bonded to A.
func (A *Atom) Neighbors() []*Atom {
	ret := make([]*Atom, 0, len(A.Bonds))
	for _, b := range A.Bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

//ResKey identifies the residue an atom belongs to.
type ResKey struct {
	Chain  string
	Number int
	ICode  string
	Name   string
}

func (K ResKey) String() string {
	return fmt.Sprintf("%s%d%s:%s", K.Name, K.Number, K.ICode, K.Chain)
}

//Key returns the residue key of the atom.
func (A *Atom) Key() ResKey {
	return ResKey{Chain: A.Chain, Number: A.MolID, ICode: A.ICode, Name: A.MolName}
}

//Residue is a group of consecutive atoms sharing a residue key.
type Residue struct {
	ResKey
	Atoms []int //indexes in the molecule
}

/*****Molecule type***/

//Molecule contains the atoms, bonds and coordinates of a system.
type Molecule struct {
	Title string
	Atoms []*Atom
	Bonds []*Bond
	//true when the bonds were read from the file, so they should not be assigned
	//from geometry.
	HasBonds bool
}

//NewMolecule builds a molecule with the given atoms, setting their
//Index field to their position.
func NewMolecule(title string, ats []*Atom) *Molecule {
	M := &Molecule{Title: title, Atoms: ats}
	M.FillIndexes()
	return M
}

//FillIndexes sets the Index field of each atom to its position in the molecule.
func (M *Molecule) FillIndexes() {
	for i, at := range M.Atoms {
		at.Index = i
	}
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	if M == nil {
		return 0
	}
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//AddAtom appends at to the molecule.
func (M *Molecule) AddAtom(at *Atom) {
	at.Index = len(M.Atoms)
	M.Atoms = append(M.Atoms, at)
}

//HasHydrogens returns true if any atom in the molecule is a hydrogen.
func (M *Molecule) HasHydrogens() bool {
	for _, at := range M.Atoms {
		if !at.Heavy() {
			return true
		}
	}
	return false
}

//HeavyAtoms returns the indexes of the non-hydrogen atoms.
func (M *Molecule) HeavyAtoms() []int {
	ret := make([]int, 0, len(M.Atoms))
	for i, at := range M.Atoms {
		if at.Heavy() {
			ret = append(ret, i)
		}
	}
	return ret
}

//Residues groups consecutive atoms with the same residue key.
func (M *Molecule) Residues() []*Residue {
	ret := make([]*Residue, 0, len(M.Atoms)/8+1)
	var curr *Residue
	for i, at := range M.Atoms {
		k := at.Key()
		if curr == nil || curr.ResKey != k {
			curr = &Residue{ResKey: k}
			ret = append(ret, curr)
		}
		curr.Atoms = append(curr.Atoms, i)
	}
	return ret
}

//SomeAtoms returns a new molecule with copies of the atoms listed
//in atomlist, and with the bonds among them.
func (M *Molecule) SomeAtoms(atomlist []int) *Molecule {
	N := &Molecule{Title: M.Title, HasBonds: M.HasBonds}
	old2new := make(map[int]*Atom, len(atomlist))
	for _, i := range atomlist {
		at := M.Atom(i).Copy()
		N.AddAtom(at)
		old2new[i] = at
	}
	for _, b := range M.Bonds {
		a1, ok1 := old2new[b.At1.Index]
		a2, ok2 := old2new[b.At2.Index]
		if ok1 && ok2 {
			N.addBond(a1, a2, b.Dist, b.Order)
		}
	}
	return N
}

//ResidueNames returns the distinct residue names in the molecule, in order
//of appearance.
func (M *Molecule) ResidueNames() []string {
	ret := make([]string, 0, 4)
	for _, r := range M.Residues() {
		if !isInString(ret, r.Name) {
			ret = append(ret, r.Name)
		}
	}
	return ret
}

func (M *Molecule) String() string {
	return fmt.Sprintf("%s (%d atoms, residues: %s)", M.Title, M.Len(), strings.Join(M.ResidueNames(), ","))
}
