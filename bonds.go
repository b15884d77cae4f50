/*
 * bonds.go, part of asmap.
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
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //Order 0 means undetermined
}

//Cross returns the atom bonded to origin through B.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

func (M *Molecule) addBond(at1, at2 *Atom, dist, order float64) *Bond {
	b := &Bond{Index: len(M.Bonds), At1: at1, At2: at2, Dist: dist, Order: order}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	M.Bonds = append(M.Bonds, b)
	return b
}

//AddBond bonds the atoms with indexes i and j, with the given order (0 if unknown).
func (M *Molecule) AddBond(i, j int, order float64) (*Bond, error) {
	if i == j || i < 0 || j < 0 || i >= M.Len() || j >= M.Len() {
		return nil, fmt.Errorf("AddBond: invalid atom pair %d-%d for a molecule with %d atoms", i, j, M.Len())
	}
	a1, a2 := M.Atoms[i], M.Atoms[j]
	return M.addBond(a1, a2, r3.Norm(r3.Sub(a1.Coord, a2.Coord)), order), nil
}

//return a new *Bond slice without the bond b
func takefromslice(bonds []*Bond, b *Bond) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v != b {
			newb = append(newb, v)
		}
	}
	return newb
}

//RemoveBond removes b from both its atoms and from the molecule.
func (M *Molecule) RemoveBond(b *Bond) {
	b.At1.Bonds = takefromslice(b.At1.Bonds, b)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b)
	M.Bonds = takefromslice(M.Bonds, b)
	for i, v := range M.Bonds {
		v.Index = i
	}
}

//AssignBonds assigns bonds to a molecule based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33
//Any previous bonds are discarded.
func AssignBonds(M *Molecule) error {
	// might get slow for
	//large systems. It's really not thought
	//for proteins or macromolecules.
	for _, at := range M.Atoms {
		at.Bonds = nil
	}
	M.Bonds = M.Bonds[:0]
	tot := M.Len()
	for i := 0; i < tot; i++ {
		at1 := M.Atoms[i]
		if at1.Symbol == "" {
			return newError("", "AssignBonds", "Atom %d has no element symbol", i)
		}
		cov1 := CovalentRadius(at1.Symbol)
		for j := i + 1; j < tot; j++ {
			at2 := M.Atoms[j]
			if at2.Symbol == "" {
				return newError("", "AssignBonds", "Atom %d has no element symbol", j)
			}
			d := r3.Norm(r3.Sub(at2.Coord, at1.Coord))
			if d < cov1+CovalentRadius(at2.Symbol)+bondtol && d > tooclose {
				M.addBond(at1, at2, d, 0)
			}
		}
	}

	//Now we check that no atom has too many bonds.
	for _, at := range M.Atoms {
		maxb := symbolMaxBonds[at.Symbol]
		if maxb == 0 {
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > maxb {
			M.RemoveBond(at.Bonds[len(at.Bonds)-1]) //we remove the longest bond
		}
	}
	return nil
}
