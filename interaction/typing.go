/*
 * typing.go, part of asmap.
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
	"strings"

	chem "github.com/activesite/asmap"
	"github.com/activesite/asmap/chemgraph"
)

//atomType holds what an atom can do in an interaction.
type atomType struct {
	donor    bool
	acceptor bool
	charge   int //sign only
	halogen  bool
}

type polar struct{ donor, acceptor bool }

//Side chain polar atoms. Backbone atoms are handled apart.
var sideChainPolar = map[string]map[string]polar{
	"SER": {"OG": {true, true}},
	"THR": {"OG1": {true, true}},
	"TYR": {"OH": {true, true}},
	"ASN": {"OD1": {false, true}, "ND2": {true, false}},
	"GLN": {"OE1": {false, true}, "NE2": {true, false}},
	"HIS": {"ND1": {true, true}, "NE2": {true, true}},
	"LYS": {"NZ": {true, false}},
	"ARG": {"NE": {true, false}, "NH1": {true, false}, "NH2": {true, false}},
	"ASP": {"OD1": {false, true}, "OD2": {false, true}},
	"GLU": {"OE1": {false, true}, "OE2": {false, true}},
	"TRP": {"NE1": {true, false}},
	"CYS": {"SG": {true, true}},
	"MET": {"SD": {false, true}},
}

//Charged side chain atoms.
var sideChainCharge = map[string]map[string]int{
	"ARG": {"NE": 1, "NH1": 1, "NH2": 1},
	"LYS": {"NZ": 1},
	"HIP": {"ND1": 1, "NE2": 1},
	"ASP": {"OD1": -1, "OD2": -1},
	"GLU": {"OE1": -1, "OE2": -1},
}

//Aromatic side chain rings, by atom names.
var sideChainRings = map[string][][]string{
	"PHE": {{"CG", "CD1", "CD2", "CE1", "CE2", "CZ"}},
	"TYR": {{"CG", "CD1", "CD2", "CE1", "CE2", "CZ"}},
	"TRP": {{"CG", "CD1", "NE1", "CE2", "CD2"}, {"CD2", "CE2", "CZ2", "CH2", "CZ3", "CE3"}},
	"HIS": {{"CG", "ND1", "CD2", "CE1", "NE2"}},
}

//canonical residue names for the tables above.
var resAliases = map[string]string{
	"HID": "HIS", "HIE": "HIS", "HIP": "HIS", "HSD": "HIS", "HSE": "HIS", "HSP": "HIS",
	"CYX": "CYS", "CYM": "CYS", "ASH": "ASP", "GLH": "GLU", "LYN": "LYS", "MSE": "MET",
}

func canonical(resname string) string {
	r := strings.ToUpper(resname)
	if a, ok := resAliases[r]; ok {
		return a
	}
	return r
}

func proteinAtomType(at *chem.Atom) atomType {
	var t atomType
	res := canonical(at.MolName)
	switch at.Name {
	case "N":
		t.donor = res != "PRO"
	case "O", "OXT":
		t.acceptor = true
		if at.Name == "OXT" {
			t.charge = -1
		}
	}
	if p, ok := sideChainPolar[res][at.Name]; ok {
		t.donor, t.acceptor = p.donor, p.acceptor
	}
	//protonation variants keep their raw name, so ASH or HID stay neutral
	rawres := strings.ToUpper(at.MolName)
	if rawres == "HSP" {
		rawres = "HIP"
	}
	if c, ok := sideChainCharge[rawres][at.Name]; ok {
		t.charge = c
	}
	if at.Charge != 0 {
		t.charge = sign(at.Charge)
	}
	if (at.Symbol == "O" || at.Symbol == "N") && isWaterName(at.MolName) {
		t.donor, t.acceptor = true, true
	}
	return t
}

func isWaterName(n string) bool {
	n = strings.ToUpper(n)
	return n == "HOH" || n == "WAT" || strings.HasPrefix(n, "TIP") || n == "SOL" || n == "DOD"
}

func sign(i int) int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	}
	return 0
}

func bondedToH(at *chem.Atom) bool {
	for _, n := range at.Neighbors() {
		if !n.Heavy() {
			return true
		}
	}
	return false
}

//isCarboxylateO returns true for the oxygens of a COO group, where
//both oxygens are only bonded to the carbon.
func isCarboxylateO(at *chem.Atom) bool {
	if at.Symbol != "O" || at.HeavyBonds() != 1 || bondedToH(at) {
		return false
	}
	for _, c := range at.Neighbors() {
		if c.Symbol != "C" {
			continue
		}
		terminalO := 0
		for _, n := range c.Neighbors() {
			if n.Symbol == "O" && n.HeavyBonds() == 1 && !bondedToH(n) {
				terminalO++
			}
		}
		if terminalO == 2 {
			return true
		}
	}
	return false
}

//ligandAtomType assigns roles from the bonding pattern. If the ligand
//has hydrogens, donors need one.
func ligandAtomType(at *chem.Atom, hasH bool) atomType {
	var t atomType
	heavy := at.HeavyBonds()
	switch at.Symbol {
	case "N":
		t.acceptor = heavy < 4 && at.Charge <= 0
		if hasH {
			t.donor = bondedToH(at)
		} else {
			t.donor = heavy < 3 || at.Charge > 0
		}
		if heavy == 4 {
			t.charge = 1
		}
	case "O":
		t.acceptor = true
		if hasH {
			t.donor = bondedToH(at)
		} else {
			t.donor = heavy < 2
		}
		if isCarboxylateO(at) {
			t.charge = -1
			t.donor = false
		}
	case "S":
		t.acceptor = heavy <= 2
	case "Cl", "Br", "I":
		t.halogen = true
	}
	if at.Charge != 0 {
		t.charge = sign(at.Charge)
	}
	return t
}

//site is the active site with the atoms typed and the rings found.
type site struct {
	c         *Container
	opts      Options
	protNear  []int //protein heavy atoms close enough to the ligand to matter
	ligHeavy  []int
	protTypes map[int]atomType
	ligTypes  map[int]atomType
	protRings []*chemgraph.Ring
	ligRings  []*chemgraph.Ring
}

func newSite(c *Container, opts Options) (*site, error) {
	s := &site{c: c, opts: opts, protTypes: make(map[int]atomType), ligTypes: make(map[int]atomType)}
	lig := c.Ligand
	if !lig.HasBonds && len(lig.Bonds) == 0 {
		if err := chem.AssignBonds(lig); err != nil {
			return nil, err
		}
	}
	hasH := lig.HasHydrogens()
	s.ligHeavy = lig.HeavyAtoms()
	for _, i := range s.ligHeavy {
		s.ligTypes[i] = ligandAtomType(lig.Atom(i), hasH)
	}
	s.ligRings = chemgraph.AromaticRings(lig)

	cut := opts.cutoff() + 2.0 //ring atoms can be a bit further than the ring centroid
	cut2 := cut * cut
	lo, hi := bounds(lig, cut)
	nearRes := make(map[chem.ResKey]bool)
	for i, at := range c.Protein.Atoms {
		if !at.Heavy() || !inBox(at, lo, hi) {
			continue
		}
		for _, j := range s.ligHeavy {
			d := r3Dist2(at, lig.Atom(j))
			if d <= cut2 {
				s.protNear = append(s.protNear, i)
				s.protTypes[i] = proteinAtomType(at)
				nearRes[at.Key()] = true
				break
			}
		}
	}
	for _, r := range c.Protein.Residues() {
		if !nearRes[r.ResKey] {
			continue
		}
		s.protRings = append(s.protRings, residueRings(c.Protein, r)...)
	}
	return s, nil
}

func residueRings(mol *chem.Molecule, r *chem.Residue) []*chemgraph.Ring {
	templates := sideChainRings[canonical(r.Name)]
	ret := make([]*chemgraph.Ring, 0, len(templates))
	for _, names := range templates {
		idx := make([]int, 0, len(names))
		for _, n := range names {
			for _, i := range r.Atoms {
				if mol.Atom(i).Name == n {
					idx = append(idx, i)
					break
				}
			}
		}
		if len(idx) != len(names) {
			continue //incomplete side chain
		}
		//these rings are flat by construction, but a bad structure could break that.
		if ring := chemgraph.NewRing(mol, idx); ring != nil {
			ret = append(ret, ring)
		}
	}
	return ret
}
