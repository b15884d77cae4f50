/*
 * split.go, part of asmap.
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

//Package split separates a protein-ligand complex in its protein,
//ligand, water and "other" components.
package split

import (
	"errors"
	"fmt"
	"strings"

	chem "github.com/activesite/asmap"
)

//ErrNoLigand is returned when no ligand can be found in a complex.
var ErrNoLigand = errors.New("cannot separate complex")

//Role is the component a residue is assigned to.
type Role int

const (
	Protein Role = iota
	Ligand
	Water
	Other
)

func (R Role) String() string {
	switch R {
	case Protein:
		return "protein"
	case Ligand:
		return "ligand"
	case Water:
		return "water"
	default:
		return "other"
	}
}

var waterNames = map[string]bool{"HOH": true, "WAT": true, "TIP": true, "TIP3": true, "TIP4": true, "SOL": true, "DOD": true, "H2O": true}

//Residues that are never the ligand unless asked for by name: ions,
//crystallization additives and buffers.
var defaultExcluded = []string{
	"NA", "CL", "K", "MG", "CA", "ZN", "MN", "FE", "FE2", "CU", "CU1", "CO", "NI", "CD", "HG", "IOD", "BR",
	"SO4", "PO4", "GOL", "EDO", "PEG", "PGE", "ACT", "ACY", "DMS", "FMT", "TRS", "MES", "EPE", "BME", "NO3", "CIT", "IMD",
	"ACE", "NME", "NH2",
}

//Terminal caps, often written as HETATM.
var capNames = map[string]bool{"ACE": true, "NME": true, "NH2": true}

//Options controls how a complex is split.
type Options struct {
	//LigandName restricts the ligand to residues with this name.
	LigandName string
	//CovalentLigand allows the ligand to come from ATOM records, as covalently
	//bound ligands are often written as part of the polymer. Only used with LigandName.
	CovalentLigand bool
	//WaterAsProtein puts the waters in the protein component.
	WaterAsProtein bool
	//Excluded residue names never picked as ligand unless named in LigandName.
	Excluded []string
}

//DefaultOptions returns the options used by the command line tools.
func DefaultOptions() Options {
	ex := make([]string, len(defaultExcluded))
	copy(ex, defaultExcluded)
	return Options{WaterAsProtein: true, Excluded: ex}
}

//Components holds the parts of a split complex. None is nil, but any
//of them can have zero atoms.
type Components struct {
	Protein *chem.Molecule
	Ligand  *chem.Molecule
	Water   *chem.Molecule
	Other   *chem.Molecule
}

//IsWater returns true for the usual water residue names.
func IsWater(resname string) bool {
	return waterNames[strings.ToUpper(strings.TrimSpace(resname))]
}

func (O Options) excluded(name string) bool {
	for _, v := range O.Excluded {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

func isHet(mol *chem.Molecule, r *chem.Residue) bool {
	for _, i := range r.Atoms {
		if !mol.Atom(i).Het {
			return false
		}
	}
	return true
}

//Classify returns the role of residue r of mol, without looking at the
//rest of the complex. Ligand here means "ligand candidate".
func (O Options) Classify(mol *chem.Molecule, r *chem.Residue) Role {
	name := strings.ToUpper(r.Name)
	het := isHet(mol, r)
	switch {
	case IsWater(name):
		return Water
	case O.LigandName != "":
		if strings.EqualFold(name, O.LigandName) && (het || O.CovalentLigand) {
			return Ligand
		}
	case het && !O.excluded(name) && !chem.IsAminoAcid(name):
		return Ligand
	}
	if chem.IsAminoAcid(name) || capNames[name] || !het {
		return Protein //ATOM records are polymer residues, modified ones included
	}
	return Other
}

func heavyCount(mol *chem.Molecule, r *chem.Residue) int {
	n := 0
	for _, i := range r.Atoms {
		if mol.Atom(i).Heavy() {
			n++
		}
	}
	return n
}

//Complex splits mol. The ligand is the biggest (by heavy atoms) ligand
//candidate residue; the other candidates go to Other. It returns ErrNoLigand
//if there is no ligand.
func Complex(mol *chem.Molecule, opts Options) (*Components, error) {
	residues := mol.Residues()
	roles := make([]Role, len(residues))
	best := -1
	for i, r := range residues {
		roles[i] = opts.Classify(mol, r)
		if roles[i] == Ligand && (best < 0 || heavyCount(mol, r) > heavyCount(mol, residues[best])) {
			best = i
		}
	}
	if best < 0 {
		if opts.LigandName != "" {
			return nil, fmt.Errorf("%w: no residue named %s", ErrNoLigand, opts.LigandName)
		}
		return nil, ErrNoLigand
	}
	var prot, lig, wat, oth []int
	for i, r := range residues {
		switch roles[i] {
		case Ligand:
			if i == best {
				lig = append(lig, r.Atoms...)
			} else {
				oth = append(oth, r.Atoms...)
			}
		case Protein:
			prot = append(prot, r.Atoms...)
		case Water:
			if opts.WaterAsProtein {
				prot = append(prot, r.Atoms...)
			} else {
				wat = append(wat, r.Atoms...)
			}
		default:
			oth = append(oth, r.Atoms...)
		}
	}
	c := &Components{
		Protein: mol.SomeAtoms(prot),
		Ligand:  mol.SomeAtoms(lig),
		Water:   mol.SomeAtoms(wat),
		Other:   mol.SomeAtoms(oth),
	}
	c.Ligand.Title = residues[best].Name
	if c.Ligand.Len() == 0 {
		return nil, ErrNoLigand
	}
	return c, nil
}
