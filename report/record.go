/*
 * record.go, part of asmap.
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

//Package report turns perceived interactions into flat records and
//writes them as TSV and JSON.
package report

import (
	"sort"
	"strconv"
	"strings"

	chem "github.com/activesite/asmap"
	"github.com/activesite/asmap/interaction"
)

//Fields are the column names, in output order.
var Fields = []string{"ResName_Prot", "ResID_Prot", "ChainID_Prot", "AtomName_Prot", "AtomsName_Lig", "ContactType", "Subsite"}

//A ready-to-serialize container for one protein atom in one kind of contact.
type Record struct {
	ResName  string   `json:"ResName_Prot"`
	ResID    int      `json:"ResID_Prot"`
	Chain    string   `json:"ChainID_Prot"`
	AtomName string   `json:"AtomName_Prot"`
	Ligand   []string `json:"AtomsName_Lig"`
	Contact  string   `json:"ContactType"`
	Subsite  *string  `json:"Subsite"`
}

//Row returns the record as TSV cells, in the order of Fields.
func (R Record) Row() []string {
	sub := ""
	if R.Subsite != nil {
		sub = *R.Subsite
	}
	return []string{R.ResName, strconv.Itoa(R.ResID), R.Chain, R.AtomName, strings.Join(R.Ligand, ","), R.Contact, sub}
}

func ligandAtomName(at *chem.Atom) string {
	if at.Name != "" {
		return strings.ReplaceAll(at.Name, " ", "")
	}
	return at.Symbol + strconv.Itoa(at.Index+1)
}

func isWaterResidue(name string) bool {
	return strings.Contains(name, "HOH") || strings.Contains(name, "TIP")
}

//Collect builds the records for the interactions in c. For each class, in
//the given order, every protein atom with at least one interaction of that
//class gives a record. The ligand atoms of a record are those of all the
//interactions of the protein atom, whatever their class. Water residues are
//skipped. If subsites is nil, no subsite is assigned.
func Collect(c *interaction.Container, classes []interaction.Class, subsites Subsites) []Record {
	recs := make([]Record, 0, 16)
	prot := c.Protein
	for _, class := range classes {
		for i, at := range prot.Atoms {
			hasAt := interaction.HasAtom(interaction.ProteinComponent, i)
			if !c.HasInteraction(interaction.And(hasAt, interaction.IsClass(class), interaction.IsInter())) {
				continue
			}
			if isWaterResidue(at.MolName) {
				continue
			}
			names := make(map[string]bool)
			for _, h := range c.Interactions(hasAt) {
				for _, j := range h.Fragment(interaction.LigandComponent) {
					names[ligandAtomName(c.Ligand.Atom(j))] = true
				}
			}
			lig := make([]string, 0, len(names))
			for n := range names {
				lig = append(lig, n)
			}
			sort.Strings(lig)
			r := Record{
				ResName:  at.MolName,
				ResID:    at.MolID,
				Chain:    at.Chain,
				AtomName: at.Name,
				Ligand:   lig,
				Contact:  string(class),
			}
			if subsites != nil {
				if s, ok := subsites.Lookup(at.MolID); ok {
					r.Subsite = &s
				}
			}
			recs = append(recs, r)
		}
	}
	return recs
}
