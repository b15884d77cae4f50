/*
 * split_test.go, part of asmap.
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

package split

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/activesite/asmap"
)

func res(name string, id int, het bool, symbols ...string) []*chem.Atom {
	ret := make([]*chem.Atom, len(symbols))
	for i, s := range symbols {
		ret[i] = &chem.Atom{Name: s + string(rune('1'+i)), Symbol: s, MolName: name, MolID: id, Chain: "A", Het: het,
			Coord: r3.Vec{X: float64(id), Y: float64(i)}}
	}
	return ret
}

func complexOf(parts ...[]*chem.Atom) *chem.Molecule {
	var all []*chem.Atom
	for _, p := range parts {
		all = append(all, p...)
	}
	return chem.NewMolecule("complex", all)
}

func testComplex() *chem.Molecule {
	return complexOf(
		res("SER", 1, false, "N", "C", "C", "O", "C", "O"),
		res("CVL", 2, false, "C", "C", "N"),
		res("LIG", 300, true, "C", "C", "O", "H"),
		res("FRG", 301, true, "C", "N"),
		res("SO4", 302, true, "S", "O", "O", "O", "O"),
		res("HOH", 400, true, "O"),
		res("DA", 500, false, "P", "O"),
		res("SEP", 31, false, "N", "C", "C", "O", "C", "O", "P"),
	)
}

func TestClassify(Te *testing.T) {
	mol := testComplex()
	r := mol.Residues()
	o := DefaultOptions()
	want := []Role{Protein, Protein, Ligand, Ligand, Other, Water, Protein, Protein}
	for i, w := range want {
		assert.Equal(Te, w, o.Classify(mol, r[i]), r[i].Name)
	}
	o.LigandName = "frg"
	assert.Equal(Te, Ligand, o.Classify(mol, r[3]))
	assert.Equal(Te, Other, o.Classify(mol, r[2]))
	assert.Equal(Te, "ligand", Ligand.String())

	caps := complexOf(res("ACE", 1, true, "C", "O", "C"), res("NA", 2, true, "Na"))
	cr := caps.Residues()
	assert.Equal(Te, Protein, o.Classify(caps, cr[0]), "HETATM caps are part of the protein")
	assert.Equal(Te, Other, o.Classify(caps, cr[1]))
}

func TestComplex(Te *testing.T) {
	c, err := Complex(testComplex(), DefaultOptions())
	require.NoError(Te, err)
	assert.Equal(Te, "LIG", c.Ligand.Title)
	assert.Equal(Te, 4, c.Ligand.Len(), "the biggest candidate, hydrogens included")
	assert.Equal(Te, 6+3+1+2+7, c.Protein.Len(), "water and modified residues go with the protein")
	assert.Equal(Te, 0, c.Water.Len())
	assert.Equal(Te, 2+5, c.Other.Len())
	sep := 0
	for _, at := range c.Protein.Atoms {
		if at.MolName == "SEP" {
			sep++
		}
	}
	assert.Equal(Te, 7, sep, "a phosphoserine in ATOM records is part of the protein")
	for _, at := range c.Ligand.Atoms {
		assert.Equal(Te, "LIG", at.MolName)
	}
}

func TestComplexOptions(Te *testing.T) {
	o := DefaultOptions()
	o.WaterAsProtein = false
	o.LigandName = "FRG"
	c, err := Complex(testComplex(), o)
	require.NoError(Te, err)
	assert.Equal(Te, "FRG", c.Ligand.Title)
	assert.Equal(Te, 6+3+2+7, c.Protein.Len())
	assert.Equal(Te, 1, c.Water.Len())

	o.LigandName = "CVL"
	_, err = Complex(testComplex(), o)
	assert.ErrorIs(Te, err, ErrNoLigand, "ATOM records need the covalent option")
	o.CovalentLigand = true
	c, err = Complex(testComplex(), o)
	require.NoError(Te, err)
	assert.Equal(Te, "CVL", c.Ligand.Title)

	o.LigandName = "XYZ"
	_, err = Complex(testComplex(), o)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrNoLigand))
	assert.Contains(Te, err.Error(), "XYZ")
}

func TestComplexNoLigand(Te *testing.T) {
	mol := complexOf(res("SER", 1, false, "N", "C"), res("HOH", 2, true, "O"), res("NA", 3, true, "Na"))
	_, err := Complex(mol, DefaultOptions())
	assert.ErrorIs(Te, err, ErrNoLigand)
}
