/*
 * interaction_test.go, part of asmap.
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
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/activesite/asmap"
)

type atomSpec struct {
	name, symbol string
	at           r3.Vec
}

func residue(resname string, resid int, atoms ...atomSpec) []*chem.Atom {
	ret := make([]*chem.Atom, len(atoms))
	for i, a := range atoms {
		ret[i] = &chem.Atom{Name: a.name, Symbol: a.symbol, MolName: resname, MolID: resid, Chain: "A", Coord: a.at}
	}
	return ret
}

func molecule(title string, parts ...[]*chem.Atom) *chem.Molecule {
	var all []*chem.Atom
	for _, p := range parts {
		all = append(all, p...)
	}
	return chem.NewMolecule(title, all)
}

func ligand(atoms ...atomSpec) *chem.Molecule {
	ats := residue("LIG", 1, atoms...)
	for _, a := range ats {
		a.Het = true
	}
	return chem.NewMolecule("LIG", ats)
}

//hexagon returns 6 atoms of a ring of radius 1.39 around c, in the plane
//spanned by u and v.
func hexagon(names []string, c, u, v r3.Vec) []atomSpec {
	ret := make([]atomSpec, 6)
	for i := range ret {
		a := float64(i) * math.Pi / 3
		p := r3.Add(c, r3.Add(r3.Scale(1.39*math.Cos(a), u), r3.Scale(1.39*math.Sin(a), v)))
		ret[i] = atomSpec{names[i], "C", p}
	}
	return ret
}

var (
	ex         = r3.Vec{X: 1}
	ey         = r3.Vec{Y: 1}
	ez         = r3.Vec{Z: 1}
	pheNames   = []string{"CG", "CD1", "CE1", "CZ", "CE2", "CD2"}
	benzNames  = []string{"C1", "C2", "C3", "C4", "C5", "C6"}
	serine     = residue("SER", 30, atomSpec{"CB", "C", r3.Vec{X: -1.43}}, atomSpec{"OG", "O", r3.Vec{}})
	background = context.Background()
)

//acetate with one oxygen at distance d from the origin, along x.
func acetate(d float64) *chem.Molecule {
	return ligand(
		atomSpec{"O1", "O", r3.Vec{X: d}},
		atomSpec{"C2", "C", r3.Vec{X: d + 1.2}},
		atomSpec{"O2", "O", r3.Vec{X: d + 1.8, Y: 1.04}},
		atomSpec{"C3", "C", r3.Vec{X: d + 1.95, Y: -1.3}},
	)
}

func countType(c *Container, t Type) int {
	return len(c.Interactions(IsType(t)))
}

func TestHBondDistances(Te *testing.T) {
	tests := []struct {
		d    float64
		want Type
		none bool
	}{
		{2.9, HBond, false},
		{3.6, NonIdealHBond, false},
		{4.2, 0, true},
	}
	for _, tt := range tests {
		lig := ligand(atomSpec{"O1", "O", r3.Vec{X: tt.d}}, atomSpec{"C1", "C", r3.Vec{X: tt.d + 1.43}})
		c, err := Perceive(background, molecule("prot", serine), lig, DefaultOptions())
		require.NoError(Te, err)
		hb := c.Interactions(IsClass(ClassHBond))
		if tt.none {
			assert.Empty(Te, hb, "d=%g", tt.d)
			continue
		}
		require.Len(Te, hb, 1, "d=%g", tt.d)
		assert.Equal(Te, tt.want, hb[0].Type)
		assert.Equal(Te, []int{1}, hb[0].Protein)
		assert.Equal(Te, []int{0}, hb[0].Ligand)
		assert.InDelta(Te, tt.d, hb[0].Distance, 1e-9)
	}
}

func TestChargeAidedHBondAndSaltBridge(Te *testing.T) {
	lys := molecule("prot", residue("LYS", 50, atomSpec{"NZ", "N", r3.Vec{}}))
	c, err := Perceive(background, lys, acetate(3.4), DefaultOptions())
	require.NoError(Te, err)
	assert.Equal(Te, 1, countType(c, ChargeAidedHBond))
	assert.Equal(Te, 0, countType(c, HBond))
	sb := c.Interactions(IsType(SaltBridge))
	require.Len(Te, sb, 1, "only the close oxygen is within reach")
	assert.Equal(Te, []int{0}, sb[0].Ligand)

	arg := molecule("prot", residue("ARG", 51, atomSpec{"NH1", "N", r3.Vec{}}))
	c, err = Perceive(background, arg, acetate(4.0), DefaultOptions())
	require.NoError(Te, err)
	assert.Equal(Te, 1, countType(c, SaltBridge))
	assert.Empty(Te, c.Interactions(IsClass(ClassHBond)))

	//a neutral aspartate does not make salt bridges
	ash := molecule("prot", residue("ASH", 52, atomSpec{"OD1", "O", r3.Vec{}}))
	c, err = Perceive(background, ash, acetate(4.0), DefaultOptions())
	require.NoError(Te, err)
	assert.Equal(Te, 0, countType(c, SaltBridge))
}

func TestStacking(Te *testing.T) {
	phe := molecule("prot", residue("PHE", 80, hexagon(pheNames, r3.Vec{}, ex, ey)...))

	parallel := ligand(hexagon(benzNames, r3.Vec{Z: 3.8}, ex, ey)...)
	c, err := Perceive(background, phe, parallel, DefaultOptions())
	require.NoError(Te, err)
	pi := c.Interactions(IsType(PiStack))
	require.Len(Te, pi, 1)
	assert.Len(Te, pi[0].Protein, 6)
	assert.Len(Te, pi[0].Ligand, 6)
	assert.InDelta(Te, 3.8, pi[0].Distance, 1e-6)
	assert.Equal(Te, ClassStacking, ClassOf(pi[0].Type))

	perpendicular := ligand(hexagon(benzNames, r3.Vec{Z: 5.0}, ex, ez)...)
	c, err = Perceive(background, phe, perpendicular, DefaultOptions())
	require.NoError(Te, err)
	assert.Equal(Te, 1, countType(c, TStack))
	assert.Equal(Te, 0, countType(c, PiStack))

	far := ligand(hexagon(benzNames, r3.Vec{Z: 6.0}, ex, ey)...)
	c, err = Perceive(background, phe, far, DefaultOptions())
	require.NoError(Te, err)
	assert.Empty(Te, c.Interactions(IsClass(ClassStacking)))
}

func TestCationPi(Te *testing.T) {
	lys := molecule("prot", residue("LYS", 50, atomSpec{"NZ", "N", r3.Vec{Z: 4.0}}))
	benzene := ligand(hexagon(benzNames, r3.Vec{}, ex, ey)...)
	c, err := Perceive(background, lys, benzene, DefaultOptions())
	require.NoError(Te, err)
	cp := c.Interactions(IsType(CationPi))
	require.Len(Te, cp, 1)
	assert.Equal(Te, []int{0}, cp[0].Protein)
	assert.InDelta(Te, 4.0, cp[0].Distance, 1e-6)
}

func TestHalogenBond(Te *testing.T) {
	gly := molecule("prot", residue("GLY", 7, atomSpec{"C", "C", r3.Vec{X: -1.23}}, atomSpec{"O", "O", r3.Vec{}}))
	lig := ligand(atomSpec{"CL1", "Cl", r3.Vec{X: 3.0}}, atomSpec{"C1", "C", r3.Vec{X: 4.75}})
	c, err := Perceive(background, gly, lig, DefaultOptions())
	require.NoError(Te, err)
	hal := c.Interactions(IsClass(ClassHalogen))
	require.Len(Te, hal, 1)
	assert.Equal(Te, []int{1}, hal[0].Protein)
	assert.Equal(Te, []int{0}, hal[0].Ligand)
}

func TestClashAndContact(Te *testing.T) {
	gly := molecule("prot", residue("GLY", 7, atomSpec{"CA", "C", r3.Vec{}}))
	lig := ligand(atomSpec{"C1", "C", r3.Vec{X: 1.5}}, atomSpec{"C2", "C", r3.Vec{X: 3.0}})
	c, err := Perceive(background, gly, lig, DefaultOptions())
	require.NoError(Te, err)
	clash := c.Interactions(IsType(Clash))
	require.Len(Te, clash, 1)
	assert.Equal(Te, []int{0}, clash[0].Ligand)
	contact := c.Interactions(IsType(Contact))
	require.Len(Te, contact, 1)
	assert.Equal(Te, []int{1}, contact[0].Ligand)
	assert.False(Te, c.HasInteraction(And(IsType(Contact), HasAtom(LigandComponent, 0))), "a clash is not also a contact")

	d, idx := c.LowestDist()
	assert.InDelta(Te, 1.5, d, 1e-9)
	assert.Equal(Te, [2]int{0, 0}, idx)
}

func TestPerceiveErrors(Te *testing.T) {
	lig := ligand(atomSpec{"O1", "O", r3.Vec{X: 2.9}})
	prot := molecule("prot", serine)

	bad := DefaultOptions()
	bad.MaxContactFraction = 0.5
	_, err := Perceive(background, prot, lig, bad)
	assert.Error(Te, err)

	_, err = Perceive(background, prot, chem.NewMolecule("empty", nil), DefaultOptions())
	assert.ErrorIs(Te, err, ErrInvalidActiveSite)

	ctx, cancel := context.WithCancel(background)
	cancel()
	_, err = Perceive(ctx, prot, lig, DefaultOptions())
	assert.ErrorIs(Te, err, context.Canceled)
}

func TestOptionsValidate(Te *testing.T) {
	assert.NoError(Te, DefaultOptions().Validate())
	o := DefaultOptions()
	o.MaxHBondDistance = 4.0
	assert.Error(Te, o.Validate(), "hbond larger than hbondni")
	o = DefaultOptions()
	o.MaxCationPiDistance = math.NaN()
	assert.Error(Te, o.Validate())
	assert.Equal(Te, 5.5, DefaultOptions().cutoff())
}

func TestClasses(Te *testing.T) {
	for _, t := range []Type{HBond, ChargeAidedHBond, NonIdealHBond} {
		assert.Equal(Te, ClassHBond, ClassOf(t))
	}
	assert.Equal(Te, ClassClash, ClassOf(Clash))
	assert.Equal(Te, "clashcontact", string(ClassClash))
	c, err := ParseClass(" Cation-Pi ")
	require.NoError(Te, err)
	assert.Equal(Te, ClassCationPi, c)
	_, err = ParseClass("vdw")
	assert.Error(Te, err)
	assert.Equal(Te, "salt-bridge", SaltBridge.String())
	assert.Equal(Te, "Type(42)", Type(42).String())
	assert.Len(Te, DefaultClasses, 7)
}
