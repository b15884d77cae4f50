/*
 * layout.go, part of asmap.
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

//Package depict draws 2D maps of a ligand in its active site, with the
//residues it interacts with around it.
package depict

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	chem "github.com/activesite/asmap"
	"github.com/activesite/asmap/interaction"
)

//Layout constants, in Angstrom of the depiction plane.
const (
	BondLength    = 1.5
	residueMargin = 3.5
	maxGap        = 0.45 //radians
)

//Point is a position on the depiction plane.
type Point struct{ X, Y float64 }

func (P Point) norm() float64 { return math.Hypot(P.X, P.Y) }

//LigandAtom is a heavy ligand atom placed on the plane.
type LigandAtom struct {
	Index  int //in the ligand molecule
	Symbol string
	Name   string
	Pos    Point
}

//Residue is an interacting residue placed around the ligand.
type Residue struct {
	Key   chem.ResKey
	Label string
	Pos   Point
}

//Connector joins a residue with the ligand atoms it interacts with.
//For ring interactions To is the centroid of the ring atoms.
type Connector struct {
	Residue int   //index in Layout.Residues
	Atoms   []int //indexes in Layout.Atoms
	Class   interaction.Class
	To      Point
}

//Layout is a 2D map of an active site, ready to render.
type Layout struct {
	Title      string
	Atoms      []LigandAtom
	Bonds      [][2]int //indexes in Atoms
	Residues   []Residue
	Connectors []Connector
	Radius     float64 //of the circle the residues sit on
}

//Classes returns the interaction classes present in the layout, in
//report order.
func (L *Layout) Classes() []interaction.Class {
	present := make(map[interaction.Class]bool)
	for _, c := range L.Connectors {
		present[c.Class] = true
	}
	ret := make([]interaction.Class, 0, len(present))
	for _, c := range interaction.DefaultClasses {
		if present[c] {
			ret = append(ret, c)
		}
	}
	return ret
}

//ResidueLabel returns the "NAME NUMBER CHAIN" label of a residue.
func ResidueLabel(k chem.ResKey) string {
	s := k.Name + " " + strconv.Itoa(k.Number) + k.ICode
	if k.Chain != "" {
		s += " " + k.Chain
	}
	return s
}

//Prepare computes the map of the active site in c. The ligand heavy atoms
//are projected on their principal plane and scaled so the mean bond is
//BondLength long. Each interacting residue goes on a circle around the
//ligand, in the direction of the ligand atoms it touches.
func Prepare(c *interaction.Container) (*Layout, error) {
	lig := c.Ligand
	heavy := lig.HeavyAtoms()
	if len(heavy) == 0 {
		return nil, fmt.Errorf("%w: ligand %q has no heavy atoms", interaction.ErrInvalidActiveSite, lig.Title)
	}
	L := &Layout{Title: c.Title}
	coords := make([]r3.Vec, len(heavy))
	pos := make(map[int]int, len(heavy)) //ligand index to layout index
	for k, i := range heavy {
		at := lig.Atom(i)
		coords[k] = at.Coord
		pos[i] = k
		L.Atoms = append(L.Atoms, LigandAtom{Index: i, Symbol: at.Symbol, Name: at.Name})
	}
	p2d, err := chem.Project2D(coords)
	if err != nil {
		return nil, fmt.Errorf("projecting ligand %q: %w", lig.Title, err)
	}
	for _, b := range lig.Bonds {
		k1, ok1 := pos[b.At1.Index]
		k2, ok2 := pos[b.At2.Index]
		if ok1 && ok2 {
			L.Bonds = append(L.Bonds, [2]int{k1, k2})
		}
	}
	scale := 1.0
	if len(L.Bonds) > 0 {
		lengths := make([]float64, len(L.Bonds))
		for i, b := range L.Bonds {
			p, q := p2d[b[0]], p2d[b[1]]
			lengths[i] = math.Hypot(p[0]-q[0], p[1]-q[1])
		}
		if m := stat.Mean(lengths, nil); m > 1e-6 {
			scale = BondLength / m
		}
	}
	radii := make([]float64, len(L.Atoms))
	for k := range L.Atoms {
		L.Atoms[k].Pos = Point{p2d[k][0] * scale, p2d[k][1] * scale}
		radii[k] = L.Atoms[k].Pos.norm()
	}
	L.Radius = floats.Max(radii) + residueMargin

	L.placeResidues(c, pos)
	return L, nil
}

type connKey struct {
	res   int
	class interaction.Class
	atoms string
}

func (L *Layout) placeResidues(c *interaction.Container, pos map[int]int) {
	resIndex := make(map[chem.ResKey]int)
	seen := make(map[connKey]bool)
	var touched [][]int //layout atoms touched by each residue
	for _, h := range c.Interactions(interaction.IsInter()) {
		class := interaction.ClassOf(h.Type)
		if class == "" {
			continue
		}
		key := c.Protein.Atom(h.Protein[0]).Key()
		r, ok := resIndex[key]
		if !ok {
			r = len(L.Residues)
			resIndex[key] = r
			L.Residues = append(L.Residues, Residue{Key: key, Label: ResidueLabel(key)})
			touched = append(touched, nil)
		}
		atoms := make([]int, 0, len(h.Ligand))
		for _, j := range h.Ligand {
			if k, ok := pos[j]; ok {
				atoms = append(atoms, k)
			}
		}
		if len(atoms) == 0 {
			continue
		}
		sort.Ints(atoms)
		strs := make([]string, len(atoms))
		for i, a := range atoms {
			strs[i] = strconv.Itoa(a)
		}
		ck := connKey{r, class, strings.Join(strs, ",")}
		if seen[ck] {
			continue
		}
		seen[ck] = true
		touched[r] = append(touched[r], atoms...)
		L.Connectors = append(L.Connectors, Connector{Residue: r, Atoms: atoms, Class: class, To: L.centroid(atoms)})
	}
	n := len(L.Residues)
	if n == 0 {
		return
	}
	angles := make([]float64, n)
	for r := range L.Residues {
		ct := L.centroid(touched[r])
		if ct.norm() < 1e-3 {
			angles[r] = 2 * math.Pi * float64(r) / float64(n)
			continue
		}
		angles[r] = math.Atan2(ct.Y, ct.X)
	}
	angles = spread(angles, math.Min(maxGap, 2*math.Pi/float64(n)))
	for r, a := range angles {
		L.Residues[r].Pos = Point{L.Radius * math.Cos(a), L.Radius * math.Sin(a)}
	}
}

func (L *Layout) centroid(atoms []int) Point {
	var p Point
	if len(atoms) == 0 {
		return p
	}
	for _, a := range atoms {
		p.X += L.Atoms[a].Pos.X
		p.Y += L.Atoms[a].Pos.Y
	}
	p.X /= float64(len(atoms))
	p.Y /= float64(len(atoms))
	return p
}

//spread moves the angles apart until neighbors on the circle are at
//least gap radians from each other. The cyclic order is kept.
func spread(angles []float64, gap float64) []float64 {
	n := len(angles)
	if n < 2 {
		return angles
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return angles[order[i]] < angles[order[j]] })
	a := make([]float64, n)
	for k, i := range order {
		a[k] = angles[i]
	}
	const tol = 1e-9
	for iter := 0; iter < 200; iter++ {
		moved := false
		for k := 0; k < n; k++ {
			next := (k + 1) % n
			d := a[next] - a[k]
			if next == 0 {
				d += 2 * math.Pi
			}
			if d < gap-tol {
				push := (gap - d) / 2
				a[k] -= push
				a[next] += push
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	ret := make([]float64, n)
	for k, i := range order {
		ret[i] = a[k]
	}
	return ret
}
