/*
 * graph.go, part of asmap.
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

//Package chemgraph puts the bond graph of a molecule in gonum's graph
//types, and uses it to find rings.
package chemgraph

import (
	"math"
	"sort"
	"strconv"
	"strings"

	chem "github.com/activesite/asmap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r3"
)

//Maximum RMS deviation, in A, from the best plane for a ring to be
//considered flat.
const MaxRingRMS = 0.1

//Topology builds an undirected graph with one node per atom (the node ID is
//the atom Index) and one edge per bond.
func Topology(mol *chem.Molecule) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, at := range mol.Atoms {
		g.AddNode(simple.Node(at.Index))
	}
	for _, b := range mol.Bonds {
		if b.At1.Index == b.At2.Index {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(b.At1.Index), T: simple.Node(b.At2.Index)})
	}
	return g
}

func ringKey(r []int) string {
	s := make([]int, len(r))
	copy(s, r)
	sort.Ints(s)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "-")
}

//Rings returns, for each bond, the smallest ring that contains it, if the
//ring has maxSize atoms or fewer. Repeated rings are returned only once.
//Each ring is a list of atom indexes in path order.
func Rings(mol *chem.Molecule, maxSize int) [][]int {
	g := Topology(mol)
	seen := make(map[string]bool)
	rings := make([][]int, 0, 4)
	for _, b := range mol.Bonds {
		u, v := int64(b.At1.Index), int64(b.At2.Index)
		if u == v || len(b.At1.Bonds) < 2 || len(b.At2.Bonds) < 2 {
			continue //terminal atoms are never in rings
		}
		g.RemoveEdge(u, v)
		shortest := path.DijkstraFrom(g.Node(u), g)
		p, w := shortest.To(v)
		g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		if len(p) < 3 || math.IsInf(w, 1) || len(p) > maxSize {
			continue
		}
		ring := nodeIDs(p)
		k := ringKey(ring)
		if seen[k] {
			continue
		}
		seen[k] = true
		rings = append(rings, ring)
	}
	return rings
}

func nodeIDs(nodes []graph.Node) []int {
	ret := make([]int, len(nodes))
	for i, n := range nodes {
		ret[i] = int(n.ID())
	}
	return ret
}

//Ring is a flat ring with its geometric descriptors.
type Ring struct {
	Atoms    []int
	Centroid r3.Vec
	Normal   r3.Vec
}

//NewRing computes the centroid and normal of the ring formed by the atoms
//with the given indexes. It returns nil if the atoms are not coplanar
//within MaxRingRMS.
func NewRing(mol *chem.Molecule, atoms []int) *Ring {
	pts := make([]r3.Vec, len(atoms))
	for i, idx := range atoms {
		pts[i] = mol.Atom(idx).Coord
	}
	normal, rms, err := chem.BestPlane(pts)
	if err != nil || rms > MaxRingRMS {
		return nil
	}
	return &Ring{Atoms: atoms, Centroid: chem.Centroid(pts), Normal: normal}
}

var ringElements = map[string]bool{"C": true, "N": true, "O": true, "S": true}

//AromaticRings returns the flat 5- and 6-membered rings of C, N, O and S
//atoms where no atom has more than 3 bonds. This is a geometric stand-in
//for aromaticity, which is what matters for stacking.
func AromaticRings(mol *chem.Molecule) []*Ring {
	ret := make([]*Ring, 0, 2)
	for _, r := range Rings(mol, 6) {
		if len(r) < 5 {
			continue
		}
		ok := true
		for _, idx := range r {
			at := mol.Atom(idx)
			if !ringElements[at.Symbol] || len(at.Bonds) > 3 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if ring := NewRing(mol, r); ring != nil {
			ret = append(ret, ring)
		}
	}
	return ret
}
