/*
 * perceive.go, part of asmap.
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
	"fmt"
	"math"

	chem "github.com/activesite/asmap"
	"gonum.org/v1/gonum/spatial/r3"
)

//Angle windows, in degrees, between ring planes for stacking.
const (
	maxPiStackAngle = 30.0
	minTStackAngle  = 60.0
)

func r3Dist2(a, b *chem.Atom) float64 {
	d := r3.Sub(a.Coord, b.Coord)
	return r3.Dot(d, d)
}

//bounds returns the box around mol, enlarged by pad in every direction.
func bounds(mol *chem.Molecule, pad float64) (lo, hi r3.Vec) {
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, at := range mol.Atoms {
		c := at.Coord
		lo = r3.Vec{X: math.Min(lo.X, c.X), Y: math.Min(lo.Y, c.Y), Z: math.Min(lo.Z, c.Z)}
		hi = r3.Vec{X: math.Max(hi.X, c.X), Y: math.Max(hi.Y, c.Y), Z: math.Max(hi.Z, c.Z)}
	}
	p := r3.Vec{X: pad, Y: pad, Z: pad}
	return r3.Sub(lo, p), r3.Add(hi, p)
}

func inBox(at *chem.Atom, lo, hi r3.Vec) bool {
	c := at.Coord
	return c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y && c.Z >= lo.Z && c.Z <= hi.Z
}

//a pass adds one family of hints to the container.
type pass struct {
	name string
	run  func(*site)
}

var passes = []pass{
	{"hbond", (*site).hbonds},
	{"halogen", (*site).halogenBonds},
	{"saltbridge", (*site).saltBridges},
	{"stacking", (*site).stacking},
	{"cationpi", (*site).cationPi},
	{"contacts", (*site).contacts},
}

//Perceive finds the interactions between protein and ligand using the
//thresholds in opts. The ligand bonds are assigned from its geometry if it
//has none. The context is checked between perception passes.
func Perceive(ctx context.Context, protein, ligand *chem.Molecule, opts Options) (*Container, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c, err := NewContainer(protein, ligand)
	if err != nil {
		return nil, err
	}
	s, err := newSite(c, opts)
	if err != nil {
		return nil, fmt.Errorf("typing ligand atoms: %w", err)
	}
	for _, p := range passes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("perception interrupted before %s: %w", p.name, err)
		}
		p.run(s)
	}
	return c, nil
}

func (s *site) hbonds() {
	o := s.opts
	prot, lig := s.c.Protein, s.c.Ligand
	maxd := math.Max(o.MaxNonIdealHBondDistance, o.MaxChargeAidedHBondDistance)
	for _, i := range s.protNear {
		pt := s.protTypes[i]
		if !pt.donor && !pt.acceptor {
			continue
		}
		for _, j := range s.ligHeavy {
			lt := s.ligTypes[j]
			if !(pt.donor && lt.acceptor) && !(pt.acceptor && lt.donor) {
				continue
			}
			d := chem.Distance(prot.Atom(i).Coord, lig.Atom(j).Coord)
			if d > maxd {
				continue
			}
			var t Type
			switch {
			case d <= o.MaxHBondDistance:
				t = HBond
			case (pt.charge != 0 || lt.charge != 0) && d <= o.MaxChargeAidedHBondDistance:
				t = ChargeAidedHBond
			case d <= o.MaxNonIdealHBondDistance:
				t = NonIdealHBond
			default:
				continue
			}
			s.c.Add(&Hint{Type: t, Protein: []int{i}, Ligand: []int{j}, Distance: d})
		}
	}
}

func (s *site) halogenBonds() {
	prot, lig := s.c.Protein, s.c.Ligand
	for _, j := range s.ligHeavy {
		if !s.ligTypes[j].halogen {
			continue
		}
		for _, i := range s.protNear {
			if !s.protTypes[i].acceptor {
				continue
			}
			d := chem.Distance(prot.Atom(i).Coord, lig.Atom(j).Coord)
			if d <= s.opts.MaxHalogenBondDistance {
				s.c.Add(&Hint{Type: HalogenBond, Protein: []int{i}, Ligand: []int{j}, Distance: d})
			}
		}
	}
}

func (s *site) saltBridges() {
	prot, lig := s.c.Protein, s.c.Ligand
	for _, i := range s.protNear {
		pc := s.protTypes[i].charge
		if pc == 0 {
			continue
		}
		for _, j := range s.ligHeavy {
			if s.ligTypes[j].charge*pc >= 0 {
				continue
			}
			d := chem.Distance(prot.Atom(i).Coord, lig.Atom(j).Coord)
			if d <= s.opts.MaxSaltBridgeDistance {
				s.c.Add(&Hint{Type: SaltBridge, Protein: []int{i}, Ligand: []int{j}, Distance: d})
			}
		}
	}
}

func (s *site) stacking() {
	for _, pr := range s.protRings {
		for _, lr := range s.ligRings {
			d := chem.Distance(pr.Centroid, lr.Centroid)
			angle := chem.PlaneAngle(pr.Normal, lr.Normal)
			switch {
			case angle <= maxPiStackAngle && d <= s.opts.MaxPiStackDistance:
				s.c.Add(&Hint{Type: PiStack, Protein: pr.Atoms, Ligand: lr.Atoms, Distance: d})
			case angle >= minTStackAngle && d <= s.opts.MaxTStackDistance:
				s.c.Add(&Hint{Type: TStack, Protein: pr.Atoms, Ligand: lr.Atoms, Distance: d})
			}
		}
	}
}

func (s *site) cationPi() {
	prot, lig := s.c.Protein, s.c.Ligand
	maxd := s.opts.MaxCationPiDistance
	for _, i := range s.protNear {
		if s.protTypes[i].charge <= 0 {
			continue
		}
		for _, lr := range s.ligRings {
			if d := chem.Distance(prot.Atom(i).Coord, lr.Centroid); d <= maxd {
				s.c.Add(&Hint{Type: CationPi, Protein: []int{i}, Ligand: lr.Atoms, Distance: d})
			}
		}
	}
	for _, j := range s.ligHeavy {
		if s.ligTypes[j].charge <= 0 {
			continue
		}
		for _, pr := range s.protRings {
			if d := chem.Distance(lig.Atom(j).Coord, pr.Centroid); d <= maxd {
				s.c.Add(&Hint{Type: CationPi, Protein: pr.Atoms, Ligand: []int{j}, Distance: d})
			}
		}
	}
}

//contacts adds a Clash for each pair of heavy atoms closer than
//MinContactFraction times the sum of their vdW radii, and a Contact for
//the pairs that are not clashes but are within MaxContactFraction of that sum.
func (s *site) contacts() {
	prot, lig := s.c.Protein, s.c.Ligand
	for _, i := range s.protNear {
		pa := prot.Atom(i)
		rp := chem.VdwRadius(pa.Symbol)
		for _, j := range s.ligHeavy {
			la := lig.Atom(j)
			radsum := rp + chem.VdwRadius(la.Symbol)
			d := chem.Distance(pa.Coord, la.Coord)
			switch {
			case d < s.opts.MinContactFraction*radsum:
				s.c.Add(&Hint{Type: Clash, Protein: []int{i}, Ligand: []int{j}, Distance: d})
			case d <= s.opts.MaxContactFraction*radsum:
				s.c.Add(&Hint{Type: Contact, Protein: []int{i}, Ligand: []int{j}, Distance: d})
			}
		}
	}
}

//LowestDist returns the shortest distance between an atom of the protein
//and one of the ligand, and the indexes of those atoms.
func (C *Container) LowestDist() (dist float64, indexes [2]int) {
	dist = math.Inf(1)
	for i, pa := range C.Protein.Atoms {
		for j, la := range C.Ligand.Atoms {
			if d := chem.Distance(pa.Coord, la.Coord); d < dist {
				dist = d
				indexes[0] = i
				indexes[1] = j
			}
		}
	}
	return
}
