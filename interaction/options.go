/*
 * options.go, part of asmap.
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
	"fmt"
	"math"
)

//Options holds the distance thresholds used to perceive interactions.
//Distances are in A. The contact values are fractions of the sum of the
//van der Waals radii of the two atoms.
type Options struct {
	MaxHBondDistance            float64 `mapstructure:"hbond"`
	MaxNonIdealHBondDistance    float64 `mapstructure:"hbondni"`
	MaxChargeAidedHBondDistance float64 `mapstructure:"hbondca"`
	MaxHalogenBondDistance      float64 `mapstructure:"halogenbond"`
	MaxPiStackDistance          float64 `mapstructure:"pistack"`
	MaxTStackDistance           float64 `mapstructure:"tstack"`
	MaxSaltBridgeDistance       float64 `mapstructure:"saltbridge"`
	MaxCationPiDistance         float64 `mapstructure:"cationpi"`
	MaxContactFraction          float64 `mapstructure:"contact"`
	MinContactFraction          float64 `mapstructure:"clashcontact"`
}

//DefaultOptions returns the thresholds used when nothing else is given.
func DefaultOptions() Options {
	return Options{
		MaxHBondDistance:            3.2,
		MaxNonIdealHBondDistance:    3.8,
		MaxChargeAidedHBondDistance: 3.5,
		MaxHalogenBondDistance:      3.2,
		MaxPiStackDistance:          5.0,
		MaxTStackDistance:           5.35,
		MaxSaltBridgeDistance:       5.0,
		MaxCationPiDistance:         5.5,
		MaxContactFraction:          1.2,
		MinContactFraction:          0.8,
	}
}

//Validate checks that all thresholds are positive and consistent.
func (O Options) Validate() error {
	vals := []struct {
		name string
		v    float64
	}{
		{"hbond", O.MaxHBondDistance},
		{"hbondni", O.MaxNonIdealHBondDistance},
		{"hbondca", O.MaxChargeAidedHBondDistance},
		{"halogenbond", O.MaxHalogenBondDistance},
		{"pistack", O.MaxPiStackDistance},
		{"tstack", O.MaxTStackDistance},
		{"saltbridge", O.MaxSaltBridgeDistance},
		{"cationpi", O.MaxCationPiDistance},
		{"contact", O.MaxContactFraction},
		{"clashcontact", O.MinContactFraction},
	}
	for _, v := range vals {
		if !(v.v > 0) || math.IsInf(v.v, 0) {
			return fmt.Errorf("threshold %s must be a positive number, got %g", v.name, v.v)
		}
	}
	if O.MinContactFraction >= O.MaxContactFraction {
		return fmt.Errorf("clashcontact (%g) must be smaller than contact (%g)", O.MinContactFraction, O.MaxContactFraction)
	}
	if O.MaxHBondDistance > O.MaxNonIdealHBondDistance {
		return fmt.Errorf("hbond (%g) must not be larger than hbondni (%g)", O.MaxHBondDistance, O.MaxNonIdealHBondDistance)
	}
	return nil
}

//cutoff is the largest distance at which any interaction can be found.
func (O Options) cutoff() float64 {
	c := 2 * 2.0 * O.MaxContactFraction //2.0 A is about the largest radius we care about
	for _, v := range []float64{O.MaxNonIdealHBondDistance, O.MaxChargeAidedHBondDistance, O.MaxHalogenBondDistance,
		O.MaxPiStackDistance, O.MaxTStackDistance, O.MaxSaltBridgeDistance, O.MaxCationPiDistance} {
		c = math.Max(c, v)
	}
	return c
}
