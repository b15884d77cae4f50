/*
 * subsite.go, part of asmap.
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

package report

import (
	"fmt"
	"sort"
)

//Subsites maps a subsite name to the residue numbers that form it.
type Subsites map[string][]int

//DefaultSubsites returns the built-in table of active site subsites.
func DefaultSubsites() Subsites {
	return Subsites{
		"SS01": {30, 71, 108, 115, 118},
		"SS02": {32, 228},
		"SS03": {72, 73, 107},
		"SS04": {230, 231},
		"SS05": {34, 198},
		"SS06": {110},
		"SS07": {232, 233, 235, 325},
		"SS08": {35, 69, 70, 76, 126, 128},
		"SS09": {11, 13, 14, 229, 335},
		"SS10": {224, 226, 329, 332},
	}
}

//Lookup returns the first subsite, in name order, that contains resid.
func (S Subsites) Lookup(resid int) (string, bool) {
	names := make([]string, 0, len(S))
	for n := range S {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		for _, r := range S[n] {
			if r == resid {
				return n, true
			}
		}
	}
	return "", false
}

//Validate fails if a residue number is listed in more than one subsite.
func (S Subsites) Validate() error {
	owner := make(map[int]string)
	for n, res := range S {
		if n == "" {
			return fmt.Errorf("subsite with empty name")
		}
		for _, r := range res {
			if prev, ok := owner[r]; ok && prev != n {
				return fmt.Errorf("residue %d is in subsites %s and %s", r, prev, n)
			}
			owner[r] = n
		}
	}
	return nil
}
