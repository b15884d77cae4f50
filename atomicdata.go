/*
 * atomicdata.go, part of asmap.
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

package chem

import "strings"

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4, //0.31 in the paper. The longer value only lets extra H bonds in, and they are pruned later.
	"C":  0.76,
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,
	"Fe": 1.52,
	"Mn": 1.61,
	"Si": 1.11,
	"B":  0.84,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
	"As": 1.19,
	"Ni": 1.24,
	"Cd": 1.44,
	"Pt": 1.36,
	"Au": 1.36,
	"Hg": 1.32,
	"Ru": 1.46,
}

//Covalent radius for elements not in symbolCovrad, about that of
//a heavy metal.
const defaultCovrad = 1.5

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Si": 2.10,
	"B":  1.92,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

//Upper bound for the number of bonds an element can form.
//0 means the element is not checked.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  4,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

//Two-letter element symbols that show up in HETATM records.
//Used to tell calcium from a C-alpha and so on.
var twoLetterSymbols = map[string]string{
	"CL": "Cl",
	"BR": "Br",
	"ZN": "Zn",
	"MG": "Mg",
	"MN": "Mn",
	"FE": "Fe",
	"CU": "Cu",
	"CO": "Co",
	"NA": "Na",
	"CA": "Ca",
	"SE": "Se",
	"SI": "Si",
	"NI": "Ni",
	"CD": "Cd",
	"HG": "Hg",
}

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"CYX": 'C',
	"CYM": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"MSE": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"HID": 'H',
	"HIE": 'H',
	"HIP": 'H',
	"HSD": 'H',
	"HSE": 'H',
	"HSP": 'H',
	"LYS": 'K',
	"LYN": 'K',
	"ASP": 'D',
	"ASH": 'D',
	"GLU": 'E',
	"GLH": 'E',
	"PYL": 'O',
}

//VdwRadius returns the van der Waals radius, in A, for the element symbol.
//Unknown elements get the carbon radius.
func VdwRadius(symbol string) float64 {
	if r, ok := symbolVdwrad[symbol]; ok {
		return r
	}
	return symbolVdwrad["C"]
}

//CovalentRadius returns the covalent radius, in A, for symbol.
//Unknown elements get a generous metal-like radius, deuterium and
//tritium that of hydrogen.
func CovalentRadius(symbol string) float64 {
	if r, ok := symbolCovrad[symbol]; ok {
		return r
	}
	if symbol == "D" || symbol == "T" {
		return symbolCovrad["H"]
	}
	return defaultCovrad
}

//IsAminoAcid returns true if resname is a standard aminoacid name or
//one of the usual protonation/modification variants.
func IsAminoAcid(resname string) bool {
	_, ok := three2OneLetter[strings.ToUpper(strings.TrimSpace(resname))]
	return ok
}
