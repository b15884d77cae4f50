/*
 * files.go, part of asmap.
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

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/renameio/v2"
	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/spatial/r3"
)

//ReadFile reads the first structure in the file name. The format is
//chosen from the extension (pdb, ent, sdf, mol, xyz). Files ending in
//.gz are decompressed on the fly.
func ReadFile(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		var perr *os.PathError
		if errors.As(err, &perr) {
			err = perr.Err //the name is already in the CError
		}
		return nil, newError(name, "ReadFile", "Unable to open for reading: %v", err)
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, newError(name, "ReadFile", "Unable to decompress: %v", err)
		}
		defer gz.Close()
		in = gz
	}
	var mol *Molecule
	switch ext := Extension(name); ext {
	case "pdb", "ent":
		mol, err = PDBRead(in)
	case "sdf", "mol", "sd":
		mol, err = SDFRead(in)
	case "xyz":
		mol, err = XYZRead(in)
	default:
		return nil, newError(name, "ReadFile", "Unknown structure format %q", ext)
	}
	if err != nil {
		if e, ok := err.(*CError); ok && e.filename == "" {
			e.filename = name
		}
		return nil, errDecorate(err, "ReadFile")
	}
	if mol.Len() == 0 {
		return nil, newError(name, "ReadFile", "Unable to read a molecule")
	}
	if mol.Title == "" {
		mol.Title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return mol, nil
}

//Pdb_read family

//This tries to guess a chemical element symbol from a PDB atom name.
//raw is the 4-column name field, het tells if the atom comes from a HETATM record.
func symbolFromName(raw string, het bool) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	//names starting at column 13 may have a 2-letter element, but only in hets,
	//or CA would be calcium in every protein.
	if het && len(raw) == 4 && raw[0] != ' ' && len(name) >= 2 {
		if s, ok := twoLetterSymbols[strings.ToUpper(name[:2])]; ok && (len(name) == 2 || !unicode.IsLetter(rune(name[2]))) {
			return s
		}
	}
	for _, c := range name {
		if unicode.IsLetter(c) {
			if c == 'D' {
				return "H"
			}
			return string(unicode.ToUpper(c))
		}
	}
	return ""
}

//normSymbol turns "CL" into "Cl" and so on.
func normSymbol(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return s
	}
	if len(s) == 1 {
		s = strings.ToUpper(s)
		if s == "D" || s == "T" {
			return "H" //isotopes count as hydrogens everywhere
		}
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//parses charges written as "2+", "1-", "+" or "-"
func pdbCharge(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	sign := 1
	if strings.HasSuffix(s, "-") || strings.HasPrefix(s, "-") {
		sign = -1
	}
	s = strings.Trim(s, "+-")
	if s == "" {
		return sign
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return sign * n
}

//Parses a valid ATOM or HETATM line of a PDB file, returns an Atom
//object with the info, coordinates included.
func readPDBAtomLine(line string, lineno int) (*Atom, error) {
	if len(strings.TrimRight(line, " \r\n")) < 54 {
		return nil, newError("", "readPDBAtomLine", "line %d is too short for an ATOM/HETATM record", lineno)
	}
	if len(line) < 80 {
		line = line + strings.Repeat(" ", 80-len(line))
	}
	var err error
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		atom.ID = -1 //some programs write hex or garbage in big files. We don't need it.
	}
	atom.Name = strings.TrimSpace(line[12:16])
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, newError("", "readPDBAtomLine", "line %d: bad residue number %q", lineno, line[22:26])
	}
	atom.ICode = strings.TrimSpace(line[26:27])
	var c [3]float64
	for i := range c {
		field := strings.TrimSpace(line[30+8*i : 38+8*i])
		c[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, newError("", "readPDBAtomLine", "line %d: bad coordinate %q", lineno, field)
		}
	}
	atom.Coord = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	//occupancy and b-factors are optional, we don't complain if they are missing.
	atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	atom.Bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	atom.Symbol = normSymbol(line[76:78])
	atom.Charge = pdbCharge(line[78:80])
	if atom.Symbol == "" {
		atom.Symbol = symbolFromName(line[12:16], atom.Het)
	}
	if atom.Symbol == "" {
		return nil, newError("", "readPDBAtomLine", "line %d: couldn't guess the element of atom %q", lineno, atom.Name)
	}
	return atom, nil
}

//PDBRead reads the atomic entries of the first model in a PDB file.
//Alternate locations other than the first one are skipped.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	mol := &Molecule{}
	scanner := bufio.NewScanner(pdb)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineno++
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			if len(line) > 16 && line[16] != ' ' && line[16] != 'A' && line[16] != '1' {
				continue //alternate location
			}
			at, err := readPDBAtomLine(line, lineno)
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			mol.AddAtom(at)
		case strings.HasPrefix(line, "ENDMDL"):
			return mol, nil //we only want the first model
		case strings.HasPrefix(line, "HEADER") || strings.HasPrefix(line, "TITLE"):
			if mol.Title == "" && len(line) > 10 {
				end := len(line)
				if strings.HasPrefix(line, "HEADER") && end > 50 {
					end = 50
				}
				mol.Title = strings.TrimSpace(line[10:end])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newError("", "PDBRead", "error reading line %d: %v", lineno+1, err)
	}
	return mol, nil
}

//End Pdb_read family

//charge codes in the V2000 atom block
var sdfChargeCodes = map[int]int{1: 3, 2: 2, 3: 1, 5: -1, 6: -2, 7: -3}

func fixedField(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

//SDFRead reads the first record of an MDL molfile/SD file (V2000).
//Atom names are built from the element and the 1-based index ("C1", "N7").
//All atoms are put in a residue LIG, number 1.
func SDFRead(sdf io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(sdf)
	lines := make([]string, 0, 64)
	for scanner.Scan() {
		l := scanner.Text()
		if strings.HasPrefix(l, "$$$$") {
			break
		}
		lines = append(lines, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, newError("", "SDFRead", "%v", err)
	}
	if len(lines) < 4 {
		return nil, newError("", "SDFRead", "unexpected EOF in header")
	}
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		return nil, newError("", "SDFRead", "V3000 molfiles are not supported")
	}
	natoms, err1 := strconv.Atoi(fixedField(counts, 0, 3))
	nbonds, err2 := strconv.Atoi(fixedField(counts, 3, 6))
	if err1 != nil || err2 != nil {
		return nil, newError("", "SDFRead", "ill formed counts line %q", counts)
	}
	if len(lines) < 4+natoms+nbonds {
		return nil, newError("", "SDFRead", "expected %d atoms and %d bonds, file too short", natoms, nbonds)
	}
	mol := &Molecule{Title: strings.TrimSpace(lines[0]), HasBonds: true}
	for i := 0; i < natoms; i++ {
		line := lines[4+i]
		var c [3]float64
		var err error
		for j := range c {
			c[j], err = strconv.ParseFloat(fixedField(line, 10*j, 10*j+10), 64)
			if err != nil {
				return nil, newError("", "SDFRead", "atom %d: bad coordinate in %q", i+1, line)
			}
		}
		at := &Atom{
			ID:      i + 1,
			MolName: "LIG",
			MolID:   1,
			Het:     true,
			Symbol:  normSymbol(fixedField(line, 31, 34)),
			Coord:   r3.Vec{X: c[0], Y: c[1], Z: c[2]},
		}
		if at.Symbol == "" {
			return nil, newError("", "SDFRead", "atom %d has no element", i+1)
		}
		if code, err := strconv.Atoi(fixedField(line, 36, 39)); err == nil {
			at.Charge = sdfChargeCodes[code]
		}
		at.Name = at.Symbol + strconv.Itoa(i+1)
		mol.AddAtom(at)
	}
	for i := 0; i < nbonds; i++ {
		line := lines[4+natoms+i]
		a1, err1 := strconv.Atoi(fixedField(line, 0, 3))
		a2, err2 := strconv.Atoi(fixedField(line, 3, 6))
		order, err3 := strconv.Atoi(fixedField(line, 6, 9))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, newError("", "SDFRead", "ill formed bond line %q", line)
		}
		if _, err := mol.AddBond(a1-1, a2-1, float64(order)); err != nil {
			return nil, errDecorate(newError("", "SDFRead", "%v", err), "SDFRead")
		}
	}
	//The properties block. M  CHG overrides the charges in the atom block.
	for _, line := range lines[4+natoms+nbonds:] {
		if strings.HasPrefix(line, "M  END") {
			break
		}
		if !strings.HasPrefix(line, "M  CHG") {
			continue
		}
		f := strings.Fields(line)
		for k := 3; k+1 < len(f); k += 2 {
			idx, err1 := strconv.Atoi(f[k])
			chg, err2 := strconv.Atoi(f[k+1])
			if err1 != nil || err2 != nil || idx < 1 || idx > natoms {
				return nil, newError("", "SDFRead", "ill formed charge line %q", line)
			}
			mol.Atoms[idx-1].Charge = chg
		}
	}
	return mol, nil
}

//XYZRead reads an xyz file. The comment line is used as title.
func XYZRead(xyz io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(xyz)
	if !scanner.Scan() {
		return nil, newError("", "XYZRead", "Ill formatted XYZ file!")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, newError("", "XYZRead", "Ill formatted XYZ file!")
	}
	mol := &Molecule{}
	if scanner.Scan() {
		mol.Title = strings.TrimSpace(scanner.Text())
	}
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			return nil, newError("", "XYZRead", "expected %d atoms, found %d", natoms, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, newError("", "XYZRead", "Line number %d ill formed", i+3)
		}
		var c [3]float64
		for j := range c {
			c[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, newError("", "XYZRead", "Line number %d: bad coordinate %q", i+3, fields[j+1])
			}
		}
		at := &Atom{ID: i + 1, MolName: "LIG", MolID: 1, Het: true, Symbol: normSymbol(fields[0]), Coord: r3.Vec{X: c[0], Y: c[1], Z: c[2]}}
		at.Name = at.Symbol + strconv.Itoa(i+1)
		mol.AddAtom(at)
	}
	return mol, nil
}

//OutputFile is a file to be written and the function that writes its contents.
type OutputFile struct {
	Name  string
	Write func(io.Writer) error
}

//WriteFilesAtomic writes each file to a pending temporary file next to its
//target. The targets are replaced only once every write has succeeded, so a
//failed write leaves none of the outputs behind. Files are created with
//0666 permissions, minus the umask.
func WriteFilesAtomic(files ...OutputFile) error {
	pending := make([]*renameio.PendingFile, 0, len(files))
	defer func() {
		for _, p := range pending {
			p.Cleanup() //no-op for the replaced ones
		}
	}()
	for _, f := range files {
		if fi, err := os.Stat(f.Name); err == nil && !fi.Mode().IsRegular() {
			return newError(f.Name, "WriteFilesAtomic", "Cannot replace, not a regular file")
		}
		p, err := renameio.NewPendingFile(f.Name, renameio.WithTempDir(filepath.Dir(f.Name)), renameio.WithPermissions(0o666))
		if err != nil {
			return newError(f.Name, "WriteFilesAtomic", "Cannot open output file: %v", err)
		}
		pending = append(pending, p)
		if err := f.Write(p); err != nil {
			return errDecorate(err, "WriteFilesAtomic "+f.Name)
		}
	}
	for i, p := range pending {
		if err := p.CloseAtomicallyReplace(); err != nil {
			return newError(files[i].Name, "WriteFilesAtomic", "Cannot write: %v", err)
		}
	}
	return nil
}

//WriteFileAtomic is WriteFilesAtomic for a single file.
func WriteFileAtomic(name string, write func(io.Writer) error) error {
	return WriteFilesAtomic(OutputFile{Name: name, Write: write})
}
