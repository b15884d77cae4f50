/*
 * cli_test.go, part of asmap.
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

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	chem "github.com/activesite/asmap"
	"github.com/activesite/asmap/depict"
	"github.com/activesite/asmap/internal/logging"
	"github.com/activesite/asmap/report"
)

type pdbAtom struct {
	het    bool
	name   string
	res    string
	resid  int
	x, y   float64
	z      float64
	symbol string
}

func pdbLine(serial int, a pdbAtom) string {
	rec := "ATOM"
	if a.het {
		rec = "HETATM"
	}
	name := a.name
	if len(name) < 4 {
		name = " " + name
	}
	return fmt.Sprintf("%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		rec, serial, name, a.res, "A", a.resid, a.x, a.y, a.z, 1.0, 0.0, a.symbol)
}

//serine 30 with its OG 2.9 A from the oxygen of a small ligand, and a water.
var complexAtoms = []pdbAtom{
	{false, "N", "SER", 30, -3.0, 1.0, 0, "N"},
	{false, "CA", "SER", 30, -2.5, -0.3, 0, "C"},
	{false, "C", "SER", 30, -3.5, -1.4, 0, "C"},
	{false, "O", "SER", 30, -4.7, -1.2, 0, "O"},
	{false, "CB", "SER", 30, -1.4, 0.5, 0, "C"},
	{false, "OG", "SER", 30, 0, 0, 0, "O"},
	{true, "O1", "LIG", 1, 2.9, 0, 0, "O"},
	{true, "C1", "LIG", 1, 4.3, 0, 0, "C"},
	{true, "C2", "LIG", 1, 5.0, 1.2, 0, "C"},
	{true, "O", "HOH", 900, 20, 20, 20, "O"},
}

func writeComplex(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("HEADER    TEST COMPLEX\n")
	for i, a := range complexAtoms {
		b.WriteString(pdbLine(i+1, a) + "\n")
	}
	b.WriteString("END\n")
	path := filepath.Join(dir, "complex.pdb")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func run(t *testing.T, newCmd func() *cobra.Command, args ...string) error {
	t.Helper()
	cmd := newCmd()
	cmd.SetArgs(append(args, "--log-level", "error"))
	return cmd.ExecuteContext(context.Background())
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestInteractions(t *testing.T) {
	dir := t.TempDir()
	pdb := writeComplex(t, dir)
	require.NoError(t, run(t, NewInteractionsCommand, "--complex", pdb, "--out-dir", dir))

	lines := readLines(t, filepath.Join(dir, report.TSVName))
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(report.Fields, "\t"), lines[0])
	assert.Equal(t, "SER\t30\tA\tOG\tO1\thbond\tSS01", lines[1])
	assert.Equal(t, "SER\t30\tA\tOG\tO1\tcontact\tSS01", lines[2])

	js, err := os.ReadFile(filepath.Join(dir, report.JSONName))
	require.NoError(t, err)
	assert.Contains(t, string(js), `"Subsite": "SS01"`)
}

func TestInteractionsFlags(t *testing.T) {
	dir := t.TempDir()
	pdb := writeComplex(t, dir)
	require.NoError(t, run(t, NewInteractionsCommand, "--complex", pdb, "--out-dir", dir,
		"--hbond", "2.5", "--hbondni", "2.8", "--hbondca", "2.8", "--subsites", "0"))
	lines := readLines(t, filepath.Join(dir, report.TSVName))
	require.Len(t, lines, 2)
	assert.Equal(t, "SER\t30\tA\tOG\tO1\tcontact\t", lines[1])

	require.NoError(t, run(t, NewInteractionsCommand, "--complex", pdb, "--out-dir", dir, "--classes", "hbond"))
	lines = readLines(t, filepath.Join(dir, report.TSVName))
	require.Len(t, lines, 2)
	assert.Equal(t, "SER\t30\tA\tOG\tO1\thbond\tSS01", lines[1])
}

func TestInteractionsErrors(t *testing.T) {
	dir := t.TempDir()
	pdb := writeComplex(t, dir)

	assert.ErrorIs(t, run(t, NewInteractionsCommand, "--out-dir", dir), ErrNoComplex)
	assert.Error(t, run(t, NewInteractionsCommand, "--complex", filepath.Join(dir, "missing.pdb"), "--out-dir", dir))
	assert.Error(t, run(t, NewInteractionsCommand, "--complex", pdb, "--contact", "0.5", "--out-dir", dir))
	assert.Error(t, run(t, NewInteractionsCommand, "--complex", pdb, "--ligname", "XYZ", "--out-dir", dir))
	assert.Error(t, run(t, NewInteractionsCommand, "--complex", pdb, "--out-dir", filepath.Join(dir, "nowhere")))
	assert.Error(t, run(t, NewInteractionsCommand, "--complex", pdb, "--classes", "hbond,vdw", "--out-dir", dir))
	for _, n := range []string{"7", "-3", "2"} {
		assert.ErrorIs(t, run(t, NewInteractionsCommand, "--complex", pdb, "--subsites", n, "--out-dir", dir), ErrInvalidFlag, n)
	}
	_, err := os.Stat(filepath.Join(dir, report.TSVName))
	assert.True(t, os.IsNotExist(err), "failed runs write nothing")
}

func TestMaps(t *testing.T) {
	dir := t.TempDir()
	pdb := writeComplex(t, dir)
	out := filepath.Join(dir, "map.svg")
	require.NoError(t, run(t, NewMapsCommand, "--complex", pdb, "--out", out, "--width", "500", "--height", "400"))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "SER 30 A")
	assert.Contains(t, string(b), "LIG")
}

func TestMapsPair(t *testing.T) {
	dir := t.TempDir()
	var prot strings.Builder
	for i, a := range complexAtoms[:6] {
		prot.WriteString(pdbLine(i+1, a) + "\n")
	}
	protPath := filepath.Join(dir, "prot.pdb")
	require.NoError(t, os.WriteFile(protPath, []byte(prot.String()), 0o644))
	ligPath := filepath.Join(dir, "lig.xyz")
	xyz := "3\nethanol-ish\nO 2.9 0.0 0.0\nC 4.3 0.0 0.0\nC 5.0 1.2 0.0\n"
	require.NoError(t, os.WriteFile(ligPath, []byte(xyz), 0o644))

	out := filepath.Join(dir, "pair.svg")
	require.NoError(t, run(t, NewMapsCommand, "--protein", protPath, "--ligand", ligPath, "--out", out))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "SER 30 A")
}

func TestMapsErrors(t *testing.T) {
	dir := t.TempDir()
	pdb := writeComplex(t, dir)
	png := filepath.Join(dir, "map.png")
	assert.ErrorIs(t, run(t, NewMapsCommand, "--complex", pdb, "--out", png), depict.ErrNotSVG)
	_, err := os.Stat(png)
	assert.True(t, os.IsNotExist(err))

	svg := filepath.Join(dir, "map.svg")
	assert.ErrorIs(t, run(t, NewMapsCommand, "--complex", pdb, "--protein", pdb, "--out", svg), ErrInputs)
	assert.ErrorIs(t, run(t, NewMapsCommand, "--protein", pdb, "--out", svg), ErrInputs)
	assert.Error(t, run(t, NewMapsCommand, "--complex", pdb, "--out", svg, "--width", "0"))
}

func TestTracedErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := newApp("test")
	a.log = logging.FromCore(core)

	missing := filepath.Join(t.TempDir(), "missing.pdb")
	_, err := chem.ReadFile(missing)
	require.Error(t, err)
	assert.Equal(t, err, a.traced(err))
	entries := logs.FilterMessage("error details").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, missing, fields["file"])
	assert.Equal(t, "ReadFile", fields["trace"])
	assert.Equal(t, true, fields["critical"])

	plain := errors.New("plain")
	assert.Equal(t, plain, a.traced(plain))
	assert.Equal(t, 1, logs.Len(), "only file errors carry details")
}
