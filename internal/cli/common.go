/*
 * common.go, part of asmap.
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

//Package cli builds the cobra commands of activesiteinteractions and
//activesitemaps2img.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	chem "github.com/activesite/asmap"
	"github.com/activesite/asmap/interaction"
	"github.com/activesite/asmap/internal/config"
	"github.com/activesite/asmap/internal/logging"
	"github.com/activesite/asmap/split"
)

var (
	//ErrInputs is returned when the input files given do not make sense together.
	ErrInputs    = errors.New("give either --complex or both --protein and --ligand")
	ErrNoComplex = errors.New("no complex given, use --complex")

	//ErrInvalidFlag is returned for flag values outside their allowed set.
	ErrInvalidFlag = errors.New("invalid flag value")
)

//app is the state shared by the flags and the run of a command.
type app struct {
	name    string
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     logging.Logger

	complexFile string
	proteinFile string
	ligandFile  string
}

func newApp(name string) *app {
	return &app{name: name, v: config.New(), log: logging.NewNop()}
}

//bind registers the flag called name of fs under the configuration key.
func (a *app) bind(fs *pflag.FlagSet, name, key string) {
	if err := a.v.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", name, err)) //only if the flag was not defined
	}
}

//commonFlags adds the flags both tools have.
func (a *app) commonFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	d := config.Defaults()
	fs.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	fs.StringVarP(&a.complexFile, "complex", "c", "", "protein-ligand complex (pdb, ent, sdf, mol, xyz, optionally .gz)")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-format", d.Log.Format, "log format (console, json)")
	a.bind(fs, "log-level", "log.level")
	a.bind(fs, "log-format", "log.format")

	fs.String("ligname", "", "residue name of the ligand; the biggest non-polymer residue if empty")
	fs.Bool("covalent", false, "the ligand named by --ligname may come from ATOM records")
	a.bind(fs, "ligname", "split.ligand")
	a.bind(fs, "covalent", "split.covalent")

	t := d.Thresholds
	for _, f := range []struct {
		name, usage string
		def         float64
	}{
		{"hbond", "maximum hydrogen bond distance (A)", t.MaxHBondDistance},
		{"hbondni", "maximum non-ideal hydrogen bond distance (A)", t.MaxNonIdealHBondDistance},
		{"hbondca", "maximum charge-aided hydrogen bond distance (A)", t.MaxChargeAidedHBondDistance},
		{"halogenbond", "maximum halogen bond distance (A)", t.MaxHalogenBondDistance},
		{"pistack", "maximum pi stacking ring distance (A)", t.MaxPiStackDistance},
		{"tstack", "maximum T stacking ring distance (A)", t.MaxTStackDistance},
		{"saltbridge", "maximum salt bridge distance (A)", t.MaxSaltBridgeDistance},
		{"cationpi", "maximum cation-pi distance (A)", t.MaxCationPiDistance},
		{"contact", "maximum contact distance, as a fraction of the vdW radii sum", t.MaxContactFraction},
		{"clashcontact", "clash distance, as a fraction of the vdW radii sum", t.MinContactFraction},
	} {
		fs.Float64(f.name, f.def, f.usage)
		a.bind(fs, f.name, "thresholds."+f.name)
	}
}

//setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.Named(a.name)
	return nil
}

func (a *app) splitOptions() split.Options {
	o := split.DefaultOptions()
	o.LigandName = a.cfg.Split.LigandName
	o.CovalentLigand = a.cfg.Split.CovalentLigand
	o.WaterAsProtein = a.cfg.Split.KeepWater
	return o
}

//molecules reads the protein and the ligand, either from a complex that is
//split or from two files.
func (a *app) molecules(allowPair bool) (protein, ligand *chem.Molecule, err error) {
	pair := a.proteinFile != "" || a.ligandFile != ""
	switch {
	case a.complexFile != "" && pair:
		return nil, nil, ErrInputs
	case a.complexFile == "" && !allowPair:
		return nil, nil, ErrNoComplex
	case a.complexFile != "":
		mol, err := chem.ReadFile(a.complexFile)
		if err != nil {
			return nil, nil, a.traced(err)
		}
		comps, err := split.Complex(mol, a.splitOptions())
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", a.complexFile, err)
		}
		a.log.Info("complex split",
			logging.String("file", a.complexFile),
			logging.String("ligand", comps.Ligand.Title),
			logging.Int("protein_atoms", comps.Protein.Len()),
			logging.Int("ligand_atoms", comps.Ligand.Len()),
			logging.Int("water_atoms", comps.Water.Len()),
			logging.Int("other_atoms", comps.Other.Len()))
		return comps.Protein, comps.Ligand, nil
	case a.proteinFile != "" && a.ligandFile != "":
		protein, err = chem.ReadFile(a.proteinFile)
		if err != nil {
			return nil, nil, a.traced(err)
		}
		ligand, err = chem.ReadFile(a.ligandFile)
		if err != nil {
			return nil, nil, a.traced(err)
		}
		return protein, ligand, nil
	}
	return nil, nil, ErrInputs
}

//traced logs, at debug level, the file and the call trace of file errors,
//and returns err.
func (a *app) traced(err error) error {
	var cerr *chem.CError
	if errors.As(err, &cerr) {
		a.log.Debug("error details",
			logging.String("file", cerr.FileName()),
			logging.String("trace", cerr.Trace()),
			logging.Bool("critical", cerr.Critical()))
	}
	return err
}

//switchFlag returns an error if the int flag name is not 0 or 1.
func switchFlag(fs *pflag.FlagSet, name string) error {
	n, err := fs.GetInt(name)
	if err != nil {
		return err
	}
	if n != 0 && n != 1 {
		return fmt.Errorf("%w: --%s must be 0 or 1, got %d", ErrInvalidFlag, name, n)
	}
	return nil
}

func thresholdFields(o interaction.Options) []logging.Field {
	return []logging.Field{
		logging.Float64("hbond", o.MaxHBondDistance),
		logging.Float64("hbondni", o.MaxNonIdealHBondDistance),
		logging.Float64("hbondca", o.MaxChargeAidedHBondDistance),
		logging.Float64("halogenbond", o.MaxHalogenBondDistance),
		logging.Float64("pistack", o.MaxPiStackDistance),
		logging.Float64("tstack", o.MaxTStackDistance),
		logging.Float64("saltbridge", o.MaxSaltBridgeDistance),
		logging.Float64("cationpi", o.MaxCationPiDistance),
		logging.Float64("contact", o.MaxContactFraction),
		logging.Float64("clashcontact", o.MinContactFraction),
	}
}

//activeSite reads the inputs and perceives the interactions.
func (a *app) activeSite(ctx context.Context, allowPair bool) (*interaction.Container, error) {
	protein, ligand, err := a.molecules(allowPair)
	if err != nil {
		return nil, err
	}
	a.log.Info("thresholds", thresholdFields(a.cfg.Thresholds)...)
	c, err := interaction.Perceive(ctx, protein, ligand, a.cfg.Thresholds)
	if err != nil {
		return nil, err
	}
	d, idx := c.LowestDist()
	a.log.Debug("closest atoms",
		logging.String("protein_atom", protein.Atom(idx[0]).Name),
		logging.String("residue", protein.Atom(idx[0]).Key().String()),
		logging.String("ligand_atom", ligand.Atom(idx[1]).Name),
		logging.Float64("distance", d))
	a.log.Info("interactions perceived", logging.String("ligand", c.Title), logging.Int("count", c.NumInteractions()))
	return c, nil
}
