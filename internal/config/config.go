/*
 * config.go, part of asmap.
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

//Package config gathers the settings of the command line tools. Command
//line flags win over ASITE_* environment variables, which win over an
//optional YAML file, which wins over the built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/activesite/asmap/depict"
	"github.com/activesite/asmap/interaction"
	"github.com/activesite/asmap/internal/logging"
	"github.com/activesite/asmap/report"
)

//EnvPrefix is the prefix of the environment variables read.
const EnvPrefix = "ASITE"

//Subsite is one entry of the subsite table. The table is a list, not a
//map, because viper lowercases map keys.
type Subsite struct {
	Name     string `mapstructure:"name"`
	Residues []int  `mapstructure:"residues"`
}

type SubsitesConfig struct {
	Enabled bool      `mapstructure:"enabled"`
	Table   []Subsite `mapstructure:"table"` //empty means the built-in table
}

type SplitConfig struct {
	LigandName     string `mapstructure:"ligand"`
	CovalentLigand bool   `mapstructure:"covalent"`
	KeepWater      bool   `mapstructure:"water"`
}

type ImageConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Title  string  `mapstructure:"title"`
}

type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`
	Image   string   `mapstructure:"image"`
	Classes []string `mapstructure:"classes"` //empty means all of them
}

//Config holds every setting of both tools.
type Config struct {
	Thresholds interaction.Options `mapstructure:"thresholds"`
	Subsites   SubsitesConfig      `mapstructure:"subsites"`
	Split      SplitConfig         `mapstructure:"split"`
	Image      ImageConfig         `mapstructure:"image"`
	Output     OutputConfig        `mapstructure:"output"`
	Log        logging.Config      `mapstructure:"log"`
}

//Defaults returns the built-in configuration.
func Defaults() *Config {
	img := depict.DefaultOptions()
	return &Config{
		Thresholds: interaction.DefaultOptions(),
		Subsites:   SubsitesConfig{Enabled: true},
		Split:      SplitConfig{KeepWater: true},
		Image:      ImageConfig{Width: img.Width, Height: img.Height},
		Output:     OutputConfig{Dir: ".", Image: "activesite.svg"},
		Log:        logging.DefaultConfig(),
	}
}

//New returns a viper instance with the defaults set and the environment
//bound. Nested keys map to variables like ASITE_THRESHOLDS_HBOND.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Defaults()
	t := d.Thresholds
	for k, val := range map[string]interface{}{
		"thresholds.hbond":        t.MaxHBondDistance,
		"thresholds.hbondni":      t.MaxNonIdealHBondDistance,
		"thresholds.hbondca":      t.MaxChargeAidedHBondDistance,
		"thresholds.halogenbond":  t.MaxHalogenBondDistance,
		"thresholds.pistack":      t.MaxPiStackDistance,
		"thresholds.tstack":       t.MaxTStackDistance,
		"thresholds.saltbridge":   t.MaxSaltBridgeDistance,
		"thresholds.cationpi":     t.MaxCationPiDistance,
		"thresholds.contact":      t.MaxContactFraction,
		"thresholds.clashcontact": t.MinContactFraction,
		"subsites.enabled":        d.Subsites.Enabled,
		"split.ligand":            d.Split.LigandName,
		"split.covalent":          d.Split.CovalentLigand,
		"split.water":             d.Split.KeepWater,
		"image.width":             d.Image.Width,
		"image.height":            d.Image.Height,
		"image.title":             d.Image.Title,
		"output.dir":              d.Output.Dir,
		"output.image":            d.Output.Image,
		"output.classes":          []string{},
		"log.level":               d.Log.Level,
		"log.format":              d.Log.Format,
		"log.output":              d.Log.Output,
	} {
		v.SetDefault(k, val)
	}
	return v
}

//Load reads the YAML file path, if not empty, into v and returns the
//validated configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

//Validate checks the thresholds, the subsite table, the reported classes,
//the image size and the log level.
func (C *Config) Validate() error {
	if err := C.Thresholds.Validate(); err != nil {
		return err
	}
	for _, s := range C.Subsites.Table {
		if s.Name == "" || len(s.Residues) == 0 {
			return fmt.Errorf("subsite entries need a name and at least one residue")
		}
	}
	if err := C.SubsiteTable().Validate(); err != nil {
		return err
	}
	for _, c := range C.Output.Classes {
		if _, err := interaction.ParseClass(c); err != nil {
			return err
		}
	}
	if !(C.Image.Width > 0) || !(C.Image.Height > 0) {
		return fmt.Errorf("image size must be positive, got %gx%g", C.Image.Width, C.Image.Height)
	}
	if _, err := logging.ParseLevel(C.Log.Level); err != nil {
		return err
	}
	return nil
}

//SubsiteTable returns the configured subsite table, or the built-in one
//if none is configured.
func (C *Config) SubsiteTable() report.Subsites {
	if len(C.Subsites.Table) == 0 {
		return report.DefaultSubsites()
	}
	t := make(report.Subsites, len(C.Subsites.Table))
	for _, s := range C.Subsites.Table {
		t[s.Name] = append(t[s.Name], s.Residues...)
	}
	return t
}

//ActiveSubsites returns the subsite table, or nil if subsites are disabled.
func (C *Config) ActiveSubsites() report.Subsites {
	if !C.Subsites.Enabled {
		return nil
	}
	return C.SubsiteTable()
}

//ReportClasses returns the interaction classes to report, in report order.
//Classes must have been validated.
func (C *Config) ReportClasses() []interaction.Class {
	if len(C.Output.Classes) == 0 {
		return interaction.DefaultClasses
	}
	want := make(map[interaction.Class]bool, len(C.Output.Classes))
	for _, c := range C.Output.Classes {
		if class, err := interaction.ParseClass(c); err == nil {
			want[class] = true
		}
	}
	ret := make([]interaction.Class, 0, len(want))
	for _, c := range interaction.DefaultClasses {
		if want[c] {
			ret = append(ret, c)
		}
	}
	return ret
}

//ImageOptions returns the rendering options.
func (C *Config) ImageOptions() depict.Options {
	return depict.Options{Width: C.Image.Width, Height: C.Image.Height, Title: C.Image.Title}
}
