/*
 * interactions.go, part of asmap.
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
	"github.com/spf13/cobra"

	"github.com/activesite/asmap/interaction"
	"github.com/activesite/asmap/internal/config"
	"github.com/activesite/asmap/internal/logging"
	"github.com/activesite/asmap/report"
)

//NewInteractionsCommand returns the activesiteinteractions command. It
//writes interactions.tsv and interactions.json with one record per protein
//atom and interaction class.
func NewInteractionsCommand() *cobra.Command {
	a := newApp("activesiteinteractions")
	cmd := &cobra.Command{
		Use:   "activesiteinteractions --complex FILE [flags]",
		Short: "Tabulate the protein-ligand interactions of a complex",
		Long: "activesiteinteractions splits a protein-ligand complex, perceives the interactions\n" +
			"between both and writes them to interactions.tsv and interactions.json.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := switchFlag(cmd.Flags(), "subsites"); err != nil {
				return err
			}
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.log.Sync()
			c, err := a.activeSite(cmd.Context(), false)
			if err != nil {
				return err
			}
			classes := a.cfg.ReportClasses()
			recs := report.Collect(c, classes, a.cfg.ActiveSubsites())
			tsv, js, err := report.WriteFiles(a.cfg.Output.Dir, recs)
			if err != nil {
				return a.traced(err)
			}
			a.log.Info("records written", logging.Int("records", len(recs)), logging.Strings("classes", classNames(classes)),
				logging.String("tsv", tsv), logging.String("json", js))
			return nil
		},
	}
	a.commonFlags(cmd)
	fs := cmd.Flags()
	d := config.Defaults()
	fs.Int("subsites", 1, "assign active site subsites to the records (0 or 1)")
	fs.String("out-dir", d.Output.Dir, "directory for interactions.tsv and interactions.json")
	fs.StringSlice("classes", nil, "interaction classes to report (hbond, halogen, stacking, sbridge, cation-pi, clashcontact, contact); all if empty")
	a.bind(fs, "subsites", "subsites.enabled")
	a.bind(fs, "out-dir", "output.dir")
	a.bind(fs, "classes", "output.classes")
	return cmd
}

func classNames(classes []interaction.Class) []string {
	ret := make([]string, len(classes))
	for i, c := range classes {
		ret[i] = string(c)
	}
	return ret
}
