/*
 * maps.go, part of asmap.
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

	"github.com/activesite/asmap/depict"
	"github.com/activesite/asmap/internal/config"
	"github.com/activesite/asmap/internal/logging"
)

//NewMapsCommand returns the activesitemaps2img command, which draws the
//active site map of a complex, or of a protein and a ligand, as SVG.
func NewMapsCommand() *cobra.Command {
	a := newApp("activesitemaps2img")
	cmd := &cobra.Command{
		Use:   "activesitemaps2img (--complex FILE | --protein FILE --ligand FILE) [flags]",
		Short: "Draw a 2D map of a ligand and the residues it interacts with",
		Long: "activesitemaps2img perceives the interactions between a protein and a ligand and\n" +
			"draws the ligand with the interacting residues around it as an SVG image.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.log.Sync()
			out := a.cfg.Output.Image
			if err := depict.CheckOutput(out); err != nil {
				return err
			}
			c, err := a.activeSite(cmd.Context(), true)
			if err != nil {
				return err
			}
			layout, err := depict.Prepare(c)
			if err != nil {
				return err
			}
			if err := depict.WriteFile(out, layout, a.cfg.ImageOptions()); err != nil {
				return a.traced(err)
			}
			a.log.Info("map written", logging.String("file", out),
				logging.Int("residues", len(layout.Residues)), logging.Int("connectors", len(layout.Connectors)))
			return nil
		},
	}
	a.commonFlags(cmd)
	fs := cmd.Flags()
	d := config.Defaults()
	fs.StringVarP(&a.proteinFile, "protein", "p", "", "protein structure, used with --ligand")
	fs.StringVarP(&a.ligandFile, "ligand", "l", "", "ligand structure, used with --protein")
	fs.StringP("out", "o", d.Output.Image, "output image, must end in .svg")
	fs.Float64("width", d.Image.Width, "image width (points)")
	fs.Float64("height", d.Image.Height, "image height (points)")
	fs.String("title", "", "image title; the ligand name if empty")
	a.bind(fs, "out", "output.image")
	a.bind(fs, "width", "image.width")
	a.bind(fs, "height", "image.height")
	a.bind(fs, "title", "image.title")
	return cmd
}
