/*
 * render.go, part of asmap.
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

package depict

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	chem "github.com/activesite/asmap"
	"github.com/activesite/asmap/interaction"
)

//ErrNotSVG is returned when the output file is not an SVG image.
var ErrNotSVG = errors.New("only available for SVG image type")

//Options for the rendered image. Sizes are in points.
type Options struct {
	Width  float64
	Height float64
	Title  string //if empty, the ligand title is used
}

//DefaultOptions returns a 900x600 image.
func DefaultOptions() Options {
	return Options{Width: 900, Height: 600}
}

//CheckOutput returns ErrNotSVG unless name has the .svg extension.
func CheckOutput(name string) error {
	if strings.ToLower(filepath.Ext(name)) != ".svg" {
		return fmt.Errorf("%w: %s", ErrNotSVG, name)
	}
	return nil
}

var borderColor = color.RGBA{R: 211, G: 211, B: 211, A: 255}

type classStyle struct {
	color  color.Color
	dashes []vg.Length
}

var classStyles = map[interaction.Class]classStyle{
	interaction.ClassHBond:    {color.RGBA{R: 30, G: 100, B: 220, A: 255}, []vg.Length{vg.Points(4), vg.Points(2)}},
	interaction.ClassHalogen:  {color.RGBA{R: 0, G: 160, B: 120, A: 255}, []vg.Length{vg.Points(4), vg.Points(2)}},
	interaction.ClassStacking: {color.RGBA{R: 130, G: 60, B: 200, A: 255}, []vg.Length{vg.Points(1), vg.Points(3)}},
	interaction.ClassSBridge:  {color.RGBA{R: 220, G: 140, B: 0, A: 255}, nil},
	interaction.ClassCationPi: {color.RGBA{R: 200, G: 60, B: 160, A: 255}, []vg.Length{vg.Points(1), vg.Points(3)}},
	interaction.ClassClash:    {color.RGBA{R: 220, G: 20, B: 20, A: 255}, nil},
	interaction.ClassContact:  {color.RGBA{R: 140, G: 140, B: 140, A: 255}, []vg.Length{vg.Points(2), vg.Points(2)}},
}

var elementColors = map[string]color.Color{
	"N":  color.RGBA{B: 220, A: 255},
	"O":  color.RGBA{R: 220, A: 255},
	"S":  color.RGBA{R: 190, G: 160, A: 255},
	"P":  color.RGBA{R: 230, G: 120, A: 255},
	"F":  color.RGBA{G: 150, A: 255},
	"Cl": color.RGBA{G: 150, A: 255},
	"Br": color.RGBA{R: 150, G: 40, B: 40, A: 255},
	"I":  color.RGBA{R: 110, B: 150, A: 255},
}

func elementColor(symbol string) color.Color {
	if c, ok := elementColors[symbol]; ok {
		return c
	}
	return color.Black
}

func segment(from, to Point) plotter.XYs {
	return plotter.XYs{{X: from.X, Y: from.Y}, {X: to.X, Y: to.Y}}
}

//labels builds centered labels at the given points.
func labels(pts plotter.XYs, strs []string, colors []color.Color) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: strs})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
		if colors != nil {
			l.TextStyle[i].Color = colors[i]
		}
	}
	return l, nil
}

//fitAspect sets the axes ranges so a unit has the same length along x and
//y on a width x height canvas.
func fitAspect(p *plot.Plot, radius, width, height float64) {
	half := radius + 2.0
	hx, hy := half, half
	if width >= height {
		hx = half * width / height
	} else {
		hy = half * height / width
	}
	p.X.Min, p.X.Max = -hx, hx
	p.Y.Min, p.Y.Max = -hy, hy
}

//Plot builds the map as a gonum plot.
func Plot(L *Layout, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = L.Title
	}
	p.HideAxes()
	p.Legend.Top = true
	fitAspect(p, L.Radius, opts.Width, opts.Height)

	for _, c := range L.Connectors {
		line, err := plotter.NewLine(segment(L.Residues[c.Residue].Pos, c.To))
		if err != nil {
			return nil, err
		}
		st := classStyles[c.Class]
		line.LineStyle.Color = st.color
		line.LineStyle.Dashes = st.dashes
		line.LineStyle.Width = vg.Points(1.2)
		p.Add(line)
	}
	for _, class := range L.Classes() {
		thumb, err := plotter.NewLine(plotter.XYs{{}, {}})
		if err != nil {
			return nil, err
		}
		st := classStyles[class]
		thumb.LineStyle.Color = st.color
		thumb.LineStyle.Dashes = st.dashes
		thumb.LineStyle.Width = vg.Points(1.2)
		p.Legend.Add(string(class), thumb)
	}

	for _, b := range L.Bonds {
		line, err := plotter.NewLine(segment(L.Atoms[b[0]].Pos, L.Atoms[b[1]].Pos))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}
	var hetPts plotter.XYs
	var hetStrs []string
	var hetColors []color.Color
	for _, at := range L.Atoms {
		if at.Symbol == "C" {
			continue
		}
		hetPts = append(hetPts, plotter.XY{X: at.Pos.X, Y: at.Pos.Y})
		hetStrs = append(hetStrs, at.Symbol)
		hetColors = append(hetColors, elementColor(at.Symbol))
	}
	if len(hetPts) > 0 {
		//white discs hide the bond ends under the element symbol
		bg, err := plotter.NewScatter(hetPts)
		if err != nil {
			return nil, err
		}
		bg.GlyphStyle = draw.GlyphStyle{Color: color.White, Radius: vg.Points(6), Shape: draw.CircleGlyph{}}
		p.Add(bg)
		l, err := labels(hetPts, hetStrs, hetColors)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	if len(L.Residues) > 0 {
		resPts := make(plotter.XYs, len(L.Residues))
		resStrs := make([]string, len(L.Residues))
		for i, r := range L.Residues {
			resPts[i] = plotter.XY{X: r.Pos.X, Y: r.Pos.Y}
			resStrs[i] = r.Label
		}
		discs, err := plotter.NewScatter(resPts)
		if err != nil {
			return nil, err
		}
		discs.GlyphStyle = draw.GlyphStyle{Color: color.RGBA{R: 235, G: 240, B: 250, A: 255}, Radius: vg.Points(22), Shape: draw.CircleGlyph{}}
		p.Add(discs)
		l, err := labels(resPts, resStrs, nil)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}
	return p, nil
}

//Render draws the map on an SVG canvas of opts.Width x opts.Height points
//with a light grey border, and writes it to w.
func Render(w io.Writer, L *Layout, opts Options) error {
	if !(opts.Width > 0) || !(opts.Height > 0) || math.IsInf(opts.Width+opts.Height, 0) {
		return fmt.Errorf("invalid image size %gx%g", opts.Width, opts.Height)
	}
	p, err := Plot(L, opts)
	if err != nil {
		return fmt.Errorf("building map of %s: %w", L.Title, err)
	}
	canvas := vgsvg.New(vg.Points(opts.Width), vg.Points(opts.Height))
	dc := draw.New(canvas)
	p.Draw(dc)
	r := dc.Rectangle
	border := []vg.Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}, r.Min}
	dc.StrokeLines(draw.LineStyle{Color: borderColor, Width: vg.Points(2)}, border)
	_, err = canvas.WriteTo(w)
	return err
}

//WriteFile renders the map to the SVG file name. The file is only
//created if rendering succeeds.
func WriteFile(name string, L *Layout, opts Options) error {
	if err := CheckOutput(name); err != nil {
		return err
	}
	return chem.WriteFileAtomic(name, func(w io.Writer) error { return Render(w, L, opts) })
}
