/*
 * geometric.go, part of asmap.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Distance returns the distance between two points.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

//Centroid returns the geometric center of the points.
func Centroid(points []r3.Vec) r3.Vec {
	var c r3.Vec
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(points)), c)
}

//Angle takes 2 vectors and calculate the angle in radians between them
//It does not check for correctness or return errors!
func Angle(v1, v2 r3.Vec) float64 {
	cos := r3.Cos(v1, v2)
	//rounding errors can give |cos| slightly over 1
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

//PlaneAngle returns the angle, in degrees, between two planes given
//by their normals. The result is always between 0 and 90.
func PlaneAngle(n1, n2 r3.Vec) float64 {
	a := Angle(n1, n2) * Rad2Deg
	if a > 90 {
		a = 180 - a
	}
	return a
}

//centered returns an n x 3 matrix with the points minus their centroid.
func centered(points []r3.Vec) (*mat.Dense, r3.Vec) {
	c := Centroid(points)
	m := mat.NewDense(len(points), 3, nil)
	for i, p := range points {
		d := r3.Sub(p, c)
		m.Set(i, 0, d.X)
		m.Set(i, 1, d.Y)
		m.Set(i, 2, d.Z)
	}
	return m, c
}

//principalAxes returns the right singular vectors of the centered
//points (columns, largest spread first) and the singular values.
func principalAxes(points []r3.Vec) (*mat.Dense, []float64, r3.Vec, error) {
	m, c := centered(points)
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return nil, nil, c, fmt.Errorf("principalAxes: SVD factorization failed")
	}
	var v mat.Dense
	svd.VTo(&v)
	return &v, svd.Values(nil), c, nil
}

//BestPlane returns the unit normal of the plane that best fits the points,
//and the RMS distance of the points to that plane.
//At least 3 points are needed.
func BestPlane(points []r3.Vec) (normal r3.Vec, rms float64, err error) {
	if len(points) < 3 {
		return normal, 0, fmt.Errorf("BestPlane: need at least 3 points, got %d", len(points))
	}
	v, vals, _, err := principalAxes(points)
	if err != nil {
		return normal, 0, err
	}
	normal = r3.Unit(r3.Vec{X: v.At(0, 2), Y: v.At(1, 2), Z: v.At(2, 2)})
	smallest := 0.0
	if len(vals) > 2 {
		smallest = vals[2]
	}
	return normal, smallest / math.Sqrt(float64(len(points))), nil
}

//Project2D projects the points on the plane of their two principal axes.
//The returned coordinates are centered on the centroid of the points.
func Project2D(points []r3.Vec) ([][2]float64, error) {
	ret := make([][2]float64, len(points))
	switch len(points) {
	case 0, 1:
		return ret, nil
	case 2:
		d := Distance(points[0], points[1]) / 2
		ret[0] = [2]float64{-d, 0}
		ret[1] = [2]float64{d, 0}
		return ret, nil
	}
	v, _, c, err := principalAxes(points)
	if err != nil {
		return nil, err
	}
	ax1 := r3.Vec{X: v.At(0, 0), Y: v.At(1, 0), Z: v.At(2, 0)}
	ax2 := r3.Vec{X: v.At(0, 1), Y: v.At(1, 1), Z: v.At(2, 1)}
	for i, p := range points {
		d := r3.Sub(p, c)
		ret[i] = [2]float64{r3.Dot(d, ax1), r3.Dot(d, ax2)}
	}
	return ret, nil
}
