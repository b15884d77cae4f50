/*
 * doc.go, part of asmap.
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
 */

/*Package chem is the molecule layer of asmap. It provides atom, residue and molecule structures,
readers for the structure files a protein-ligand complex usually comes in, and the geometric
helpers the active site analysis is built on.


	**Capabilities**


    Reads PDB (also .ent), SDF/MOL (V2000) and XYZ files, optionally gzip-compressed.
	Only the first model of a multi-model PDB is read, and for atoms with alternate
	locations only the first location is kept.

    Assigns bonds from distances when the file gives none, and keeps formal charges
	from PDB and SDF files.

    Groups atoms into residues keyed by chain, number, insertion code and name.

    Selects atoms by index, heavy atoms, or by residue.

    Computes distances, centroids, best planes (via SVD, using gonum/mat) and angles
	between planes, and projects a molecule onto its best plane for 2D depictions.

    Writes output files atomically, so a failed run never leaves a half-written file.

Coordinates are gonum r3.Vec values. Errors carry the chain of functions they went
through, see CError.*/
package chem
