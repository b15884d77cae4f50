/*
 * write.go, part of asmap.
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

package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"path/filepath"

	chem "github.com/activesite/asmap"
)

//Default output file names.
const (
	TSVName  = "interactions.tsv"
	JSONName = "interactions.json"
)

//WriteTSV writes a header line with Fields and one tab-separated row per record.
func WriteTSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(Fields); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteJSON writes the records as a JSON array, indented with 4 spaces.
//No records give an empty array.
func WriteJSON(w io.Writer, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	b, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

//WriteFiles writes interactions.tsv and interactions.json in dir and returns
//their paths. Either both files are replaced or none is.
func WriteFiles(dir string, recs []Record) (tsv, js string, err error) {
	if dir == "" {
		dir = "."
	}
	tsv = filepath.Join(dir, TSVName)
	js = filepath.Join(dir, JSONName)
	err = chem.WriteFilesAtomic(
		chem.OutputFile{Name: tsv, Write: func(w io.Writer) error { return WriteTSV(w, recs) }},
		chem.OutputFile{Name: js, Write: func(w io.Writer) error { return WriteJSON(w, recs) }},
	)
	if err != nil {
		return "", "", err
	}
	return tsv, js, nil
}
