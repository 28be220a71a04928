// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/geomcore/geomcore/attrs"
	"github.com/geomcore/geomcore/column"
	"github.com/geomcore/geomcore/math32"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// ExportAttributes returns all attribute columns as an ordered
// sequence of named, typed records for writing, in deterministic
// column order.
func (pc *PointCloud) ExportAttributes() []attrs.Record {
	return pc.Attrs.Export()
}

// RebuildAttributes replaces the attribute store from the given
// record sequence with elems points, first migrating any records
// stored in the older non-generic layout (scalar position components,
// legacy radius name) into the generic store. The reserved position
// attribute is created if the records did not provide one, and all
// derived caches are invalidated.
func (pc *PointCloud) RebuildAttributes(recs []attrs.Record, elems int) {
	recs = convertLegacyRecords(recs, elems)
	pc.Attrs.Rebuild(recs, elems)
	if elems > 0 && pc.Attrs.Column(AttrPosition) == nil {
		pc.Attrs.SetColumn(AttrPosition, column.New[math32.Vector3](elems))
	}
	pc.TagPositionsChanged()
	pc.TagRadiiChanged()
}

// Legacy attribute layout, from before columns were stored generically:
// positions as three scalar components and radius under its own name.
const (
	legacyPositionX = "position_x"
	legacyPositionY = "position_y"
	legacyPositionZ = "position_z"
	legacyRadius    = "point_radius"
)

// convertLegacyRecords migrates records stored in the older layout to
// the current one: three scalar position component columns are merged
// into one Vector3 position column, and the legacy radius name is
// renamed. Current-layout records always win over legacy ones.
func convertLegacyRecords(recs []attrs.Record, elems int) []attrs.Record {
	var xs, ys, zs []float32
	hasPosition := false
	hasRadius := false
	for _, r := range recs {
		switch r.Name {
		case AttrPosition:
			hasPosition = true
		case AttrRadius:
			hasRadius = true
		case legacyPositionX:
			xs = column.Values[float32](r.Data)
		case legacyPositionY:
			ys = column.Values[float32](r.Data)
		case legacyPositionZ:
			zs = column.Values[float32](r.Data)
		}
	}
	out := make([]attrs.Record, 0, len(recs))
	for _, r := range recs {
		switch r.Name {
		case legacyPositionX, legacyPositionY, legacyPositionZ:
			// consumed below
		case legacyRadius:
			if !hasRadius {
				out = append(out, attrs.Record{Name: AttrRadius, Type: r.Type, Data: r.Data})
			}
		default:
			out = append(out, r)
		}
	}
	if !hasPosition && xs != nil && ys != nil && zs != nil {
		pos := column.New[math32.Vector3](elems)
		for i := range pos.Values {
			if i < len(xs) && i < len(ys) && i < len(zs) {
				pos.Values[i] = math32.Vec3(xs[i], ys[i], zs[i])
			}
		}
		out = append(out, attrs.Record{Name: AttrPosition, Type: column.Vector3, Data: pos})
	}
	return out
}

// WriteCSV writes the point-cloud attributes to the given writer,
// with one header row of name%type fields followed by one row per
// point.
func (pc *PointCloud) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	hdr := make([]string, pc.Attrs.Len())
	for i, c := range pc.Attrs.Values {
		hdr[i] = pc.Attrs.Keys[i] + "%" + c.DataType().String()
	}
	if err := cw.Write(hdr); err != nil {
		return err
	}
	row := make([]string, pc.Attrs.Len())
	for pi := 0; pi < pc.NumPoints(); pi++ {
		for ci, c := range pc.Attrs.Values {
			row[ci] = c.String1D(pi)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads point-cloud attributes from the given reader in the
// format written by [PointCloud.WriteCSV], rebuilding the attribute
// store (including legacy-layout migration) from the result.
func (pc *PointCloud) ReadCSV(r io.Reader, delim Delims) error {
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	rows, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		pc.RebuildAttributes(nil, 0)
		return nil
	}
	hdr := rows[0]
	elems := len(rows) - 1
	recs := make([]attrs.Record, len(hdr))
	for ci, h := range hdr {
		name, typnm, ok := strings.Cut(h, "%")
		if !ok {
			return fmt.Errorf("pointcloud.ReadCSV: header %q is missing the %%type suffix", h)
		}
		dt, err := dataTypeFromString(typnm)
		if err != nil {
			return err
		}
		c := column.NewOfType(dt, elems)
		for pi := 0; pi < elems; pi++ {
			if err := c.SetString1D(rows[pi+1][ci], pi); err != nil {
				return err
			}
		}
		recs[ci] = attrs.Record{Name: name, Type: dt, Data: c}
	}
	pc.RebuildAttributes(recs, elems)
	return nil
}

// SaveCSV writes the point-cloud attributes to the given file.
func (pc *PointCloud) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	return pc.WriteCSV(fp, delim)
}

// OpenCSV reads the point-cloud attributes from the given file.
func (pc *PointCloud) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	return pc.ReadCSV(fp, delim)
}

func dataTypeFromString(s string) (column.DataType, error) {
	for dt := column.DataType(0); dt < column.DataTypesN; dt++ {
		if dt.String() == s {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("pointcloud: unknown attribute data type %q", s)
}
