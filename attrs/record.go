// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import "github.com/geomcore/geomcore/column"

// Record is one named, typed attribute column in export form, used at
// the persistence boundary. The byte layout of the stored file is an
// external concern; this is the ordered in-memory exchange format.
type Record struct {
	// Name is the unique attribute name.
	Name string

	// Type is the element type tag of the data.
	Type column.DataType

	// Data holds the column values.
	Data column.Column
}

// Export returns all attribute columns as an ordered sequence of
// records, in insertion order, with cloned data so the records remain
// valid independent of the store.
func (st *Store) Export() []Record {
	recs := make([]Record, st.Len())
	for i, c := range st.Values {
		recs[i] = Record{Name: st.Keys[i], Type: c.DataType(), Data: c.Clone()}
	}
	return recs
}

// Rebuild replaces the store contents from the given sequence of
// records, in order, setting the element count to elems and resizing
// every record column to it. Later records win on duplicate names.
func (st *Store) Rebuild(recs []Record, elems int) {
	st.Reset()
	st.Elems = elems
	for _, r := range recs {
		st.SetColumn(r.Name, r.Data.Clone())
	}
}
