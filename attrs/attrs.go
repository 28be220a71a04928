// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attrs provides the attribute store for geometry entities:
// a mapping from attribute name to a typed [column.Column], partitioned
// by the semantic [Domain] the attributes are indexed over, with the
// invariant that every column's length equals the owning entity's
// element count.
package attrs

import (
	"fmt"

	"github.com/geomcore/geomcore/base/keylist"
	"github.com/geomcore/geomcore/column"
)

// Domain is the element kind an attribute column is indexed over.
type Domain int32

const (
	// Point attributes have one value per point.
	Point Domain = iota

	// DomainsN is the number of domains.
	DomainsN
)

func (dm Domain) String() string {
	switch dm {
	case Point:
		return "Point"
	}
	return fmt.Sprintf("Domain(%d)", int32(dm))
}

// Store is an ordered mapping from attribute name to a typed column,
// all over one [Domain]. Keys are unique. Insertion order is preserved,
// giving deterministic serialization. Every column's length equals
// [Store.Elems] at all times after any resize completes.
type Store struct {
	keylist.List[string, column.Column]

	// Domain is the element kind all columns are indexed over.
	Domain Domain

	// Elems is the element count that every column length must equal.
	Elems int
}

// NewStore returns a new [Store] for the given domain and element count,
// with no attributes.
func NewStore(domain Domain, elems int) *Store {
	return &Store{Domain: domain, Elems: elems}
}

// AddColumn adds the given column under the given name, resizing it
// to the store's element count. An error is returned and nothing is
// added if the name is already present.
func (st *Store) AddColumn(name string, c column.Column) error {
	c.SetLen(st.Elems)
	return st.Add(name, c)
}

// SetColumn sets the given name to the given column, replacing any
// existing column of that name, and resizing it to the store's
// element count.
func (st *Store) SetColumn(name string, c column.Column) {
	c.SetLen(st.Elems)
	st.Set(name, c)
}

// Column returns the column of the given name, or nil if not present.
func (st *Store) Column(name string) column.Column {
	return st.At(name)
}

// Remove deletes the column of the given name, returning false if
// it was not present.
func (st *Store) Remove(name string) bool {
	return st.DeleteByKey(name)
}

// SetElems sets the element count, resizing every column to the new
// count. No column is left truncated: all columns are resized before
// this returns.
func (st *Store) SetElems(elems int) {
	st.Elems = elems
	for _, c := range st.Values {
		c.SetLen(elems)
	}
}

// Clone returns a complete copy of this store, including cloning all
// the column values.
func (st *Store) Clone() *Store {
	cp := NewStore(st.Domain, st.Elems)
	for i, c := range st.Values {
		cp.Set(st.Keys[i], c.Clone())
	}
	return cp
}

// Sizeof returns the total number of bytes contained in all column values.
func (st *Store) Sizeof() int64 {
	var tot int64
	for _, c := range st.Values {
		tot += c.Sizeof()
	}
	return tot
}

// Span returns a read view of the values of the named column if it
// exists with element type exactly T, otherwise nil and false.
// There is no implicit type coercion: the caller substitutes its own
// default for a missing or differently-typed attribute.
func Span[T column.ElemTypes](st *Store, name string) ([]T, bool) {
	c, ok := st.AtTry(name)
	if !ok {
		return nil, false
	}
	vals := column.Values[T](c)
	if vals == nil {
		return nil, false
	}
	return vals, true
}

// WriteSpan returns a writable view of the values of the named column,
// allocating a new column filled with defaultFill and registering it
// (replacing any differently-typed column of that name) if a column of
// element type T does not already exist. If the store has no elements,
// the result is an empty span and nothing is allocated or registered.
func WriteSpan[T column.ElemTypes](st *Store, name string, defaultFill T) []T {
	if st.Elems <= 0 {
		return nil
	}
	if vals, ok := Span[T](st, name); ok {
		return vals
	}
	c := column.New[T](st.Elems)
	c.Fill(defaultFill)
	st.Set(name, c)
	return c.Values
}
