// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import "image/color"

// MaxMaterialSlots is the maximum valid material slot index.
const MaxMaterialSlots = 32767

// Material describes the surface properties of a material slot
// (colors, shininess), phong lighting parameters. Materials are
// shared, reference-counted-by-GC entities: multiple point clouds may
// hold the same *Material in their slot lists.
type Material struct {
	// Name is the material name, for slot display and lookup.
	Name string

	// Color is the main color of the surface, used for both ambient
	// and diffuse color; alpha component determines transparency.
	Color color.RGBA

	// Emissive is the color the surface emits independent of any
	// lighting, i.e., glow.
	Emissive color.RGBA

	// Shiny is the specular shininess factor: how focally vs. broadly
	// the surface shines back directional light.
	Shiny float32

	// Reflective is the specular reflectiveness factor.
	Reflective float32

	// Bright is an overall multiplier on the final computed color value.
	Bright float32
}

// Defaults sets default surface parameters.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Emissive = color.RGBA{}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
}

// NewMaterial returns a new [Material] with the given name and
// default surface parameters.
func NewMaterial(name string) *Material {
	mt := &Material{Name: name}
	mt.Defaults()
	return mt
}

// AddMaterial appends the given material as a new slot, returning
// the slot index.
func (pc *PointCloud) AddMaterial(mt *Material) int {
	pc.Materials = append(pc.Materials, mt)
	return len(pc.Materials) - 1
}

// Material returns the material in the given slot, or nil if the slot
// index is out of range or the slot is empty.
func (pc *PointCloud) Material(slot int) *Material {
	if slot < 0 || slot >= len(pc.Materials) {
		return nil
	}
	return pc.Materials[slot]
}
