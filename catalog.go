// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

// Category is the semantic label of a tag id, e.g. "ImageWidth".
type Category string

// CategoryUnknown is returned for tag ids not in a catalog.
const CategoryUnknown Category = "Unknown"

// The GeoTIFF structures that are always decoded in full.
const (
	CategoryModelTransformation Category = "ModelTransformationTag"
	CategoryGeoKeyDirectory     Category = "GeoKeyDirectoryTag"
	CategoryGeoDoubleParams     Category = "GeoDoubleParamsTag"
	CategoryGeoASCIIParams      Category = "GeoAsciiParamsTag"
)

// IsStructured reports whether c is one of the large GeoTIFF structures
// that are exempt from the display limit.
func (c Category) IsStructured() bool {
	switch c {
	case CategoryModelTransformation, CategoryGeoKeyDirectory, CategoryGeoDoubleParams, CategoryGeoASCIIParams:
		return true
	default:
		return false
	}
}

// IsUnknown reports whether c is CategoryUnknown.
func (c Category) IsUnknown() bool {
	return c == CategoryUnknown
}

// Catalog maps tag ids to categories.
// Lookup must be total: unregistered ids map to CategoryUnknown.
type Catalog interface {
	Lookup(id uint16) Category
}

// CatalogFunc is an adapter to allow the use of ordinary functions as a Catalog.
type CatalogFunc func(id uint16) Category

// Lookup calls f(id).
func (f CatalogFunc) Lookup(id uint16) Category {
	return f(id)
}

// MapCatalog is a Catalog backed by a static table.
type MapCatalog map[uint16]Category

// Lookup returns the category for id, CategoryUnknown if not found.
func (m MapCatalog) Lookup(id uint16) Category {
	if c, found := m[id]; found {
		return c
	}
	return CategoryUnknown
}

// DefaultCatalog knows the baseline and extension TIFF tags,
// the EXIF and GPS IFD pointers, GeoTIFF and the GDAL private tags.
var DefaultCatalog Catalog = MapCatalog(fieldsAll)
