// Package geojson implements a typed model of RFC 7946 GeoJSON documents and a
// codec that converts between that model and its JSON wire representation.
//
// The model is a closed set of nine variants: seven geometries and the two
// feature kinds. Every encoded object carries a "type" member naming its
// variant; the decoder reads it first and dispatches to the matching schema.
//
// Positions are two-dimensional (longitude, latitude). Altitude is not
// modelled.
//
// For the RFC specification see:
//
//	https://tools.ietf.org/html/rfc7946
package geojson

// Variant names used as the "type" discriminant.
const (
	TypePoint              = "Point"
	TypeMultiPoint         = "MultiPoint"
	TypeLineString         = "LineString"
	TypeMultiLineString    = "MultiLineString"
	TypePolygon            = "Polygon"
	TypeMultiPolygon       = "MultiPolygon"
	TypeGeometryCollection = "GeometryCollection"
	TypeFeature            = "Feature"
	TypeFeatureCollection  = "FeatureCollection"
)

// Object is any of the nine GeoJSON variants.
type Object interface {
	// Type returns the variant name written to the "type" member.
	Type() string

	// appendJSON writes the canonical encoding of the object to dst.
	appendJSON(dst []byte) []byte
}

// Geometry is any of the seven geometry variants.
type Geometry interface {
	Object

	// geometry provides no functionality - it closes the set of types that
	// may appear as a Feature geometry or inside a GeometryCollection.
	geometry()
}

// IsGeometryType reports whether name is one of the seven geometry variants.
func IsGeometryType(name string) bool {
	switch name {
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon, TypeGeometryCollection:
		return true
	}
	return false
}

// IsType reports whether name is one of the nine known variants.
func IsType(name string) bool {
	return IsGeometryType(name) || name == TypeFeature || name == TypeFeatureCollection
}
