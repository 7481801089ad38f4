package geojson

import "math"

// Position is a longitude, latitude pair.
//
// Positions are not validated on construction. The decoder rejects
// non-finite coordinates, and the encoder writes them as null.
type Position [2]float64

// NewPosition returns the position at lon, lat.
func NewPosition(lon, lat float64) Position {
	return Position{lon, lat}
}

// Lon returns the longitude.
func (p Position) Lon() float64 { return p[0] }

// Lat returns the latitude.
func (p Position) Lat() float64 { return p[1] }

// Valid reports whether both coordinates are finite.
func (p Position) Valid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Point is an implementation of the GeoJSON "Point" type.
type Point struct {
	Coordinates Position
}

// MultiPoint is an implementation of the GeoJSON "MultiPoint" type.
type MultiPoint struct {
	Coordinates []Position
}

// LineString is an implementation of the GeoJSON "LineString" type.
//
// A valid line string has at least two positions; this is not enforced.
type LineString struct {
	Coordinates []Position
}

// MultiLineString is an implementation of the GeoJSON "MultiLineString" type.
type MultiLineString struct {
	Coordinates [][]Position
}

// Polygon is an implementation of the GeoJSON "Polygon" type.
//
// Each ring is a linear ring. Ring closure and winding order are not
// enforced.
type Polygon struct {
	Coordinates [][]Position
}

// MultiPolygon is an implementation of the GeoJSON "MultiPolygon" type.
type MultiPolygon struct {
	Coordinates [][][]Position
}

// GeometryCollection is an implementation of the GeoJSON
// "GeometryCollection" type. It may contain other collections.
//
// Entries are not validated on construction either: a nil entry is encoded
// as null, which the decoder rejects, the same way as a non-finite Position.
type GeometryCollection struct {
	Geometries []Geometry
}

// NewGeometryCollection returns a collection holding geometries in order.
func NewGeometryCollection(geometries ...Geometry) GeometryCollection {
	if geometries == nil {
		geometries = []Geometry{}
	}
	return GeometryCollection{Geometries: geometries}
}

func (Point) Type() string              { return TypePoint }
func (MultiPoint) Type() string         { return TypeMultiPoint }
func (LineString) Type() string         { return TypeLineString }
func (MultiLineString) Type() string    { return TypeMultiLineString }
func (Polygon) Type() string            { return TypePolygon }
func (MultiPolygon) Type() string       { return TypeMultiPolygon }
func (GeometryCollection) Type() string { return TypeGeometryCollection }

func (Point) geometry()              {}
func (MultiPoint) geometry()         {}
func (LineString) geometry()         {}
func (MultiLineString) geometry()    {}
func (Polygon) geometry()            {}
func (MultiPolygon) geometry()       {}
func (GeometryCollection) geometry() {}
