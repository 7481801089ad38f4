package convert

import "github.com/woozymasta/geojson"

// Summary counts what a decoded document contains.
type Summary struct {
	Type       string
	Features   int
	Geometries int
	Positions  int
}

// Summarize walks obj and counts features, geometries (collections included)
// and positions.
func Summarize(obj geojson.Object) Summary {
	s := Summary{}
	if obj == nil {
		return s
	}
	s.Type = obj.Type()
	s.add(obj)
	return s
}

func (s *Summary) add(obj geojson.Object) {
	switch o := obj.(type) {
	case geojson.FeatureCollection:
		for _, f := range o.Features {
			s.add(f)
		}
	case geojson.Feature:
		s.Features++
		if o.Geometry != nil {
			s.add(o.Geometry)
		}
	case geojson.GeometryCollection:
		s.Geometries++
		for _, g := range o.Geometries {
			if g != nil {
				s.add(g)
			}
		}
	case geojson.Point:
		s.Geometries++
		s.Positions++
	case geojson.MultiPoint:
		s.Geometries++
		s.Positions += len(o.Coordinates)
	case geojson.LineString:
		s.Geometries++
		s.Positions += len(o.Coordinates)
	case geojson.MultiLineString:
		s.Geometries++
		s.Positions += countRings(o.Coordinates)
	case geojson.Polygon:
		s.Geometries++
		s.Positions += countRings(o.Coordinates)
	case geojson.MultiPolygon:
		s.Geometries++
		for _, p := range o.Coordinates {
			s.Positions += countRings(p)
		}
	}
}

func countRings(rings [][]geojson.Position) int {
	n := 0
	for _, r := range rings {
		n += len(r)
	}
	return n
}
