package geojson

// Equal reports whether a and b are the same variant holding structurally
// equal values. Nil and empty slices compare equal; a nil Properties map
// (absent) differs from an empty one. Pointers to variants compare by the
// values they point to.
func Equal(a, b Object) bool {
	a, b = deref(a), deref(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Point:
		y, ok := b.(Point)
		return ok && x.Coordinates == y.Coordinates
	case MultiPoint:
		y, ok := b.(MultiPoint)
		return ok && positionsEqual(x.Coordinates, y.Coordinates)
	case LineString:
		y, ok := b.(LineString)
		return ok && positionsEqual(x.Coordinates, y.Coordinates)
	case MultiLineString:
		y, ok := b.(MultiLineString)
		return ok && positionListsEqual(x.Coordinates, y.Coordinates)
	case Polygon:
		y, ok := b.(Polygon)
		return ok && positionListsEqual(x.Coordinates, y.Coordinates)
	case MultiPolygon:
		y, ok := b.(MultiPolygon)
		if !ok || len(x.Coordinates) != len(y.Coordinates) {
			return false
		}
		for i := range x.Coordinates {
			if !positionListsEqual(x.Coordinates[i], y.Coordinates[i]) {
				return false
			}
		}
		return true
	case GeometryCollection:
		y, ok := b.(GeometryCollection)
		if !ok || len(x.Geometries) != len(y.Geometries) {
			return false
		}
		for i := range x.Geometries {
			if !Equal(x.Geometries[i], y.Geometries[i]) {
				return false
			}
		}
		return true
	case Feature:
		y, ok := b.(Feature)
		return ok && featuresEqual(x, y)
	case FeatureCollection:
		y, ok := b.(FeatureCollection)
		if !ok || len(x.Features) != len(y.Features) {
			return false
		}
		for i := range x.Features {
			if !featuresEqual(x.Features[i], y.Features[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// deref turns pointers to variants into values, and typed nil pointers into
// a nil Object.
func deref(o Object) Object {
	if isNil(o) {
		return nil
	}
	switch p := o.(type) {
	case *Point:
		return *p
	case *MultiPoint:
		return *p
	case *LineString:
		return *p
	case *MultiLineString:
		return *p
	case *Polygon:
		return *p
	case *MultiPolygon:
		return *p
	case *GeometryCollection:
		return *p
	case *Feature:
		return *p
	case *FeatureCollection:
		return *p
	}
	return o
}

func featuresEqual(a, b Feature) bool {
	if a.ID != b.ID {
		return false
	}
	if (a.Properties == nil) != (b.Properties == nil) || !membersEqual(a.Properties, b.Properties) {
		return false
	}
	if a.Geometry == nil || b.Geometry == nil {
		return isNil(a.Geometry) && isNil(b.Geometry)
	}
	return Equal(a.Geometry, b.Geometry)
}

func positionListsEqual(a, b [][]Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !positionsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func positionsEqual(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
