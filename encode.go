package geojson

import (
	"bytes"
	"math"
	"reflect"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// Encode returns the canonical JSON encoding of v.
//
// Members are written in a fixed order: "type" first, then "coordinates",
// "geometries", "features", or "geometry", "properties" and "id" for a
// Feature. A Feature always carries "geometry" and "properties" (null when
// absent); "id" is omitted when absent. Property keys are sorted.
// A nil v, or a nil pointer to a variant, encodes as null.
func Encode(v Object) []byte {
	return AppendEncode(nil, v)
}

// AppendEncode appends the canonical JSON encoding of v to dst.
func AppendEncode(dst []byte, v Object) []byte {
	if isNil(v) {
		return append(dst, "null"...)
	}
	return v.appendJSON(dst)
}

func isNil(v Object) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func appendHeader(dst []byte, tag, member string) []byte {
	dst = append(dst, `{"type":"`...)
	dst = append(dst, tag...)
	dst = append(dst, `","`...)
	dst = append(dst, member...)
	return append(dst, `":`...)
}

func (g Point) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypePoint, "coordinates")
	dst = appendPosition(dst, g.Coordinates)
	return append(dst, '}')
}

func (g MultiPoint) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypeMultiPoint, "coordinates")
	dst = appendPositions(dst, g.Coordinates)
	return append(dst, '}')
}

func (g LineString) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypeLineString, "coordinates")
	dst = appendPositions(dst, g.Coordinates)
	return append(dst, '}')
}

func (g MultiLineString) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypeMultiLineString, "coordinates")
	dst = appendPositionLists(dst, g.Coordinates)
	return append(dst, '}')
}

func (g Polygon) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypePolygon, "coordinates")
	dst = appendPositionLists(dst, g.Coordinates)
	return append(dst, '}')
}

func (g MultiPolygon) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypeMultiPolygon, "coordinates")
	dst = append(dst, '[')
	for i, polygon := range g.Coordinates {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendPositionLists(dst, polygon)
	}
	return append(dst, "]}"...)
}

func (g GeometryCollection) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypeGeometryCollection, "geometries")
	dst = append(dst, '[')
	for i, child := range g.Geometries {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = AppendEncode(dst, child)
	}
	return append(dst, "]}"...)
}

func (f Feature) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypeFeature, "geometry")
	if isNil(f.Geometry) {
		dst = append(dst, "null"...)
	} else {
		dst = f.Geometry.appendJSON(dst)
	}

	dst = append(dst, `,"properties":`...)
	if f.Properties == nil {
		dst = append(dst, "null"...)
	} else {
		dst = appendMembers(dst, f.Properties)
	}

	if f.ID.IsSet() {
		dst = append(dst, `,"id":`...)
		dst = f.ID.appendJSON(dst)
	}
	return append(dst, '}')
}

func (fc FeatureCollection) appendJSON(dst []byte) []byte {
	dst = appendHeader(dst, TypeFeatureCollection, "features")
	dst = append(dst, '[')
	for i, f := range fc.Features {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = f.appendJSON(dst)
	}
	return append(dst, "]}"...)
}

func (id ID) appendJSON(dst []byte) []byte {
	switch id.kind {
	case idString:
		return appendString(dst, id.str)
	case idInt:
		return strconv.AppendInt(dst, id.num, 10)
	}
	return append(dst, "null"...)
}

func appendPositionLists(dst []byte, lists [][]Position) []byte {
	dst = append(dst, '[')
	for i, ps := range lists {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendPositions(dst, ps)
	}
	return append(dst, ']')
}

func appendPositions(dst []byte, ps []Position) []byte {
	dst = append(dst, '[')
	for i, p := range ps {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendPosition(dst, p)
	}
	return append(dst, ']')
}

func appendPosition(dst []byte, p Position) []byte {
	dst = append(dst, '[')
	dst = appendFloat(dst, p[0])
	dst = append(dst, ',')
	dst = appendFloat(dst, p[1])
	return append(dst, ']')
}

// appendFloat writes the shortest representation that parses back to the
// same float64. Non-finite values have no JSON form and are written as null.
func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}

	// Same cutoffs as encoding/json.
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

func appendValue(dst []byte, v Value) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindInt:
		return strconv.AppendInt(dst, v.i, 10)
	case KindBigInt:
		return append(dst, v.s...)
	case KindFloat:
		start := len(dst)
		dst = appendFloat(dst, v.f)
		if !bytes.ContainsAny(dst[start:], ".en") {
			// Keep integral floats recognisable as floats.
			dst = append(dst, ".0"...)
		}
		return dst
	case KindString:
		return appendString(dst, v.s)
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, e)
		}
		return append(dst, ']')
	case KindObject:
		return appendMembers(dst, v.obj)
	}
	return append(dst, "null"...)
}

func appendMembers(dst []byte, m map[string]Value) []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dst = append(dst, '{')
	for i, k := range keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendString(dst, k)
		dst = append(dst, ':')
		dst = appendValue(dst, m[k])
	}
	return append(dst, '}')
}

func appendString(dst []byte, s string) []byte {
	// Marshalling a string cannot fail.
	b, _ := json.MarshalWithOption(s, json.DisableHTMLEscape())
	return append(dst, b...)
}
