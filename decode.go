package geojson

import (
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// DefaultMaxDepth bounds how many GeoJSON objects may be nested inside each
// other (a top-level object is at depth 1).
const DefaultMaxDepth = 128

// maxValueDepth bounds array and object nesting inside feature properties.
const maxValueDepth = 10000

// Decoder converts JSON documents into Objects. The zero value is ready to
// use and is safe for concurrent use.
type Decoder struct {
	// MaxDepth limits object nesting; values <= 0 mean DefaultMaxDepth.
	// There is no upper bound: the parser itself does not limit nesting.
	MaxDepth int

	// DisallowUnknownFields rejects members outside a variant's field set
	// with ErrSchemaMismatch. By default they are ignored.
	DisallowUnknownFields bool
}

var defaultDecoder Decoder

// Decode decodes data into one of the nine GeoJSON variants, ignoring
// unknown members.
func Decode(data []byte) (Object, error) {
	return defaultDecoder.Decode(data)
}

// DecodeGeometry decodes data that must hold one of the seven geometries.
func DecodeGeometry(data []byte) (Geometry, error) {
	return defaultDecoder.DecodeGeometry(data)
}

// DecodeFeature decodes data that must hold a Feature.
func DecodeFeature(data []byte) (Feature, error) {
	return defaultDecoder.DecodeFeature(data)
}

// DecodeFeatureCollection decodes data that must hold a FeatureCollection.
func DecodeFeatureCollection(data []byte) (FeatureCollection, error) {
	return defaultDecoder.DecodeFeatureCollection(data)
}

// Decode decodes data into one of the nine GeoJSON variants.
func (d Decoder) Decode(data []byte) (Object, error) {
	return d.decode(data, IsType, "GeoJSON object")
}

// DecodeGeometry decodes data that must hold one of the seven geometries.
func (d Decoder) DecodeGeometry(data []byte) (Geometry, error) {
	obj, err := d.decode(data, IsGeometryType, "geometry")
	if err != nil {
		return nil, err
	}
	return obj.(Geometry), nil
}

// DecodeFeature decodes data that must hold a Feature.
func (d Decoder) DecodeFeature(data []byte) (Feature, error) {
	obj, err := d.decode(data, isTag(TypeFeature), TypeFeature)
	if err != nil {
		return Feature{}, err
	}
	return obj.(Feature), nil
}

// DecodeFeatureCollection decodes data that must hold a FeatureCollection.
func (d Decoder) DecodeFeatureCollection(data []byte) (FeatureCollection, error) {
	obj, err := d.decode(data, isTag(TypeFeatureCollection), TypeFeatureCollection)
	if err != nil {
		return FeatureCollection{}, err
	}
	return obj.(FeatureCollection), nil
}

func isTag(tag string) func(string) bool {
	return func(t string) bool { return t == tag }
}

func (d Decoder) decode(data []byte, accept func(string) bool, expected string) (Object, error) {
	tree, err := parseTree(data)
	if err != nil {
		return nil, err
	}

	m, ok := tree.(map[string]interface{})
	if !ok {
		return nil, missingDiscriminant("$")
	}

	s := &decodeState{
		maxDepth: d.MaxDepth,
		strict:   d.DisallowUnknownFields,
	}
	if s.maxDepth <= 0 {
		s.maxDepth = DefaultMaxDepth
	}

	return s.object(m, "$", 1, accept, expected)
}

func missingDiscriminant(path string) error {
	return &DecodeError{Cause: ErrMissingDiscriminant, Path: path, Offset: -1}
}

type parseFunc func(s *decodeState, m map[string]interface{}, path string, depth int) (Object, error)

type variant struct {
	parse  parseFunc
	fields map[string]bool
}

// variants is the discriminant dispatch table. It is filled once by init
// and only read afterwards.
var variants map[string]variant

func init() {
	coordinates := []string{"type", "coordinates"}
	variants = map[string]variant{
		TypePoint:              newVariant(parsePoint, coordinates...),
		TypeMultiPoint:         newVariant(parseMultiPoint, coordinates...),
		TypeLineString:         newVariant(parseLineString, coordinates...),
		TypeMultiLineString:    newVariant(parseMultiLineString, coordinates...),
		TypePolygon:            newVariant(parsePolygon, coordinates...),
		TypeMultiPolygon:       newVariant(parseMultiPolygon, coordinates...),
		TypeGeometryCollection: newVariant(parseGeometryCollection, "type", "geometries"),
		TypeFeature:            newVariant(parseFeature, "type", "geometry", "properties", "id"),
		TypeFeatureCollection:  newVariant(parseFeatureCollection, "type", "features"),
	}
}

func newVariant(parse parseFunc, fields ...string) variant {
	v := variant{parse: parse, fields: make(map[string]bool, len(fields))}
	for _, f := range fields {
		v.fields[f] = true
	}
	return v
}

type decodeState struct {
	maxDepth int
	strict   bool
}

// object resolves the discriminant of m and parses it with the matching
// variant. accept restricts which known variants may appear at this
// position; expected names them for error messages.
func (s *decodeState) object(m map[string]interface{}, path string, depth int, accept func(string) bool, expected string) (Object, error) {
	if depth > s.maxDepth {
		return nil, &DecodeError{Cause: ErrTooDeeplyNested, Path: path, Offset: -1}
	}

	tag, ok := m["type"].(string)
	if !ok {
		return nil, missingDiscriminant(path)
	}

	v, known := variants[tag]
	if !known {
		return nil, &DecodeError{Cause: ErrUnknownVariant, Path: path, Tag: tag, Offset: -1}
	}
	if !accept(tag) {
		return nil, mismatch(member(path, "type"), expected, strconv.Quote(tag))
	}

	if s.strict {
		if err := checkFields(m, v.fields, path); err != nil {
			return nil, err
		}
	}

	return v.parse(s, m, path, depth)
}

func checkFields(m map[string]interface{}, fields map[string]bool, path string) error {
	var unknown []string
	for k := range m {
		if !fields[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return mismatch(key(path, unknown[0]), "no member", "unknown member")
}

func required(m map[string]interface{}, name, path, expected string) (interface{}, error) {
	v, ok := m[name]
	if !ok {
		return nil, mismatch(member(path, name), expected, "missing member")
	}
	return v, nil
}

func parsePoint(_ *decodeState, m map[string]interface{}, path string, _ int) (Object, error) {
	raw, err := required(m, "coordinates", path, "position")
	if err != nil {
		return nil, err
	}
	p, err := position(raw, member(path, "coordinates"))
	if err != nil {
		return nil, err
	}
	return Point{Coordinates: p}, nil
}

func parseMultiPoint(_ *decodeState, m map[string]interface{}, path string, _ int) (Object, error) {
	coords, err := coordinates1(m, path)
	if err != nil {
		return nil, err
	}
	return MultiPoint{Coordinates: coords}, nil
}

func parseLineString(_ *decodeState, m map[string]interface{}, path string, _ int) (Object, error) {
	coords, err := coordinates1(m, path)
	if err != nil {
		return nil, err
	}
	return LineString{Coordinates: coords}, nil
}

func parseMultiLineString(_ *decodeState, m map[string]interface{}, path string, _ int) (Object, error) {
	coords, err := coordinates2(m, path)
	if err != nil {
		return nil, err
	}
	return MultiLineString{Coordinates: coords}, nil
}

func parsePolygon(_ *decodeState, m map[string]interface{}, path string, _ int) (Object, error) {
	coords, err := coordinates2(m, path)
	if err != nil {
		return nil, err
	}
	return Polygon{Coordinates: coords}, nil
}

func parseMultiPolygon(_ *decodeState, m map[string]interface{}, path string, _ int) (Object, error) {
	raw, err := required(m, "coordinates", path, "array of polygons")
	if err != nil {
		return nil, err
	}
	path = member(path, "coordinates")
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, mismatch(path, "array of polygons", describe(raw))
	}
	coords := make([][][]Position, len(arr))
	for i, e := range arr {
		if coords[i], err = positionLists(e, index(path, i), "array of linear rings"); err != nil {
			return nil, err
		}
	}
	return MultiPolygon{Coordinates: coords}, nil
}

func parseGeometryCollection(s *decodeState, m map[string]interface{}, path string, depth int) (Object, error) {
	raw, err := required(m, "geometries", path, "array of geometries")
	if err != nil {
		return nil, err
	}
	path = member(path, "geometries")
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, mismatch(path, "array of geometries", describe(raw))
	}
	geometries := make([]Geometry, len(arr))
	for i, e := range arr {
		g, err := s.geometry(e, index(path, i), depth+1, "geometry object")
		if err != nil {
			return nil, err
		}
		geometries[i] = g
	}
	return GeometryCollection{Geometries: geometries}, nil
}

func parseFeature(s *decodeState, m map[string]interface{}, path string, depth int) (Object, error) {
	var f Feature

	if raw := m["geometry"]; raw != nil {
		g, err := s.geometry(raw, member(path, "geometry"), depth+1, "geometry object or null")
		if err != nil {
			return nil, err
		}
		f.Geometry = g
	}

	if raw := m["properties"]; raw != nil {
		props, err := properties(raw, member(path, "properties"))
		if err != nil {
			return nil, err
		}
		f.Properties = props
	}

	if raw := m["id"]; raw != nil {
		id, err := featureID(raw, member(path, "id"))
		if err != nil {
			return nil, err
		}
		f.ID = id
	}

	return f, nil
}

func parseFeatureCollection(s *decodeState, m map[string]interface{}, path string, depth int) (Object, error) {
	raw, err := required(m, "features", path, "array of features")
	if err != nil {
		return nil, err
	}
	path = member(path, "features")
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, mismatch(path, "array of features", describe(raw))
	}
	features := make([]Feature, len(arr))
	for i, e := range arr {
		p := index(path, i)
		fm, ok := e.(map[string]interface{})
		if !ok {
			return nil, mismatch(p, "feature object", describe(e))
		}
		obj, err := s.object(fm, p, depth+1, isTag(TypeFeature), TypeFeature)
		if err != nil {
			return nil, err
		}
		features[i] = obj.(Feature)
	}
	return FeatureCollection{Features: features}, nil
}

func (s *decodeState) geometry(raw interface{}, path string, depth int, expected string) (Geometry, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, mismatch(path, expected, describe(raw))
	}
	obj, err := s.object(m, path, depth, IsGeometryType, "geometry")
	if err != nil {
		return nil, err
	}
	return obj.(Geometry), nil
}

func coordinates1(m map[string]interface{}, path string) ([]Position, error) {
	raw, err := required(m, "coordinates", path, "array of positions")
	if err != nil {
		return nil, err
	}
	return positions(raw, member(path, "coordinates"))
}

func coordinates2(m map[string]interface{}, path string) ([][]Position, error) {
	raw, err := required(m, "coordinates", path, "array of position arrays")
	if err != nil {
		return nil, err
	}
	return positionLists(raw, member(path, "coordinates"), "array of position arrays")
}

func positionLists(raw interface{}, path, expected string) ([][]Position, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, mismatch(path, expected, describe(raw))
	}
	out := make([][]Position, len(arr))
	for i, e := range arr {
		ps, err := positions(e, index(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = ps
	}
	return out, nil
}

func positions(raw interface{}, path string) ([]Position, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, mismatch(path, "array of positions", describe(raw))
	}
	out := make([]Position, len(arr))
	for i, e := range arr {
		p, err := position(e, index(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func position(raw interface{}, path string) (Position, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return Position{}, mismatch(path, "position", describe(raw))
	}
	if len(arr) != 2 {
		return Position{}, mismatch(path, "position", fmt.Sprintf("array of length %d", len(arr)))
	}
	var p Position
	for i, e := range arr {
		n, ok := e.(json.Number)
		if !ok {
			return Position{}, mismatch(index(path, i), "number", describe(e))
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return Position{}, mismatch(index(path, i), "finite number", n.String())
		}
		p[i] = f
	}
	return p, nil
}

func properties(raw interface{}, path string) (Properties, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, mismatch(path, "object or null", describe(raw))
	}
	obj, err := members(m, path, 1)
	if err != nil {
		return nil, err
	}
	return Properties(obj), nil
}

// value converts a parsed JSON value found at the given container depth.
// Object keys are visited in sorted order so the same input always reports
// the same failing path.
func value(raw interface{}, path string, depth int) (Value, error) {
	switch t := raw.(type) {
	case []interface{}:
		if depth > maxValueDepth {
			return Value{}, &DecodeError{Cause: ErrTooDeeplyNested, Path: path, Offset: -1}
		}
		arr := make([]Value, len(t))
		for i, e := range t {
			v, err := value(e, index(path, i), depth+1)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Array(arr...), nil
	case map[string]interface{}:
		if depth > maxValueDepth {
			return Value{}, &DecodeError{Cause: ErrTooDeeplyNested, Path: path, Offset: -1}
		}
		obj, err := members(t, path, depth+1)
		if err != nil {
			return Value{}, err
		}
		return Map(obj), nil
	case json.Number:
		v, err := ValueOf(t)
		if err != nil {
			return Value{}, mismatch(path, "number within float64 range", t.String())
		}
		return v, nil
	}
	v, err := ValueOf(raw)
	if err != nil {
		return Value{}, mismatch(path, "JSON value", describe(raw))
	}
	return v, nil
}

func members(m map[string]interface{}, path string, depth int) (map[string]Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := make(map[string]Value, len(m))
	for _, k := range keys {
		v, err := value(m[k], key(path, k), depth)
		if err != nil {
			return nil, err
		}
		obj[k] = v
	}
	return obj, nil
}

func featureID(raw interface{}, path string) (ID, error) {
	switch t := raw.(type) {
	case string:
		return StringID(t), nil
	case json.Number:
		if !isIntLiteral(t.String()) {
			return ID{}, mismatch(path, "string or integer", "float "+t.String())
		}
		n, err := strconv.ParseInt(t.String(), 10, 64)
		if err != nil {
			return ID{}, mismatch(path, "string or integer", "integer out of int64 range")
		}
		return IntID(n), nil
	}
	return ID{}, mismatch(path, "string or integer", describe(raw))
}

// describe names the JSON kind of a parsed value.
func describe(raw interface{}) string {
	switch t := raw.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []interface{}:
		return fmt.Sprintf("array of length %d", len(t))
	case map[string]interface{}:
		return "object"
	}
	return fmt.Sprintf("%T", raw)
}

func member(path, name string) string {
	return path + "." + name
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// key is used for application-defined member names, which may contain any
// character.
func key(path, name string) string {
	return path + "[" + strconv.Quote(name) + "]"
}
