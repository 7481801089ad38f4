package geojson

import "strconv"

// Feature is an implementation of the GeoJSON "Feature" type.
//
// All three members are optional. A nil Geometry, a nil Properties map and a
// zero ID are all "absent"; an explicit null in the input decodes to the same
// state.
type Feature struct {
	Geometry   Geometry
	Properties Properties
	ID         ID
}

// NewFeature returns a feature wrapping geometry with an empty, non-nil
// property set.
func NewFeature(geometry Geometry) Feature {
	return Feature{
		Geometry:   geometry,
		Properties: Properties{},
	}
}

// FeatureCollection is an implementation of the GeoJSON "FeatureCollection"
// type.
type FeatureCollection struct {
	Features []Feature
}

// NewFeatureCollection returns a collection holding features in order.
func NewFeatureCollection(features ...Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Features: features}
}

func (Feature) Type() string           { return TypeFeature }
func (FeatureCollection) Type() string { return TypeFeatureCollection }

// Properties holds the application-defined members of a feature.
type Properties map[string]Value

// PropertiesOf converts a native map, as produced by encoding/json or
// gopkg.in/yaml.v3, into Properties.
func PropertiesOf(m map[string]interface{}) (Properties, error) {
	if m == nil {
		return nil, nil
	}
	props := make(Properties, len(m))
	for k, v := range m {
		val, err := ValueOf(v)
		if err != nil {
			return nil, err
		}
		props[k] = val
	}
	return props, nil
}

type idKind uint8

const (
	idAbsent idKind = iota
	idString
	idInt
)

// ID is a feature identifier: absent, a string or an integer. The zero value
// is absent. IDs are comparable with ==.
type ID struct {
	kind idKind
	str  string
	num  int64
}

// StringID returns a string identifier. Like Value strings, s should be
// valid UTF-8; invalid bytes are encoded as U+FFFD.
func StringID(s string) ID { return ID{kind: idString, str: s} }

// IntID returns an integer identifier.
func IntID(n int64) ID { return ID{kind: idInt, num: n} }

// IsSet reports whether the identifier is present.
func (id ID) IsSet() bool { return id.kind != idAbsent }

// IsString reports whether the identifier is a string.
func (id ID) IsString() bool { return id.kind == idString }

// IsInt reports whether the identifier is an integer.
func (id ID) IsInt() bool { return id.kind == idInt }

// Int returns the integer identifier and whether id holds one.
func (id ID) Int() (int64, bool) { return id.num, id.kind == idInt }

// String returns the identifier in text form, or "" when absent.
func (id ID) String() string {
	switch id.kind {
	case idString:
		return id.str
	case idInt:
		return strconv.FormatInt(id.num, 10)
	}
	return ""
}
