package geojson

// The variants implement json.Marshaler and json.Unmarshaler so they can be
// embedded in application structs and handled by encoding/json or
// github.com/goccy/go-json. Unmarshalling into a concrete variant fails with
// ErrSchemaMismatch when the document holds a different one.

func (g Point) MarshalJSON() ([]byte, error)              { return Encode(g), nil }
func (g MultiPoint) MarshalJSON() ([]byte, error)         { return Encode(g), nil }
func (g LineString) MarshalJSON() ([]byte, error)         { return Encode(g), nil }
func (g MultiLineString) MarshalJSON() ([]byte, error)    { return Encode(g), nil }
func (g Polygon) MarshalJSON() ([]byte, error)            { return Encode(g), nil }
func (g MultiPolygon) MarshalJSON() ([]byte, error)       { return Encode(g), nil }
func (g GeometryCollection) MarshalJSON() ([]byte, error) { return Encode(g), nil }
func (f Feature) MarshalJSON() ([]byte, error)            { return Encode(f), nil }
func (fc FeatureCollection) MarshalJSON() ([]byte, error) { return Encode(fc), nil }

func (g *Point) UnmarshalJSON(data []byte) error              { return unmarshalVariant(data, g) }
func (g *MultiPoint) UnmarshalJSON(data []byte) error         { return unmarshalVariant(data, g) }
func (g *LineString) UnmarshalJSON(data []byte) error         { return unmarshalVariant(data, g) }
func (g *MultiLineString) UnmarshalJSON(data []byte) error    { return unmarshalVariant(data, g) }
func (g *Polygon) UnmarshalJSON(data []byte) error            { return unmarshalVariant(data, g) }
func (g *MultiPolygon) UnmarshalJSON(data []byte) error       { return unmarshalVariant(data, g) }
func (g *GeometryCollection) UnmarshalJSON(data []byte) error { return unmarshalVariant(data, g) }
func (f *Feature) UnmarshalJSON(data []byte) error            { return unmarshalVariant(data, f) }
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error { return unmarshalVariant(data, fc) }

func unmarshalVariant[T Object](data []byte, dst *T) error {
	tag := (*dst).Type()
	obj, err := defaultDecoder.decode(data, isTag(tag), tag)
	if err != nil {
		return err
	}
	*dst = obj.(T)
	return nil
}

// MarshalJSON encodes v; integral floats keep a fractional part.
func (v Value) MarshalJSON() ([]byte, error) {
	return appendValue(nil, v), nil
}

// UnmarshalJSON decodes any JSON value into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	tree, err := parseTree(data)
	if err != nil {
		return err
	}
	val, err := value(tree, "$", 0)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalJSON encodes id as a string, a number or null when absent.
func (id ID) MarshalJSON() ([]byte, error) {
	return id.appendJSON(nil), nil
}

// UnmarshalJSON accepts a string, an integer or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	tree, err := parseTree(data)
	if err != nil {
		return err
	}
	if tree == nil {
		*id = ID{}
		return nil
	}
	val, err := featureID(tree, "$")
	if err != nil {
		return err
	}
	*id = val
	return nil
}
