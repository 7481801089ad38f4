package geojson_test

import (
	"math"

	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	gc "gopkg.in/check.v1"

	"github.com/woozymasta/geojson"
)

type encodeSuite struct{}

var _ = gc.Suite(&encodeSuite{})

func sampleObjects() []geojson.Object {
	point := geojson.Point{Coordinates: geojson.Position{1, 2}}
	line := geojson.LineString{Coordinates: []geojson.Position{{0, 0}, {1, 1}}}
	ring := []geojson.Position{{0, 0}, {1, 0}, {1, 1}, {0, 0}}

	return []geojson.Object{
		point,
		geojson.MultiPoint{Coordinates: []geojson.Position{{1, 2}, {-3.5, 4.25}}},
		line,
		geojson.MultiLineString{Coordinates: [][]geojson.Position{{{0, 0}, {1, 1}}, {}}},
		geojson.Polygon{Coordinates: [][]geojson.Position{ring}},
		geojson.MultiPolygon{Coordinates: [][][]geojson.Position{{ring}, {ring, ring}}},
		geojson.NewGeometryCollection(),
		geojson.NewGeometryCollection(point, geojson.NewGeometryCollection(line, geojson.NewGeometryCollection())),
		geojson.Feature{},
		geojson.Feature{Geometry: point, ID: geojson.IntID(-7)},
		geojson.Feature{Properties: geojson.Properties{}, ID: geojson.StringID("a-1")},
		geojson.Feature{
			Geometry: geojson.NewGeometryCollection(point, line),
			Properties: geojson.Properties{
				"name":    geojson.Str("Plaza Road Park"),
				"count":   geojson.Int(math.MaxInt64),
				"area":    geojson.Float(0.5),
				"whole":   geojson.Float(3),
				"tiny":    geojson.Float(1e-9),
				"open":    geojson.Bool(true),
				"nothing": geojson.Null(),
				"tags":    geojson.Array(geojson.Str("park"), geojson.Int(1), geojson.Array()),
				"nested": geojson.Map(map[string]geojson.Value{
					"classifiers": geojson.Array(geojson.Map(map[string]geojson.Value{
						"category": geojson.Str("Wholesale"),
					})),
				}),
				"escaped": geojson.Str("quote \" slash \\ <tag> & ünïcode\n"),
			},
			ID: geojson.IntID(202418985),
		},
		geojson.NewFeatureCollection(),
		geojson.NewFeatureCollection(
			geojson.NewFeature(point),
			geojson.Feature{Geometry: line, ID: geojson.StringID("102374")},
		),
	}
}

func (s *encodeSuite) TestRoundTrip(c *gc.C) {
	for i, obj := range sampleObjects() {
		data := geojson.Encode(obj)
		c.Logf("object %d: %s", i, data)

		got, err := geojson.Decode(data)
		c.Assert(err, gc.IsNil)
		c.Check(geojson.Equal(got, obj), gc.Equals, true, gc.Commentf("got %#v", got))

		// canonical output is stable
		c.Check(string(geojson.Encode(got)), gc.Equals, string(data))
	}
}

func (s *encodeSuite) TestOutputIsMinimal(c *gc.C) {
	m := minify.New()
	m.AddFunc("application/json", minjson.Minify)

	for _, obj := range sampleObjects()[:10] {
		data := geojson.Encode(obj)
		minified, err := m.Bytes("application/json", data)
		c.Assert(err, gc.IsNil)
		c.Check(string(minified), gc.Equals, string(data))
	}
}

func (s *encodeSuite) TestCanonicalForm(c *gc.C) {
	for _, test := range []struct {
		obj  geojson.Object
		want string
	}{{
		obj:  geojson.Point{Coordinates: geojson.Position{1, 2}},
		want: `{"type":"Point","coordinates":[1,2]}`,
	}, {
		obj:  geojson.MultiPoint{},
		want: `{"type":"MultiPoint","coordinates":[]}`,
	}, {
		obj:  geojson.GeometryCollection{},
		want: `{"type":"GeometryCollection","geometries":[]}`,
	}, {
		obj:  geojson.FeatureCollection{},
		want: `{"type":"FeatureCollection","features":[]}`,
	}, {
		obj:  geojson.Feature{},
		want: `{"type":"Feature","geometry":null,"properties":null}`,
	}, {
		obj: geojson.Feature{
			Geometry: geojson.Point{Coordinates: geojson.Position{1.5, 2.5}},
			Properties: geojson.Properties{
				"name": geojson.Str("park"),
				"n":    geojson.Int(3),
				"x":    geojson.Float(2),
			},
			ID: geojson.IntID(7),
		},
		want: `{"type":"Feature","geometry":{"type":"Point","coordinates":[1.5,2.5]},"properties":{"n":3,"name":"park","x":2.0},"id":7}`,
	}, {
		obj:  geojson.Feature{ID: geojson.StringID("a<b>")},
		want: `{"type":"Feature","geometry":null,"properties":null,"id":"a<b>"}`,
	}, {
		obj:  geojson.Point{Coordinates: geojson.Position{1e21, 1e-7}},
		want: `{"type":"Point","coordinates":[1e+21,1e-7]}`,
	}} {
		c.Check(string(geojson.Encode(test.obj)), gc.Equals, test.want)
	}
}

func (s *encodeSuite) TestNumericPrecision(c *gc.C) {
	p := geojson.NewPosition(100.123456789012, -45.987654321098)

	data := geojson.Encode(geojson.Point{Coordinates: p})
	got, err := geojson.DecodeGeometry(data)
	c.Assert(err, gc.IsNil)

	q := got.(geojson.Point).Coordinates
	c.Check(math.Float64bits(q.Lon()), gc.Equals, math.Float64bits(p.Lon()))
	c.Check(math.Float64bits(q.Lat()), gc.Equals, math.Float64bits(p.Lat()))
}

func (s *encodeSuite) TestExtremeFloats(c *gc.C) {
	for _, f := range []float64{
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		-math.MaxFloat64,
		0.1,
		1.0 / 3.0,
		math.Copysign(0, -1),
	} {
		data := geojson.Encode(geojson.Point{Coordinates: geojson.Position{f, -f}})
		got, err := geojson.DecodeGeometry(data)
		c.Assert(err, gc.IsNil, gc.Commentf("%s", data))
		q := got.(geojson.Point).Coordinates
		c.Check(math.Float64bits(q[0]), gc.Equals, math.Float64bits(f))
		c.Check(math.Float64bits(q[1]), gc.Equals, math.Float64bits(-f))
	}
}

func (s *encodeSuite) TestNonFinitePositionRejectedOnDecode(c *gc.C) {
	p := geojson.Position{math.NaN(), 0}
	c.Check(p.Valid(), gc.Equals, false)

	data := geojson.Encode(geojson.Point{Coordinates: p})
	c.Check(string(data), gc.Equals, `{"type":"Point","coordinates":[null,0]}`)

	_, err := geojson.Decode(data)
	decodeError(c, err, geojson.ErrSchemaMismatch)
}

func (s *encodeSuite) TestNil(c *gc.C) {
	var p *geojson.Point
	c.Check(string(geojson.Encode(nil)), gc.Equals, "null")
	c.Check(string(geojson.Encode(p)), gc.Equals, "null")
	c.Check(string(geojson.Encode(geojson.Feature{Geometry: p})), gc.Equals,
		`{"type":"Feature","geometry":null,"properties":null}`)
}

func (s *encodeSuite) TestPointerVariants(c *gc.C) {
	p := &geojson.Point{Coordinates: geojson.Position{3, 4}}
	c.Check(string(geojson.Encode(p)), gc.Equals, `{"type":"Point","coordinates":[3,4]}`)
	c.Check(geojson.Equal(p, *p), gc.Equals, true)
}

func (s *encodeSuite) TestAppendEncode(c *gc.C) {
	out := geojson.AppendEncode([]byte("data: "), geojson.Point{})
	c.Check(string(out), gc.Equals, `data: {"type":"Point","coordinates":[0,0]}`)
}

func (s *encodeSuite) TestNilGeometryInCollectionRejectedOnDecode(c *gc.C) {
	data := geojson.Encode(geojson.NewGeometryCollection(nil))
	c.Check(string(data), gc.Equals, `{"type":"GeometryCollection","geometries":[null]}`)

	_, err := geojson.Decode(data)
	derr := decodeError(c, err, geojson.ErrSchemaMismatch)
	c.Check(derr.Path, gc.Equals, "$.geometries[0]")
	c.Check(derr.Expected, gc.Equals, "geometry object")
	c.Check(derr.Actual, gc.Equals, "null")
}
