package geojson_test

import (
	gc "gopkg.in/check.v1"

	"github.com/woozymasta/geojson"
)

type equalSuite struct{}

var _ = gc.Suite(&equalSuite{})

func (s *equalSuite) TestEqual(c *gc.C) {
	point := geojson.Point{Coordinates: geojson.Position{1, 2}}
	var nilPoint *geojson.Point

	for i, test := range []struct {
		a, b  geojson.Object
		equal bool
	}{
		{nil, nil, true},
		{nil, nilPoint, true},
		{point, nil, false},
		{point, &point, true},
		{point, geojson.Point{Coordinates: geojson.Position{2, 1}}, false},
		{point, geojson.MultiPoint{Coordinates: []geojson.Position{{1, 2}}}, false},
		{geojson.MultiPoint{}, geojson.MultiPoint{Coordinates: []geojson.Position{}}, true},
		{geojson.LineString{}, geojson.MultiPoint{}, false},
		{geojson.GeometryCollection{}, geojson.NewGeometryCollection(), true},
		{geojson.NewGeometryCollection(point), geojson.NewGeometryCollection(&point), true},
		{geojson.NewGeometryCollection(point), geojson.NewGeometryCollection(point, point), false},
		{geojson.Feature{}, geojson.Feature{Geometry: nilPoint}, true},
		{geojson.Feature{}, geojson.Feature{Properties: geojson.Properties{}}, false},
		{geojson.Feature{ID: geojson.IntID(1)}, geojson.Feature{ID: geojson.StringID("1")}, false},
		{
			geojson.Feature{Properties: geojson.Properties{"a": geojson.Int(1)}},
			geojson.Feature{Properties: geojson.Properties{"a": geojson.Float(1)}},
			false,
		},
		{geojson.FeatureCollection{}, geojson.NewFeatureCollection(), true},
		{
			geojson.NewFeatureCollection(geojson.NewFeature(point)),
			geojson.NewFeatureCollection(geojson.NewFeature(&point)),
			true,
		},
	} {
		c.Check(geojson.Equal(test.a, test.b), gc.Equals, test.equal, gc.Commentf("test %d", i))
		c.Check(geojson.Equal(test.b, test.a), gc.Equals, test.equal, gc.Commentf("test %d reversed", i))
	}
}
