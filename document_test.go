package geojson_test

import (
	"encoding/json"
	"strings"

	gc "gopkg.in/check.v1"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/geojson"
)

type documentSuite struct{}

var _ = gc.Suite(&documentSuite{})

type restaurant struct {
	Name     string           `json:"name"`
	Location geojson.Point    `json:"location"`
	Area     geojson.Document `json:"area"`
}

func (s *documentSuite) TestEmbeddedInJSON(c *gc.C) {
	in := restaurant{
		Name:     "Average Grub",
		Location: geojson.Point{Coordinates: geojson.Position{51.528594, -0.090247}},
		Area: geojson.Document{Object: geojson.Polygon{Coordinates: [][]geojson.Position{
			{{51.52, -0.09}, {51.53, -0.09}, {51.53, -0.08}, {51.52, -0.09}},
		}}},
	}

	data, err := json.Marshal(in)
	c.Assert(err, gc.IsNil)
	c.Check(strings.HasPrefix(string(data),
		`{"name":"Average Grub","location":{"type":"Point","coordinates":[51.528594,-0.090247]},"area":{"type":"Polygon"`),
		gc.Equals, true, gc.Commentf("%s", data))

	var out restaurant
	c.Assert(json.Unmarshal(data, &out), gc.IsNil)
	c.Check(out.Name, gc.Equals, in.Name)
	c.Check(out.Location, gc.Equals, in.Location)
	c.Check(geojson.Equal(out.Area.Object, in.Area.Object), gc.Equals, true)
}

func (s *documentSuite) TestUnmarshalWrongVariant(c *gc.C) {
	var p geojson.Point
	err := json.Unmarshal([]byte(`{"type":"LineString","coordinates":[]}`), &p)
	c.Check(err, gc.ErrorMatches, `geojson: schema mismatch at \$\.type: expected Point, got "LineString"`)

	var fc geojson.FeatureCollection
	err = json.Unmarshal([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","id":"x"}]}`), &fc)
	c.Assert(err, gc.IsNil)
	c.Check(fc.Features[0].ID, gc.Equals, geojson.StringID("x"))
}

func (s *documentSuite) TestYAMLRoundTrip(c *gc.C) {
	doc := geojson.Document{Object: geojson.NewFeatureCollection(
		geojson.Feature{
			Geometry: geojson.Point{Coordinates: geojson.Position{-80.72487831115721, 35.26545403190955}},
			Properties: geojson.Properties{
				"name": geojson.Str("Plaza Road Park"),
				"tags": geojson.Array(geojson.Str("park"), geojson.Str("yes")),
			},
			ID: geojson.StringID("102374"),
		},
		geojson.Feature{ID: geojson.IntID(5)},
	)}

	data, err := yaml.Marshal(doc)
	c.Assert(err, gc.IsNil)
	text := string(data)
	c.Check(strings.HasPrefix(text, "type: FeatureCollection\n"), gc.Equals, true, gc.Commentf("%s", text))
	c.Check(strings.Contains(text, "name: Plaza Road Park"), gc.Equals, true, gc.Commentf("%s", text))

	var back geojson.Document
	c.Assert(yaml.Unmarshal(data, &back), gc.IsNil)
	c.Check(geojson.Equal(back.Object, doc.Object), gc.Equals, true, gc.Commentf("%s", text))
}

func (s *documentSuite) TestYAMLInline(c *gc.C) {
	var cfg struct {
		Locations geojson.Document `yaml:"locations"`
	}
	err := yaml.Unmarshal([]byte(`
locations:
  type: GeometryCollection
  geometries:
    - type: Point
      coordinates: [51.537375, -0.075756]
    - type: LineString
      coordinates:
        - [0, 0]
        - [1.5, 1]
`), &cfg)
	c.Assert(err, gc.IsNil)

	want := geojson.NewGeometryCollection(
		geojson.Point{Coordinates: geojson.Position{51.537375, -0.075756}},
		geojson.LineString{Coordinates: []geojson.Position{{0, 0}, {1.5, 1}}},
	)
	c.Check(geojson.Equal(cfg.Locations.Object, want), gc.Equals, true)
}

func (s *documentSuite) TestYAMLInlineErrors(c *gc.C) {
	var cfg struct {
		Locations geojson.Document `yaml:"locations"`
	}
	err := yaml.Unmarshal([]byte("locations:\n  type: Circle\n"), &cfg)
	c.Check(err, gc.ErrorMatches, `geojson: unknown variant "Circle" at \$`)
}
