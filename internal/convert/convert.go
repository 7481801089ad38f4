// Package convert feeds documents through the GeoJSON codec: it reads raw
// bytes, decodes them, and writes the canonical re-encoding as JSON or YAML.
package convert

import (
	"bytes"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/config"

	json "github.com/goccy/go-json"
	"github.com/juju/errors"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

// Options controls a single conversion.
type Options struct {
	Decoder geojson.Decoder

	// From is the input format, config.FormatJSON or config.FormatYAML.
	From string

	// Format and Indent describe the output. Indent applies to JSON only;
	// 0 gives the compact canonical encoding.
	Format string
	Indent int

	// Minify emits the validated JSON input minified instead of the
	// canonical re-encoding, keeping its member order.
	Minify bool
}

// Decode parses data in the given input format.
func Decode(data []byte, from string, dec geojson.Decoder) (geojson.Object, error) {
	switch from {
	case "", config.FormatJSON:
		return dec.Decode(data)
	case config.FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, errors.Annotate(err, "parsing YAML input")
		}
		if node.Kind == 0 {
			return nil, errors.NotValidf("empty YAML document")
		}
		return dec.DecodeYAML(&node)
	}
	return nil, errors.NotSupportedf("input format %q", from)
}

// Encode writes obj in the given output format.
func Encode(obj geojson.Object, format string, indent int) ([]byte, error) {
	switch format {
	case "", config.FormatJSON:
		out := geojson.Encode(obj)
		if indent <= 0 {
			return out, nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", spaces(indent)); err != nil {
			return nil, errors.Annotate(err, "indenting output")
		}
		return buf.Bytes(), nil
	case config.FormatYAML:
		return yaml.Marshal(geojson.Document{Object: obj})
	}
	return nil, errors.NotSupportedf("output format %q", format)
}

// Convert validates data and returns the bytes to emit together with the
// decoded object.
func Convert(data []byte, opts Options) ([]byte, geojson.Object, error) {
	obj, err := Decode(data, opts.From, opts.Decoder)
	if err != nil {
		return nil, nil, err
	}

	summary := Summarize(obj)
	log.Debug().
		Str("type", summary.Type).
		Int("features", summary.Features).
		Int("geometries", summary.Geometries).
		Int("positions", summary.Positions).
		Msg("Document decoded")

	if opts.Minify {
		if opts.From == config.FormatYAML {
			return nil, nil, errors.NotSupportedf("minify of YAML input")
		}
		out, err := Minify(data)
		if err != nil {
			return nil, nil, err
		}
		return out, obj, nil
	}

	out, err := Encode(obj, opts.Format, opts.Indent)
	if err != nil {
		return nil, nil, err
	}
	return out, obj, nil
}

// Minify strips insignificant whitespace from a JSON document.
func Minify(data []byte) ([]byte, error) {
	m := minify.New()
	m.AddFunc("application/json", minjson.Minify)

	out, err := m.Bytes("application/json", data)
	if err != nil {
		return nil, errors.Annotate(err, "minifying JSON")
	}
	return out, nil
}

func spaces(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}
