// Package config handles configuration loading for the geojsonfmt command.
package config

import (
	"os"
	"sort"

	"github.com/woozymasta/geojson"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the root configuration file structure.
type Config struct {
	Decoder Decoder `yaml:"decoder"`
	Output  Output  `yaml:"output"`

	// defining GeoJSON documents directly in config.yaml, selected by name.
	// They stay raw until Document decodes them with the final options.
	Documents map[string]yaml.Node `yaml:"documents,omitempty"`
}

// Decoder mirrors geojson.Decoder options.
type Decoder struct {
	Strict   bool `yaml:"strict,omitempty"`
	MaxDepth int  `yaml:"max_depth,omitempty"`
}

// Output controls how documents are written.
type Output struct {
	Format string `yaml:"format,omitempty"`
	Indent int    `yaml:"indent,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.normalize()
	return cfg
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading config %q", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Annotatef(err, "parsing config %q", path)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotatef(err, "config %q", path)
	}

	return &cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.NotValidf("output format %q", c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return errors.NotValidf("negative indent %d", c.Output.Indent)
	}
	if c.Decoder.MaxDepth < 0 {
		return errors.NotValidf("negative max_depth %d", c.Decoder.MaxDepth)
	}
	for _, name := range c.DocumentNames() {
		if node := c.Documents[name]; node.Kind != yaml.MappingNode {
			return errors.NotValidf("document %q", name)
		}
	}
	return nil
}

// DocumentNames returns the names of the inline documents in sorted order.
func (c *Config) DocumentNames() []string {
	names := make([]string, 0, len(c.Documents))
	for name := range c.Documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Document decodes the named inline document with the current decoder
// options, so flag overrides applied after Load take effect.
func (c *Config) Document(name string) (geojson.Object, error) {
	node, ok := c.Documents[name]
	if !ok {
		return nil, errors.NotFoundf("document %q", name)
	}
	obj, err := c.GeoJSONDecoder().DecodeYAML(&node)
	if err != nil {
		return nil, errors.Annotatef(err, "document %q", name)
	}
	return obj, nil
}

// GeoJSONDecoder builds the codec decoder for these options.
func (c *Config) GeoJSONDecoder() geojson.Decoder {
	return geojson.Decoder{
		MaxDepth:              c.Decoder.MaxDepth,
		DisallowUnknownFields: c.Decoder.Strict,
	}
}

func (c *Config) normalize() {
	if c.Output.Format == "" {
		c.Output.Format = FormatJSON
	}
	if c.Decoder.MaxDepth == 0 {
		c.Decoder.MaxDepth = geojson.DefaultMaxDepth
	}
}
