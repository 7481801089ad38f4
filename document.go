package geojson

import (
	json "github.com/goccy/go-json"
	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Document holds any GeoJSON object and (un)marshals it through JSON or YAML,
// for places where the variant is not known in advance, such as GeoJSON
// inlined in a YAML configuration file.
type Document struct {
	Object
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	return Encode(d.Object), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	obj, err := Decode(data)
	if err != nil {
		return err
	}
	d.Object = obj
	return nil
}

// MarshalYAML implements yaml.Marshaler. Mappings are written in block style,
// coordinate arrays stay in flow style.
func (d Document) MarshalYAML() (interface{}, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(Encode(d.Object), &doc); err != nil {
		return nil, errors.Annotate(err, "converting GeoJSON to YAML")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New("converting GeoJSON to YAML: unexpected document shape")
	}
	node := doc.Content[0]
	blockStyle(node)
	return node, nil
}

// blockStyle switches mappings, and sequences that contain mappings, from the
// flow style inherited from JSON to block style. Plain strings lose their
// quotes unless the encoder needs them.
func blockStyle(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.MappingNode:
		n.Style = 0
		for _, c := range n.Content {
			blockStyle(c)
		}
		return true
	case yaml.SequenceNode:
		nested := false
		for _, c := range n.Content {
			if blockStyle(c) {
				nested = true
			}
		}
		if nested {
			n.Style = 0
		}
		return nested
	case yaml.ScalarNode:
		if n.Tag == "!!str" {
			n.Style = 0
		}
	}
	return false
}

// UnmarshalYAML implements yaml.Unmarshaler with the default Decoder.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	obj, err := defaultDecoder.DecodeYAML(node)
	if err != nil {
		return err
	}
	d.Object = obj
	return nil
}

// DecodeYAML decodes a GeoJSON object written as YAML. The node is converted
// to JSON first, so the usual discriminant and schema checks and the
// decoder's options apply.
func (d Decoder) DecodeYAML(node *yaml.Node) (Object, error) {
	var tree interface{}
	if err := node.Decode(&tree); err != nil {
		return nil, errors.Annotate(err, "reading YAML")
	}
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, errors.Annotate(err, "converting YAML to GeoJSON")
	}
	return d.Decode(data)
}
