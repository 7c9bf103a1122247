package obofoundry

import (
	"context"

	"gopkg.in/yaml.v3"
)

// UnmarshalJSON decodes a registry document with the default options, so
// Registry can be the target of json.Unmarshal.
func (r *Registry) UnmarshalJSON(b []byte) error {
	out, err := ParseJSON(context.Background(), b)
	if err != nil {
		return err
	}
	*r = *out
	return nil
}

// UnmarshalYAML decodes a registry document from a yaml.v3 node, so Registry
// can be the target of yaml.Unmarshal.
func (r *Registry) UnmarshalYAML(n *yaml.Node) error {
	out, err := Parse(context.Background(), YAMLNode(n))
	if err != nil {
		return err
	}
	*r = *out
	return nil
}
