// Package jsonschema projects the registry model onto a JSON Schema
// document (draft 2020-12) so non-Go consumers can check a registry file
// against the same shape the decoder enforces.
package jsonschema

import (
	"reflect"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/reoring/obofoundry"
)

// ID is the $id of the generated schema.
const ID = "https://github.com/reoring/obofoundry/registry.schema.json"

// Properties is the ordered property map of an object schema.
type Properties = *orderedmap.OrderedMap[string, *jsonschema.Schema]

var (
	urlType  = reflect.TypeOf(obofoundry.URL(""))
	enumKeys = []any{
		obofoundry.ActivityStatus(0),
		obofoundry.BuildMethod(0),
		obofoundry.BuildSystem(0),
		obofoundry.JobType(0),
		obofoundry.UsageType(0),
	}
)

// lenient records tolerate keys they do not declare.
var lenient = []string{"Redirect", "Development"}

// aliases lists, per record, the legacy keys the decoder accepts in place
// of a canonical property.
var aliases = map[string][][2]string{
	"Ontology": {
		{"alternatePrefix", "alternativePrefix"},
		{"preferred_prefix", "preferredPrefix"},
		{"issue", "tracker"},
		{"used_by", "usages"},
	},
	"Usage": {
		{"url", "user"},
		{"example", "examples"},
	},
	"Contact": {
		{"contact", "github"},
	},
}

// Reflect builds the schema of a registry document. Struct types other than
// the root Registry live under $defs keyed by their Go name.
func Reflect() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     mapType,
	}
	s := r.Reflect(&obofoundry.Registry{})
	s.ID = ID
	s.Title = "OBO Foundry registry"
	s.AdditionalProperties = jsonschema.TrueSchema

	for _, name := range lenient {
		if def, ok := s.Definitions[name]; ok {
			def.AdditionalProperties = jsonschema.TrueSchema
		}
	}
	if build, ok := s.Definitions["Build"]; ok {
		replace(build.Properties, "infallible", &jsonschema.Schema{
			Type:        "integer",
			Enum:        []any{0, 1},
			Description: "1 when the build is expected to always succeed",
		})
	}
	if usage, ok := s.Definitions["Usage"]; ok {
		if ex, ok := usage.Properties.Get("examples"); ok && ex.Items != nil {
			ex.Items = &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
				{Type: "string", Format: "uri"},
				ex.Items,
			}}
		}
	}
	if product, ok := s.Definitions["Product"]; ok {
		if mireots, ok := product.Properties.Get("mireots_from"); ok {
			replace(product.Properties, "mireots_from", &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
				{Type: "string"},
				mireots,
			}})
		}
	}
	for name, pairs := range aliases {
		if def, ok := s.Definitions[name]; ok {
			for _, pair := range pairs {
				alias(def, pair[0], pair[1])
			}
		}
	}
	return s
}

// Marshal renders the schema as indented JSON.
func Marshal() ([]byte, error) {
	return json.MarshalIndent(Reflect(), "", "  ")
}

func mapType(t reflect.Type) *jsonschema.Schema {
	if t == urlType {
		return &jsonschema.Schema{Type: "string", Format: "uri"}
	}
	for _, k := range enumKeys {
		if reflect.TypeOf(k) != t {
			continue
		}
		spellings := obofoundry.EnumSpellings(k)
		enum := make([]any, len(spellings))
		for i, s := range spellings {
			enum[i] = s
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}
	}
	return nil
}

// alias declares legacy as a deprecated copy of canonical. A required
// canonical key becomes satisfiable by either spelling.
func alias(def *jsonschema.Schema, legacy, canonical string) {
	prop, ok := def.Properties.Get(canonical)
	if !ok {
		return
	}
	c := *prop
	c.Deprecated = true
	c.Description = "legacy spelling of " + canonical
	def.Properties.Set(legacy, &c)

	for i, req := range def.Required {
		if req != canonical {
			continue
		}
		def.Required = append(def.Required[:i:i], def.Required[i+1:]...)
		def.AnyOf = append(def.AnyOf,
			&jsonschema.Schema{Required: []string{canonical}},
			&jsonschema.Schema{Required: []string{legacy}},
		)
		return
	}
}

// replace swaps the schema of an existing property in place so the
// declared property order is kept.
func replace(props Properties, key string, s *jsonschema.Schema) {
	if props == nil {
		return
	}
	if _, ok := props.Get(key); ok {
		props.Set(key, s)
	}
}
