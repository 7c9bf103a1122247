package obofoundry

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// field is one key of an encoded record.
type field struct {
	key string
	val any
}

// record is an encoded mapping that keeps declared key order.
type record []field

func (r record) set(key string, v any) record { return append(r, field{key, v}) }

// opt appends key only when v is non-nil.
func opt[T any](r record, key string, v *T, enc func(T) any) record {
	if v == nil {
		return r
	}
	return r.set(key, enc(*v))
}

// list appends key only for a non-empty slice.
func list[T any](r record, key string, vs []T, enc func(T) any) record {
	if len(vs) == 0 {
		return r
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = enc(v)
	}
	return r.set(key, out)
}

func id[T any](v T) any { return v }

func urlText(u URL) any { return string(u) }

func bool01Value(b bool) any {
	if b {
		return 1
	}
	return 0
}

func enumText[T interface{ MarshalText() ([]byte, error) }](v T) any {
	b, _ := v.MarshalText()
	return string(b)
}

// EncodeValue renders r as a generic tree (map[string]any, []any and
// scalars) using canonical key and enum spellings. Decoding the tree with
// ParseValue yields a Registry equal to r.
func EncodeValue(r *Registry) any {
	if r == nil {
		return nil
	}
	return plain(encodeRegistry(r))
}

func plain(v any) any {
	switch x := v.(type) {
	case record:
		m := make(map[string]any, len(x))
		for _, f := range x {
			m[f.key] = plain(f.val)
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

func encodeRegistry(r *Registry) record {
	return record{}.set("ontologies", func() []any {
		out := make([]any, len(r.Ontologies))
		for i, o := range r.Ontologies {
			out[i] = encodeOntology(o)
		}
		return out
	}())
}

func encodeOntology(o Ontology) any {
	r := record{}.
		set("id", o.ID).
		set("title", o.Title).
		set("activity_status", enumText(o.ActivityStatus)).
		set("layout", o.Layout).
		set("in_foundry", o.InFoundry).
		set("is_obsolete", o.IsObsolete)
	r = opt(r, "alternativePrefix", o.AlternativePrefix, id)
	r = opt(r, "biosharing", o.Biosharing, id)
	r = list(r, "browsers", o.Browsers, encodeBrowser)
	r = opt(r, "build", o.Build, encodeBuild)
	r = opt(r, "canonical", o.Canonical, id)
	r = opt(r, "contact", o.Contact, encodeContact)
	r = opt(r, "createdWith", o.CreatedWith, id)
	r = list(r, "dependencies", o.Dependencies, encodeDependency)
	r = opt(r, "depicted_by", o.DepictedBy, id)
	r = opt(r, "description", o.Description, id)
	r = opt(r, "development", o.Development, func(d Development) any {
		return record{}.set("id_policy", d.IDPolicy)
	})
	r = opt(r, "documentation", o.Documentation, urlText)
	r = opt(r, "domain", o.Domain, id)
	r = opt(r, "DO wiki", o.DOWiki, urlText)
	r = opt(r, "exampleClass", o.ExampleClass, id)
	r = opt(r, "facebook", o.Facebook, urlText)
	r = list(r, "funded_by", o.FundedBy, func(f Funding) any {
		return opt(record{}.set("id", f.ID), "title", f.Title, id)
	})
	r = opt(r, "google_plus", o.GooglePlus, id)
	r = opt(r, "homepage", o.Homepage, id)
	r = opt(r, "in_foundry_order", o.InFoundryOrder, id)
	r = opt(r, "integration_server", o.IntegrationServer, id)
	r = list(r, "jobs", o.Jobs, func(j Job) any {
		return record{}.set("id", j.ID).set("type", enumText(j.Type))
	})
	r = opt(r, "label", o.Label, id)
	r = opt(r, "license", o.License, func(l License) any {
		lr := opt(record{}.set("label", l.Label), "logo", l.Logo, id)
		return lr.set("url", string(l.URL))
	})
	r = opt(r, "mailing_list", o.MailingList, id)
	r = opt(r, "ontology_purl", o.OntologyPURL, urlText)
	r = opt(r, "page", o.Page, urlText)
	r = opt(r, "preferredPrefix", o.PreferredPrefix, id)
	r = list(r, "products", o.Products, encodeProduct)
	r = list(r, "publications", o.Publications, encodePublication)
	r = list(r, "redirects", o.Redirects, func(rd Redirect) any {
		return record{}.set("match", rd.Path).set("url", string(rd.URL))
	})
	r = opt(r, "releases", o.Releases, id)
	r = opt(r, "replaced_by", o.ReplacedBy, id)
	r = opt(r, "repository", o.Repository, urlText)
	r = opt(r, "review", o.Review, func(rv Review) any {
		return opt(record{}.set("date", rv.Date), "document", rv.Document, func(d Document) any {
			return opt(record{}.set("link", string(d.Link)), "label", d.Label, id)
		})
	})
	r = opt(r, "source", o.Source, id)
	r = list(r, "tags", o.Tags, id)
	r = opt(r, "taxon", o.Taxon, func(t Taxon) any {
		return opt(record{}.set("id", t.ID), "label", t.Label, id)
	})
	r = opt(r, "termgenie", o.Termgenie, id)
	r = opt(r, "tracker", o.Tracker, urlText)
	r = opt(r, "twitter", o.Twitter, id)
	r = opt(r, "type", o.Type, id)
	r = list(r, "usages", o.Usages, encodeUsage)
	r = opt(r, "validate", o.Validate, id)
	r = opt(r, "wasDerivedFrom", o.WasDerivedFrom, id)
	r = opt(r, "wikidata_template", o.WikidataTemplate, id)
	return r
}

func encodeBrowser(b Browser) any {
	return record{}.set("label", b.Label).set("title", b.Title).set("url", string(b.URL))
}

func encodeBuild(b Build) any {
	r := record{}
	r = opt(r, "checkout", b.Checkout, id)
	r = opt(r, "email_cc", b.EmailCC, id)
	r = opt(r, "infallible", b.Infallible, bool01Value)
	r = opt(r, "insert_ontology_id", b.InsertOntologyID, id)
	r = opt(r, "method", b.Method, enumText)
	r = opt(r, "notes", b.Notes, id)
	r = opt(r, "oort_args", b.OortArgs, id)
	r = opt(r, "path", b.Path, id)
	r = list(r, "publications", b.Publications, encodePublication)
	r = opt(r, "source_url", b.SourceURL, urlText)
	r = opt(r, "system", b.System, enumText)
	return r
}

func encodeContact(c Contact) any {
	r := record{}.set("label", c.Label)
	r = opt(r, "email", c.Email, id)
	r = opt(r, "github", c.GitHub, id)
	r = opt(r, "orcid", c.ORCID, id)
	return r
}

func encodeProduct(p Product) any {
	r := record{}.set("id", p.ID).set("ontology_purl", string(p.OntologyPURL))
	r = list(r, "connects", p.Connects, encodeDependency)
	r = opt(r, "contact", p.Contact, encodeContact)
	r = opt(r, "derived_from", p.DerivedFrom, id)
	r = opt(r, "description", p.Description, id)
	r = opt(r, "format", p.Format, id)
	r = opt(r, "homepage", p.Homepage, urlText)
	r = opt(r, "is_canonical", p.IsCanonical, id)
	r = opt(r, "license", p.License, id)
	r = list(r, "mireots_from", p.MireotsFrom, id)
	r = opt(r, "page", p.Page, id)
	r = opt(r, "taxon", p.Taxon, id)
	r = opt(r, "title", p.Title, id)
	r = opt(r, "type", p.Type, id)
	r = list(r, "uses", p.Uses, id)
	return r
}

func encodeDependency(d Dependency) any {
	r := record{}.set("id", d.ID)
	r = list(r, "connects", d.Connects, encodeDependency)
	r = opt(r, "description", d.Description, id)
	r = list(r, "publications", d.Publications, encodePublication)
	r = opt(r, "subset", d.Subset, id)
	r = opt(r, "title", d.Title, id)
	r = opt(r, "type", d.Type, id)
	return r
}

func encodePublication(p Publication) any {
	r := opt(record{}.set("id", p.ID), "title", p.Title, id)
	return r.set("preferred", p.Preferred)
}

func encodeUsage(u Usage) any {
	r := record{}.set("user", string(u.User))
	r = opt(r, "description", u.Description, id)
	r = list(r, "examples", u.Examples, func(e Example) any {
		return opt(record{}.set("url", string(e.URL)), "description", e.Description, id)
	})
	r = opt(r, "label", u.Label, id)
	r = list(r, "publications", u.Publications, encodePublication)
	r = opt(r, "reference", u.Reference, id)
	r = opt(r, "seeAlso", u.SeeAlso, id)
	r = opt(r, "type", u.Type, enumText)
	return r
}

// MarshalJSON writes the record with its keys in declared order.
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.val)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the registry in canonical form.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeRegistry(r))
}

// MarshalYAML encodes the registry as a yaml.v3 node tree in canonical
// form with keys in declared order.
func (r *Registry) MarshalYAML() (any, error) {
	return yamlNode(encodeRegistry(r))
}

func yamlNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case record:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range x {
			val, err := yamlNode(f.val)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key}, val)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x {
			c, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// ToJSON encodes r as canonical JSON.
func ToJSON(r *Registry) ([]byte, error) { return json.Marshal(r) }

// ToJSONIndent encodes r as indented canonical JSON.
func ToJSONIndent(r *Registry) ([]byte, error) { return json.MarshalIndent(r, "", "  ") }

// ToYAML encodes r as canonical YAML.
func ToYAML(r *Registry) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
