package obofoundry

// Registry is the root of the OBO Foundry registry document.
type Registry struct {
	// Ontologies are kept in document order.
	Ontologies []Ontology `json:"ontologies" jsonschema:"required"`
}

// Ontology is one registry entry.
//
// Optional scalars are pointers: nil means the registry does not say, not
// false or empty. Collections are never nil after decoding.
type Ontology struct {
	ID             string         `json:"id" jsonschema:"required"`
	Title          string         `json:"title" jsonschema:"required"`
	ActivityStatus ActivityStatus `json:"activity_status" jsonschema:"required"`
	// Layout is the legacy page layout name, still required upstream.
	Layout string `json:"layout" jsonschema:"required"`

	// InFoundry defaults to true when the key is absent.
	InFoundry bool `json:"in_foundry" jsonschema:"default=true"`
	// IsObsolete defaults to false when the key is absent.
	IsObsolete bool `json:"is_obsolete" jsonschema:"default=false"`

	AlternativePrefix *string       `json:"alternativePrefix,omitempty"`
	Biosharing        *string       `json:"biosharing,omitempty"`
	Browsers          []Browser     `json:"browsers,omitempty"`
	Build             *Build        `json:"build,omitempty"`
	Canonical         *string       `json:"canonical,omitempty"`
	Contact           *Contact      `json:"contact,omitempty"`
	CreatedWith       *string       `json:"createdWith,omitempty"`
	Dependencies      []Dependency  `json:"dependencies,omitempty"`
	DepictedBy        *string       `json:"depicted_by,omitempty"`
	Description       *string       `json:"description,omitempty"`
	Development       *Development  `json:"development,omitempty"`
	Documentation     *URL          `json:"documentation,omitempty"`
	Domain            *string       `json:"domain,omitempty"`
	DOWiki            *URL          `json:"DO wiki,omitempty"`
	ExampleClass      *string       `json:"exampleClass,omitempty"`
	Facebook          *URL          `json:"facebook,omitempty"`
	FundedBy          []Funding     `json:"funded_by,omitempty"`
	GooglePlus        *string       `json:"google_plus,omitempty"`
	Homepage          *string       `json:"homepage,omitempty"`
	InFoundryOrder    *int          `json:"in_foundry_order,omitempty"`
	IntegrationServer *string       `json:"integration_server,omitempty"`
	Jobs              []Job         `json:"jobs,omitempty"`
	Label             *string       `json:"label,omitempty"`
	License           *License      `json:"license,omitempty"`
	MailingList       *string       `json:"mailing_list,omitempty"`
	OntologyPURL      *URL          `json:"ontology_purl,omitempty"`
	Page              *URL          `json:"page,omitempty"`
	PreferredPrefix   *string       `json:"preferredPrefix,omitempty"`
	Products          []Product     `json:"products,omitempty"`
	Publications      []Publication `json:"publications,omitempty"`
	Redirects         []Redirect    `json:"redirects,omitempty"`
	Releases          *string       `json:"releases,omitempty"`
	ReplacedBy        *string       `json:"replaced_by,omitempty"`
	Repository        *URL          `json:"repository,omitempty"`
	Review            *Review       `json:"review,omitempty"`
	Source            *string       `json:"source,omitempty"`
	Tags              []string      `json:"tags,omitempty"`
	Taxon             *Taxon        `json:"taxon,omitempty"`
	Termgenie         *string       `json:"termgenie,omitempty"`
	Tracker           *URL          `json:"tracker,omitempty"`
	Twitter           *string       `json:"twitter,omitempty"`
	Type              *string       `json:"type,omitempty"`
	Usages            []Usage       `json:"usages,omitempty"`
	Validate          *bool         `json:"validate,omitempty"`
	WasDerivedFrom    *string       `json:"wasDerivedFrom,omitempty"`
	WikidataTemplate  *string       `json:"wikidata_template,omitempty"`
}

// NewOntology returns an Ontology with the required fields set, the boolean
// defaults applied and every collection empty, as the decoder would produce
// for a document listing only those four keys.
func NewOntology(id, title string, status ActivityStatus, layout string) Ontology {
	return Ontology{
		ID:             id,
		Title:          title,
		ActivityStatus: status,
		Layout:         layout,
		InFoundry:      true,
		Browsers:       []Browser{},
		Dependencies:   []Dependency{},
		FundedBy:       []Funding{},
		Jobs:           []Job{},
		Products:       []Product{},
		Publications:   []Publication{},
		Redirects:      []Redirect{},
		Tags:           []string{},
		Usages:         []Usage{},
	}
}

// Build describes how the ontology release is produced.
type Build struct {
	Checkout *string `json:"checkout,omitempty"`
	EmailCC  *string `json:"email_cc,omitempty"`
	// Infallible is written upstream as the integer 0 or 1.
	Infallible       *bool         `json:"infallible,omitempty"`
	InsertOntologyID *bool         `json:"insert_ontology_id,omitempty"`
	Method           *BuildMethod  `json:"method,omitempty"`
	Notes            *string       `json:"notes,omitempty"`
	OortArgs         *string       `json:"oort_args,omitempty"`
	Path             *string       `json:"path,omitempty"`
	Publications     []Publication `json:"publications,omitempty"`
	SourceURL        *URL          `json:"source_url,omitempty"`
	System           *BuildSystem  `json:"system,omitempty"`
}

// License is the license an ontology is released under.
type License struct {
	Label string  `json:"label" jsonschema:"required"`
	Logo  *string `json:"logo,omitempty"`
	URL   URL     `json:"url" jsonschema:"required"`
}

// Contact is the person responsible for an ontology or product.
type Contact struct {
	Label string `json:"label" jsonschema:"required"`
	// Email used to be required; older consumers must now nil-check it.
	Email  *string `json:"email,omitempty"`
	GitHub *string `json:"github,omitempty"`
	ORCID  *string `json:"orcid,omitempty"`
}

// Job is a CI job attached to the ontology.
type Job struct {
	ID   string  `json:"id" jsonschema:"required"`
	Type JobType `json:"type" jsonschema:"required"`
}

// Product is a released artifact of an ontology.
type Product struct {
	ID           string       `json:"id" jsonschema:"required"`
	OntologyPURL URL          `json:"ontology_purl" jsonschema:"required"`
	Connects     []Dependency `json:"connects,omitempty"`
	Contact      *Contact     `json:"contact,omitempty"`
	DerivedFrom  *string      `json:"derived_from,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Format       *string      `json:"format,omitempty"`
	Homepage     *URL         `json:"homepage,omitempty"`
	IsCanonical  *bool        `json:"is_canonical,omitempty"`
	License      *string      `json:"license,omitempty"`
	// MireotsFrom is a single string or a list upstream; it is always a list
	// here.
	MireotsFrom []string `json:"mireots_from,omitempty"`
	Page        *string  `json:"page,omitempty"`
	Taxon       *string  `json:"taxon,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Uses        []string `json:"uses,omitempty"`
}

// Dependency is a reference to another ontology. Dependencies nest through
// Connects and each node owns its children.
type Dependency struct {
	ID           string        `json:"id" jsonschema:"required"`
	Connects     []Dependency  `json:"connects,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	Subset       *string       `json:"subset,omitempty"`
	Title        *string       `json:"title,omitempty"`
	Type         *string       `json:"type,omitempty"`
}

// Publication is a paper describing the ontology.
type Publication struct {
	ID    string  `json:"id" jsonschema:"required"`
	Title *string `json:"title,omitempty"`
	// Preferred defaults to false.
	Preferred bool `json:"preferred" jsonschema:"default=false"`
}

// Usage is a documented consumer of the ontology.
type Usage struct {
	User         URL           `json:"user" jsonschema:"required"`
	Description  *string       `json:"description,omitempty"`
	Examples     []Example     `json:"examples,omitempty"`
	Label        *string       `json:"label,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	Reference    *string       `json:"reference,omitempty"`
	SeeAlso      *string       `json:"seeAlso,omitempty"`
	Type         *UsageType    `json:"type,omitempty"`
}

// Example points at one concrete use. Upstream it may be a bare URL.
type Example struct {
	URL         URL     `json:"url" jsonschema:"required"`
	Description *string `json:"description,omitempty"`
}

// Taxon is the organism an ontology is restricted to.
type Taxon struct {
	ID    string  `json:"id" jsonschema:"required"`
	Label *string `json:"label,omitempty"`
}

// Redirect maps a PURL path to a target URL.
type Redirect struct {
	Path string `json:"match" jsonschema:"required"`
	URL  URL    `json:"url" jsonschema:"required"`
}

// Development holds development policies.
type Development struct {
	IDPolicy string `json:"id_policy" jsonschema:"required"`
}

// Browser is an external ontology browser.
type Browser struct {
	Label string `json:"label" jsonschema:"required"`
	Title string `json:"title" jsonschema:"required"`
	URL   URL    `json:"url" jsonschema:"required"`
}

// Funding is a grant or funding body.
type Funding struct {
	ID    string  `json:"id" jsonschema:"required"`
	Title *string `json:"title,omitempty"`
}

// Review records an OBO Foundry review.
type Review struct {
	Date     string    `json:"date" jsonschema:"required"`
	Document *Document `json:"document,omitempty"`
}

// Document is a reviewed document.
type Document struct {
	Link  URL     `json:"link" jsonschema:"required"`
	Label *string `json:"label,omitempty"`
}

// Ptr returns a pointer to v. It is a convenience for optional fields in
// literals.
func Ptr[T any](v T) *T { return &v }
