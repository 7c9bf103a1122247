package obofoundry

// Per-record decoding. Each function declares the record's field set: keys
// listed in a lookup are known, and finish(true) rejects everything else.

func (d *decoder) registry(v any) *Registry {
	o, ok := d.object(rootPath, v)
	if !ok {
		return nil
	}
	r := &Registry{}
	p, raw, present := o.required("ontologies")
	if present {
		arr, isList := raw.([]any)
		if !isList {
			d.typeMismatch(p, "list", raw)
		} else {
			r.Ontologies = make([]Ontology, 0, len(arr))
			for i, item := range arr {
				if d.stopped() {
					break
				}
				if err := d.ctx.Err(); err != nil {
					d.err = err
					break
				}
				if ont, ok := d.ontology(p.Index(i), item); ok {
					r.Ontologies = append(r.Ontologies, ont)
				}
			}
		}
	}
	if r.Ontologies == nil {
		r.Ontologies = []Ontology{}
	}
	o.finish(false)
	return r
}

func (d *decoder) ontology(p pathRef, v any) (Ontology, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Ontology{}, false
	}
	var ont Ontology
	// id first so every later issue can name the record
	ont.ID = o.reqString("id")
	d.record = ont.ID
	defer func() { d.record = "" }()

	ont.Title = o.reqString("title")
	ont.ActivityStatus = reqEnum(o, activityStatusSpec, "activity_status")
	ont.Layout = o.reqString("layout")
	ont.InFoundry = o.boolDefault(true, "in_foundry")
	ont.IsObsolete = o.boolDefault(false, "is_obsolete")

	ont.AlternativePrefix = o.optString("alternativePrefix", "alternatePrefix")
	ont.Biosharing = o.optString("biosharing")
	ont.Browsers = listOf(o, d.browser, "browsers")
	ont.Build = optRecord(o, d.build, "build")
	ont.Canonical = o.optString("canonical")
	ont.Contact = optRecord(o, d.contact, "contact")
	ont.CreatedWith = o.optString("createdWith")
	ont.Dependencies = listOf(o, d.dependency, "dependencies")
	ont.DepictedBy = o.optString("depicted_by")
	ont.Description = o.optString("description")
	ont.Development = optRecord(o, d.development, "development")
	ont.Documentation = o.optURL("documentation")
	ont.Domain = o.optString("domain")
	ont.DOWiki = o.optURL("DO wiki")
	ont.ExampleClass = o.optString("exampleClass")
	ont.Facebook = o.optURL("facebook")
	ont.FundedBy = listOf(o, d.funding, "funded_by")
	ont.GooglePlus = o.optString("google_plus")
	ont.Homepage = o.optString("homepage")
	ont.InFoundryOrder = o.optInt("in_foundry_order")
	ont.IntegrationServer = o.optString("integration_server")
	ont.Jobs = listOf(o, d.job, "jobs")
	ont.Label = o.optString("label")
	ont.License = optRecord(o, d.license, "license")
	ont.MailingList = o.optString("mailing_list")
	ont.OntologyPURL = o.optURL("ontology_purl")
	ont.Page = o.optURL("page")
	ont.PreferredPrefix = o.optString("preferredPrefix", "preferred_prefix")
	ont.Products = listOf(o, d.product, "products")
	ont.Publications = listOf(o, d.publication, "publications")
	ont.Redirects = listOf(o, d.redirect, "redirects")
	ont.Releases = o.optString("releases")
	ont.ReplacedBy = o.optString("replaced_by")
	ont.Repository = o.optURL("repository")
	ont.Review = optRecord(o, d.review, "review")
	ont.Source = o.optString("source")
	ont.Tags = o.strings("tags")
	ont.Taxon = optRecord(o, d.taxon, "taxon")
	ont.Termgenie = o.optString("termgenie")
	ont.Tracker = o.optURL("tracker", "issue")
	ont.Twitter = o.optString("twitter")
	ont.Type = o.optString("type")
	ont.Usages = listOf(o, d.usage, "usages", "used_by")
	ont.Validate = o.optBool("validate")
	ont.WasDerivedFrom = o.optString("wasDerivedFrom")
	ont.WikidataTemplate = o.optString("wikidata_template")

	o.finish(true)
	return ont, true
}

func (d *decoder) build(p pathRef, v any) (Build, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Build{}, false
	}
	b := Build{
		Checkout:         o.optString("checkout"),
		EmailCC:          o.optString("email_cc"),
		Infallible:       o.optBool01("infallible"),
		InsertOntologyID: o.optBool("insert_ontology_id"),
		Method:           optEnum(o, buildMethodSpec, "method"),
		Notes:            o.optString("notes"),
		OortArgs:         o.optString("oort_args"),
		Path:             o.optString("path"),
		Publications:     listOf(o, d.publication, "publications"),
		SourceURL:        o.optURL("source_url"),
		System:           optEnum(o, buildSystemSpec, "system"),
	}
	o.finish(true)
	return b, true
}

func (d *decoder) license(p pathRef, v any) (License, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return License{}, false
	}
	l := License{
		Label: o.reqString("label"),
		Logo:  o.optString("logo"),
		URL:   o.reqURL("url"),
	}
	o.finish(true)
	return l, true
}

func (d *decoder) contact(p pathRef, v any) (Contact, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Contact{}, false
	}
	c := Contact{
		Label:  o.reqString("label"),
		Email:  o.optString("email"),
		GitHub: o.optString("github", "contact"),
		ORCID:  o.optString("orcid"),
	}
	o.finish(true)
	return c, true
}

func (d *decoder) job(p pathRef, v any) (Job, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Job{}, false
	}
	j := Job{
		ID:   o.reqString("id"),
		Type: reqEnum(o, jobTypeSpec, "type"),
	}
	o.finish(true)
	return j, true
}

func (d *decoder) product(p pathRef, v any) (Product, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Product{}, false
	}
	pr := Product{
		ID:           o.reqString("id"),
		OntologyPURL: o.reqURL("ontology_purl"),
		Connects:     listOf(o, d.dependency, "connects"),
		Contact:      optRecord(o, d.contact, "contact"),
		DerivedFrom:  o.optString("derived_from"),
		Description:  o.optString("description"),
		Format:       o.optString("format"),
		Homepage:     o.optURL("homepage"),
		IsCanonical:  o.optBool("is_canonical"),
		License:      o.optString("license"),
		MireotsFrom:  o.stringOrList("mireots_from"),
		Page:         o.optString("page"),
		Taxon:        o.optString("taxon"),
		Title:        o.optString("title"),
		Type:         o.optString("type"),
		Uses:         o.strings("uses"),
	}
	o.finish(true)
	return pr, true
}

func (d *decoder) dependency(p pathRef, v any) (Dependency, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Dependency{}, false
	}
	dep := Dependency{
		ID:           o.reqString("id"),
		Connects:     listOf(o, d.dependency, "connects"),
		Description:  o.optString("description"),
		Publications: listOf(o, d.publication, "publications"),
		Subset:       o.optString("subset"),
		Title:        o.optString("title"),
		Type:         o.optString("type"),
	}
	o.finish(true)
	return dep, true
}

func (d *decoder) publication(p pathRef, v any) (Publication, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Publication{}, false
	}
	pub := Publication{
		ID:        o.reqString("id"),
		Title:     o.optString("title"),
		Preferred: o.boolDefault(false, "preferred"),
	}
	o.finish(true)
	return pub, true
}

func (d *decoder) usage(p pathRef, v any) (Usage, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Usage{}, false
	}
	u := Usage{
		User:         o.reqURL("user", "url"),
		Description:  o.optString("description"),
		Examples:     listOf(o, d.exampleEntry, "examples", "example"),
		Label:        o.optString("label"),
		Publications: listOf(o, d.publication, "publications"),
		Reference:    o.optString("reference"),
		SeeAlso:      o.optString("seeAlso"),
		Type:         optEnum(o, usageTypeSpec, "type"),
	}
	o.finish(true)
	return u, true
}

// exampleOrURL is one entry of a usage's examples as written upstream:
// either a bare URL or a full example record.
type exampleOrURL struct {
	url     *URL
	example *Example
}

func (e exampleOrURL) collapse() Example {
	if e.example != nil {
		return *e.example
	}
	return Example{URL: *e.url}
}

// exampleEntry tries the record shape first and falls back to a bare URL.
func (d *decoder) exampleEntry(p pathRef, v any) (Example, bool) {
	var e exampleOrURL
	switch v.(type) {
	case map[string]any:
		ex, ok := d.example(p, v)
		if !ok {
			return Example{}, false
		}
		e.example = &ex
	case string:
		u, ok := d.url(p, v)
		if !ok {
			return Example{}, false
		}
		e.url = &u
	default:
		d.typeMismatch(p, "URL string or example object", v)
		return Example{}, false
	}
	return e.collapse(), true
}

func (d *decoder) example(p pathRef, v any) (Example, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Example{}, false
	}
	e := Example{
		URL:         o.reqURL("url"),
		Description: o.optString("description"),
	}
	o.finish(true)
	return e, true
}

func (d *decoder) taxon(p pathRef, v any) (Taxon, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Taxon{}, false
	}
	t := Taxon{
		ID:    o.reqString("id"),
		Label: o.optString("label"),
	}
	o.finish(true)
	return t, true
}

func (d *decoder) redirect(p pathRef, v any) (Redirect, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Redirect{}, false
	}
	r := Redirect{
		Path: o.reqString("match"),
		URL:  o.reqURL("url"),
	}
	o.finish(false)
	return r, true
}

func (d *decoder) development(p pathRef, v any) (Development, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Development{}, false
	}
	dev := Development{IDPolicy: o.reqString("id_policy")}
	o.finish(false)
	return dev, true
}

func (d *decoder) browser(p pathRef, v any) (Browser, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Browser{}, false
	}
	b := Browser{
		Label: o.reqString("label"),
		Title: o.reqString("title"),
		URL:   o.reqURL("url"),
	}
	o.finish(true)
	return b, true
}

func (d *decoder) funding(p pathRef, v any) (Funding, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Funding{}, false
	}
	f := Funding{
		ID:    o.reqString("id"),
		Title: o.optString("title"),
	}
	o.finish(true)
	return f, true
}

func (d *decoder) review(p pathRef, v any) (Review, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Review{}, false
	}
	r := Review{
		Date:     o.reqText("date"),
		Document: optRecord(o, d.document, "document"),
	}
	o.finish(true)
	return r, true
}

func (d *decoder) document(p pathRef, v any) (Document, bool) {
	o, ok := d.object(p, v)
	if !ok {
		return Document{}, false
	}
	doc := Document{
		Link:  o.reqURL("link"),
		Label: o.optString("label"),
	}
	o.finish(true)
	return doc, true
}
