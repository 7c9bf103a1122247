package obofoundry

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equal methods compare field by field and treat a nil collection as equal
// to an empty one, since the document cannot tell the two apart.
//
// cmp prefers a type's own Equal method, so each comparison goes through a
// method-less copy of the type to stop it calling back into itself.

var equateEmpty = cmpopts.EquateEmpty()

type (
	registry    Registry
	ontology    Ontology
	build       Build
	license     License
	contact     Contact
	job         Job
	product     Product
	dependency  Dependency
	publication Publication
	usage       Usage
	example     Example
	taxon       Taxon
	redirect    Redirect
	development Development
	browser     Browser
	funding     Funding
	review      Review
	document    Document
)

// Equal reports structural equality. Two nil registries are equal.
func (r *Registry) Equal(o *Registry) bool {
	if r == nil || o == nil {
		return r == o
	}
	return cmp.Equal(registry(*r), registry(*o), equateEmpty)
}

// Equal reports structural equality.
func (o Ontology) Equal(other Ontology) bool {
	return cmp.Equal(ontology(o), ontology(other), equateEmpty)
}

func (b Build) Equal(other Build) bool { return cmp.Equal(build(b), build(other), equateEmpty) }

func (l License) Equal(other License) bool { return cmp.Equal(license(l), license(other)) }

func (c Contact) Equal(other Contact) bool { return cmp.Equal(contact(c), contact(other)) }

func (j Job) Equal(other Job) bool { return cmp.Equal(job(j), job(other)) }

// Equal reports structural equality.
func (p Product) Equal(other Product) bool {
	return cmp.Equal(product(p), product(other), equateEmpty)
}

// Equal reports structural equality, recursing through Connects.
func (d Dependency) Equal(other Dependency) bool {
	return cmp.Equal(dependency(d), dependency(other), equateEmpty)
}

func (p Publication) Equal(other Publication) bool {
	return cmp.Equal(publication(p), publication(other))
}

// Equal reports structural equality.
func (u Usage) Equal(other Usage) bool { return cmp.Equal(usage(u), usage(other), equateEmpty) }

func (e Example) Equal(other Example) bool { return cmp.Equal(example(e), example(other)) }

func (t Taxon) Equal(other Taxon) bool { return cmp.Equal(taxon(t), taxon(other)) }

func (r Redirect) Equal(other Redirect) bool { return cmp.Equal(redirect(r), redirect(other)) }

func (d Development) Equal(other Development) bool {
	return cmp.Equal(development(d), development(other))
}

func (b Browser) Equal(other Browser) bool { return cmp.Equal(browser(b), browser(other)) }

func (f Funding) Equal(other Funding) bool { return cmp.Equal(funding(f), funding(other)) }

func (r Review) Equal(other Review) bool { return cmp.Equal(review(r), review(other)) }

func (d Document) Equal(other Document) bool { return cmp.Equal(document(d), document(other)) }
