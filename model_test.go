package obofoundry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/obofoundry"
)

func TestEnums_TextRoundTrip(t *testing.T) {
	var u obofoundry.UsageType
	require.NoError(t, u.UnmarshalText([]byte("owl-import")))
	assert.Equal(t, obofoundry.UsageOWLImport, u)
	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "owl_import", string(b))
	assert.Equal(t, "OwlImport", u.String())

	var j obofoundry.JobType
	require.NoError(t, j.UnmarshalText([]byte("travis-ci")))
	assert.Equal(t, "TravisCi", j.String())

	var s obofoundry.ActivityStatus
	assert.Error(t, s.UnmarshalText([]byte("Active")))

	_, err = obofoundry.ActivityStatus(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "activity_status(42)", obofoundry.ActivityStatus(42).String())
}

func TestEnumSpellings(t *testing.T) {
	assert.Equal(t, []string{"annotation", "owl_import", "owl-import", "query", "database", "Database", "application"},
		obofoundry.EnumSpellings(obofoundry.UsageType(0)))
	assert.Equal(t, []string{"git", "svn"}, obofoundry.EnumSpellings(new(obofoundry.BuildSystem)))
	assert.Nil(t, obofoundry.EnumSpellings(3))
}

func TestParseURL(t *testing.T) {
	u, err := obofoundry.ParseURL("http://purl.obolibrary.org/obo/go.owl")
	require.NoError(t, err)
	assert.Equal(t, "http://purl.obolibrary.org/obo/go.owl", u.String())
	pu, err := u.Parse()
	require.NoError(t, err)
	assert.Equal(t, "purl.obolibrary.org", pu.Host)

	_, err = obofoundry.ParseURL("mailto:someone@example.org")
	assert.NoError(t, err)

	_, err = obofoundry.ParseURL("/obo/go.owl")
	assert.True(t, errors.Is(err, obofoundry.ErrRelativeURL))

	_, err = obofoundry.ParseURL("http://[::1")
	assert.Error(t, err)

	assert.Panics(t, func() { obofoundry.MustParseURL("go.owl") })
}

func TestEqual(t *testing.T) {
	a := obofoundry.NewOntology("go", "Gene Ontology", obofoundry.StatusActive, "ontology_detail")
	b := obofoundry.NewOntology("go", "Gene Ontology", obofoundry.StatusActive, "ontology_detail")
	assert.True(t, a.Equal(b))
	b.Description = obofoundry.Ptr("x")
	assert.False(t, a.Equal(b))

	p := obofoundry.Product{ID: "go.obo", OntologyPURL: "http://purl.obolibrary.org/obo/go.obo"}
	assert.True(t, p.Equal(p))
	assert.False(t, p.Equal(obofoundry.Product{ID: "go.owl"}))

	d := obofoundry.Dependency{ID: "ro", Connects: []obofoundry.Dependency{{ID: "bfo"}}}
	assert.False(t, d.Equal(obofoundry.Dependency{ID: "ro"}))

	var nilReg *obofoundry.Registry
	assert.True(t, nilReg.Equal(nil))
	assert.False(t, nilReg.Equal(&obofoundry.Registry{}))
}

func TestEqual_NilEqualsEmpty(t *testing.T) {
	built := obofoundry.Product{ID: "go.obo", OntologyPURL: "http://purl.obolibrary.org/obo/go.obo"}
	decoded := built
	decoded.Connects = []obofoundry.Dependency{}
	decoded.MireotsFrom = []string{}
	decoded.Uses = []string{}
	assert.True(t, built.Equal(decoded))

	decoded.Uses = []string{"ro"}
	assert.False(t, built.Equal(decoded))

	ont := obofoundry.NewOntology("go", "Gene Ontology", obofoundry.StatusActive, "ontology_detail")
	bare := obofoundry.Ontology{ID: "go", Title: "Gene Ontology", Layout: "ontology_detail", InFoundry: true}
	assert.True(t, ont.Equal(bare))
	assert.True(t, (&obofoundry.Registry{}).Equal(&obofoundry.Registry{Ontologies: []obofoundry.Ontology{}}))
}

func TestEqual_EveryRecord(t *testing.T) {
	assert.True(t, obofoundry.Build{}.Equal(obofoundry.Build{Publications: []obofoundry.Publication{}}))
	assert.False(t, obofoundry.Build{}.Equal(obofoundry.Build{Infallible: obofoundry.Ptr(false)}))
	assert.True(t, obofoundry.License{Label: "CC BY 4.0", URL: "https://creativecommons.org/licenses/by/4.0/"}.
		Equal(obofoundry.License{Label: "CC BY 4.0", URL: "https://creativecommons.org/licenses/by/4.0/"}))
	assert.False(t, obofoundry.Contact{Label: "Jane"}.Equal(obofoundry.Contact{Label: "Jane", Email: obofoundry.Ptr("jane@example.org")}))
	assert.False(t, obofoundry.Job{ID: "a", Type: obofoundry.JobGithubAction}.Equal(obofoundry.Job{ID: "a"}))
	assert.True(t, obofoundry.Publication{ID: "PMID:1"}.Equal(obofoundry.Publication{ID: "PMID:1"}))
	assert.False(t, obofoundry.Publication{ID: "PMID:1"}.Equal(obofoundry.Publication{ID: "PMID:1", Preferred: true}))
	assert.True(t, obofoundry.Usage{User: "https://reactome.org/"}.Equal(obofoundry.Usage{User: "https://reactome.org/", Examples: []obofoundry.Example{}}))
	assert.False(t, obofoundry.Example{URL: "https://example.org/a"}.Equal(obofoundry.Example{URL: "https://example.org/b"}))
	assert.True(t, obofoundry.Taxon{ID: "NCBITaxon:9606"}.Equal(obofoundry.Taxon{ID: "NCBITaxon:9606"}))
	assert.False(t, obofoundry.Redirect{Path: "/a", URL: "https://example.org/"}.Equal(obofoundry.Redirect{Path: "/b", URL: "https://example.org/"}))
	assert.True(t, obofoundry.Development{IDPolicy: "x"}.Equal(obofoundry.Development{IDPolicy: "x"}))
	assert.False(t, obofoundry.Browser{Label: "a"}.Equal(obofoundry.Browser{Label: "b"}))
	assert.True(t, obofoundry.Funding{ID: "NIH"}.Equal(obofoundry.Funding{ID: "NIH"}))
	assert.False(t, obofoundry.Review{Date: "2010"}.Equal(obofoundry.Review{Date: "2010", Document: &obofoundry.Document{Link: "https://example.org/"}}))
	assert.False(t, obofoundry.Document{Link: "https://example.org/"}.Equal(obofoundry.Document{Link: "https://example.org/", Label: obofoundry.Ptr("x")}))
}

func TestIssues_Error(t *testing.T) {
	iss := obofoundry.Issues{
		{Path: "/ontologies/0/x", Code: obofoundry.CodeUnknownKey, Message: "unknown key", Record: "go"},
		{Path: "/ontologies/1/title", Code: obofoundry.CodeRequired, Message: "required"},
		{Path: "/ontologies/2/id", Code: obofoundry.CodeRequired, Message: "required"},
		{Path: "/ontologies/3/id", Code: obofoundry.CodeRequired, Message: "required"},
	}
	assert.Equal(t,
		`unknown_key at /ontologies/0/x (ontology "go"): unknown key; required at /ontologies/1/title: required; required at /ontologies/2/id: required; ... (total 4)`,
		iss.Error())
	assert.True(t, iss.HasCode(obofoundry.CodeRequired))
	assert.False(t, iss.HasCode(obofoundry.CodeInvalidURL))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "TypeMismatch", obofoundry.Category(obofoundry.CodeInvalidType))
	assert.Equal(t, "InvalidEnumValue", obofoundry.Category(obofoundry.CodeInvalidEnum))
	assert.Equal(t, "MalformedUrl", obofoundry.Category(obofoundry.CodeInvalidURL))
	assert.Equal(t, "ParseError", obofoundry.Category("something_else"))
}
