package obofoundry

import (
	"fmt"
	"strings"
)

// enumSpec lists the accepted spellings of every variant of an enum, indexed
// by the variant value. The first spelling of each variant is canonical.
type enumSpec[T ~int] struct {
	name      string
	names     []string
	spellings [][]string
}

func (e enumSpec[T]) parse(s string) (T, bool) {
	for i, sp := range e.spellings {
		for _, cand := range sp {
			if cand == s {
				return T(i), true
			}
		}
	}
	return 0, false
}

func (e enumSpec[T]) canonical(v T) string {
	if int(v) < 0 || int(v) >= len(e.spellings) {
		return ""
	}
	return e.spellings[v][0]
}

func (e enumSpec[T]) goName(v T) string {
	if int(v) < 0 || int(v) >= len(e.names) {
		return fmt.Sprintf("%s(%d)", e.name, int(v))
	}
	return e.names[v]
}

// accepted returns every accepted spelling in declaration order.
func (e enumSpec[T]) accepted() []string {
	var out []string
	for _, sp := range e.spellings {
		out = append(out, sp...)
	}
	return out
}

func (e enumSpec[T]) unmarshal(dst *T, text []byte) error {
	v, ok := e.parse(string(text))
	if !ok {
		return fmt.Errorf("invalid %s %q (expected one of %s)", e.name, text, strings.Join(e.accepted(), ", "))
	}
	*dst = v
	return nil
}

func (e enumSpec[T]) marshal(v T) ([]byte, error) {
	s := e.canonical(v)
	if s == "" {
		return nil, fmt.Errorf("invalid %s value %d", e.name, int(v))
	}
	return []byte(s), nil
}

// ActivityStatus is the maintenance state of an ontology.
type ActivityStatus int

const (
	StatusActive ActivityStatus = iota
	StatusInactive
	StatusOrphaned
)

var activityStatusSpec = enumSpec[ActivityStatus]{
	name:      "activity_status",
	names:     []string{"Active", "Inactive", "Orphaned"},
	spellings: [][]string{{"active"}, {"inactive"}, {"orphaned"}},
}

func (s ActivityStatus) String() string { return activityStatusSpec.goName(s) }

func (s ActivityStatus) MarshalText() ([]byte, error) { return activityStatusSpec.marshal(s) }

func (s *ActivityStatus) UnmarshalText(b []byte) error { return activityStatusSpec.unmarshal(s, b) }

// BuildMethod is how the ontology release is produced.
type BuildMethod int

const (
	MethodArchive BuildMethod = iota
	MethodObo2Owl
	MethodOwl2Obo
	MethodVCS
)

var buildMethodSpec = enumSpec[BuildMethod]{
	name:      "build method",
	names:     []string{"Archive", "Obo2Owl", "Owl2Obo", "Vcs"},
	spellings: [][]string{{"archive"}, {"obo2owl"}, {"owl2obo"}, {"vcs"}},
}

func (m BuildMethod) String() string { return buildMethodSpec.goName(m) }

func (m BuildMethod) MarshalText() ([]byte, error) { return buildMethodSpec.marshal(m) }

func (m *BuildMethod) UnmarshalText(b []byte) error { return buildMethodSpec.unmarshal(m, b) }

// BuildSystem is the version control system a build checks out from.
type BuildSystem int

const (
	SystemGit BuildSystem = iota
	SystemSVN
)

var buildSystemSpec = enumSpec[BuildSystem]{
	name:      "build system",
	names:     []string{"Git", "Svn"},
	spellings: [][]string{{"git"}, {"svn"}},
}

func (s BuildSystem) String() string { return buildSystemSpec.goName(s) }

func (s BuildSystem) MarshalText() ([]byte, error) { return buildSystemSpec.marshal(s) }

func (s *BuildSystem) UnmarshalText(b []byte) error { return buildSystemSpec.unmarshal(s, b) }

// JobType is the CI service running an ontology job.
type JobType int

const (
	JobTravisCI JobType = iota
	JobGithubAction
	JobDryRunBuild
	JobReleaseBuild
)

var jobTypeSpec = enumSpec[JobType]{
	name:      "job type",
	names:     []string{"TravisCi", "GithubAction", "DryRunBuild", "ReleaseBuild"},
	spellings: [][]string{{"travis-ci"}, {"GithubAction"}, {"DryRunBuild"}, {"ReleaseBuild"}},
}

func (j JobType) String() string { return jobTypeSpec.goName(j) }

func (j JobType) MarshalText() ([]byte, error) { return jobTypeSpec.marshal(j) }

func (j *JobType) UnmarshalText(b []byte) error { return jobTypeSpec.unmarshal(j, b) }

// UsageType classifies how a user consumes an ontology.
type UsageType int

const (
	UsageAnnotation UsageType = iota
	UsageOWLImport
	UsageQuery
	UsageDatabase
	UsageApplication
)

var usageTypeSpec = enumSpec[UsageType]{
	name:  "usage type",
	names: []string{"Annotation", "OwlImport", "Query", "Database", "Application"},
	spellings: [][]string{
		{"annotation"},
		{"owl_import", "owl-import"},
		{"query"},
		{"database", "Database"},
		{"application"},
	},
}

func (u UsageType) String() string { return usageTypeSpec.goName(u) }

func (u UsageType) MarshalText() ([]byte, error) { return usageTypeSpec.marshal(u) }

func (u *UsageType) UnmarshalText(b []byte) error { return usageTypeSpec.unmarshal(u, b) }

// EnumSpellings returns every accepted source spelling for the enum type
// of v, canonical spellings first within each variant. It returns nil for
// types that are not registry enums.
func EnumSpellings(v any) []string {
	switch v.(type) {
	case ActivityStatus, *ActivityStatus:
		return activityStatusSpec.accepted()
	case BuildMethod, *BuildMethod:
		return buildMethodSpec.accepted()
	case BuildSystem, *BuildSystem:
		return buildSystemSpec.accepted()
	case JobType, *JobType:
		return jobTypeSpec.accepted()
	case UsageType, *UsageType:
		return usageTypeSpec.accepted()
	}
	return nil
}
