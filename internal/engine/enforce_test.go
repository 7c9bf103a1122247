package engine_test

import (
	"errors"
	"io"
	"testing"

	eng "github.com/reoring/obofoundry/internal/engine"
)

func obj(keysAndValues ...eng.Token) []eng.Token {
	toks := []eng.Token{{Kind: eng.KindBeginObject}}
	toks = append(toks, keysAndValues...)
	return append(toks, eng.Token{Kind: eng.KindEndObject})
}

func key(s string) eng.Token { return eng.Token{Kind: eng.KindKey, String: s} }
func str(s string) eng.Token { return eng.Token{Kind: eng.KindString, String: s} }
func num(s string) eng.Token { return eng.Token{Kind: eng.KindNumber, Number: s} }

func drain(src eng.TokenSource) error {
	for {
		if _, err := src.NextToken(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func issueOf(t *testing.T, err error) eng.SimpleIssue {
	t.Helper()
	var ie eng.IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	return ie.SimpleIssue
}

func TestEnforce_DuplicateKey_Error(t *testing.T) {
	toks := obj(key("a"), num("1"), key("a"), num("2"))
	err := drain(eng.WrapWithEnforcement(eng.NewSliceSource(toks), eng.EnforceOptions{OnDuplicate: eng.DupError}))
	si := issueOf(t, err)
	if si.Code != "duplicate_key" || si.Path != "/a" {
		t.Fatalf("unexpected issue: %+v", si)
	}
}

func TestEnforce_DuplicateKey_NestedPath(t *testing.T) {
	toks := []eng.Token{{Kind: eng.KindBeginArray}}
	toks = append(toks, obj(key("x"), str("y"))...)
	toks = append(toks, obj(key("a"), num("1"), key("a"), num("2"))...)
	toks = append(toks, eng.Token{Kind: eng.KindEndArray})
	err := drain(eng.WrapWithEnforcement(eng.NewSliceSource(toks), eng.EnforceOptions{OnDuplicate: eng.DupError}))
	if si := issueOf(t, err); si.Path != "/1/a" {
		t.Fatalf("expected path=/1/a, got: %s", si.Path)
	}
}

func TestEnforce_DuplicateKey_WarnAndIgnore(t *testing.T) {
	toks := obj(key("a~b"), num("1"), key("a~b"), num("2"))
	var got []eng.SimpleIssue
	src := eng.WrapWithEnforcement(eng.NewSliceSource(toks), eng.EnforceOptions{
		OnDuplicate: eng.DupWarn,
		IssueSink:   func(si eng.SimpleIssue) { got = append(got, si) },
	})
	v, err := eng.DecodeAnyFromSource(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Path != "/a~0b" {
		t.Fatalf("expected one warning at /a~0b, got %+v", got)
	}
	if m := v.(map[string]any); m["a~b"] != eng.Number("2") {
		t.Fatalf("expected last value to win, got %v", m)
	}

	got = nil
	src = eng.WrapWithEnforcement(eng.NewSliceSource(toks), eng.EnforceOptions{
		OnDuplicate: eng.DupIgnore,
		IssueSink:   func(si eng.SimpleIssue) { got = append(got, si) },
	})
	if err := drain(src); err != nil || len(got) != 0 {
		t.Fatalf("expected silence, got err=%v issues=%+v", err, got)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	// {"a":{"b":{"c":1}}}
	toks := obj(key("a"), eng.Token{Kind: eng.KindBeginObject}, key("b"), eng.Token{Kind: eng.KindBeginObject},
		key("c"), num("1"), eng.Token{Kind: eng.KindEndObject}, eng.Token{Kind: eng.KindEndObject})
	err := drain(eng.WrapWithEnforcement(eng.NewSliceSource(toks), eng.EnforceOptions{MaxDepth: 2}))
	si := issueOf(t, err)
	if si.Code != "parse_error" || si.Path != "/a/b" {
		t.Fatalf("unexpected issue: %+v", si)
	}
	if err := drain(eng.WrapWithEnforcement(eng.NewSliceSource(toks), eng.EnforceOptions{MaxDepth: 3})); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
}

func TestEnforce_MaxBytes(t *testing.T) {
	toks := obj(key("a"), eng.Token{Kind: eng.KindString, String: "x", Offset: 100})
	err := drain(eng.WrapWithEnforcement(eng.NewSliceSource(toks), eng.EnforceOptions{MaxBytes: 10}))
	if si := issueOf(t, err); si.Code != "truncated" || si.Path != "/" {
		t.Fatalf("unexpected issue: %+v", si)
	}
}

func TestDecodeAnyFromSource(t *testing.T) {
	toks := obj(
		key("list"), eng.Token{Kind: eng.KindBeginArray}, eng.Token{Kind: eng.KindEndArray},
		key("n"), num("3"),
		key("b"), eng.Token{Kind: eng.KindBool, Bool: true},
		key("z"), eng.Token{Kind: eng.KindNull},
	)
	v, err := eng.DecodeAnyFromSource(eng.NewSliceSource(toks))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	if l, ok := m["list"].([]any); !ok || l == nil || len(l) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", m["list"])
	}
	if n, _ := m["n"].(eng.Number).Int64(); n != 3 {
		t.Fatalf("expected 3, got %v", m["n"])
	}
	if m["b"] != true || m["z"] != nil {
		t.Fatalf("unexpected scalars: %#v", m)
	}

	_, err = eng.DecodeAnyFromSource(eng.NewSliceSource(toks[:3]))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF on truncated input, got %v", err)
	}
}

func TestNumber(t *testing.T) {
	if _, err := eng.Number("-1").Uint64(); err == nil {
		t.Fatalf("expected error for negative unsigned")
	}
	if u, err := eng.Number("255").Uint64(); err != nil || u != 255 {
		t.Fatalf("unexpected: %v %v", u, err)
	}
	if eng.KindKey.String() != "key" || eng.Kind(99).String() != "kind(99)" {
		t.Fatalf("unexpected kind names")
	}
}
