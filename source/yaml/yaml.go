// Package yaml turns a YAML document into engine tokens by walking the
// yaml.v3 node tree, so the registry mapper sees YAML and JSON input the
// same way.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/obofoundry/internal/engine"
)

// ErrMultipleDocuments is returned when the stream holds more than one
// YAML document.
var ErrMultipleDocuments = errors.New("yaml: expected a single document")

// NewReader decodes the single YAML document in r and returns its tokens.
// Decoding errors surface on the first NextToken call.
func NewReader(r io.Reader) eng.TokenSource {
	dec := yaml.NewDecoder(r)
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return eng.NewSliceSource([]eng.Token{{Kind: eng.KindNull, Offset: -1}})
		}
		return &errSource{err: err}
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		return &errSource{err: ErrMultipleDocuments}
	} else if !errors.Is(err, io.EOF) {
		return &errSource{err: err}
	}
	return NewNode(&root)
}

// NewBytes decodes the single YAML document in b and returns its tokens.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

// NewNode returns the tokens of an already decoded node. It is the entry
// point for yaml.Unmarshaler implementations.
func NewNode(n *yaml.Node) eng.TokenSource {
	var w walker
	if err := w.walk(n); err != nil {
		return &errSource{err: err}
	}
	if len(w.toks) == 0 {
		w.toks = append(w.toks, eng.Token{Kind: eng.KindNull, Offset: -1})
	}
	return eng.NewSliceSource(w.toks)
}

type walker struct {
	toks  []eng.Token
	depth int
}

// maxAliasDepth bounds alias expansion so self-referencing anchors cannot
// recurse forever.
const maxAliasDepth = 10000

func (w *walker) emit(t eng.Token) { w.toks = append(w.toks, t) }

func (w *walker) walk(n *yaml.Node) error {
	if n == nil {
		w.emit(eng.Token{Kind: eng.KindNull, Offset: -1})
		return nil
	}
	w.depth++
	defer func() { w.depth-- }()
	if w.depth > maxAliasDepth {
		return fmt.Errorf("yaml: document nested too deeply at line %d", n.Line)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return w.walk(n.Content[0])
	case yaml.AliasNode:
		return w.walk(n.Alias)
	case yaml.MappingNode:
		w.emit(eng.Token{Kind: eng.KindBeginObject, Offset: -1})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: non-scalar mapping key at line %d", k.Line)
			}
			w.emit(eng.Token{Kind: eng.KindKey, String: k.Value, Offset: -1})
			if err := w.walk(n.Content[i+1]); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndObject, Offset: -1})
	case yaml.SequenceNode:
		w.emit(eng.Token{Kind: eng.KindBeginArray, Offset: -1})
		for _, c := range n.Content {
			if err := w.walk(c); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndArray, Offset: -1})
	case yaml.ScalarNode:
		return w.scalar(n)
	default:
		w.emit(eng.Token{Kind: eng.KindNull, Offset: -1})
	}
	return nil
}

func (w *walker) scalar(n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		w.emit(eng.Token{Kind: eng.KindNull, Offset: -1})
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		w.emit(eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1})
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// out of int64 range: keep the literal and let the mapper reject it
			w.emit(eng.Token{Kind: eng.KindNumber, Number: n.Value, Offset: -1})
			return nil
		}
		w.emit(eng.Token{Kind: eng.KindNumber, Number: fmt.Sprint(i), Offset: -1})
	case "!!float":
		w.emit(eng.Token{Kind: eng.KindNumber, Number: n.Value, Offset: -1})
	default:
		w.emit(eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1})
	}
	return nil
}

type errSource struct{ err error }

func (s *errSource) NextToken() (eng.Token, error) { return eng.Token{}, s.err }
func (s *errSource) Location() int64               { return -1 }
