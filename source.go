package obofoundry

import (
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/obofoundry/internal/engine"
	jsonsrc "github.com/reoring/obofoundry/source/json"
	yamlsrc "github.com/reoring/obofoundry/source/yaml"
)

// TokenKind enumerates document token kinds.
type TokenKind = eng.Kind

const (
	TokenBeginObject TokenKind = eng.KindBeginObject
	TokenEndObject   TokenKind = eng.KindEndObject
	TokenBeginArray  TokenKind = eng.KindBeginArray
	TokenEndArray    TokenKind = eng.KindEndArray
	TokenKey         TokenKind = eng.KindKey
	TokenString      TokenKind = eng.KindString
	TokenNumber      TokenKind = eng.KindNumber
	TokenBool        TokenKind = eng.KindBool
	TokenNull        TokenKind = eng.KindNull
)

// Token describes a token in the input stream. Offset records the byte
// position when known (-1 otherwise).
type Token = eng.Token

// Source is a decoder-agnostic walk over a structured document. Any
// decoder able to emit these tokens can feed the registry mapper.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonsrc.NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonsrc.NewBytes(b) }

// YAMLReader wraps an io.Reader holding a single YAML document as a Source.
func YAMLReader(r io.Reader) Source { return yamlsrc.NewReader(r) }

// YAMLBytes wraps a byte slice holding a single YAML document as a Source.
func YAMLBytes(b []byte) Source { return yamlsrc.NewBytes(b) }

// YAMLNode wraps an already decoded yaml.v3 node as a Source.
func YAMLNode(n *yaml.Node) Source { return yamlsrc.NewNode(n) }

// EnforceSource wraps a Source with duplicate key, depth and byte-offset
// enforcement. Parse applies it to every source it reads.
func EnforceSource(s Source, opt ParseOpt) Source {
	logger := opt.logger()
	return eng.WrapWithEnforcement(s, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink: func(si eng.SimpleIssue) {
			if si.Code == CodeDuplicateKey && opt.Strictness.OnDuplicateKey == Warn {
				logger.Warn("duplicate key in registry document", "path", si.Path)
			}
		},
	})
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Ignore:
		return eng.DupIgnore
	default:
		return eng.DupError
	}
}

// DetectFormat picks the wire format from a file name or URL: .json and
// .jsonld are JSON, everything else YAML.
func DetectFormat(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".jsonld":
		return FormatJSON
	default:
		return FormatYAML
	}
}
