package obofoundry

import (
	"io"
	"log/slog"
)

// Severity expresses how a structural finding of the source layer is
// treated. The zero value is Error.
type Severity int

const (
	Error  Severity = iota // Fail decoding.
	Warn                   // Log through ParseOpt.Logger and continue.
	Ignore                 // Continue silently.
)

// Strictness configures enforcement applied to the token stream before the
// mapper sees it.
type Strictness struct {
	OnDuplicateKey Severity // Duplicate mapping keys (JSON objects or YAML mappings).
}

// Format names a wire format.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // Maximum nesting depth; 0 disables the check.
	MaxBytes   int64 // Maximum input size for byte and reader inputs; 0 disables the check.
	// FailFast stops at the first issue instead of collecting every issue of
	// the document.
	FailFast bool
	// Logger receives debug summaries and duplicate key warnings. Nil
	// discards them.
	Logger *slog.Logger
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

func (o ParseOpt) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
