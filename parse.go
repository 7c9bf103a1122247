package obofoundry

import (
	"context"
	"errors"
	"io"

	eng "github.com/reoring/obofoundry/internal/engine"
)

// Parse is the primary entry point. It consumes tokens from src, builds the
// generic document tree and maps it onto a Registry.
//
// The result is all-or-nothing: on any schema mismatch the returned error
// is Issues describing every mismatch found (or the first one with
// FailFast) and the Registry is nil. A cancelled ctx returns ctx.Err().
func Parse(ctx context.Context, src Source, opts ...ParseOpt) (*Registry, error) {
	opt := lastOpt(opts)
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source", nil)
	}
	v, err := eng.DecodeAnyFromSource(EnforceSource(src, opt))
	if err != nil {
		return nil, toIssues(err)
	}
	return ParseValue(ctx, v, opt)
}

// ParseValue maps an already decoded generic tree onto a Registry. Objects
// must be map[string]any, arrays []any; numbers may be any Go integer or
// float type or a json.Number.
func ParseValue(ctx context.Context, v any, opts ...ParseOpt) (*Registry, error) {
	opt := lastOpt(opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d := newDecoder(ctx, opt)
	r := d.registry(normalizeValue(v))
	if d.err != nil {
		return nil, d.err
	}
	if len(d.issues) > 0 {
		opt.logger().Debug("registry document rejected", "issues", len(d.issues), "first", d.issues[0].String())
		return nil, d.issues
	}
	opt.logger().Debug("registry document decoded", "ontologies", len(r.Ontologies))
	return r, nil
}

// ParseJSON decodes a JSON registry document.
func ParseJSON(ctx context.Context, data []byte, opts ...ParseOpt) (*Registry, error) {
	return ParseBytes(ctx, data, FormatJSON, opts...)
}

// ParseYAML decodes a YAML registry document.
func ParseYAML(ctx context.Context, data []byte, opts ...ParseOpt) (*Registry, error) {
	return ParseBytes(ctx, data, FormatYAML, opts...)
}

// ParseBytes decodes a registry document in the given format.
func ParseBytes(ctx context.Context, data []byte, format Format, opts ...ParseOpt) (*Registry, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded", nil)
	}
	if format == FormatJSON {
		return Parse(ctx, JSONBytes(data), opt)
	}
	return Parse(ctx, YAMLBytes(data), opt)
}

// ParseReader reads r to the end and decodes it. When MaxBytes is set the
// size cap is enforced while reading.
func ParseReader(ctx context.Context, r io.Reader, format Format, opts ...ParseOpt) (*Registry, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, singleIssue(CodeParseError, err.Error(), err)
	}
	return ParseBytes(ctx, data, format, opt)
}

func toIssues(err error) error {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: ie.Message}}
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return singleIssue(CodeParseError, err.Error(), err)
}
