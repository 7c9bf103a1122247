package obofoundry

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeInvalidType  = "invalid_type"
	CodeInvalidEnum  = "invalid_enum"
	CodeInvalidURL   = "invalid_url"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
)

// Category returns the error category a code belongs to, e.g.
// "MissingRequiredField" for CodeRequired. Unknown codes map to "ParseError".
func Category(code string) string {
	switch code {
	case CodeRequired:
		return "MissingRequiredField"
	case CodeUnknownKey:
		return "UnrecognizedField"
	case CodeInvalidType:
		return "TypeMismatch"
	case CodeInvalidEnum:
		return "InvalidEnumValue"
	case CodeInvalidURL:
		return "MalformedUrl"
	case CodeDuplicateKey:
		return "DuplicateKey"
	case CodeTruncated:
		return "Truncated"
	default:
		return "ParseError"
	}
}

// Issue represents a single decoding failure.
type Issue struct {
	Path    string // JSON Pointer from the document root (for example: /ontologies/3/products/0/id).
	Code    string // One of the codes listed above.
	Message string
	// Record is the id of the ontology being decoded when the issue was
	// found, empty when unknown.
	Record string
	Hint   string // Optional: expected shape or accepted values.
	Cause  error  // Optional: underlying error.
	// Params carries structured parameters (e.g. {"value": "Active", "allowed": [...]}).
	Params map[string]any
}

func (it Issue) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	if it.Record != "" {
		fmt.Fprintf(b, " (ontology %q)", it.Record)
	}
	if it.Message != "" {
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	return b.String()
}

// Issues is a collection of decoding failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the issue causes to errors.Is/As.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, msg string, cause error) Issues {
	return Issues{{Path: "/", Code: code, Message: msg, Cause: cause}}
}
