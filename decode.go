package obofoundry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/obofoundry/i18n"
	eng "github.com/reoring/obofoundry/internal/engine"
)

// decoder walks a generic document tree (map[string]any, []any, string,
// engine.Number, bool, nil) and collects issues while materializing records.
type decoder struct {
	ctx    context.Context
	opt    ParseOpt
	record string
	issues Issues
	err    error // context error; aborts decoding
}

func newDecoder(ctx context.Context, opt ParseOpt) *decoder {
	return &decoder{ctx: ctx, opt: opt}
}

// stopped reports whether decoding must not continue.
func (d *decoder) stopped() bool {
	return d.err != nil || (d.opt.FailFast && len(d.issues) > 0)
}

// add records an issue and returns it, or nil when decoding already
// stopped.
func (d *decoder) add(p pathRef, code, hint string, data map[string]string, cause error) *Issue {
	if d.stopped() {
		return nil
	}
	it := Issue{
		Path:    p.Pointer(),
		Code:    code,
		Message: i18n.T(code, data),
		Record:  d.record,
		Hint:    hint,
		Cause:   cause,
	}
	if len(data) > 0 {
		it.Params = make(map[string]any, len(data))
		for k, v := range data {
			it.Params[k] = v
		}
	}
	d.issues = AppendIssues(d.issues, it)
	return &d.issues[len(d.issues)-1]
}

func (d *decoder) typeMismatch(p pathRef, expected string, v any) {
	d.add(p, CodeInvalidType, "expected "+expected, map[string]string{"expected": expected, "value": kindOf(v)}, nil)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case eng.Number:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ---- scalar rules ----

func (d *decoder) str(p pathRef, v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		d.typeMismatch(p, "string", v)
	}
	return s, ok
}

func (d *decoder) url(p pathRef, v any) (URL, bool) {
	s, ok := d.str(p, v)
	if !ok {
		return "", false
	}
	u, err := ParseURL(s)
	if err != nil {
		d.add(p, CodeInvalidURL, "expected an absolute URL", map[string]string{"value": s}, err)
		return "", false
	}
	return u, true
}

func (d *decoder) boolean(p pathRef, v any) (bool, bool) {
	b, ok := v.(bool)
	if !ok {
		d.typeMismatch(p, "bool", v)
	}
	return b, ok
}

func (d *decoder) nonNegativeInt(p pathRef, v any) (int, bool) {
	n, ok := v.(eng.Number)
	if !ok {
		d.typeMismatch(p, "integer", v)
		return 0, false
	}
	i, err := n.Int64()
	if err != nil || i < 0 || int64(int(i)) != i {
		d.add(p, CodeInvalidType, "expected a non-negative integer", map[string]string{"expected": "non-negative integer", "value": n.String()}, err)
		return 0, false
	}
	return int(i), true
}

// bool01 maps the integer flags written upstream as 0/1 (any unsigned
// small integer, nonzero meaning true).
func (d *decoder) bool01(p pathRef, v any) (bool, bool) {
	n, ok := v.(eng.Number)
	if !ok {
		d.typeMismatch(p, "integer 0 or 1", v)
		return false, false
	}
	u, err := n.Uint64()
	if err != nil || u > 255 {
		d.add(p, CodeInvalidType, "expected integer 0 or 1", map[string]string{"expected": "integer 0 or 1", "value": n.String()}, err)
		return false, false
	}
	return u != 0, true
}

func decodeEnum[T ~int](d *decoder, p pathRef, spec enumSpec[T], v any) (T, bool) {
	s, ok := d.str(p, v)
	if !ok {
		return 0, false
	}
	e, ok := spec.parse(s)
	if !ok {
		allowed := spec.accepted()
		it := d.add(p, CodeInvalidEnum, "accepted: "+strings.Join(allowed, ", "),
			map[string]string{"value": s, "expected": strings.Join(allowed, "|")}, nil)
		if it != nil {
			it.Params["allowed"] = allowed
		}
		return 0, false
	}
	return e, true
}

// ---- object view ----

// object is one mapping being decoded. Every lookup records the keys it
// consumed so finish can report the rest as unknown.
type object struct {
	d    *decoder
	path pathRef
	src  map[string]any
	used map[string]struct{}
}

func (d *decoder) object(p pathRef, v any) (*object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		d.typeMismatch(p, "object", v)
		return nil, false
	}
	return &object{d: d, path: p, src: m, used: make(map[string]struct{}, len(m))}, true
}

// lookup returns the value of the first present key in keys, which lists
// the canonical spelling first and legacy aliases after it. All present
// spellings are consumed; when several are present the earliest wins.
// A present null counts as absent.
func (o *object) lookup(keys ...string) (pathRef, any, bool) {
	var (
		found bool
		at    pathRef
		val   any
	)
	for _, k := range keys {
		v, ok := o.src[k]
		if !ok {
			continue
		}
		o.used[k] = struct{}{}
		if found {
			continue
		}
		found, at, val = true, o.path.Field(k), v
	}
	if !found || val == nil {
		return pathRef{}, nil, false
	}
	return at, val, true
}

func (o *object) missing(key string) {
	o.d.add(o.path.Field(key), CodeRequired, "required property missing", map[string]string{"key": key}, nil)
}

// required looks up keys and reports CodeRequired when none is present. A
// present null is a type mismatch rather than a missing field.
func (o *object) required(keys ...string) (pathRef, any, bool) {
	p, v, ok := o.lookup(keys...)
	if ok {
		return p, v, true
	}
	for _, k := range keys {
		if raw, present := o.src[k]; present && raw == nil {
			o.d.typeMismatch(o.path.Field(k), "non-null value", nil)
			return pathRef{}, nil, false
		}
	}
	o.missing(keys[0])
	return pathRef{}, nil, false
}

// finish reports keys no lookup consumed, in sorted order.
func (o *object) finish(strict bool) {
	if !strict {
		return
	}
	var unknown []string
	for k := range o.src {
		if _, ok := o.used[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		o.d.add(o.path.Field(k), CodeUnknownKey, "not a declared field", map[string]string{"key": k}, nil)
	}
}

func (o *object) reqString(keys ...string) string {
	if p, v, ok := o.required(keys...); ok {
		s, _ := o.d.str(p, v)
		return s
	}
	return ""
}

// reqText accepts a string or a number and keeps its literal text. Dates
// such as review years are written either way upstream.
func (o *object) reqText(keys ...string) string {
	p, v, ok := o.required(keys...)
	if !ok {
		return ""
	}
	if n, isNum := v.(eng.Number); isNum {
		return n.String()
	}
	s, _ := o.d.str(p, v)
	return s
}

func (o *object) optString(keys ...string) *string {
	if p, v, ok := o.lookup(keys...); ok {
		if s, ok := o.d.str(p, v); ok {
			return &s
		}
	}
	return nil
}

func (o *object) reqURL(keys ...string) URL {
	if p, v, ok := o.required(keys...); ok {
		u, _ := o.d.url(p, v)
		return u
	}
	return ""
}

func (o *object) optURL(keys ...string) *URL {
	if p, v, ok := o.lookup(keys...); ok {
		if u, ok := o.d.url(p, v); ok {
			return &u
		}
	}
	return nil
}

func (o *object) optBool(keys ...string) *bool {
	if p, v, ok := o.lookup(keys...); ok {
		if b, ok := o.d.boolean(p, v); ok {
			return &b
		}
	}
	return nil
}

// boolDefault returns def when the key is absent.
func (o *object) boolDefault(def bool, keys ...string) bool {
	if p, v, ok := o.lookup(keys...); ok {
		if b, ok := o.d.boolean(p, v); ok {
			return b
		}
	}
	return def
}

// optBool01 decodes an integer-encoded flag; absent stays nil.
func (o *object) optBool01(keys ...string) *bool {
	if p, v, ok := o.lookup(keys...); ok {
		if b, ok := o.d.bool01(p, v); ok {
			return &b
		}
	}
	return nil
}

func (o *object) optInt(keys ...string) *int {
	if p, v, ok := o.lookup(keys...); ok {
		if i, ok := o.d.nonNegativeInt(p, v); ok {
			return &i
		}
	}
	return nil
}

// strings decodes a list of strings; absent or null is empty.
func (o *object) strings(keys ...string) []string {
	return listOf(o, func(p pathRef, v any) (string, bool) { return o.d.str(p, v) }, keys...)
}

// stringOrList decodes a field written either as one string or as a list of
// strings. Both shapes become a list; absent or null is empty.
func (o *object) stringOrList(keys ...string) []string {
	p, v, ok := o.lookup(keys...)
	if !ok {
		return []string{}
	}
	if s, isStr := v.(string); isStr {
		return []string{s}
	}
	if _, isList := v.([]any); !isList {
		o.d.typeMismatch(p, "string or list of strings", v)
		return []string{}
	}
	return decodeList(o.d, p, v, func(p pathRef, v any) (string, bool) { return o.d.str(p, v) })
}

func reqEnum[T ~int](o *object, spec enumSpec[T], keys ...string) T {
	if p, v, ok := o.required(keys...); ok {
		e, _ := decodeEnum(o.d, p, spec, v)
		return e
	}
	return 0
}

func optEnum[T ~int](o *object, spec enumSpec[T], keys ...string) *T {
	if p, v, ok := o.lookup(keys...); ok {
		if e, ok := decodeEnum(o.d, p, spec, v); ok {
			return &e
		}
	}
	return nil
}

// optRecord decodes a nested record; absent or null is nil.
func optRecord[T any](o *object, fn func(pathRef, any) (T, bool), keys ...string) *T {
	if p, v, ok := o.lookup(keys...); ok {
		if r, ok := fn(p, v); ok {
			return &r
		}
	}
	return nil
}

// listOf decodes a list field element by element; absent or null is an
// empty, non-nil slice.
func listOf[T any](o *object, elem func(pathRef, any) (T, bool), keys ...string) []T {
	p, v, ok := o.lookup(keys...)
	if !ok {
		return []T{}
	}
	return decodeList(o.d, p, v, elem)
}

func decodeList[T any](d *decoder, p pathRef, v any, elem func(pathRef, any) (T, bool)) []T {
	arr, ok := v.([]any)
	if !ok {
		d.typeMismatch(p, "list", v)
		return []T{}
	}
	out := make([]T, 0, len(arr))
	for i, raw := range arr {
		if d.stopped() {
			break
		}
		if e, ok := elem(p.Index(i), raw); ok {
			out = append(out, e)
		}
	}
	return out
}
