package obofoundry

import (
	"encoding/json"
	"strconv"

	eng "github.com/reoring/obofoundry/internal/engine"
)

// normalizeValue rewrites a caller supplied tree into the shapes the mapper
// expects. Numbers become engine numbers; typed slices and maps produced by
// other decoders are widened to []any and map[string]any.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalizeValue(e)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = e
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeValue(e)
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out
	case int:
		return eng.Number(strconv.FormatInt(int64(x), 10))
	case int8:
		return eng.Number(strconv.FormatInt(int64(x), 10))
	case int16:
		return eng.Number(strconv.FormatInt(int64(x), 10))
	case int32:
		return eng.Number(strconv.FormatInt(int64(x), 10))
	case int64:
		return eng.Number(strconv.FormatInt(x, 10))
	case uint:
		return eng.Number(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return eng.Number(strconv.FormatUint(uint64(x), 10))
	case uint16:
		return eng.Number(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return eng.Number(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return eng.Number(strconv.FormatUint(x, 10))
	case float32:
		return floatNumber(float64(x))
	case float64:
		return floatNumber(x)
	case json.Number:
		return eng.Number(x.String())
	default:
		return v
	}
}

// floatNumber keeps integral floats in integer spelling so that values from
// decoders without a number mode still satisfy integer fields.
func floatNumber(f float64) eng.Number {
	if f == float64(int64(f)) && f >= -1<<53 && f <= 1<<53 {
		return eng.Number(strconv.FormatInt(int64(f), 10))
	}
	return eng.Number(strconv.FormatFloat(f, 'g', -1, 64))
}
