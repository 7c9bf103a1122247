package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "key" or "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"invalid_type":  "invalid type",
		"required":      "required property missing",
		"unknown_key":   "unknown key",
		"invalid_enum":  "invalid enum value",
		"invalid_url":   "malformed URL",
		"duplicate_key": "duplicate key",
		"parse_error":   "parse error",
		"truncated":     "truncated",
	},
	"ja": {
		"invalid_type":  "型が不正です",
		"required":      "必須プロパティが不足しています",
		"unknown_key":   "未知のキーです",
		"invalid_enum":  "列挙値が不正です",
		"invalid_url":   "URLの形式が不正です",
		"duplicate_key": "キーが重複しています",
		"parse_error":   "解析エラー",
		"truncated":     "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	// detail order is fixed so messages stay stable across runs
	var details []string
	for _, k := range []string{"key", "value", "expected"} {
		if v, ok := data[k]; ok && v != "" {
			details = append(details, k+"="+v)
		}
	}
	if len(details) == 0 {
		return msg
	}
	return msg + " (" + strings.Join(details, ", ") + ")"
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
