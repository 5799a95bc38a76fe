package schema

import (
	"fmt"
	"strings"

	i18n "github.com/kaptinlin/go-i18n"
)

// EvaluationError reports that an instance failed to satisfy one
// keyword during apply (spec.md §7 "Invalid instance"). It mirrors the
// teacher's EvaluationError shape (keyword/code/message/params) so
// templated messages and localization work the same way.
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

func newEvalError(keyword, code, message string, params ...map[string]any) *EvaluationError {
	e := &EvaluationError{Keyword: keyword, Code: code, Message: message}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *EvaluationError) Error() string {
	return replaceParams(e.Message, e.Params)
}

// Localize renders e.Code through localizer if one is supplied,
// falling back to the untranslated templated message otherwise.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	return localizer.Get(e.Code, i18n.Vars(e.Params))
}

func replaceParams(msg string, params map[string]any) string {
	if len(params) == 0 {
		return msg
	}
	var b strings.Builder
	b.Grow(len(msg))
	for i := 0; i < len(msg); i++ {
		if msg[i] == '{' {
			if end := strings.IndexByte(msg[i:], '}'); end >= 0 {
				key := msg[i+1 : i+end]
				if val, ok := params[key]; ok {
					b.WriteString(toDisplayString(val))
					i += end
					continue
				}
			}
		}
		b.WriteByte(msg[i])
	}
	return b.String()
}

func toDisplayString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
