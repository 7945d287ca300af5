package scu

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
)

// detailExpr picks the human readable message out of the error bodies the
// SCU and the proxies in front of it produce.
const detailExpr = "Message || message || error.message || error || title || detail"

const maxDetailLen = 256

var detailPath = jmespath.MustCompile(detailExpr)

// evalString coerces the selection to string; non-strings are JSON-encoded.
// It returns "" when the expression matches nothing.
func evalString(path *jmespath.JMESPath, payload any) (string, error) {
	v, err := path.Search(payload)
	if err != nil {
		return "", fmt.Errorf("jmespath: %w", err)
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	default:
		b, _ := json.Marshal(t)
		return string(b), nil
	}
}

// errorDetail extracts a short diagnostic from a non-2xx response body.
func errorDetail(body []byte) string {
	var payload any
	if err := json.Unmarshal(body, &payload); err == nil {
		if _, ok := payload.(map[string]any); ok {
			if s, err := evalString(detailPath, payload); err == nil && s != "" {
				return truncate(s)
			}
		}
	}
	return truncate(strings.TrimSpace(string(body)))
}

func truncate(s string) string {
	if len(s) <= maxDetailLen {
		return s
	}
	return s[:maxDetailLen] + "..."
}
