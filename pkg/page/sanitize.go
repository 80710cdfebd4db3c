package page

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	tipPolicyOnce sync.Once
	tipPolicy     *bluemonday.Policy
)

// SanitizeTip strips tip markup down to inline formatting and links.
func SanitizeTip(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(tipSanitizer().Sanitize(trimmed))
}

// SanitizeTips sanitizes each tip and drops the ones left empty.
func SanitizeTips(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, tip := range raw {
		if cleaned := SanitizeTip(tip); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func tipSanitizer() *bluemonday.Policy {
	tipPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "kbd", "abbr", "br")
		policy.AllowAttrs("title").OnElements("abbr")

		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)

		tipPolicy = policy
	})
	return tipPolicy
}
