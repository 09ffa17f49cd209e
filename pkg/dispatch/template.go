package dispatch

import (
	"regexp"
	"strings"
)

var templateTokenRe = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)

// RenderTemplate substitutes {{token}} markers from vars. Unknown tokens are
// left in place as markers so downstream validation can flag the draft
// instead of silently sending a blank.
func RenderTemplate(content string, vars map[string]string) string {
	return templateTokenRe.ReplaceAllStringFunc(content, func(m string) string {
		sub := templateTokenRe.FindStringSubmatch(m)
		if v, ok := vars[sub[1]]; ok {
			return strings.TrimSpace(v)
		}
		return m
	})
}

// UnrenderedTokens returns the token names still present in content after
// rendering, in order of first appearance.
func UnrenderedTokens(content string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, m := range templateTokenRe.FindAllStringSubmatch(content, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}
