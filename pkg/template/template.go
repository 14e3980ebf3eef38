// Package template implements placeholder extraction and substitution for
// prompt content. A placeholder is a {name} token where name is the shortest
// run of characters between a { and the next }. The engine is pure: no I/O,
// no storage dependency, deterministic over its inputs.
package template

import "regexp"

// placeholderRE matches one placeholder token non-greedily. Substituted
// values are never re-scanned, so nesting is not a concern.
var placeholderRE = regexp.MustCompile(`\{(.*?)\}`)

// Placeholders returns the inner names of every placeholder in text, in
// source order, including duplicates when a name appears more than once.
func Placeholders(text string) []string {
	matches := placeholderRE.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Names returns the distinct placeholder names in text, in order of first
// appearance. This is the list a caller builds its value map from.
func Names(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range Placeholders(text) {
		if seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names
}

// Resolve replaces every placeholder in text with its value from values.
// Names absent from values resolve to the empty string, not to the literal
// token. The replacement is a single left-to-right pass, so a substituted
// value is never itself scanned for placeholders.
func Resolve(text string, values map[string]string) string {
	return placeholderRE.ReplaceAllStringFunc(text, func(token string) string {
		name := token[1 : len(token)-1]
		return values[name]
	})
}
