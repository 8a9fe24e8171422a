// Package casing converts dash-case identifiers into the other shapes a generated
// project needs, such as PascalCase component names and title-cased headings.
package casing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	dashCaseRegex   = regexp.MustCompile(`(?i)^[a-z](-?[a-z0-9])+$`)
	pascalCaseRegex = regexp.MustCompile(`^[A-Z][a-z]+([A-Z][a-z]+)+$`)
	dashSeqRegex    = regexp.MustCompile(`-.`)
)

func IsDashCase(s string) bool {
	return dashCaseRegex.MatchString(s)
}

// IsPascalCase requires at least two capitalized words, so "Button" is rejected.
func IsPascalCase(s string) bool {
	return pascalCaseRegex.MatchString(s)
}

// DashToCamel replaces every "-x" with sep followed by the upper-cased x.
func DashToCamel(s, sep string) string {
	return dashSeqRegex.ReplaceAllStringFunc(s, func(match string) string {
		return sep + strings.ToUpper(match[1:])
	})
}

// DashToPascal returns "" for an empty input.
func DashToPascal(s, sep string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}

	return string(unicode.ToUpper(r)) + DashToCamel(s[size:], sep)
}

func DashToWords(s string) string {
	return DashToPascal(s, " ")
}
