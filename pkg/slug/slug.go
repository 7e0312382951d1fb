// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package slug derives ASCII URL slugs from category names.
//
// Names without any Latin letters or digits (e.g. "여행") produce an empty slug;
// callers use [FromOr] to supply a fallback.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Decompose to NFD and drop combining marks (é → e).
// 2. Lowercase.
// 3. Replace every run of other characters with a single hyphen.
// 4. Trim leading and trailing hyphens.
func From(s string) string {
	chain := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(chain, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// FromOr is [From] with a fallback for names that yield an empty slug.
func FromOr(s, fallback string) string {
	if result := From(s); result != "" {
		return result
	}
	return fallback
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
