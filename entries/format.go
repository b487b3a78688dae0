// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package entries

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProperName capitalizes the first letter of each whitespace-delimited word
// and lower-cases the rest. Whitespace runs collapse to a single space.
//
//	ProperName("mac and  CHEESE") == "Mac And Cheese"
func ProperName(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	// Casers keep state; one per call
	lower := cases.Lower(language.Und)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}
