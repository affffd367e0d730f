// Package casing converts free text names like those given to Postman requests
// into the identifier styles needed in generated Dart code.
//
// All functions are pure and allocate only their result.
package casing

import (
	"regexp"
	"strings"
	"unicode"
)

// nonAlphaNumeric matches a maximal run of anything that can't appear in an identifier.
var nonAlphaNumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Snake converts name to snake_case.
//
// Every maximal run of non-alphanumeric characters becomes a single separator
// so e.g. "Get  User -- By ID" becomes "get_user_by_id". An empty string is
// returned unchanged.
func Snake(name string) string {
	spaced := nonAlphaNumeric.ReplaceAllString(name, " ")
	return strings.Join(strings.Fields(strings.ToLower(spaced)), "_")
}

// UpperCamel converts name to UpperCamelCase.
//
// The name is split on whitespace, each word is title cased, and the result
// concatenated with any underscores stripped, so "get user_query_params"
// becomes "GetUserQueryParams".
func UpperCamel(name string) string {
	builder := &strings.Builder{}

	for _, word := range strings.Fields(name) {
		builder.WriteString(title(word))
	}

	return strings.ReplaceAll(builder.String(), "_", "")
}

// LowerCamel converts name to lowerCamelCase.
//
// It behaves exactly as [UpperCamel] except the first character of the result
// is lowercased. An empty string is returned unchanged.
func LowerCamel(name string) string {
	if name == "" {
		return name
	}

	builder := &strings.Builder{}

	for _, word := range strings.Fields(name) {
		builder.WriteString(title(word))
	}

	cased := builder.String()
	if cased == "" {
		return ""
	}

	runes := []rune(cased)
	runes[0] = unicode.ToLower(runes[0])

	return strings.ReplaceAll(string(runes), "_", "")
}

// title returns word in title case; the first letter of every alphabetic run
// is uppercased and the rest lowercased, so "user_query_params" becomes
// "User_Query_Params". Underscore handling matters because [UpperCamel] and
// [LowerCamel] strip them after casing.
func title(word string) string {
	runes := []rune(word)
	inWord := false

	for i, r := range runes {
		if unicode.IsLetter(r) {
			if inWord {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}

			inWord = true
		} else {
			inWord = false
		}
	}

	return string(runes)
}
