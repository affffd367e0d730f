package postman

import "regexp"

// placeholderPattern matches a single {{variable}} marker, non-greedy so
// adjacent markers are matched individually.
var placeholderPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Variables returns the inner contents of every {{...}} placeholder in text,
// in order of appearance. Duplicates are preserved.
func Variables(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	variables := make([]string, 0, len(matches))
	for _, match := range matches {
		variables = append(variables, match[1])
	}

	return variables
}

// ContainsVariable reports whether text holds at least one {{...}} placeholder.
func ContainsVariable(text string) bool {
	return placeholderPattern.MatchString(text)
}

// ReplaceVariables substitutes every {{...}} placeholder in text using
// replace, which is given the inner variable name and returns the
// replacement text.
func ReplaceVariables(text string, replace func(name string) string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := placeholderPattern.FindStringSubmatch(match)[1]
		return replace(inner)
	})
}
