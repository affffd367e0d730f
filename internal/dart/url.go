package dart

import (
	"regexp"
	"strconv"
	"strings"

	"go.followtheprocess.codes/quiver/internal/casing"
	"go.followtheprocess.codes/quiver/internal/postman"
)

// URL classification patterns.
var (
	// baseURLPattern splits a URL into scheme+host(+port) and endpoint.
	baseURLPattern = regexp.MustCompile(`^(https?://[a-zA-Z0-9.-]+(:[0-9]+)?)(/.*)?$`)

	// hexSegmentPattern matches long lowercase hex identifiers like Mongo
	// ObjectIDs appearing as path segments.
	hexSegmentPattern = regexp.MustCompile(`^[a-f0-9]{24,}$`)

	// numericSegmentPattern matches purely numeric path segments.
	numericSegmentPattern = regexp.MustCompile(`^\d+$`)
)

// ReplaceURLVariables substitutes every {{X}} placeholder in url with the
// Dart interpolation of X followed by a path separator, for use in URL
// contexts e.g. "{{host}}users" becomes "$host/users".
func ReplaceURLVariables(url string) string {
	return postman.ReplaceVariables(url, func(name string) string {
		return "$" + name + "/"
	})
}

// ReplaceHeaderVariables substitutes every {{X}} placeholder in value with
// the Dart interpolation of the lowerCamelCase form of X, for use in header
// value contexts e.g. "{{api_key}}" becomes "$apiKey".
func ReplaceHeaderVariables(value string) string {
	return postman.ReplaceVariables(value, func(name string) string {
		return "$" + casing.LowerCamel(name)
	})
}

// splitBaseURL splits url into its base (scheme, host and optional port) and
// the endpoint after it. If url does not carry a recognisable base, ok is
// false and the whole url is returned as the endpoint.
func splitBaseURL(url string) (base, endpoint string, ok bool) {
	match := baseURLPattern.FindStringSubmatch(url)
	if match == nil {
		return "", url, false
	}

	return match[1], match[3], true
}

// inferPathParams scans the URL path segments for dynamic looking values, a
// long lowercase hex identifier or a purely numeric segment.
//
// Each dynamic segment is named "id" when it is the final segment and
// "param<index>" otherwise, and its first occurrence in url (bounded by path
// separators, so lookalike text elsewhere is untouched) is replaced with the
// Dart interpolation of that name. The lowerCamelCase parameter names are
// returned in segment order.
func inferPathParams(url string, segments []string) (string, []string) {
	var params []string

	for i, segment := range segments {
		if !hexSegmentPattern.MatchString(segment) && !numericSegmentPattern.MatchString(segment) {
			continue
		}

		name := "param" + strconv.Itoa(i)
		if i == len(segments)-1 {
			name = "id"
		}

		url = replaceSegment(url, segment, "$"+name)
		params = append(params, casing.LowerCamel(name))
	}

	return url, params
}

// replaceSegment replaces the first occurrence of the path segment in url
// with replacement, matching only between path separators or at the end of
// the url.
func replaceSegment(url, segment, replacement string) string {
	if target := "/" + segment + "/"; strings.Contains(url, target) {
		return strings.Replace(url, target, "/"+replacement+"/", 1)
	}

	if target := "/" + segment; strings.HasSuffix(url, target) {
		return strings.TrimSuffix(url, target) + "/" + replacement
	}

	return url
}
