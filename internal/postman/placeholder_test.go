package postman_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/quiver/internal/postman"
	"go.followtheprocess.codes/test"
)

func TestVariables(t *testing.T) {
	tests := []struct {
		name string   // Name of the test case
		text string   // Text to scan
		want []string // Expected variables in order
	}{
		{name: "none", text: "none", want: nil},
		{name: "empty", text: "", want: nil},
		{name: "two", text: "{{a}}/{{b}}", want: []string{"a", "b"}},
		{name: "duplicates preserved", text: "{{x}} and {{x}}", want: []string{"x", "x"}},
		{name: "adjacent are not greedy", text: "{{a}}{{b}}", want: []string{"a", "b"}},
		{name: "in context", text: "{{base_url}}/users/{{user_id}}/orders", want: []string{"base_url", "user_id"}},
		{name: "unclosed", text: "{{oops", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postman.Variables(tt.text)
			test.True(t, slices.Equal(got, tt.want), test.Context("Variables(%q) = %v, wanted %v", tt.text, got, tt.want))
		})
	}
}

func TestContainsVariable(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		text string // Text to scan
		want bool   // Expected result
	}{
		{name: "yes", text: "Bearer {{token}}", want: true},
		{name: "no", text: "application/json", want: false},
		{name: "unclosed", text: "{{token", want: false},
		{name: "empty variable", text: "{{}}", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, postman.ContainsVariable(tt.text), tt.want)
		})
	}
}

func TestReplaceVariables(t *testing.T) {
	got := postman.ReplaceVariables("{{host}}/users/{{id}}", func(name string) string {
		return "<" + name + ">"
	})

	test.Equal(t, got, "<host>/users/<id>")
}
