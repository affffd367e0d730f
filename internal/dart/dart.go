// Package dart implements the request to code generation logic, turning a
// single Postman request into Dart source in the Dio client style.
//
// Each request produces one function (wrapped in a class named after the
// request) that performs the HTTP call, plus companion data classes for the
// query parameters and request body when present.
package dart

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"go.followtheprocess.codes/quiver/internal/casing"
	"go.followtheprocess.codes/quiver/internal/postman"
)

//go:embed templates/function.dart.tmpl
var functionTempl string

//go:embed templates/class.dart.tmpl
var classTempl string

// The parsed Dart templates, parsing once at startup.
var (
	//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
	functionTemplate = template.Must(template.New("function").Parse(functionTempl))

	//nolint:gochecknoglobals // Same as above
	classTemplate = template.Must(template.New("class").Parse(classTempl))
)

// Unit is the generated output for a single request, a function source file
// plus optional companion class files.
type Unit struct {
	// BodyDiagnostic is non-nil when the request carried a body that could
	// not be parsed as a JSON object. Generation proceeded without a body
	// class, the caller decides how to report it.
	BodyDiagnostic error

	// Folder is the name of the per-request output folder, the snake_case
	// form of the request name.
	Folder string

	// File is the name of the function source file within Folder.
	File string

	// Source is the function source text.
	Source string

	// QueryParams is the query parameter class source text, empty if the
	// request has no query parameters.
	QueryParams string

	// Body is the body class source text, empty if the request has no
	// usable JSON body.
	Body string
}

// function is the data fed to the function template.
type function struct {
	ClassName  string      // Dart wrapper class name e.g. "GetUser"
	FuncName   string      // Dart function name e.g. "getUser"
	Method     string      // Lowercase Dio method name e.g. "get"
	URL        string      // Fully substituted Dart URL text
	QueryArg   string      // Name of the query params argument, empty if none
	BodyArg    string      // Name of the body argument, empty if none
	Imports    []string    // Local companion class imports
	Parameters []parameter // Required named parameters in signature order
	Headers    []header    // Header map entries, empty means no header block
	Bearer     bool        // Inject the Authorization header from accessToken
}

// parameter is a single required named parameter in the function signature.
type parameter struct {
	Type string
	Name string
}

// header is a single rendered entry in the Dio header map.
type header struct {
	Key   string
	Value string
}

// Generate generates the Dart source for a single named request.
//
// A request with no method or URL is malformed and returns an error. A body
// that fails to parse as a JSON object is not fatal, the returned Unit simply
// has no body class and carries the parse failure as its BodyDiagnostic.
func Generate(name string, request *postman.Request) (Unit, error) {
	if request.Method == "" {
		return Unit{}, fmt.Errorf("request %q has no method", name)
	}

	if request.URL.Raw == "" {
		return Unit{}, fmt.Errorf("request %q has no url", name)
	}

	folder := casing.Snake(name)

	fn := function{
		ClassName: casing.UpperCamel(name),
		FuncName:  casing.LowerCamel(name),
		Method:    strings.ToLower(request.Method),
	}

	// The query string plays no part in the generated URL, query parameters
	// are wired through the companion class instead.
	withoutQuery, _, _ := strings.Cut(request.URL.Raw, "?")

	_, endpoint, hasBase := splitBaseURL(withoutQuery)

	url := withoutQuery
	if hasBase {
		url = "$baseUrl" + endpoint
	}

	url, pathParams := inferPathParams(url, request.URL.Path)

	// Everything dynamic about the request becomes a required String
	// parameter: {{placeholders}} in the URL, {{placeholders}} in header
	// values and the inferred path parameters. Sorted so the generated
	// signature is deterministic.
	variables := postman.Variables(url)
	for _, h := range request.Header {
		if postman.ContainsVariable(h.Value) {
			variables = append(variables, postman.Variables(h.Value)...)
		}
	}

	variables = append(variables, pathParams...)
	slices.Sort(variables)
	variables = slices.Compact(variables)

	for _, variable := range variables {
		fn.Parameters = append(fn.Parameters, parameter{Type: "String", Name: casing.LowerCamel(variable)})
	}

	if hasBase {
		fn.Parameters = append(fn.Parameters, parameter{Type: "String", Name: "baseUrl"})
	}

	unit := Unit{
		Folder: folder,
		File:   folder + ".dart",
	}

	queryClass, err := queryParamsClass(casing.UpperCamel(name+"_query_params"), request.URL.Query)
	if err != nil {
		return Unit{}, err
	}

	if queryClass != "" {
		unit.QueryParams = queryClass
		fn.QueryArg = casing.LowerCamel(casing.Snake(name)) + "QueryParams"
		fn.Imports = append(fn.Imports, folder+"_query_params.dart")
		fn.Parameters = append(fn.Parameters, parameter{
			Type: casing.UpperCamel(name + "_query_params"),
			Name: fn.QueryArg,
		})
	}

	if request.Body != nil && request.Body.Raw != "" {
		body, err := bodyClass(casing.UpperCamel(name+"_body"), request.Body.Raw)
		if err != nil {
			unit.BodyDiagnostic = err
		}

		if body != "" {
			unit.Body = body
			fn.BodyArg = casing.LowerCamel(casing.Snake(name)) + "Body"
			fn.Imports = append(fn.Imports, folder+"_body.dart")
			fn.Parameters = append(fn.Parameters, parameter{
				Type: casing.UpperCamel(name + "_body"),
				Name: fn.BodyArg,
			})
		}
	}

	if bearer(request) {
		fn.Bearer = true
		fn.Parameters = append(fn.Parameters, parameter{Type: "String", Name: "accessToken"})
	}

	fn.URL = ReplaceURLVariables(url)

	for _, h := range request.Header {
		value := h.Value
		if postman.ContainsVariable(value) {
			value = ReplaceHeaderVariables(value)
		}

		fn.Headers = append(fn.Headers, header{Key: h.Key, Value: value})
	}

	source := &strings.Builder{}
	if err := functionTemplate.Execute(source, fn); err != nil {
		return Unit{}, fmt.Errorf("could not render function for request %q: %w", name, err)
	}

	unit.Source = source.String()

	return unit, nil
}

// renderClass renders a single companion class to Dart source.
func renderClass(c class) (string, error) {
	source := &strings.Builder{}
	if err := classTemplate.Execute(source, c); err != nil {
		return "", fmt.Errorf("could not render class %s: %w", c.Name, err)
	}

	return source.String(), nil
}

// bearer reports whether the request uses bearer token authentication.
func bearer(request *postman.Request) bool {
	return request.Auth != nil && request.Auth.Type == "bearer"
}
