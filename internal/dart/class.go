package dart

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.followtheprocess.codes/quiver/internal/postman"
)

// Serializer method names for the generated companion classes.
const (
	// queryParamsSerializer is the name of the serialization method on a
	// query parameter class, Dio expects a map for queryParameters.
	queryParamsSerializer = "toMap"

	// bodySerializer is the name of the serialization method on a body class.
	bodySerializer = "toJson"
)

// class is the data fed to the class template, one generated Dart data class.
type class struct {
	// Name is the Dart class name e.g. "GetUserQueryParams".
	Name string

	// Serializer is the name of the map serialization method.
	Serializer string

	// Fields are the class fields in declaration order.
	Fields []field
}

// field is a single field in a generated data class.
type field struct {
	// Type is the full declared type e.g. "final int?", or "dynamic" for
	// values no primitive type could be inferred for.
	Type string

	// Name is the field name, taken verbatim from the source key.
	Name string
}

// queryParamsClass generates a Dart class for the given query parameters,
// returning empty text if there are none.
//
// Repeated keys keep their first position but take their last value.
func queryParamsClass(name string, params []postman.QueryParam) (string, error) {
	values := make(map[string]string)
	var order []string

	for _, param := range params {
		if _, ok := values[param.Key]; !ok {
			order = append(order, param.Key)
		}

		values[param.Key] = param.Value
	}

	var fields []field
	for _, key := range order {
		if key == "" {
			continue
		}

		fields = append(fields, field{Name: key, Type: inferType(values[key])})
	}

	if len(fields) == 0 {
		return "", nil
	}

	return renderClass(class{Name: name, Serializer: queryParamsSerializer, Fields: fields})
}

// bodyClass generates a Dart class for the given raw JSON request body,
// returning empty text if raw is empty.
//
// A body that is not a JSON object cannot produce a class, the returned error
// signals that the caller should continue without one.
func bodyClass(name, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	fields, err := bodyFields(raw)
	if err != nil {
		return "", fmt.Errorf("invalid JSON body: %w", err)
	}

	if len(fields) == 0 {
		return "", nil
	}

	return renderClass(class{Name: name, Serializer: bodySerializer, Fields: fields})
}

// bodyFields scans the top level keys of a JSON object in document order,
// inferring a Dart type for each value.
//
// [json.Unmarshal] into a map would lose the key order so the object is
// walked token by token instead.
func bodyFields(raw string) ([]field, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	open, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("body is %v, not a JSON object", open)
	}

	var fields []field

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v, expected an object key", token)
		}

		var value any
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}

		if key == "" {
			continue
		}

		fields = append(fields, field{Name: key, Type: inferType(value)})
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return fields, nil
}

// inferType infers the declared Dart type for a single field value.
//
// Values arrive either as raw JSON types (body) or as strings (query
// parameters), string values are further classified by their text so that
// e.g. "10" becomes an int and "true" a bool. Everything is nullable since
// the serializer omits unset fields.
func inferType(value any) string {
	switch v := value.(type) {
	case []any:
		return "final List<dynamic>?"
	case bool:
		return "final bool?"
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return "final double?"
		}

		return "final int?"
	case string:
		switch {
		case v == "true" || v == "false":
			return "final bool?"
		case isDigits(v):
			return "final int?"
		case isDecimal(v):
			return "final double?"
		default:
			return "final String?"
		}
	default:
		return "dynamic"
	}
}

// isDigits reports whether s is non-empty and entirely decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// isDecimal reports whether s is decimal digits with exactly one dot
// somewhere among them e.g. "3.14".
func isDecimal(s string) bool {
	if strings.Count(s, ".") != 1 {
		return false
	}

	stripped := strings.Replace(s, ".", "", 1)

	return isDigits(stripped)
}
