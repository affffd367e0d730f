// Package postman provides the data model for a Postman Collection v2.x
// export and the mechanisms for decoding and walking one.
//
// Only the parts of the format that code generation needs are modelled, the
// decoder ignores everything else in the document.
package postman

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Collection is a Postman collection export, a tree of folders and requests.
type Collection struct {
	Info     Info       `json:"info"`
	Item     []Item     `json:"item"`
	Variable []Variable `json:"variable,omitempty"`
}

// Info is the collection metadata block.
type Info struct {
	Name      string `json:"name"`
	PostmanID string `json:"_postman_id,omitempty"`
	Schema    string `json:"schema"`
}

// Item is a single node in the collection tree. An item holding a non-empty
// Item slice is a folder, otherwise it describes a request.
type Item struct {
	Name    string   `json:"name"`
	Request *Request `json:"request,omitempty"`
	Item    []Item   `json:"item,omitempty"`
}

// Request is one HTTP request as described by the collection.
type Request struct {
	Method string   `json:"method"`
	URL    URL      `json:"url"`
	Header []Header `json:"header,omitempty"`
	Body   *Body    `json:"body,omitempty"`
	Auth   *Auth    `json:"auth,omitempty"`
}

// URL is the url block of a request.
type URL struct {
	Raw   string       `json:"raw"`
	Path  []string     `json:"path,omitempty"`
	Query []QueryParam `json:"query,omitempty"`
}

// QueryParam is a single key/value pair in a request's query string.
type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Header is a single request header, the value may contain {{placeholders}}.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Body is a request body, only raw bodies carry generatable content.
type Body struct {
	Raw string `json:"raw,omitempty"`
}

// Auth describes the request's authentication e.g. "bearer".
type Auth struct {
	Type string `json:"type"`
}

// Variable is a collection level variable.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LooksLikeCollection reports whether raw appears to be a Postman
// Collection v2.x JSON document, based on the declared schema.
func LooksLikeCollection(raw []byte) bool {
	var doc struct {
		Info struct {
			Schema string `json:"schema"`
		} `json:"info"`
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}

	return strings.Contains(strings.ToLower(doc.Info.Schema), "schema.getpostman.com")
}

// Decode reads a collection from r.
func Decode(r io.Reader) (Collection, error) {
	var collection Collection

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&collection); err != nil {
		return Collection{}, fmt.Errorf("could not decode collection: %w", err)
	}

	return collection, nil
}

// Load reads and decodes the collection stored in the file at path.
func Load(path string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return Collection{}, fmt.Errorf("could not open collection: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Requests returns an iterator over every leaf request in the collection in
// document order, however deeply nested in folders, yielding the request name
// and the request itself.
//
// Postman request names sometimes carry doubled spaces from hand editing,
// these are collapsed before the name is yielded.
func (c Collection) Requests() iter.Seq2[string, *Request] {
	return func(yield func(string, *Request) bool) {
		walk(c.Item, yield)
	}
}

func walk(items []Item, yield func(string, *Request) bool) bool {
	for _, item := range items {
		if len(item.Item) > 0 {
			if !walk(item.Item, yield) {
				return false
			}

			continue
		}

		if item.Request == nil {
			continue
		}

		name := strings.ReplaceAll(item.Name, "  ", " ")
		if !yield(name, item.Request) {
			return false
		}
	}

	return true
}
