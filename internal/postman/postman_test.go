package postman_test

import (
	"strings"
	"testing"

	"go.followtheprocess.codes/quiver/internal/postman"
	"go.followtheprocess.codes/test"
)

const collectionJSON = `{
  "info": {
    "name": "Shop API",
    "_postman_id": "7f9c2d6e-49f4-4d2e-9f3a-21a0a9a0c001",
    "schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"
  },
  "item": [
    {
      "name": "Ping",
      "request": {
        "method": "GET",
        "url": {"raw": "http://localhost:8080/ping", "path": ["ping"]}
      }
    },
    {
      "name": "Users",
      "item": [
        {
          "name": "Get  User",
          "request": {
            "method": "GET",
            "url": {"raw": "http://localhost:8080/users/123", "path": ["users", "123"]}
          }
        },
        {
          "name": "Admin",
          "item": [
            {
              "name": "Sessions",
              "item": [
                {
                  "name": "List Sessions",
                  "request": {
                    "method": "GET",
                    "url": {"raw": "http://localhost:8080/sessions", "path": ["sessions"]}
                  }
                }
              ]
            }
          ]
        }
      ]
    },
    {
      "name": "Empty Folder",
      "item": []
    }
  ]
}`

func TestDecode(t *testing.T) {
	collection, err := postman.Decode(strings.NewReader(collectionJSON))
	test.Ok(t, err)

	test.Equal(t, collection.Info.Name, "Shop API")
	test.Equal(t, len(collection.Item), 3)
	test.True(t, postman.LooksLikeCollection([]byte(collectionJSON)))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := postman.Decode(strings.NewReader("not json at all"))
	test.Err(t, err)
}

func TestLooksLikeCollection(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		raw  string // Document to sniff
		want bool   // Expected verdict
	}{
		{name: "collection", raw: collectionJSON, want: true},
		{name: "other json", raw: `{"openapi": "3.0.0"}`, want: false},
		{name: "not json", raw: "hello", want: false},
		{name: "empty", raw: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, postman.LooksLikeCollection([]byte(tt.raw)), tt.want)
		})
	}
}

// Requests must find every leaf request in document order however deep the
// folder nesting goes, an empty folder yields nothing, and doubled spaces in
// request names are collapsed.
func TestRequests(t *testing.T) {
	collection, err := postman.Decode(strings.NewReader(collectionJSON))
	test.Ok(t, err)

	var names []string
	for name, request := range collection.Requests() {
		test.True(t, request != nil, test.Context("nil request yielded for %q", name))
		names = append(names, name)
	}

	want := []string{"Ping", "Get User", "List Sessions"}
	test.EqualFunc(t, names, want, slicesEqual)
}

func TestRequestsEarlyStop(t *testing.T) {
	collection, err := postman.Decode(strings.NewReader(collectionJSON))
	test.Ok(t, err)

	count := 0
	for range collection.Requests() {
		count++
		break
	}

	test.Equal(t, count, 1)
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
