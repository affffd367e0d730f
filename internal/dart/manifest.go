package dart

import (
	"go.followtheprocess.codes/quiver/internal/casing"
	"go.followtheprocess.codes/quiver/internal/postman"
)

// Manifest is the inventory of what generating a collection would produce,
// one entry per leaf request in document order.
type Manifest struct {
	// Collection is the name of the collection as given in its info block.
	Collection string `json:"collection" toml:"collection" yaml:"collection"`

	// Requests are the requests that would be generated.
	Requests []Entry `json:"requests" toml:"requests" yaml:"requests"`
}

// Entry is a single request in a [Manifest].
type Entry struct {
	// Name is the request name as given in the collection.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Method is the HTTP method.
	Method string `json:"method" toml:"method" yaml:"method"`

	// URL is the raw request URL.
	URL string `json:"url" toml:"url" yaml:"url"`

	// Folder is the output folder the request's files would be written to.
	Folder string `json:"folder" toml:"folder" yaml:"folder"`
}

// ManifestOf returns the [Manifest] describing what generating collection
// would produce.
func ManifestOf(collection postman.Collection) Manifest {
	manifest := Manifest{Collection: collection.Info.Name}

	for name, request := range collection.Requests() {
		manifest.Requests = append(manifest.Requests, Entry{
			Name:   name,
			Method: request.Method,
			URL:    request.URL.Raw,
			Folder: casing.Snake(name),
		})
	}

	return manifest
}
