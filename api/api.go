// Package api embeds the OpenAPI document of the HTTP interface.
package api

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI is the raw OpenAPI 3 document served at /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(OpenAPI)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	return doc, nil
}
