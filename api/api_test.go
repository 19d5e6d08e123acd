package api_test

import (
	"encoding/json"
	"testing"

	"pizzeria/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	for _, path := range []string{"/api/orders", "/api/orders/queue", "/api/orders/claim", "/api/orders/{orderId}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.Contains(t, doc.Components.Schemas, "Order")
}

func TestPublishSwagger(t *testing.T) {
	loaded, err := api.Load()
	require.NoError(t, err)
	require.NoError(t, api.PublishSwagger(loaded))

	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "3.0.3", parsed["openapi"])
	assert.Contains(t, parsed["paths"], "/api/orders/claim")
}
