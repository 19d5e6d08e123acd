package api

import (
	"sync/atomic"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// swaggerDoc serves the published document to swag readers such as the
// swagger UI handler, which fetches it as doc.json.
type swaggerDoc struct {
	json atomic.Pointer[string]
}

var published = &swaggerDoc{}

func init() {
	swag.Register(swag.Name, published)
}

func (d *swaggerDoc) ReadDoc() string {
	if doc := d.json.Load(); doc != nil {
		return *doc
	}
	return ""
}

// PublishSwagger makes doc the document served by swag readers.
func PublishSwagger(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	content := string(data)
	published.json.Store(&content)
	return nil
}
