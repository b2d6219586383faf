// Package docs publishes the OpenAPI document to swag so that echo-swagger can
// serve it under /swagger/doc.json.
package docs

import (
	"encoding/json"
	"fmt"

	"requisitions/internal/generated/servers"

	"github.com/swaggo/swag"
)

// InstanceName is the swag instance read by echo-swagger's default handler.
const InstanceName = swag.Name

type document struct {
	raw string
}

func (d document) ReadDoc() string {
	return d.raw
}

// Register validates the embedded document and registers its JSON form with swag.
// Registering again is a no-op.
func Register() error {
	if swag.GetSwagger(InstanceName) != nil {
		return nil
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(swagger)
	if err != nil {
		return fmt.Errorf("failed to encode openapi document: %w", err)
	}

	swag.Register(InstanceName, document{raw: string(raw)})
	return nil
}
