package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema for the overrides file format. Editors
// and CI pipelines use it to validate override files before deployment.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Overrides{})
}

// SchemaJSON returns the overrides schema as indented JSON, ready to write
// to a *.schema.json file.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
