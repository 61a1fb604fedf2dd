package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/tessera/config.schema.json"
	schema.Title = "Tessera Configuration"
	schema.Description = "Configuration schema for tessera, a tabbed tiling terminal multiplexer"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json into dir.
func WriteSchemaFile(dir string) error {
	data, err := GenerateSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, schemaFileName), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
