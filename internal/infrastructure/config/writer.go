package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// schemaDirective points TOML language servers at the generated schema.
const schemaDirective = "#:schema ./" + schemaFileName + "\n\n"

// WriteConfigOrdered writes the configuration to disk. Fields keep their
// struct order and map keys come out sorted, so the output is stable.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeConfig renders cfg as TOML with a schema directive header.
func EncodeConfig(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(schemaDirective)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
